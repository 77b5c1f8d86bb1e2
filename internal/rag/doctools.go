// ABOUTME: Single-shot document tools: PDF outline, PDF summary, equations
// ABOUTME: No retrieval involved; each is one completion over supplied text
package rag

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/tutorstack/tutor/internal/llm"
)

// promptTextLimit caps how much extracted document text goes into a prompt.
const promptTextLimit = 5000

const outlinePrompt = `I want you to go through every single topic and make it one JSON key.
Then, go through every subpoint of that unit and write a **detailed description**
for each point in the "subpoints" section.
Next, go to the next topic (1, 2, 3, ... till the last one).
**Ensure the JSON is as detailed as possible**.

**Here is the document content:**
%s

**Return only valid JSON output. Do not include any extra text or explanations.**`

const summaryPrompt = `You are an AI that answers questions based on a provided document.

**Document Content:**
%s

**User Query:** %s
Answer based only on the provided document.`

// DocPipeline performs the single-shot document operations.
type DocPipeline struct {
	llm         Completer
	temperature float32
	maxTokens   int
	logger      *zap.Logger
}

// NewDocPipeline wires a DocPipeline.
func NewDocPipeline(completer Completer, temperature float32, maxTokens int, logger *zap.Logger) *DocPipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocPipeline{llm: completer, temperature: temperature, maxTokens: maxTokens, logger: logger}
}

// Outline converts extracted document text into a structured JSON outline.
// The returned string is verified to be valid JSON after fence stripping.
func (p *DocPipeline) Outline(ctx context.Context, docText string) (string, error) {
	out, err := p.llm.Complete(ctx, llm.CompletionRequest{
		User:        fmt.Sprintf(outlinePrompt, truncateRunes(docText, promptTextLimit)),
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return "", err
	}

	cleaned := stripCodeFences(out)
	if !json.Valid([]byte(cleaned)) {
		return "", fmt.Errorf("model returned invalid JSON outline")
	}
	return cleaned, nil
}

// Summarize answers a query about the supplied document text.
func (p *DocPipeline) Summarize(ctx context.Context, docText, userQuery string) (string, error) {
	return p.llm.Complete(ctx, llm.CompletionRequest{
		User:        fmt.Sprintf(summaryPrompt, truncateRunes(docText, promptTextLimit), userQuery),
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
}

// CurveEquation returns only the mathematical equation for a named curve.
func (p *DocPipeline) CurveEquation(ctx context.Context, curveName string) (string, error) {
	return p.llm.Complete(ctx, llm.CompletionRequest{
		User:        fmt.Sprintf("Provide only the mathematical equation for the curve: %s. No extra text.", curveName),
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
}

// truncateRunes bounds s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
