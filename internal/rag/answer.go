// ABOUTME: AnswerPipeline produces a grounded free-text answer for a query
// ABOUTME: One retrieval, one completion, fallback on empty model output
package rag

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tutorstack/tutor/internal/llm"
	"github.com/tutorstack/tutor/internal/models"
)

// Completer performs one chat completion. Satisfied by llm.Client.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
}

// ContextRetriever supplies relevant chunks for a query. Satisfied by Retriever.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string) ([]models.ScoredChunk, error)
}

// AnswerPipeline answers free-form questions using retrieved context.
type AnswerPipeline struct {
	retriever   ContextRetriever
	llm         Completer
	temperature float32
	maxTokens   int
	logger      *zap.Logger
}

// NewAnswerPipeline wires an AnswerPipeline.
func NewAnswerPipeline(retriever ContextRetriever, completer Completer, temperature float32, maxTokens int, logger *zap.Logger) *AnswerPipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnswerPipeline{
		retriever:   retriever,
		llm:         completer,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logger,
	}
}

// Answer retrieves context for the query and performs a single completion.
// Generation failures propagate; an empty model response becomes the fixed
// fallback string rather than an error. No retry happens at this layer.
func (p *AnswerPipeline) Answer(ctx context.Context, query string) (string, error) {
	chunks, err := p.retriever.Retrieve(ctx, query)
	if err != nil {
		return "", fmt.Errorf("retrieving context: %w", err)
	}

	contextBlock := joinChunkText(chunks, "\n\n")
	p.logger.Debug("answering query",
		zap.String("query", query), zap.Int("context_chunks", len(chunks)))

	answer, err := p.llm.Complete(ctx, llm.CompletionRequest{
		System:      buildAnswerSystemPrompt(contextBlock),
		User:        query,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(answer) == "" {
		return NoAnswerFallback, nil
	}
	return answer, nil
}
