// ABOUTME: QuizPipeline generates validated MCQ sets from retrieved context
// ABOUTME: Strict JSON contract with bounded retries and per-item validation
package rag

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/tutorstack/tutor/internal/llm"
	"github.com/tutorstack/tutor/internal/models"
)

// quizMaxAttempts bounds the generate-and-validate loop.
const quizMaxAttempts = 3

var difficultyPattern = regexp.MustCompile(`(?i)\b(easy|medium|hard)\b`)
var spacePattern = regexp.MustCompile(`\s+`)

// ParseQuizRequest extracts (topic, difficulty) from a raw quiz prompt.
// The first difficulty keyword found wins, case-insensitively; no keyword
// defaults to Medium. The topic is the prompt with every keyword removed.
func ParseQuizRequest(raw string) (string, models.Difficulty) {
	difficulty := models.DifficultyMedium
	if m := difficultyPattern.FindString(raw); m != "" {
		difficulty, _ = models.ParseDifficulty(m)
	}

	topic := difficultyPattern.ReplaceAllString(raw, "")
	topic = strings.TrimSpace(spacePattern.ReplaceAllString(topic, " "))
	return topic, difficulty
}

// QuizPipeline turns a topic prompt into a validated MCQ set.
type QuizPipeline struct {
	retriever   ContextRetriever
	llm         Completer
	temperature float32
	maxTokens   int
	logger      *zap.Logger
}

// NewQuizPipeline wires a QuizPipeline.
func NewQuizPipeline(retriever ContextRetriever, completer Completer, temperature float32, maxTokens int, logger *zap.Logger) *QuizPipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizPipeline{
		retriever:   retriever,
		llm:         completer,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logger,
	}
}

// GenerateQuiz runs the full quiz state machine: parse, retrieve, then up to
// quizMaxAttempts rounds of generate-parse-validate. Outcomes:
//   - QuizNoContext: retrieval was empty; the generator is never invoked.
//   - QuizSuccess: at least one question survived validation.
//   - QuizExhausted: every attempt produced malformed or invalid output.
//   - QuizFailed: retrieval or the provider itself errored; no further retries.
func (p *QuizPipeline) GenerateQuiz(ctx context.Context, raw string) models.QuizResult {
	topic, difficulty := ParseQuizRequest(raw)
	result := models.QuizResult{Topic: topic, Difficulty: difficulty}

	chunks, err := p.retriever.Retrieve(ctx, topic)
	if err != nil {
		result.Outcome = models.QuizFailed
		result.Err = err
		return result
	}
	if len(chunks) == 0 {
		p.logger.Info("no relevant content for quiz topic", zap.String("topic", topic))
		result.Outcome = models.QuizNoContext
		return result
	}

	contextBlock := joinChunkText(chunks, " ")
	prompt := buildMCQPrompt(topic, difficulty, contextBlock)

	var lastErr error
	for attempt := 1; attempt <= quizMaxAttempts; attempt++ {
		raw, err := p.llm.Complete(ctx, llm.CompletionRequest{
			System:      mcqSystemPrompt,
			User:        prompt,
			Temperature: p.temperature,
			MaxTokens:   p.maxTokens,
			JSONMode:    true,
		})
		if err != nil {
			// Provider failure is not a formatting problem; abort immediately.
			result.Outcome = models.QuizFailed
			result.Err = err
			return result
		}

		mcqs, err := p.parseAndValidate(raw, difficulty)
		if err != nil {
			lastErr = err
			p.logger.Warn("invalid MCQ response, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", quizMaxAttempts),
				zap.Error(err))
			continue
		}

		result.Outcome = models.QuizSuccess
		result.MCQs = mcqs
		return result
	}

	result.Outcome = models.QuizExhausted
	result.Err = lastErr
	return result
}

// parseAndValidate decodes one model response and applies per-item
// validation, dropping individual questions that break the MCQ invariants
// instead of discarding the whole batch.
func (p *QuizPipeline) parseAndValidate(raw string, difficulty models.Difficulty) ([]models.MCQ, error) {
	var payload struct {
		MCQs []models.MCQ `json:"mcqs"`
	}

	cleaned := stripCodeFences(raw)
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &MalformedResponseError{Stage: "parse", Err: err}
	}
	if len(payload.MCQs) == 0 {
		return nil, &MalformedResponseError{Stage: "shape", Err: errNoMCQs}
	}

	valid := make([]models.MCQ, 0, len(payload.MCQs))
	for i, mcq := range payload.MCQs {
		if err := mcq.Validate(difficulty); err != nil {
			p.logger.Warn("dropping invalid question",
				zap.Int("position", i), zap.Error(err))
			continue
		}
		valid = append(valid, mcq)
	}
	if len(valid) == 0 {
		return nil, &MalformedResponseError{Stage: "validate", Err: errAllMCQsInvalid}
	}

	return valid, nil
}
