// ABOUTME: Tests for the answer pipeline
// ABOUTME: Verifies context assembly, fallback, and error propagation

package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tutorstack/tutor/internal/models"
)

func TestAnswer_ReturnsModelResponse(t *testing.T) {
	retriever := &stubRetriever{chunks: oneChunk("Photosynthesis converts light into chemical energy")}
	completer := &stubCompleter{responses: []string{"Light becomes chemical energy."}}
	pipeline := NewAnswerPipeline(retriever, completer, 0.5, 800, nil)

	answer, err := pipeline.Answer(context.Background(), "What does photosynthesis do?")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if answer != "Light becomes chemical energy." {
		t.Errorf("Answer = %q", answer)
	}
	if completer.calls != 1 {
		t.Errorf("Completer called %d times, want 1", completer.calls)
	}
}

func TestAnswer_ContextChunksInRetrievalOrder(t *testing.T) {
	retriever := &stubRetriever{chunks: []models.ScoredChunk{
		{Chunk: models.Chunk{ChunkID: "a#0", Text: "first chunk"}, Similarity: 0.9},
		{Chunk: models.Chunk{ChunkID: "b#0", Text: "second chunk"}, Similarity: 0.8},
	}}
	completer := &stubCompleter{responses: []string{"ok"}}
	pipeline := NewAnswerPipeline(retriever, completer, 0.5, 800, nil)

	if _, err := pipeline.Answer(context.Background(), "q"); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	system := completer.requests[0].System
	firstIdx := strings.Index(system, "first chunk")
	secondIdx := strings.Index(system, "second chunk")
	if firstIdx < 0 || secondIdx < 0 {
		t.Fatalf("System prompt missing chunk text: %q", system)
	}
	if firstIdx > secondIdx {
		t.Error("Chunks must appear in retrieval order")
	}
}

func TestAnswer_EmptyResponseFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retriever := &stubRetriever{chunks: oneChunk("context")}
			completer := &stubCompleter{responses: []string{tt.response}}
			pipeline := NewAnswerPipeline(retriever, completer, 0.5, 800, nil)

			answer, err := pipeline.Answer(context.Background(), "q")
			if err != nil {
				t.Fatalf("Answer() error = %v", err)
			}
			if answer != NoAnswerFallback {
				t.Errorf("Answer = %q, want fallback", answer)
			}
		})
	}
}

func TestAnswer_GenerationErrorPropagates(t *testing.T) {
	retriever := &stubRetriever{chunks: oneChunk("context")}
	completer := &stubCompleter{err: errors.New("provider outage")}
	pipeline := NewAnswerPipeline(retriever, completer, 0.5, 800, nil)

	if _, err := pipeline.Answer(context.Background(), "q"); err == nil {
		t.Error("Expected generation error to propagate")
	}
	if completer.calls != 1 {
		t.Errorf("Completer called %d times, want 1 (no retry at this layer)", completer.calls)
	}
}

func TestAnswer_EmptyRetrievalStillAnswers(t *testing.T) {
	completer := &stubCompleter{responses: []string{"The context does not cover this."}}
	pipeline := NewAnswerPipeline(&stubRetriever{}, completer, 0.5, 800, nil)

	answer, err := pipeline.Answer(context.Background(), "q")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if answer == "" {
		t.Error("Expected an answer even with no retrieved context")
	}
	if completer.calls != 1 {
		t.Errorf("Completer called %d times, want 1", completer.calls)
	}
}
