// ABOUTME: Tests for prompt helpers
// ABOUTME: Covers fence stripping and chunk text joining

package rag

import (
	"testing"

	"github.com/tutorstack/tutor/internal/models"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.input); got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestJoinChunkText(t *testing.T) {
	chunks := []models.ScoredChunk{
		{Chunk: models.Chunk{Text: "one"}},
		{Chunk: models.Chunk{Text: "two"}},
		{Chunk: models.Chunk{Text: "three"}},
	}

	if got := joinChunkText(chunks, " "); got != "one two three" {
		t.Errorf("joinChunkText = %q", got)
	}
	if got := joinChunkText(nil, " "); got != "" {
		t.Errorf("joinChunkText(nil) = %q, want empty", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("hello", 10); got != "hello" {
		t.Errorf("truncateRunes short = %q", got)
	}
	if got := truncateRunes("hello world", 5); got != "hello" {
		t.Errorf("truncateRunes long = %q", got)
	}
}
