// ABOUTME: Tests for the index builder
// ABOUTME: Uses a stub embedder; verifies persistence and failure handling
package index

import (
	"context"
	"errors"
	"testing"

	"github.com/tutorstack/tutor/internal/models"
)

type stubEmbedder struct {
	calls int
	fail  bool
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	s.calls++
	if s.fail {
		return nil, errors.New("embedding provider down")
	}
	return []float64{float64(len(text)), 1}, nil
}

func TestBuild_EmbedsEveryChunkInOrder(t *testing.T) {
	store := openTestStore(t)
	embedder := &stubEmbedder{}
	builder := NewBuilder(embedder, store, nil)

	chunks := []models.Chunk{
		{ChunkID: "a#0", Source: "a.pdf", Text: "one"},
		{ChunkID: "a#1", Source: "a.pdf", Ordinal: 1, Text: "two"},
	}

	ix, err := builder.Build(context.Background(), chunks)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if ix.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ix.Len())
	}
	if embedder.calls != 2 {
		t.Errorf("Embedder called %d times, want 2", embedder.calls)
	}

	// Entries must be persisted so a restart can reload them.
	loaded, err := store.LoadIndex(context.Background())
	if err != nil {
		t.Fatalf("LoadIndex() error = %v", err)
	}
	if loaded.Len() != 2 {
		t.Errorf("Persisted Len() = %d, want 2", loaded.Len())
	}
	if loaded.Entries()[0].Chunk.ChunkID != "a#0" {
		t.Errorf("First persisted chunk = %q, want a#0", loaded.Entries()[0].Chunk.ChunkID)
	}
}

func TestBuild_EmbeddingFailureIsFatal(t *testing.T) {
	builder := NewBuilder(&stubEmbedder{fail: true}, nil, nil)

	_, err := builder.Build(context.Background(), []models.Chunk{{ChunkID: "a#0", Text: "one"}})
	if err == nil {
		t.Fatal("Expected error when embedding fails")
	}
}

func TestBuild_NilStoreSkipsPersistence(t *testing.T) {
	builder := NewBuilder(&stubEmbedder{}, nil, nil)

	ix, err := builder.Build(context.Background(), []models.Chunk{{ChunkID: "a#0", Text: "one"}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}
}
