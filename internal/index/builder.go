// ABOUTME: Builder embeds chunks and assembles a fresh index
// ABOUTME: Persists entries through Store so startup can skip re-embedding
package index

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tutorstack/tutor/internal/models"
)

// Embedder converts text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Builder turns a chunk sequence into a searchable Index.
type Builder struct {
	embedder Embedder
	store    *Store
	logger   *zap.Logger
}

// NewBuilder wires a Builder. store may be nil to skip persistence.
func NewBuilder(embedder Embedder, store *Store, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{embedder: embedder, store: store, logger: logger}
}

// Build embeds every chunk in order and returns the populated index. When a
// Store is configured the entries are persisted before the index is returned.
// Any embedding failure aborts the build.
func (b *Builder) Build(ctx context.Context, chunks []models.Chunk) (*Index, error) {
	ix := New()

	for i, chunk := range chunks {
		vector, err := b.embedder.Embed(ctx, chunk.Text)
		if err != nil {
			return nil, fmt.Errorf("embedding chunk %d/%d (%s): %w", i+1, len(chunks), chunk.ChunkID, err)
		}
		ix.Add(vector, chunk)
	}

	if b.store != nil {
		if err := b.store.Replace(ctx, ix.Entries()); err != nil {
			return nil, fmt.Errorf("persisting index: %w", err)
		}
	}

	b.logger.Info("index built", zap.Int("chunks", ix.Len()))
	return ix, nil
}
