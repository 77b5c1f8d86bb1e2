// ABOUTME: Retriever embeds a query and searches the live index
// ABOUTME: Empty index or no hit above the floor yields an empty result
package rag

import (
	"context"
	"fmt"

	"github.com/tutorstack/tutor/internal/index"
	"github.com/tutorstack/tutor/internal/models"
)

// DefaultK is the retrieval depth used by both pipelines.
const DefaultK = 15

// Retriever returns the chunks most similar to a query, using the same
// embedding function the index was built with.
type Retriever struct {
	holder        *index.Holder
	embedder      index.Embedder
	k             int
	minSimilarity float64
}

// NewRetriever wires a Retriever. k <= 0 falls back to DefaultK.
func NewRetriever(holder *index.Holder, embedder index.Embedder, k int, minSimilarity float64) *Retriever {
	if k <= 0 {
		k = DefaultK
	}
	return &Retriever{holder: holder, embedder: embedder, k: k, minSimilarity: minSimilarity}
}

// Retrieve returns up to k chunks ordered by descending similarity. Callers
// must treat an empty result as "no relevant context", not an error. The
// query is not embedded when the index is empty.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]models.ScoredChunk, error) {
	ix := r.holder.Load()
	if ix.Len() == 0 {
		return nil, nil
	}

	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	return ix.Search(vector, r.k, r.minSimilarity), nil
}
