// ABOUTME: In-memory vector index with cosine similarity search
// ABOUTME: Append-only during build, immutable and read-safe once published
package index

import (
	"math"
	"sort"

	"github.com/tutorstack/tutor/internal/models"
)

// Entry pairs an embedding vector with the chunk it was derived from.
type Entry struct {
	Vector []float64
	Chunk  models.Chunk
}

// Index holds (vector, chunk) pairs in insertion order. Build it fully, then
// publish it through a Holder; after publication it must not be mutated, which
// makes concurrent Search calls safe without locking.
type Index struct {
	entries []Entry
}

// New creates an empty Index.
func New() *Index {
	return &Index{}
}

// Add appends an entry. Only valid before the index is published.
func (ix *Index) Add(vector []float64, chunk models.Chunk) {
	ix.entries = append(ix.entries, Entry{Vector: vector, Chunk: chunk})
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns the underlying entries in insertion order.
func (ix *Index) Entries() []Entry {
	return ix.entries
}

// Search returns up to k chunks ordered by descending cosine similarity to
// vector, ties broken by insertion order. Results below minSimilarity are
// dropped. An empty index yields an empty result, never an error.
func (ix *Index) Search(vector []float64, k int, minSimilarity float64) []models.ScoredChunk {
	if len(ix.entries) == 0 || k <= 0 {
		return nil
	}

	results := make([]models.ScoredChunk, 0, len(ix.entries))
	for _, e := range ix.entries {
		score := cosineSimilarity(vector, e.Vector)
		if score < minSimilarity {
			continue
		}
		results = append(results, models.ScoredChunk{Chunk: e.Chunk, Similarity: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

// cosineSimilarity calculates cosine similarity between two vectors.
// Mismatched lengths or zero vectors score 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
