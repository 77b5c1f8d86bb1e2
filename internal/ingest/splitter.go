// ABOUTME: Deterministic character splitter producing overlapping chunks
// ABOUTME: Pure function of document text and splitter configuration
package ingest

import (
	"fmt"

	"github.com/tutorstack/tutor/internal/models"
)

// Splitter divides document text into chunks of at most MaxChunkSize
// characters, with consecutive chunks sharing exactly Overlap characters.
// Splitting is deterministic: the same text and config always produce the
// same chunk sequence.
type Splitter struct {
	MaxChunkSize int
	Overlap      int
}

// NewSplitter creates a Splitter. Overlap must be smaller than MaxChunkSize.
func NewSplitter(maxChunkSize, overlap int) (*Splitter, error) {
	if maxChunkSize <= 0 {
		return nil, fmt.Errorf("max chunk size must be positive, got %d", maxChunkSize)
	}
	if overlap < 0 || overlap >= maxChunkSize {
		return nil, fmt.Errorf("overlap must be in [0, max chunk size), got %d", overlap)
	}
	return &Splitter{MaxChunkSize: maxChunkSize, Overlap: overlap}, nil
}

// Split chunks the document's text. Chunk IDs are derived from the source and
// ordinal so repeated ingestion of the same document yields identical chunks.
// The final chunk may be shorter than MaxChunkSize.
func (s *Splitter) Split(doc models.Document) []models.Chunk {
	runes := []rune(doc.Text)
	if len(runes) == 0 {
		return nil
	}

	step := s.MaxChunkSize - s.Overlap
	var chunks []models.Chunk

	for start, ordinal := 0, 0; start < len(runes); start, ordinal = start+step, ordinal+1 {
		end := start + s.MaxChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, models.Chunk{
			ChunkID: fmt.Sprintf("%s#%d", doc.Source, ordinal),
			Source:  doc.Source,
			Ordinal: ordinal,
			Text:    string(runes[start:end]),
		})
		if end == len(runes) {
			break
		}
	}

	return chunks
}
