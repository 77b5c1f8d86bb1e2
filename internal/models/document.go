// ABOUTME: Document and Chunk types for the ingestion pipeline
// ABOUTME: A Chunk is a bounded, overlapping substring of a source Document
package models

// Document is the raw text of one source file plus its origin identifier.
// Documents are immutable once ingested.
type Document struct {
	Source string `json:"source"` // object key or file name the text came from
	Text   string `json:"text"`
}

// Chunk is a bounded-length piece of a Document produced by the splitter.
// Adjacent chunks of the same document overlap by a configured number of
// characters. Chunks are never mutated after creation.
type Chunk struct {
	ChunkID string `json:"chunk_id"`
	Source  string `json:"source"`  // back-reference to the originating Document
	Ordinal int    `json:"ordinal"` // position within the source document, 0-based
	Text    string `json:"text"`
}

// ScoredChunk pairs a retrieved chunk with its similarity to the query.
type ScoredChunk struct {
	Chunk      Chunk   `json:"chunk"`
	Similarity float64 `json:"similarity"`
}
