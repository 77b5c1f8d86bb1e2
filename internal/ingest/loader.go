// ABOUTME: Loader pulls PDFs from object storage and turns them into chunks
// ABOUTME: Unreadable documents are skipped and counted, never fatal
package ingest

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tutorstack/tutor/internal/models"
	"github.com/tutorstack/tutor/internal/storage"
)

// Report summarizes one ingestion run.
type Report struct {
	Total  int `json:"total"`  // PDF objects found under the prefix
	Loaded int `json:"loaded"` // documents successfully extracted and split
	Failed int `json:"failed"` // documents skipped due to fetch or parse errors
	Chunks int `json:"chunks"`
}

// Loader fetches stored documents and splits them for indexing.
type Loader struct {
	store    storage.ObjectStore
	splitter *Splitter
	logger   *zap.Logger
}

// NewLoader wires a Loader from its collaborators.
func NewLoader(store storage.ObjectStore, splitter *Splitter, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{store: store, splitter: splitter, logger: logger}
}

// Load lists PDFs under prefix, extracts their text, and returns the combined
// chunk sequence plus a per-document success/failure report. A document that
// cannot be fetched or parsed is skipped; only the listing call is fatal.
func (l *Loader) Load(ctx context.Context, prefix string) ([]models.Chunk, Report, error) {
	keys, err := l.store.List(ctx, prefix)
	if err != nil {
		return nil, Report{}, fmt.Errorf("listing documents: %w", err)
	}

	var report Report
	var chunks []models.Chunk

	for _, key := range keys {
		if !strings.HasSuffix(strings.ToLower(key), ".pdf") {
			continue
		}
		report.Total++

		data, err := l.store.Get(ctx, key)
		if err != nil {
			report.Failed++
			l.logger.Warn("skipping document: fetch failed",
				zap.String("key", key), zap.Error(err))
			continue
		}

		text, err := ExtractPDFText(data)
		if err != nil {
			report.Failed++
			l.logger.Warn("skipping document: extraction failed",
				zap.String("key", key), zap.Error(err))
			continue
		}

		docChunks := l.splitter.Split(models.Document{Source: key, Text: text})
		chunks = append(chunks, docChunks...)
		report.Loaded++
		report.Chunks += len(docChunks)
	}

	l.logger.Info("ingestion complete",
		zap.Int("total", report.Total),
		zap.Int("loaded", report.Loaded),
		zap.Int("failed", report.Failed),
		zap.Int("chunks", report.Chunks))

	return chunks, report, nil
}
