// ABOUTME: Application wiring: builds pipelines from configuration
// ABOUTME: Owns the index lifecycle (load at startup, rebuild-and-swap)
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tutorstack/tutor/internal/config"
	"github.com/tutorstack/tutor/internal/index"
	"github.com/tutorstack/tutor/internal/ingest"
	"github.com/tutorstack/tutor/internal/llm"
	"github.com/tutorstack/tutor/internal/rag"
	"github.com/tutorstack/tutor/internal/storage"
)

// App holds the wired service graph. Construct with New, release with Close.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	LLM     *llm.Client
	Store   storage.ObjectStore
	Holder  *index.Holder
	Answers *rag.AnswerPipeline
	Quizzes *rag.QuizPipeline
	Docs    *rag.DocPipeline

	indexStore *index.Store
	loader     *ingest.Loader
	builder    *index.Builder
}

// New wires the full dependency graph. The persisted index (if any) is loaded
// so the service can answer queries without re-embedding the corpus. When no
// S3 bucket is configured, documents are read from a local directory under
// the data dir instead.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating LLM client: %w", err)
	}

	var store storage.ObjectStore
	if cfg.S3Bucket != "" {
		store, err = storage.NewS3Store(ctx, cfg)
	} else {
		store, err = storage.NewFSStore(filepath.Join(cfg.DataDir, "documents"))
	}
	if err != nil {
		return nil, fmt.Errorf("creating object store: %w", err)
	}

	indexStore, err := index.OpenStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening index store: %w", err)
	}

	ix, err := indexStore.LoadIndex(ctx)
	if err != nil {
		indexStore.Close()
		return nil, fmt.Errorf("loading persisted index: %w", err)
	}
	logger.Info("index loaded", zap.Int("chunks", ix.Len()), zap.String("path", indexStore.Path()))

	splitter, err := ingest.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		indexStore.Close()
		return nil, fmt.Errorf("creating splitter: %w", err)
	}

	holder := index.NewHolder(ix)
	retriever := rag.NewRetriever(holder, client, cfg.RetrievalK, cfg.MinSimilarity)

	return &App{
		Config:     cfg,
		Logger:     logger,
		LLM:        client,
		Store:      store,
		Holder:     holder,
		Answers:    rag.NewAnswerPipeline(retriever, client, cfg.ChatTemperature, cfg.ChatMaxTokens, logger),
		Quizzes:    rag.NewQuizPipeline(retriever, client, cfg.QuizTemperature, cfg.QuizMaxTokens, logger),
		Docs:       rag.NewDocPipeline(client, cfg.ChatTemperature, cfg.QuizMaxTokens, logger),
		indexStore: indexStore,
		loader:     ingest.NewLoader(store, splitter, logger),
		builder:    index.NewBuilder(client, indexStore, logger),
	}, nil
}

// Ingest rebuilds the index from stored documents and atomically swaps it in.
// Serving continues on the old index until the new one is fully built.
func (a *App) Ingest(ctx context.Context) (ingest.Report, error) {
	chunks, report, err := a.loader.Load(ctx, a.Config.S3Prefix)
	if err != nil {
		return report, err
	}

	ix, err := a.builder.Build(ctx, chunks)
	if err != nil {
		return report, fmt.Errorf("building index: %w", err)
	}

	a.Holder.Swap(ix)
	return report, nil
}

// Close releases held resources.
func (a *App) Close() error {
	return a.indexStore.Close()
}
