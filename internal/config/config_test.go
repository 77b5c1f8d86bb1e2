// ABOUTME: Tests for environment-based configuration loading
// ABOUTME: Covers defaults, overrides, and validation failures

package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"TUTOR_HTTP_ADDR", "TUTOR_CHAT_MODEL", "TUTOR_EMBEDDING_MODEL",
		"TUTOR_CHUNK_SIZE", "TUTOR_CHUNK_OVERLAP", "TUTOR_RETRIEVAL_K",
		"TUTOR_S3_PREFIX", "OPENAI_MAX_RETRIES",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPAddr != ":8000" {
		t.Errorf("HTTPAddr = %q, want :8000", cfg.HTTPAddr)
	}
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q", cfg.EmbeddingModel)
	}
	if cfg.ChunkSize != 3000 {
		t.Errorf("ChunkSize = %d, want 3000", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 500 {
		t.Errorf("ChunkOverlap = %d, want 500", cfg.ChunkOverlap)
	}
	if cfg.RetrievalK != 15 {
		t.Errorf("RetrievalK = %d, want 15", cfg.RetrievalK)
	}
	if cfg.S3Prefix != "pdfs/" {
		t.Errorf("S3Prefix = %q, want pdfs/", cfg.S3Prefix)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.VectorDimension != 1536 {
		t.Errorf("VectorDimension = %d, want 1536", cfg.VectorDimension)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TUTOR_HTTP_ADDR", ":9090")
	t.Setenv("TUTOR_CHUNK_SIZE", "1000")
	t.Setenv("TUTOR_CHUNK_OVERLAP", "100")
	t.Setenv("OPENAI_TIMEOUT", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.ChunkSize != 1000 {
		t.Errorf("ChunkSize = %d, want 1000", cfg.ChunkSize)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("TUTOR_CHUNK_SIZE", "not-a-number")
	t.Setenv("OPENAI_TIMEOUT", "soonish")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ChunkSize != 3000 {
		t.Errorf("ChunkSize = %d, want 3000 default on bad value", cfg.ChunkSize)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want 60s default on bad value", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ChunkSize:    3000,
			ChunkOverlap: 500,
			RetrievalK:   15,
			MaxRetries:   3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, "TUTOR_CHUNK_SIZE"},
		{"negative overlap", func(c *Config) { c.ChunkOverlap = -1 }, "TUTOR_CHUNK_OVERLAP"},
		{"overlap equals chunk size", func(c *Config) { c.ChunkOverlap = c.ChunkSize }, "TUTOR_CHUNK_OVERLAP"},
		{"zero k", func(c *Config) { c.RetrievalK = 0 }, "TUTOR_RETRIEVAL_K"},
		{"similarity above one", func(c *Config) { c.MinSimilarity = 1.5 }, "TUTOR_MIN_SIMILARITY"},
		{"retries too high", func(c *Config) { c.MaxRetries = 11 }, "OPENAI_MAX_RETRIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultDataDir_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	dir := DefaultDataDir()
	if dir != "/tmp/xdg-data/tutor" {
		t.Errorf("DefaultDataDir() = %q, want /tmp/xdg-data/tutor", dir)
	}
}
