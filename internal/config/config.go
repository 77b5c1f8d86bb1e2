// ABOUTME: Centralized configuration for the tutor API service
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the service. There is no package-level
// initialization: entry points load a Config and pass it into constructors.
type Config struct {
	// HTTP settings
	HTTPAddr string

	// OpenAI settings
	OpenAIKey       string
	ChatModel       string
	EmbeddingModel  string
	ChatTemperature float32
	ChatMaxTokens   int
	QuizTemperature float32
	QuizMaxTokens   int
	Timeout         time.Duration
	MaxRetries      int
	RetryDelay      time.Duration

	// AWS / object storage settings
	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	S3Bucket     string
	S3Prefix     string

	// Ingestion and retrieval settings
	DataDir         string
	ChunkSize       int
	ChunkOverlap    int
	RetrievalK      int
	MinSimilarity   float64
	VectorDimension int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:        getEnv("TUTOR_HTTP_ADDR", ":8000"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		ChatModel:       getEnv("TUTOR_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:  getEnv("TUTOR_EMBEDDING_MODEL", "text-embedding-3-small"),
		ChatTemperature: float32(getEnvFloat("TUTOR_CHAT_TEMPERATURE", 0.5)),
		ChatMaxTokens:   getEnvInt("TUTOR_CHAT_MAX_TOKENS", 800),
		QuizTemperature: float32(getEnvFloat("TUTOR_QUIZ_TEMPERATURE", 0.7)),
		QuizMaxTokens:   getEnvInt("TUTOR_QUIZ_MAX_TOKENS", 4000),
		Timeout:         getEnvDuration("OPENAI_TIMEOUT", 60*time.Second),
		MaxRetries:      getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:      getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey:    os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:        os.Getenv("AWS_BUCKET_NAME"),
		S3Prefix:        getEnv("TUTOR_S3_PREFIX", "pdfs/"),
		DataDir:         getEnv("TUTOR_DATA_DIR", DefaultDataDir()),
		ChunkSize:       getEnvInt("TUTOR_CHUNK_SIZE", 3000),
		ChunkOverlap:    getEnvInt("TUTOR_CHUNK_OVERLAP", 500),
		RetrievalK:      getEnvInt("TUTOR_RETRIEVAL_K", 15),
		MinSimilarity:   getEnvFloat("TUTOR_MIN_SIMILARITY", 0),
		VectorDimension: getEnvInt("TUTOR_VECTOR_DIMENSION", 1536),
	}

	return cfg, cfg.Validate()
}

// DefaultDataDir returns the index data directory following the XDG spec.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".local/share/tutor"
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "tutor")
}

func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("TUTOR_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("TUTOR_CHUNK_OVERLAP must be in [0, chunk size), got %d", c.ChunkOverlap)
	}
	if c.RetrievalK <= 0 {
		return fmt.Errorf("TUTOR_RETRIEVAL_K must be positive, got %d", c.RetrievalK)
	}
	if c.MinSimilarity < 0 || c.MinSimilarity > 1 {
		return fmt.Errorf("TUTOR_MIN_SIMILARITY must be 0-1, got %f", c.MinSimilarity)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
