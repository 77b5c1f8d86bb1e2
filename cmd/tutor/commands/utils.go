// ABOUTME: Shared helpers for CLI commands
// ABOUTME: App bootstrap and common validation
package commands

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tutorstack/tutor/internal/app"
	"github.com/tutorstack/tutor/internal/config"
)

// bootstrapApp loads .env and config and wires the application graph.
// Callers must Close() the returned App.
func bootstrapApp(ctx context.Context) (*app.App, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger := zap.NewNop()
	if !quiet {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
	}

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("wiring application: %w", err)
	}
	return application, nil
}

// validateFormat returns an error unless format is text or json.
func validateFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("format must be text or json, got %q", format)
	}
	return nil
}
