// ABOUTME: CLI command to run the HTTP API server
// ABOUTME: Serves until interrupted, then shuts down gracefully
package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tutorstack/tutor/internal/server"
)

var serveAddr string

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tutor HTTP API server",
		Long: `Run the tutor HTTP API server.

Loads the persisted index and serves the chat, quiz, and document
endpoints until interrupted.

Examples:
  tutor serve
  tutor serve --addr :9000`,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides TUTOR_HTTP_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := bootstrapApp(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	addr := application.Config.HTTPAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(
		application.Answers,
		application.Quizzes,
		application.Docs,
		application.Store,
		application.Config.S3Prefix,
		application.Logger,
	)

	httpServer := &http.Server{Addr: addr, Handler: srv.Router()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	application.Logger.Info("tutor API listening", zap.String("addr", addr))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
