package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/ironsheep/color-tools-mcp/internal/telemetry"
	"github.com/ironsheep/color-tools-mcp/internal/version"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdin/stdout (the default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg, cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recorder, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recorder.Shutdown(shutdownCtx); err != nil {
			log.Warn("flushing metrics failed", "error", err)
		}
	}()

	log.Debug("starting server",
		"version", version.Version,
		"commit", version.Commit,
		"workers", cfg.Workers,
		"otel", cfg.Telemetry.Enabled,
	)

	srv := server.New(
		server.WithLogger(log),
		server.WithRecorder(recorder),
		server.WithWorkers(cfg.Workers),
	)
	if err := srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil && ctx.Err() == nil {
		return err
	}
	log.Debug("server stopped")
	return nil
}
