package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dkoosis/drill/internal/config"
	"github.com/dkoosis/drill/internal/di"
	"github.com/dkoosis/drill/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Serve drills and notes over HTTP with live reload",
	Long: `Start an HTTP server exposing the drill catalog and study notes.
When extra note paths are configured, editing a note reloads connected
browsers over WebSocket.

Examples:
  drill serve                     # Serve on the configured address
  drill serve --port 3000         # Override the port`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on")
	serveCmd.Flags().String("host", "", "Host to bind to")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))

	AddFlagValidation(serveCmd, "port", ValidatePort)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container := di.NewServiceContainer(cfg)
	if err := container.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize service container: %w", err)
	}
	defer container.Shutdown(context.Background())

	logger, err := container.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}
	reg, err := container.GetRegistry()
	if err != nil {
		return fmt.Errorf("failed to get registry: %w", err)
	}
	run, err := container.GetRunner()
	if err != nil {
		return fmt.Errorf("failed to get runner: %w", err)
	}
	noteCatalog, err := container.GetNotes()
	if err != nil {
		return fmt.Errorf("failed to get notes: %w", err)
	}

	srv := server.New(cfg, logger, reg, run, noteCatalog)

	logger.Info(ctx, "starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port)

	return srv.Start(ctx)
}
