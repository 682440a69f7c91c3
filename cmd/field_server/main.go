// cmd/field_server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	game "go-particle-field/internal/app"
	"go-particle-field/internal/config"
	"go-particle-field/internal/logging"
	"go-particle-field/internal/stream"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	settingsPath string
	addr         string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "field-server",
	Short: "Stream the particle field to websocket clients",
	Long: `Runs one shared particle field and broadcasts projected frames over a
websocket at /ws. Clients send their pointer position and whether the field
section is visible; the field pauses while no client sees it.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&settingsPath, "config", "c", "field.yaml", "settings file (YAML)")
	flags.StringVar(&addr, "addr", "", "listen address (overrides stream.addr)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(settingsPath)
	if err != nil {
		return err
	}
	if addr != "" {
		settings.Stream.Addr = addr
	}
	if verbose {
		settings.Logging.Level = "debug"
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	logger, err := logging.New(settings.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	fieldApp := game.NewFieldApp(settings, settings.Stream.Width, settings.Stream.Height, logger)
	srv := stream.NewServer(fieldApp, settings.Stream.TickRate, settings.Stream.MaxClients, logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", srv)
	httpServer := &http.Server{
		Addr:              settings.Stream.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("tick loop stopped", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("streaming field", zap.String("addr", settings.Stream.Addr), zap.Int("tick_rate", settings.Stream.TickRate))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
