package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"wristweather.app/internal/adapters/infrastructure"
	"wristweather.app/internal/app"
	"wristweather.app/internal/config"
	"wristweather.app/internal/ports"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.NewSlogLoggerAdapter(infrastructure.LoggerParams{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	slog.SetDefault(logger.Slog())

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", ports.F("error", err))
		os.Exit(1)
	}

	logger.Info("Configuration loaded",
		ports.F("port", cfg.Server.Port),
		ports.F("broker", cfg.Device.BrokerURL()),
		ports.F("device", cfg.Device.DeviceID),
		ports.F("store", cfg.Store.Type.String()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := setupGracefulShutdown(cancel, application, logger)

	logger.Info("Starting wrist weather relay...")
	if err := application.Start(ctx); err != nil {
		logger.Error("Failed to start application", ports.F("error", err))
		os.Exit(1)
	}

	// Start returns once Shutdown closed the HTTP server
	<-done
}

func setupGracefulShutdown(cancel context.CancelFunc, application *app.Application, logger ports.Logger) <-chan struct{} {
	done := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer close(done)
		<-c
		logger.Info("Received shutdown signal...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := application.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error during graceful shutdown", ports.F("error", err))
		}
	}()

	return done
}
