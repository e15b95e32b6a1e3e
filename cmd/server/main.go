// Package main is the entry point for the market API server.
// It serves the Indian equity session clock, the symbol comparator and the
// dashboard snapshot, and streams market open/close transitions to clients.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/investai/internal/config"
	"github.com/aristath/investai/internal/di"
	"github.com/aristath/investai/internal/server"
	"github.com/aristath/investai/pkg/logger"
)

// main is the application entry point. Startup sequence:
// 1. Loads configuration from environment variables (.env file)
// 2. Initializes logging system
// 3. Wires all dependencies via DI container
// 4. Evaluates market status once, then starts the scheduler
// 5. Starts HTTP server
// 6. Waits for shutdown signal and performs graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Int("port", cfg.Port).
		Bool("dev_mode", cfg.DevMode).
		Str("timezone", cfg.MarketTimezone).
		Str("session", cfg.MarketOpen+"-"+cfg.MarketClose).
		Msg("Starting market API")

	container, err := di.Wire(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// Publish the initial market state before clients connect
	if err := container.Scheduler.RunNow(container.StatusMonitor); err != nil {
		log.Error().Err(err).Msg("Initial market status check failed")
	}
	container.Scheduler.Start()

	srv := server.New(server.Config{
		Log:             log,
		Port:            cfg.Port,
		DevMode:         cfg.DevMode,
		StreamHeartbeat: cfg.StreamHeartbeat,
		Container:       container,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Stop scheduled jobs before the server so no event is emitted mid-shutdown
	container.Scheduler.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if err := container.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close symbol index")
	}

	log.Info().Msg("Server stopped")
}
