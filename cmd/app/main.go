package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leaguemind/LeagueMind_Go/internal/config"
	"github.com/leaguemind/LeagueMind_Go/internal/database"
	"github.com/leaguemind/LeagueMind_Go/internal/database/postgres"
	"github.com/leaguemind/LeagueMind_Go/internal/event"
	"github.com/leaguemind/LeagueMind_Go/internal/graph"
	"github.com/leaguemind/LeagueMind_Go/internal/handler"
	"github.com/leaguemind/LeagueMind_Go/internal/logger"
	"github.com/leaguemind/LeagueMind_Go/internal/metrics"
	"github.com/leaguemind/LeagueMind_Go/internal/profile"
	"github.com/leaguemind/LeagueMind_Go/internal/server"
)

// @title LeagueMind API
// @version 1.0
// @description Decision-intelligence service that turns fantasy-sports decision trails into behavioral profiles.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Environment: cfg.Environment,
	})

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), 10, 5*time.Minute, 30*time.Minute)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := postgres.NewEventStore(pool)
	graphService := graph.NewService(store)

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	profileService, err := profile.NewService(graphService, bus, cfg.ProfileCacheSize, cfg.ProfileTTL)
	if err != nil {
		slog.Error("Failed to create profile service", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, graphService, profileService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
