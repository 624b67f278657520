// Package main is the entry point for the Budget Control API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/budget-control/backend/config"
	"github.com/budget-control/backend/internal/infra/db"
	"github.com/budget-control/backend/internal/infra/dependency"
	"github.com/budget-control/backend/internal/infra/logging"
	"github.com/budget-control/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.Log, os.Stdout)

	slog.Info("Starting Budget Control API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(model.All()...); err != nil {
			return err
		}
		slog.Info("Database migrations completed successfully")
	}

	redisClient, err := dependency.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	injector := dependency.NewInjector(ctx, cfg, database.DB(), redisClient, database.HealthCheck)
	engine, err := injector.Router.Setup(cfg.Server.Environment)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
