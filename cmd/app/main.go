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

	_ "github.com/osse101/DishForge_Go/docs"
	"github.com/osse101/DishForge_Go/internal/bootstrap"
	"github.com/osse101/DishForge_Go/internal/config"
	"github.com/osse101/DishForge_Go/internal/database"
	"github.com/osse101/DishForge_Go/internal/database/postgres"
	"github.com/osse101/DishForge_Go/internal/server"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title DishForge API
// @version 1.0
// @description Generates every distinct dish a recipe can produce from the ingredient catalog.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, err := database.NewPool(startupCtx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(startupCtx, pool); err != nil {
		pool.Close()
		return err
	}

	repo := postgres.NewIngredientRepository(pool)

	if err := bootstrap.SyncCatalog(startupCtx, cfg, repo); err != nil {
		pool.Close()
		return err
	}

	services := bootstrap.InitializeServices(cfg, repo)
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, services.Dish, cfg.MaxRecipeLength, services.Cache)
	jobs := bootstrap.StartBackgroundJobs(cfg, repo, services.Cache)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		jobs.Stop()
		pool.Close()
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, Jobs: jobs, Pool: pool})
	return nil
}
