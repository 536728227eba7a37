// Command api is the Hoops Collector API server. It owns the collector,
// exposes its controls, and proxies the basketball source with caching.
//
// Usage:
//
//	hoops-api
//	API_PORT=8080 STORE_BACKEND=memory hoops-api

// @title Hoops Collector API
// @version 1.0.0
// @description Basketball data collector: controls the collection loop, proxies the basketball source with caching, and serves stored leagues, seasons and teams.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Hoops Collector
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/hoops-collector/internal/api"
	"github.com/albapepper/hoops-collector/internal/api/handler"
	"github.com/albapepper/hoops-collector/internal/cache"
	"github.com/albapepper/hoops-collector/internal/collector"
	"github.com/albapepper/hoops-collector/internal/config"
	"github.com/albapepper/hoops-collector/internal/maintenance"
	"github.com/albapepper/hoops-collector/internal/metrics"
	"github.com/albapepper/hoops-collector/internal/provider/apisports"
	"github.com/albapepper/hoops-collector/internal/store"

	_ "github.com/albapepper/hoops-collector/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Storage
	logger.Info("Opening store...", "backend", cfg.StoreBackend)
	st, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()
	logger.Info("Store ready",
		"backend", cfg.StoreBackend,
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Response cache
	appCache, closeCache, err := cache.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize cache", "error", err)
		os.Exit(1)
	}
	defer closeCache()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled, "backend", cfg.CacheBackend)

	rec := metrics.New()

	if cfg.BasketballAPIKey == "" {
		logger.Warn("BASKETBALL_API_KEY is not set; source calls will be rejected upstream")
	}
	source := apisports.NewClient(cfg.BasketballAPIURL, cfg.BasketballAPIKey, cfg.BasketballAPIRPM, logger,
		apisports.WithObserver(rec.ObserveSourceCall))

	coll := collector.New(source, st, collector.Options{
		Targets:      cfg.Targets,
		LiveInterval: cfg.LiveInterval,
		Metrics:      rec,
	}, logger)

	if cfg.CollectorAutostart {
		if err := coll.Launch(ctx); err != nil {
			logger.Warn("Data collection autostart skipped", "error", err)
		}
		logger.Info("Data collection autostarted", "targets", len(cfg.Targets), "live_interval", cfg.LiveInterval)
	}

	// Start maintenance tickers (reachability probe, historical refresh)
	go maintenance.Start(ctx, maintenance.Tasks{
		Source:    source,
		Collector: coll,
		Metrics:   rec,
	}, maintenance.Config{
		ProbeInterval:   cfg.ReachabilityProbe,
		RefreshInterval: cfg.HistoricalRefresh,
	}, logger)

	// Create router
	router := api.NewRouter(handler.Deps{
		Source:      source,
		Collector:   coll,
		Store:       st,
		Cache:       appCache,
		Logger:      logger,
		BaseContext: ctx,
	}, rec, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute, // POST /collection/historical runs a full pass
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Hoops Collector API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")
	coll.Stop()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
