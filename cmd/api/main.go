// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

// Command api is the entry point for the Inkwell HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Load the content tree into the in-memory repository.
//  4. Connect the configured engagement backend (Redis or PostgreSQL).
//  5. Run database migrations when Postgres is selected (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nhatlepham/inkwell/internal/api"
	"github.com/nhatlepham/inkwell/internal/content"
	"github.com/nhatlepham/inkwell/internal/engagement"
	"github.com/nhatlepham/inkwell/internal/feed"
	"github.com/nhatlepham/inkwell/internal/platform/config"
	"github.com/nhatlepham/inkwell/internal/platform/constants"
	"github.com/nhatlepham/inkwell/internal/platform/migration"
	pgstore "github.com/nhatlepham/inkwell/internal/platform/postgres"
	redisstore "github.com/nhatlepham/inkwell/internal/platform/redis"
	"github.com/nhatlepham/inkwell/internal/platform/sec"
	"github.com/nhatlepham/inkwell/internal/series"
	"github.com/nhatlepham/inkwell/internal/suggest"
	"github.com/nhatlepham/inkwell/internal/visitor"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Inkwell] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("engagement_backend", cfg.EngagementBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Content Repository ─────────────────────────────────────────────
	contentRepo, err := content.NewFSRepository(cfg.ContentDir, log)
	must(log, err, "load content tree")

	// ── 4. Engagement Backend ─────────────────────────────────────────────
	var engagementStore engagement.Repository
	health := api.HealthDependencies{}

	switch cfg.EngagementBackend {
	case config.BackendPostgres:
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		engagementStore = engagement.NewPostgresRepository(pool)
		health.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}

	default:
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		engagementStore = engagement.NewRedisRepository(rdb)
		health.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}

	// ── 5. Visitor Token Service ──────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.SessionSecret, constants.VisitorIssuer)
	must(log, err, "initialize token service")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	contentService := content.NewService(contentRepo, log)
	contentHandler := content.NewHandler(contentService)

	seriesResolver := series.NewResolver(contentRepo, log)
	seriesService := series.NewService(contentRepo, seriesResolver, log)
	seriesHandler := series.NewHandler(seriesService)

	suggestService := suggest.NewService(contentRepo, log)
	suggestHandler := suggest.NewHandler(suggestService)

	engagementService := engagement.NewService(engagementStore, contentRepo, log)
	engagementHandler := engagement.NewHandler(engagementService)

	visitorService := visitor.NewService(tokenService, log)
	visitorHandler := visitor.NewHandler(visitorService)

	feedService := feed.NewService(contentRepo, contentService, feed.Site{
		Name:        cfg.SiteName,
		URL:         cfg.SiteURL,
		Description: cfg.SiteDescription,
	}, log)
	feedHandler := feed.NewHandler(feedService)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Content:    contentHandler,
		Series:     seriesHandler,
		Suggest:    suggestHandler,
		Engagement: engagementHandler,
		Visitor:    visitorHandler,
		Feed:       feedHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokenService, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
