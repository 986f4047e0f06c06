// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nhatlepham/inkwell/internal/content"
	"github.com/nhatlepham/inkwell/internal/engagement"
	"github.com/nhatlepham/inkwell/internal/feed"
	"github.com/nhatlepham/inkwell/internal/platform/config"
	"github.com/nhatlepham/inkwell/internal/platform/constants"
	"github.com/nhatlepham/inkwell/internal/platform/middleware"
	"github.com/nhatlepham/inkwell/internal/series"
	"github.com/nhatlepham/inkwell/internal/suggest"
	"github.com/nhatlepham/inkwell/internal/visitor"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. Always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. Returns 200 when the engagement store is healthy.
	Readiness http.HandlerFunc

	// Content serves post browsing and the taxonomy listings.
	Content *content.Handler

	// Series serves series listings and per-post series resolution.
	Series *series.Handler

	// Suggest serves related-reading suggestions.
	Suggest *suggest.Handler

	// Engagement serves the view, like, and reaction counters.
	Engagement *engagement.Handler

	// Visitor mints anonymous visitor identities.
	Visitor *visitor.Handler

	// Feed serves the RSS feed, sitemap, and robots.txt.
	Feed *feed.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.VisitorToken(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Syndication Surfaces
	// Raw documents for crawlers and feed readers, outside the JSON API.
	r.Get("/feed.xml", h.Feed.FeedXML)
	r.Get("/sitemap.xml", h.Feed.SitemapXML)
	r.Get("/robots.txt", h.Feed.RobotsTxt)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/posts", h.Content.Routes())
		api.Mount("/series", h.Series.Routes())
		api.Mount("/suggestions", h.Suggest.Routes())
		api.Mount("/views", h.Engagement.ViewRoutes())
		api.Mount("/likes", h.Engagement.LikeRoutes())
		api.Mount("/reactions", h.Engagement.ReactionRoutes())
		api.Mount("/visitors", h.Visitor.Routes())
		api.Mount("/", h.Content.TaxonomyRoutes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
