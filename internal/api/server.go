// Package api is the operator HTTP surface: event inspection, manual
// requeue of dead letters, provider secret rotation and activation, and
// the SSE lifecycle feed.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mattjoyce/hookrelay/internal/auth"
	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/events"
	"github.com/mattjoyce/hookrelay/internal/metrics"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

// Store is the slice of the service contract the API reads and writes.
type Store interface {
	GetProvider(ctx context.Context, tenantSlug string, kind signature.Kind) (directory.Provider, error)
	RotateProviderSecret(ctx context.Context, tenantID string, kind signature.Kind, secret []byte, actor string) (directory.Provider, error)
	SetProviderActive(ctx context.Context, tenantID string, kind signature.Kind, active bool, actor string) (directory.Provider, error)
	GetWebhookEvent(ctx context.Context, id string) (eventstore.Event, error)
	ListWebhookEvents(ctx context.Context, f eventstore.Filter) ([]eventstore.Event, error)
	ListRetryAttempts(ctx context.Context, eventID string) ([]eventstore.RetryAttempt, error)
}

// Requeuer sends a dead-lettered event back through processing.
type Requeuer interface {
	Requeue(ctx context.Context, id, actor string) (eventstore.Event, error)
}

// DepthReporter reports the work queue backlog. Optional.
type DepthReporter interface {
	Depth(ctx context.Context) (int, error)
}

// Config holds API server configuration
type Config struct {
	Listen string
	// APIKey is the single admin bearer token (scope "*").
	APIKey string
	Tokens []auth.TokenConfig
}

// Server represents the operator HTTP API server
type Server struct {
	config    Config
	store     Store
	requeuer  Requeuer
	depth     DepthReporter
	feed      *events.Hub
	logger    *slog.Logger
	server    *http.Server
	startedAt time.Time
}

// New creates a new API server instance. depth may be nil.
func New(config Config, store Store, requeuer Requeuer, depth DepthReporter, feed *events.Hub, logger *slog.Logger) *Server {
	return &Server{
		config:    config,
		store:     store,
		requeuer:  requeuer,
		depth:     depth,
		feed:      feed,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// Start starts the HTTP server (blocking)
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.config.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// WriteTimeout stays zero: the feed is a long-lived stream.
		IdleTimeout: 60 * time.Second,
	}

	s.logger.Info("API server starting", "listen", s.config.Listen)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("API server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}

// Handler configures the HTTP router
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(metrics.Instrument)
	r.Use(middleware.Recoverer)

	// Unauthenticated ops endpoints.
	r.Get("/healthz", s.handleHealthz)
	r.Get("/openapi.json", s.handleOpenAPI)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		for _, rt := range s.routes() {
			r.With(s.requireScopes(rt.scopes...)).Method(rt.method, rt.pattern, rt.handler)
		}
	})

	return r
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
			"actor", auth.Actor(r.Context()),
		)
	})
}
