package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mattjoyce/hookrelay/internal/metrics"
)

// Server exposes a Gateway over HTTP.
type Server struct {
	gw     *Gateway
	logger *slog.Logger
	server *http.Server
}

func NewServer(gw *Gateway) *Server {
	return &Server{gw: gw, logger: gw.logger}
}

// Start serves until ctx is cancelled (blocking).
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.gw.cfg.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.logger.Info("gateway starting", "listen", s.gw.cfg.Listen, "ack_deadline", s.gw.cfg.AckDeadline)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("gateway shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("gateway shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("gateway server error: %w", err)
	}
}

// Handler builds the public router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Post("/webhooks/{tenant_slug}/{provider_kind}", s.handleWebhook)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return r
}

// loggingMiddleware logs requests without their bodies.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Debug("gateway request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
		)
	})
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "tenant_slug")
	kind := chi.URLParam(r, "provider_kind")

	limit := s.gw.cfg.MaxBodySize
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		s.respond(w, s.gw.unavailable(kind))
		return
	}
	if int64(len(body)) > limit {
		metrics.WebhooksReceived.WithLabelValues(kindLabel(kind), "too_large").Inc()
		s.respondJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: CodePayloadTooLarge})
		return
	}

	s.respond(w, s.gw.Receive(r.Context(), slug, kind, body, r.Header))
}

func (s *Server) respond(w http.ResponseWriter, resp Response) {
	if resp.Status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", strconv.Itoa(s.gw.cfg.RetryAfter))
	}
	s.respondJSON(w, resp.Status, resp.Body)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
