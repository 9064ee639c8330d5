package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mattjoyce/hookrelay/internal/auth"
	"github.com/mattjoyce/hookrelay/internal/contract"
	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/events"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// handleHealthz handles GET /healthz (no auth).
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	resp := HealthzResponse{
		Status:          "ok",
		UptimeSeconds:   int64(time.Since(s.startedAt).Seconds()),
		FeedSubscribers: s.feed.Subscribers(),
	}
	if s.depth != nil {
		depth, err := s.depth.Depth(r.Context())
		if err != nil {
			s.logger.Error("failed to compute queue depth", "error", err)
			s.writeError(w, http.StatusInternalServerError, "failed to compute queue depth")
			return
		}
		resp.QueueDepth = depth
	}
	respondJSON(w, http.StatusOK, resp)
}

// handleListEvents handles GET /v1/tenants/{tenant_id}/events.
func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	f := eventstore.Filter{TenantID: chi.URLParam(r, "tenant_id"), Limit: defaultListLimit}

	q := r.URL.Query()
	if v := q.Get("status"); v != "" {
		st, err := eventstore.ParseStatus(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Status = st
	}
	var err error
	if f.Limit, err = intParam(q.Get("limit"), defaultListLimit); err != nil || f.Limit < 1 || f.Limit > maxListLimit {
		s.writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
		return
	}
	if f.Offset, err = intParam(q.Get("offset"), 0); err != nil || f.Offset < 0 {
		s.writeError(w, http.StatusBadRequest, "offset must be a non-negative integer")
		return
	}

	list, err := s.store.ListWebhookEvents(r.Context(), f)
	if err != nil {
		s.storeError(w, "failed to list events", err)
		return
	}
	for i := range list {
		list[i].Payload = nil
	}
	if list == nil {
		list = []eventstore.Event{}
	}
	respondJSON(w, http.StatusOK, EventListResponse{Events: list, Limit: f.Limit, Offset: f.Offset})
}

// handleGetEvent handles GET /v1/events/{id}.
func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ev, err := s.store.GetWebhookEvent(r.Context(), id)
	if err != nil {
		s.storeError(w, "failed to retrieve event", err)
		return
	}
	attempts, err := s.store.ListRetryAttempts(r.Context(), id)
	if err != nil {
		s.storeError(w, "failed to retrieve retry attempts", err)
		return
	}
	if attempts == nil {
		attempts = []eventstore.RetryAttempt{}
	}
	respondJSON(w, http.StatusOK, EventDetailResponse{Event: ev, Attempts: attempts})
}

// handleRetryEvent handles POST /v1/events/{id}/retry. Only dead-lettered
// events can be requeued; anything else is a 409.
func (s *Server) handleRetryEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := s.requeuer.Requeue(r.Context(), chi.URLParam(r, "id"), auth.Actor(r.Context()))
	if err != nil {
		s.storeError(w, "failed to requeue event", err)
		return
	}
	ev.Payload = nil
	respondJSON(w, http.StatusAccepted, ev)
}

// handleRotateSecret handles PUT /v1/providers/{tenant_slug}/{kind}/secret.
func (s *Server) handleRotateSecret(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookupProvider(w, r)
	if !ok {
		return
	}
	var req RotateSecretRequest
	if err := decodeBody(w, r, &req); err != nil || req.Secret == "" {
		s.writeError(w, http.StatusBadRequest, "body must be {\"secret\": \"...\"}")
		return
	}

	actor := auth.Actor(r.Context())
	updated, err := s.store.RotateProviderSecret(r.Context(), p.TenantID, p.Kind, []byte(req.Secret), actor)
	if err != nil {
		s.storeError(w, "failed to rotate secret", err)
		return
	}
	s.logger.Info("provider secret rotated", "tenant_id", p.TenantID, "provider", p.Kind, "actor", actor)
	s.feed.Publish(events.TypeProviderChange, ProviderChange{
		TenantID: updated.TenantID,
		Provider: string(updated.Kind),
		Change:   "secret_rotated",
		Active:   updated.Active,
		Actor:    actor,
	})
	respondJSON(w, http.StatusOK, ProviderResponse{Provider: updated})
}

// handleSetActive handles PUT /v1/providers/{tenant_slug}/{kind}/active.
func (s *Server) handleSetActive(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookupProvider(w, r)
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := decodeBody(w, r, &req); err != nil || req.Active == nil {
		s.writeError(w, http.StatusBadRequest, "body must be {\"active\": true|false}")
		return
	}

	actor := auth.Actor(r.Context())
	updated, err := s.store.SetProviderActive(r.Context(), p.TenantID, p.Kind, *req.Active, actor)
	if err != nil {
		s.storeError(w, "failed to update provider", err)
		return
	}
	change := "deactivated"
	if updated.Active {
		change = "activated"
	}
	s.logger.Info("provider "+change, "tenant_id", p.TenantID, "provider", p.Kind, "actor", actor)
	s.feed.Publish(events.TypeProviderChange, ProviderChange{
		TenantID: updated.TenantID,
		Provider: string(updated.Kind),
		Change:   change,
		Active:   updated.Active,
		Actor:    actor,
	})
	respondJSON(w, http.StatusOK, ProviderResponse{Provider: updated})
}

func (s *Server) lookupProvider(w http.ResponseWriter, r *http.Request) (directory.Provider, bool) {
	kind, err := signature.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return directory.Provider{}, false
	}
	p, err := s.store.GetProvider(r.Context(), chi.URLParam(r, "tenant_slug"), kind)
	if err != nil {
		s.storeError(w, "failed to look up provider", err)
		return directory.Provider{}, false
	}
	return p, true
}

// storeError maps contract errors onto HTTP statuses.
func (s *Server) storeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, eventstore.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "event not found")
	case errors.Is(err, directory.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "provider not found")
	case errors.Is(err, eventstore.ErrInvalidTransition):
		s.writeError(w, http.StatusConflict, "event is not in a state that allows this")
	case errors.Is(err, contract.ErrUnavailable):
		s.writeError(w, http.StatusServiceUnavailable, "store unavailable")
	default:
		s.logger.Error(msg, "error", err)
		s.writeError(w, http.StatusInternalServerError, msg)
	}
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// respondJSON is a helper to write JSON responses
func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response
func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}
