package api

import (
	"net/http"

	"github.com/mattjoyce/hookrelay/internal/auth"
)

// route is one authenticated endpoint. The same table drives the router
// and the OpenAPI document.
type route struct {
	method  string
	pattern string
	summary string
	scopes  []string
	handler http.HandlerFunc
	// body names the request schema, if any.
	body string
}

func (s *Server) routes() []route {
	read := []string{auth.ScopeRead, auth.ScopeWrite}
	write := []string{auth.ScopeWrite}
	return []route{
		{http.MethodGet, "/v1/tenants/{tenant_id}/events", "List a tenant's events", read, s.handleListEvents, ""},
		{http.MethodGet, "/v1/events/{id}", "Get an event with its retry attempts", read, s.handleGetEvent, ""},
		{http.MethodPost, "/v1/events/{id}/retry", "Requeue a dead-lettered event", write, s.handleRetryEvent, ""},
		{http.MethodPut, "/v1/providers/{tenant_slug}/{kind}/secret", "Rotate a provider signing secret", write, s.handleRotateSecret, "RotateSecretRequest"},
		{http.MethodPut, "/v1/providers/{tenant_slug}/{kind}/active", "Activate or deactivate a provider", write, s.handleSetActive, "SetActiveRequest"},
		{http.MethodGet, "/v1/feed", "Stream lifecycle events (SSE)", read, s.handleFeed, ""},
	}
}
