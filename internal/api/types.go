package api

import (
	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
)

// ErrorResponse is returned on errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthzResponse is returned by GET /healthz.
type HealthzResponse struct {
	Status          string `json:"status"`
	UptimeSeconds   int64  `json:"uptime_seconds"`
	QueueDepth      int    `json:"queue_depth"`
	FeedSubscribers int    `json:"feed_subscribers"`
}

// EventListResponse is returned by GET /v1/tenants/{tenant_id}/events.
// Payloads are omitted from listings.
type EventListResponse struct {
	Events []eventstore.Event `json:"events"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// EventDetailResponse is returned by GET /v1/events/{id}.
type EventDetailResponse struct {
	Event    eventstore.Event          `json:"event"`
	Attempts []eventstore.RetryAttempt `json:"attempts"`
}

// RotateSecretRequest is the body of PUT .../secret.
type RotateSecretRequest struct {
	Secret string `json:"secret"`
}

// SetActiveRequest is the body of PUT .../active.
type SetActiveRequest struct {
	Active *bool `json:"active"`
}

// ProviderResponse wraps a provider record. Secrets are never returned.
type ProviderResponse struct {
	Provider directory.Provider `json:"provider"`
}

// ProviderChange is the feed payload for provider.changed.
type ProviderChange struct {
	TenantID string `json:"tenant_id"`
	Provider string `json:"provider"`
	Change   string `json:"change"`
	Active   bool   `json:"active"`
	Actor    string `json:"actor"`
}
