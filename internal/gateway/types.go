package gateway

import (
	"context"
	"time"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

//go:generate mockgen -destination=mocks/mock_backend.go -package=mocks github.com/mattjoyce/hookrelay/internal/gateway Backend,Enqueuer

// Backend is the part of the service contract the public tier calls.
type Backend interface {
	GetProvider(ctx context.Context, tenantSlug string, kind signature.Kind) (directory.Provider, error)
	GetProviderSecret(ctx context.Context, tenantID string, kind signature.Kind) ([]byte, error)
	CreateWebhookEvent(ctx context.Context, req eventstore.AdmitRequest) (eventstore.Event, bool, error)
}

// Enqueuer hands admitted events to the worker pool.
type Enqueuer interface {
	Enqueue(ctx context.Context, eventID, version string) error
}

// Config holds gateway settings.
type Config struct {
	Listen      string        `yaml:"listen"`
	AckDeadline time.Duration `yaml:"ack_deadline"`
	MaxBodySize int64         `yaml:"max_body_size"`
	// RetryAfter is the seconds advertised on 503 responses.
	RetryAfter int `yaml:"retry_after"`
}

// Default values
const (
	DefaultListen      = ":8080"
	DefaultAckDeadline = 3 * time.Second
	DefaultMaxBodySize = 1048576 // 1 MB
	DefaultRetryAfter  = 60
)

func (c Config) withDefaults() Config {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.AckDeadline <= 0 {
		c.AckDeadline = DefaultAckDeadline
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = DefaultMaxBodySize
	}
	if c.RetryAfter <= 0 {
		c.RetryAfter = DefaultRetryAfter
	}
	return c
}

// Error codes returned in ErrorResponse.
const (
	CodeInvalidSignature = "invalid_signature"
	CodeNotConfigured    = "provider_not_configured"
	CodePayloadTooLarge  = "payload_too_large"
	CodeUnavailable      = "temporarily_unavailable"
	StatusReceived       = "received"
)

// Response is the outcome of Receive: an HTTP status and a JSON body.
type Response struct {
	Status int
	Body   any
}

// ReceivedResponse acknowledges an admitted (or replayed) delivery.
type ReceivedResponse struct {
	Status  string `json:"status"`
	EventID string `json:"event_id"`
}

// ErrorResponse is the JSON body for every non-200 answer.
type ErrorResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after,omitempty"`
}
