// Package eventstore persists webhook events and their retry attempts. It
// owns admission idempotency and the event lifecycle: every status change
// is a conditional update that succeeds only from an allowed source state,
// so concurrent actors cannot both win a transition.
package eventstore

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mattjoyce/hookrelay/internal/signature"
)

var (
	ErrNotFound          = errors.New("eventstore: event not found")
	ErrInvalidTransition = errors.New("eventstore: invalid status transition")
	// ErrRetryCeiling means the event has used every retry.
	ErrRetryCeiling = errors.New("eventstore: retry ceiling reached")
)

// Status is a persisted lifecycle state. "received" exists only in memory
// before admission and is never stored.
type Status string

const (
	StatusRejected       Status = "rejected"
	StatusPending        Status = "pending"
	StatusProcessing     Status = "processing"
	StatusSuccess        Status = "success"
	StatusFailed         Status = "failed"
	StatusScheduledRetry Status = "scheduled_retry"
	StatusDeadLetter     Status = "dead_letter"
)

// Terminal reports whether no automatic transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusSuccess || s == StatusDeadLetter
}

// ParseStatus validates a status name.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusRejected, StatusPending, StatusProcessing, StatusSuccess,
		StatusFailed, StatusScheduledRetry, StatusDeadLetter:
		return st, nil
	}
	return "", fmt.Errorf("unknown event status %q", s)
}

// Outcome tracks a RetryAttempt from scheduling to result.
type Outcome string

const (
	OutcomeScheduled  Outcome = "scheduled"
	OutcomeDispatched Outcome = "dispatched"
	OutcomeSucceeded  Outcome = "succeeded"
	OutcomeFailed     Outcome = "failed"
)

// Event is one admitted (or rejected) delivery.
type Event struct {
	ID              string         `json:"id"`
	TenantID        string         `json:"tenant_id"`
	ProviderID      string         `json:"provider_id"`
	ProviderKind    signature.Kind `json:"provider_kind"`
	ExternalEventID string         `json:"external_event_id"`
	Payload         []byte         `json:"payload,omitempty"`
	PayloadDigest   string         `json:"payload_digest"`
	Signature       string         `json:"signature"`
	SignatureValid  bool           `json:"signature_valid"`
	Status          Status         `json:"status"`
	RetryCount      int            `json:"retry_count"`
	LastError       string         `json:"last_error,omitempty"`
	ReceivedAt      time.Time      `json:"received_at"`
	ProcessedAt     *time.Time     `json:"processed_at,omitempty"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Version identifies the event's current state. Queues use it to collapse
// repeated publishes of an unchanged event.
func (e Event) Version() string {
	return strconv.FormatInt(e.UpdatedAt.UnixNano(), 10)
}

// RetryAttempt is one scheduled re-execution of an event.
type RetryAttempt struct {
	ID            string     `json:"id"`
	EventID       string     `json:"event_id"`
	AttemptNumber int        `json:"attempt_number"`
	ScheduledFor  time.Time  `json:"scheduled_for"`
	ErrorDetail   string     `json:"error_detail,omitempty"`
	Outcome       Outcome    `json:"outcome"`
	CreatedAt     time.Time  `json:"created_at"`
	DispatchedAt  *time.Time `json:"dispatched_at,omitempty"`
}

// AdmitRequest carries a delivery that passed (or failed) verification.
type AdmitRequest struct {
	TenantID        string
	ProviderID      string
	ProviderKind    signature.Kind
	ExternalEventID string
	Payload         []byte
	Signature       string
	SignatureValid  bool
}

// Filter narrows List. TenantID is mandatory.
type Filter struct {
	TenantID string
	Status   Status
	Limit    int
	Offset   int
}
