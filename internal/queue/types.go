// Package queue hands admitted events from the ingestion path to the
// worker pool. Messages carry only an event id; the event store remains
// the source of truth, so a lost or duplicated message never loses or
// double-runs an event.
package queue

import (
	"context"
)

// Queue is a durable at-least-once work queue of event ids.
type Queue interface {
	// Enqueue makes eventID deliverable. version names the event state
	// being queued; publishing the same (eventID, version) twice yields at
	// most one pending message.
	Enqueue(ctx context.Context, eventID, version string) error
	// Receive claims the next message, returning (nil, nil) when none is
	// available right now.
	Receive(ctx context.Context) (Delivery, error)
}

// Delivery is a claimed message. Exactly one of Ack or Release should be
// called; an unsettled delivery becomes visible again after the backend's
// visibility timeout.
type Delivery interface {
	EventID() string
	// Attempt counts how many times this message has been handed out.
	Attempt() int
	Ack(ctx context.Context) error
	Release(ctx context.Context) error
}

// Backend names a queue implementation.
type Backend string

const (
	BackendSQL  Backend = "sql"
	BackendNATS Backend = "nats"
)
