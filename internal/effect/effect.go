// Package effect holds the business effects the worker pool runs for an
// admitted event.
package effect

import (
	"context"
	"log/slog"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
)

// Effect performs the tenant-side work for one event. A non-nil error is a
// processing failure and drives the retry policy.
type Effect interface {
	Apply(ctx context.Context, ev eventstore.Event, p directory.Provider) error
}

// Func adapts a plain function to Effect.
type Func func(ctx context.Context, ev eventstore.Event, p directory.Provider) error

func (f Func) Apply(ctx context.Context, ev eventstore.Event, p directory.Provider) error {
	return f(ctx, ev, p)
}

// LogOnly records the event and succeeds.
type LogOnly struct {
	Logger *slog.Logger
}

func (l LogOnly) Apply(_ context.Context, ev eventstore.Event, p directory.Provider) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("event delivered",
		"event_id", ev.ID,
		"tenant_id", ev.TenantID,
		"provider", p.Kind,
		"external_event_id", ev.ExternalEventID,
		"bytes", len(ev.Payload),
	)
	return nil
}

// Router forwards events for providers with a forward URL and falls back
// to Default for the rest.
type Router struct {
	Forward Effect
	Default Effect
}

func (r Router) Apply(ctx context.Context, ev eventstore.Event, p directory.Provider) error {
	if p.ForwardURL != "" && r.Forward != nil {
		return r.Forward.Apply(ctx, ev, p)
	}
	if r.Default == nil {
		return LogOnly{}.Apply(ctx, ev, p)
	}
	return r.Default.Apply(ctx, ev, p)
}
