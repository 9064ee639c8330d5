// Package gateway is the public ingestion tier: it authenticates inbound
// webhooks, records them exactly once, and acknowledges the provider
// within a fixed deadline without waiting on business processing.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/events"
	"github.com/mattjoyce/hookrelay/internal/metrics"
	"github.com/mattjoyce/hookrelay/internal/secrets"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

// Gateway implements Receive.
type Gateway struct {
	cfg     Config
	backend Backend
	queue   Enqueuer
	feed    events.Publisher
	logger  *slog.Logger
}

func New(cfg Config, backend Backend, q Enqueuer, feed events.Publisher, logger *slog.Logger) *Gateway {
	if feed == nil {
		feed = (*events.Hub)(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		cfg:     cfg.withDefaults(),
		backend: backend,
		queue:   q,
		feed:    feed,
		logger:  logger.With("component", "gateway"),
	}
}

// Receive handles one delivery. It always answers within the ack deadline:
// if the backend stalls, the caller gets 503 and the provider's own retry
// resolves the outcome through idempotent admission.
func (g *Gateway) Receive(ctx context.Context, tenantSlug, kind string, rawBody []byte, headers http.Header) Response {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, g.cfg.AckDeadline)
	defer cancel()

	out := make(chan Response, 1)
	go func() { out <- g.receive(ctx, tenantSlug, kind, rawBody, headers) }()

	var resp Response
	select {
	case resp = <-out:
	case <-ctx.Done():
		g.logger.Warn("ack deadline exceeded", "tenant", tenantSlug, "provider", kind, "deadline", g.cfg.AckDeadline)
		resp = g.unavailable(kind)
	}
	metrics.IngressDuration.WithLabelValues(kindLabel(kind)).Observe(time.Since(start).Seconds())
	return resp
}

func (g *Gateway) receive(ctx context.Context, tenantSlug, kindName string, rawBody []byte, headers http.Header) Response {
	kind, err := signature.ParseKind(kindName)
	if err != nil {
		return g.notConfigured(kindName, tenantSlug, "unknown provider kind")
	}

	provider, err := g.backend.GetProvider(ctx, tenantSlug, kind)
	switch {
	case errors.Is(err, directory.ErrNotFound):
		return g.notConfigured(kindName, tenantSlug, "provider not found")
	case err != nil:
		g.logger.Error("provider lookup failed", "tenant", tenantSlug, "provider", kind, "error", err)
		return g.unavailable(kindName)
	case !provider.Accepting():
		return g.notConfigured(kindName, tenantSlug, "provider inactive")
	}
	logger := g.logger.With("tenant_id", provider.TenantID, "provider", kind)

	secret, err := g.backend.GetProviderSecret(ctx, provider.TenantID, kind)
	switch {
	case errors.Is(err, secrets.ErrNotFound):
		return g.notConfigured(kindName, tenantSlug, "secret not configured")
	case err != nil:
		logger.Error("secret fetch failed", "error", err)
		return g.unavailable(kindName)
	}

	sigHeader := headers.Get(kind.Header())
	req := eventstore.AdmitRequest{
		TenantID:        provider.TenantID,
		ProviderID:      provider.ID,
		ProviderKind:    kind,
		ExternalEventID: signature.ExtractEventID(kind, headers, rawBody),
		Payload:         rawBody,
		Signature:       sigHeader,
	}

	if !signature.Verify(rawBody, sigHeader, secret, kind) {
		req.SignatureValid = false
		rejected, _, err := g.backend.CreateWebhookEvent(ctx, req)
		if err != nil {
			logger.Error("recording rejected delivery failed", "external_event_id", req.ExternalEventID, "error", err)
		} else {
			g.publish(events.TypeRejected, rejected)
		}
		logger.Warn("webhook signature verification failed",
			"external_event_id", req.ExternalEventID,
			"header_present", sigHeader != "",
		)
		metrics.WebhooksReceived.WithLabelValues(string(kind), "rejected").Inc()
		return Response{Status: http.StatusUnauthorized, Body: ErrorResponse{Error: CodeInvalidSignature}}
	}

	req.SignatureValid = true
	ev, duplicate, err := g.backend.CreateWebhookEvent(ctx, req)
	if err != nil {
		logger.Error("admission failed", "external_event_id", req.ExternalEventID, "error", err)
		return g.unavailable(kindName)
	}
	logger = logger.With("event_id", ev.ID, "external_event_id", ev.ExternalEventID)

	if duplicate {
		logger.Info("duplicate delivery acknowledged", "status", ev.Status)
		metrics.WebhooksReceived.WithLabelValues(string(kind), "duplicate").Inc()
		g.publish(events.TypeDuplicate, ev)
		return received(ev.ID)
	}

	if err := g.queue.Enqueue(ctx, ev.ID, ev.Version()); err != nil {
		// durable in pending; the sweeper re-enqueues it
		logger.Warn("enqueue failed, leaving event for recovery", "error", err)
	}
	logger.Info("webhook admitted")
	metrics.WebhooksReceived.WithLabelValues(string(kind), "accepted").Inc()
	g.publish(events.TypeReceived, ev)
	return received(ev.ID)
}

// unknownKind labels metrics for path segments that are not a supported
// provider kind, keeping series cardinality fixed.
const unknownKind = "unknown"

func kindLabel(raw string) string {
	kind, err := signature.ParseKind(raw)
	if err != nil {
		return unknownKind
	}
	return string(kind)
}

func received(id string) Response {
	return Response{Status: http.StatusOK, Body: ReceivedResponse{Status: StatusReceived, EventID: id}}
}

func (g *Gateway) notConfigured(kind, tenantSlug, reason string) Response {
	g.logger.Info("webhook for unconfigured provider", "tenant", tenantSlug, "provider", kind, "reason", reason)
	metrics.WebhooksReceived.WithLabelValues(kindLabel(kind), "not_found").Inc()
	return Response{Status: http.StatusNotFound, Body: ErrorResponse{Error: CodeNotConfigured}}
}

func (g *Gateway) unavailable(kind string) Response {
	metrics.WebhooksReceived.WithLabelValues(kindLabel(kind), "unavailable").Inc()
	return Response{
		Status: http.StatusServiceUnavailable,
		Body:   ErrorResponse{Error: CodeUnavailable, RetryAfter: g.cfg.RetryAfter},
	}
}

func (g *Gateway) publish(typ string, ev eventstore.Event) {
	g.feed.Publish(typ, events.Lifecycle{
		EventID:  ev.ID,
		TenantID: ev.TenantID,
		Provider: string(ev.ProviderKind),
		Status:   string(ev.Status),
	})
}
