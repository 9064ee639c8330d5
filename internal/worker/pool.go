// Package worker pulls admitted events off the durable queue and runs the
// business effect for each one. The event store's conditional
// pending/scheduled_retry -> processing update is the only mutual
// exclusion between workers.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/effect"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/events"
	"github.com/mattjoyce/hookrelay/internal/log"
	"github.com/mattjoyce/hookrelay/internal/metrics"
	"github.com/mattjoyce/hookrelay/internal/queue"
	"github.com/mattjoyce/hookrelay/internal/retry"
)

// Store is the slice of the service contract workers need.
type Store interface {
	GetWebhookEvent(ctx context.Context, id string) (eventstore.Event, error)
	UpdateWebhookEventStatus(ctx context.Context, id string, to eventstore.Status, detail string) (eventstore.Event, error)
	GetProviderByID(ctx context.Context, id string) (directory.Provider, error)
}

// Retrier schedules the next attempt for a failed event.
type Retrier interface {
	ScheduleRetry(ctx context.Context, ev eventstore.Event) (*eventstore.RetryAttempt, error)
}

// Config tunes the pool. Zero values take defaults.
type Config struct {
	Concurrency   int
	Poll          time.Duration
	EffectTimeout time.Duration
}

// Pool runs Concurrency workers against one queue.
type Pool struct {
	cfg     Config
	store   Store
	queue   queue.Queue
	effect  effect.Effect
	retrier Retrier
	feed    events.Publisher
	logger  *slog.Logger
}

func New(cfg Config, store Store, q queue.Queue, eff effect.Effect, r Retrier, feed events.Publisher, logger *slog.Logger) *Pool {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.Poll <= 0 {
		cfg.Poll = time.Second
	}
	if cfg.EffectTimeout <= 0 {
		cfg.EffectTimeout = 30 * time.Second
	}
	if feed == nil {
		feed = (*events.Hub)(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		cfg:     cfg,
		store:   store,
		queue:   q,
		effect:  eff,
		retrier: r,
		feed:    feed,
		logger:  logger.With("component", "worker"),
	}
}

// Start blocks running the workers until ctx is cancelled.
func (p *Pool) Start(ctx context.Context) error {
	p.logger.Info("worker pool started", "concurrency", p.cfg.Concurrency)
	defer p.logger.Info("worker pool stopped")

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < p.cfg.Concurrency; i++ {
		g.Go(func() error {
			p.loop(gctx, i)
			return nil
		})
	}
	return g.Wait()
}

func (p *Pool) loop(ctx context.Context, n int) {
	logger := p.logger.With("worker", n)
	for {
		if ctx.Err() != nil {
			return
		}
		d, err := p.queue.Receive(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("receive failed", "error", err)
			}
			p.idle(ctx)
			continue
		}
		if d == nil {
			p.idle(ctx)
			continue
		}
		p.handle(ctx, d)
	}
}

func (p *Pool) idle(ctx context.Context) {
	t := time.NewTimer(p.cfg.Poll)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// handle settles one delivery. In-flight work is detached from shutdown so
// a draining pool finishes what it claimed.
func (p *Pool) handle(ctx context.Context, d queue.Delivery) {
	work := context.WithoutCancel(ctx)
	logger := log.WithEvent(p.logger, d.EventID())

	ev, err := p.store.GetWebhookEvent(work, d.EventID())
	if errors.Is(err, eventstore.ErrNotFound) {
		logger.Warn("queued event does not exist, dropping")
		p.settle(work, d, true)
		return
	}
	if err != nil {
		logger.Error("load event failed", "error", err)
		p.settle(work, d, false)
		return
	}

	if err := p.Process(work, ev); err != nil {
		logger.Error("process failed", "attempt", d.Attempt(), "error", err)
		p.settle(work, d, false)
		return
	}
	p.settle(work, d, true)
}

func (p *Pool) settle(ctx context.Context, d queue.Delivery, ack bool) {
	var err error
	if ack {
		err = d.Ack(ctx)
	} else {
		err = d.Release(ctx)
	}
	if err != nil {
		p.logger.Warn("settle delivery failed", "event_id", d.EventID(), "ack", ack, "error", err)
	}
}

// Process runs one event through processing. It returns an error only for
// infrastructure failures, in which case the delivery should be retried;
// effect failures are recorded on the event and handed to the retrier.
func (p *Pool) Process(ctx context.Context, ev eventstore.Event) error {
	logger := log.WithTenant(log.WithEvent(p.logger, ev.ID), ev.TenantID, string(ev.ProviderKind))

	claimed, err := p.store.UpdateWebhookEventStatus(ctx, ev.ID, eventstore.StatusProcessing, "")
	switch {
	case errors.Is(err, eventstore.ErrInvalidTransition), errors.Is(err, eventstore.ErrNotFound):
		logger.Debug("event not claimable, skipping", "reason", err)
		metrics.Processed.WithLabelValues("skipped").Inc()
		return nil
	case err != nil:
		return fmt.Errorf("claim event: %w", err)
	}
	p.publish(events.TypeProcessing, claimed, "")

	start := time.Now()
	effErr := p.run(ctx, claimed)
	if effErr == nil {
		done, err := p.store.UpdateWebhookEventStatus(ctx, ev.ID, eventstore.StatusSuccess, "")
		if err != nil {
			return fmt.Errorf("mark success: %w", err)
		}
		metrics.Processed.WithLabelValues("success").Inc()
		metrics.ObserveSince(metrics.ProcessingDuration.WithLabelValues("success"), start)
		logger.Info("event processed", "duration", time.Since(start))
		p.publish(events.TypeSucceeded, done, "")
		return nil
	}

	metrics.Processed.WithLabelValues("failed").Inc()
	metrics.ObserveSince(metrics.ProcessingDuration.WithLabelValues("failed"), start)
	logger.Warn("effect failed", "retry_count", claimed.RetryCount, "error", effErr)

	failed, err := p.store.UpdateWebhookEventStatus(ctx, ev.ID, eventstore.StatusFailed, effErr.Error())
	if err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	p.publish(events.TypeFailed, failed, effErr.Error())

	if _, err := p.retrier.ScheduleRetry(ctx, failed); err != nil && !errors.Is(err, retry.ErrDeadLettered) {
		// the sweeper reschedules orphaned failures
		logger.Error("schedule retry failed", "error", err)
	}
	return nil
}

// run invokes the effect under the effect timeout. Panics become errors.
func (p *Pool) run(ctx context.Context, ev eventstore.Event) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.EffectTimeout)
	defer cancel()

	provider, err := p.store.GetProviderByID(ctx, ev.ProviderID)
	if err != nil {
		return fmt.Errorf("load provider: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("effect panicked", "event_id", ev.ID, "panic", r, "stack", string(debug.Stack()))
				done <- fmt.Errorf("effect panic: %v", r)
			}
		}()
		done <- p.effect.Apply(ctx, ev, provider)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("effect timed out after %s: %w", p.cfg.EffectTimeout, ctx.Err())
	}
}

func (p *Pool) publish(typ string, ev eventstore.Event, detail string) {
	p.feed.Publish(typ, events.Lifecycle{
		EventID:    ev.ID,
		TenantID:   ev.TenantID,
		Provider:   string(ev.ProviderKind),
		Status:     string(ev.Status),
		RetryCount: ev.RetryCount,
		Detail:     detail,
	})
}
