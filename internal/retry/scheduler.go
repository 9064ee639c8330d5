// Package retry owns the backoff policy and the periodic sweep that turns
// due retry attempts back into queued work and recovers events stranded by
// crashes.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/events"
	"github.com/mattjoyce/hookrelay/internal/metrics"
)

// ErrDeadLettered is returned by ScheduleRetry when the event had no
// retries left and was moved to dead_letter instead.
var ErrDeadLettered = errors.New("retry: event dead-lettered")

// DefaultDelays is the backoff ladder indexed by retry count.
var DefaultDelays = []time.Duration{time.Minute, 5 * time.Minute, 15 * time.Minute}

// Store is the slice of the service contract the scheduler drives.
type Store interface {
	UpdateWebhookEventStatus(ctx context.Context, id string, to eventstore.Status, detail string) (eventstore.Event, error)
	CreateRetryAttempt(ctx context.Context, eventID string, scheduledFor time.Time, detail string) (eventstore.RetryAttempt, error)
	ListDueRetries(ctx context.Context, now time.Time, limit int) ([]eventstore.RetryAttempt, error)
	MarkRetryDispatched(ctx context.Context, attemptID string) error
	ListStaleEvents(ctx context.Context, status eventstore.Status, olderThan time.Time, limit int) ([]eventstore.Event, error)
	RequeueDeadLetter(ctx context.Context, id, actor string) (eventstore.Event, error)
}

// Enqueuer hands an event id to the worker queue.
type Enqueuer interface {
	Enqueue(ctx context.Context, eventID, version string) error
}

type depther interface {
	Depth(ctx context.Context) (int, error)
}

// Config tunes the scheduler. Zero values take defaults.
type Config struct {
	Delays []time.Duration
	// Schedule is a robfig/cron spec for the sweep.
	Schedule string
	// Lease is how long an event may sit in processing before the sweep
	// treats its worker as dead.
	Lease time.Duration
	// Stranded is how long pending or dispatched work may wait before it
	// is enqueued again.
	Stranded time.Duration
	Batch    int
}

func (c Config) withDefaults() Config {
	if len(c.Delays) == 0 {
		c.Delays = DefaultDelays
	}
	if c.Schedule == "" {
		c.Schedule = "@every 10s"
	}
	if c.Lease <= 0 {
		c.Lease = 5 * time.Minute
	}
	if c.Stranded <= 0 {
		c.Stranded = time.Minute
	}
	if c.Batch <= 0 {
		c.Batch = 100
	}
	return c
}

// Scheduler computes retry times and runs the recovery sweep.
type Scheduler struct {
	cfg    Config
	store  Store
	queue  Enqueuer
	feed   events.Publisher
	logger *slog.Logger
	now    func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

// New builds a Scheduler. feed may be nil.
func New(cfg Config, store Store, q Enqueuer, feed events.Publisher, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if feed == nil {
		feed = (*events.Hub)(nil)
	}
	return &Scheduler{
		cfg:    cfg.withDefaults(),
		store:  store,
		queue:  q,
		feed:   feed,
		logger: logger.With("component", "retry"),
		now:    time.Now,
	}
}

// Ceiling is the number of retries an event gets before dead-lettering.
func (s *Scheduler) Ceiling() int { return len(s.cfg.Delays) }

// Delay returns the wait before the retry that follows retryCount prior
// retries. Counts past the ladder reuse its last step.
func (s *Scheduler) Delay(retryCount int) time.Duration {
	switch {
	case retryCount < 0:
		retryCount = 0
	case retryCount >= len(s.cfg.Delays):
		retryCount = len(s.cfg.Delays) - 1
	}
	return s.cfg.Delays[retryCount]
}

// ScheduleRetry records the next attempt for a failed event, or moves it to
// dead_letter once its retries are spent.
func (s *Scheduler) ScheduleRetry(ctx context.Context, ev eventstore.Event) (*eventstore.RetryAttempt, error) {
	if ev.RetryCount >= s.Ceiling() {
		return nil, s.deadLetter(ctx, ev)
	}
	at := s.now().Add(s.Delay(ev.RetryCount))
	attempt, err := s.store.CreateRetryAttempt(ctx, ev.ID, at, ev.LastError)
	if errors.Is(err, eventstore.ErrRetryCeiling) {
		return nil, s.deadLetter(ctx, ev)
	}
	if err != nil {
		return nil, fmt.Errorf("schedule retry for %s: %w", ev.ID, err)
	}

	metrics.RetriesScheduled.Inc()
	s.logger.Info("retry scheduled",
		"event_id", ev.ID,
		"attempt", attempt.AttemptNumber,
		"scheduled_for", attempt.ScheduledFor,
	)
	s.feed.Publish(events.TypeRetryScheduled, events.Lifecycle{
		EventID:    ev.ID,
		TenantID:   ev.TenantID,
		Provider:   string(ev.ProviderKind),
		Status:     string(eventstore.StatusScheduledRetry),
		RetryCount: ev.RetryCount + 1,
		Detail:     attempt.ScheduledFor.UTC().Format(time.RFC3339),
	})
	return &attempt, nil
}

func (s *Scheduler) deadLetter(ctx context.Context, ev eventstore.Event) error {
	detail := ev.LastError
	if detail == "" {
		detail = "retries exhausted"
	}
	dead, err := s.store.UpdateWebhookEventStatus(ctx, ev.ID, eventstore.StatusDeadLetter, detail)
	if err != nil {
		return fmt.Errorf("dead-letter %s: %w", ev.ID, err)
	}
	metrics.DeadLetters.Inc()
	s.logger.Error("event dead-lettered",
		"event_id", ev.ID,
		"tenant_id", ev.TenantID,
		"provider", ev.ProviderKind,
		"retry_count", dead.RetryCount,
		"error", detail,
	)
	s.feed.Publish(events.TypeDeadLetter, events.Lifecycle{
		EventID:    ev.ID,
		TenantID:   ev.TenantID,
		Provider:   string(ev.ProviderKind),
		Status:     string(eventstore.StatusDeadLetter),
		RetryCount: dead.RetryCount,
		Detail:     detail,
	})
	return ErrDeadLettered
}

// Requeue sends a dead-lettered event back through processing.
func (s *Scheduler) Requeue(ctx context.Context, id, actor string) (eventstore.Event, error) {
	ev, err := s.store.RequeueDeadLetter(ctx, id, actor)
	if err != nil {
		return eventstore.Event{}, err
	}
	if err := s.queue.Enqueue(ctx, ev.ID, ev.Version()); err != nil {
		// the stranded-pending sweep picks it up
		s.logger.Warn("enqueue after requeue failed", "event_id", ev.ID, "error", err)
	}
	s.logger.Info("event requeued", "event_id", ev.ID, "actor", actor)
	s.feed.Publish(events.TypeRequeued, events.Lifecycle{
		EventID:  ev.ID,
		TenantID: ev.TenantID,
		Provider: string(ev.ProviderKind),
		Status:   string(ev.Status),
		Detail:   actor,
	})
	return ev, nil
}

// Start runs one sweep immediately for crash recovery, then on Schedule.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return errors.New("retry scheduler already started")
	}

	if err := s.Sweep(ctx); err != nil {
		s.logger.Error("startup sweep failed", "error", err)
	}

	cronLog := cron.PrintfLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelDebug))
	c := cron.New(cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)))
	if _, err := c.AddFunc(s.cfg.Schedule, func() {
		if err := s.Sweep(ctx); err != nil {
			s.logger.Error("sweep failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid retry schedule %q: %w", s.cfg.Schedule, err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("retry scheduler started", "schedule", s.cfg.Schedule, "delays", s.cfg.Delays)
	return nil
}

// Stop halts the cron and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c == nil {
		return
	}
	<-c.Stop().Done()
	s.logger.Info("retry scheduler stopped")
}
