package retry

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/events"
	"github.com/mattjoyce/hookrelay/internal/metrics"
)

// Sweep performs one pass:
//   - due attempts are enqueued and marked dispatched
//   - processing events past the lease are failed and rescheduled
//   - failed events with no attempt (crash between the two writes) are scheduled
//   - pending and dispatched-but-unclaimed events are enqueued again
//
// Each step continues past individual errors; the first error is returned.
func (s *Scheduler) Sweep(ctx context.Context) error {
	var errs []error
	for _, step := range []func(context.Context) error{
		s.dispatchDue,
		s.recoverProcessing,
		s.recoverFailed,
		s.recoverStranded,
	} {
		if err := step(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if d, ok := s.queue.(depther); ok {
		if n, err := d.Depth(ctx); err == nil {
			metrics.QueueDepth.Set(float64(n))
		}
	}
	return errors.Join(errs...)
}

func (s *Scheduler) dispatchDue(ctx context.Context) error {
	due, err := s.store.ListDueRetries(ctx, s.now(), s.cfg.Batch)
	if err != nil {
		return fmt.Errorf("list due retries: %w", err)
	}
	for _, a := range due {
		// each attempt is dispatched once, so its id versions the message
		if err := s.queue.Enqueue(ctx, a.EventID, a.ID); err != nil {
			s.logger.Warn("enqueue due retry failed", "event_id", a.EventID, "attempt", a.AttemptNumber, "error", err)
			continue
		}
		// A worker may already have claimed and settled the attempt.
		if err := s.store.MarkRetryDispatched(ctx, a.ID); err != nil && !errors.Is(err, eventstore.ErrInvalidTransition) {
			s.logger.Warn("mark retry dispatched failed", "attempt_id", a.ID, "error", err)
			continue
		}
		s.logger.Debug("retry dispatched", "event_id", a.EventID, "attempt", a.AttemptNumber)
		s.feed.Publish(events.TypeRetryDue, events.Lifecycle{
			EventID:    a.EventID,
			Status:     string(eventstore.StatusScheduledRetry),
			RetryCount: a.AttemptNumber,
		})
	}
	return nil
}

func (s *Scheduler) recoverProcessing(ctx context.Context) error {
	stale, err := s.store.ListStaleEvents(ctx, eventstore.StatusProcessing, s.now().Add(-s.cfg.Lease), s.cfg.Batch)
	if err != nil {
		return fmt.Errorf("list stale processing: %w", err)
	}
	for _, ev := range stale {
		failed, err := s.store.UpdateWebhookEventStatus(ctx, ev.ID, eventstore.StatusFailed, "processing lease expired")
		if err != nil {
			// lost the race to the worker that owns it
			if !errors.Is(err, eventstore.ErrInvalidTransition) {
				s.logger.Warn("expire processing lease failed", "event_id", ev.ID, "error", err)
			}
			continue
		}
		metrics.Recovered.WithLabelValues(string(eventstore.StatusProcessing)).Inc()
		s.logger.Warn("processing lease expired", "event_id", ev.ID)
		s.reschedule(ctx, failed)
	}
	return nil
}

func (s *Scheduler) recoverFailed(ctx context.Context) error {
	stale, err := s.store.ListStaleEvents(ctx, eventstore.StatusFailed, s.now().Add(-s.cfg.Stranded), s.cfg.Batch)
	if err != nil {
		return fmt.Errorf("list stale failed: %w", err)
	}
	for _, ev := range stale {
		metrics.Recovered.WithLabelValues(string(eventstore.StatusFailed)).Inc()
		s.reschedule(ctx, ev)
	}
	return nil
}

func (s *Scheduler) reschedule(ctx context.Context, ev eventstore.Event) {
	if _, err := s.ScheduleRetry(ctx, ev); err != nil && !errors.Is(err, ErrDeadLettered) && !errors.Is(err, eventstore.ErrInvalidTransition) {
		s.logger.Warn("reschedule failed", "event_id", ev.ID, "error", err)
	}
}

func (s *Scheduler) recoverStranded(ctx context.Context) error {
	olderThan := s.now().Add(-s.cfg.Stranded)
	var errs []error
	for _, status := range []eventstore.Status{eventstore.StatusPending, eventstore.StatusScheduledRetry} {
		stale, err := s.store.ListStaleEvents(ctx, status, olderThan, s.cfg.Batch)
		if err != nil {
			errs = append(errs, fmt.Errorf("list stale %s: %w", status, err))
			continue
		}
		for _, ev := range stale {
			if err := s.queue.Enqueue(ctx, ev.ID, ev.Version()); err != nil {
				s.logger.Warn("re-enqueue failed", "event_id", ev.ID, "status", status, "error", err)
				continue
			}
			metrics.Recovered.WithLabelValues(string(status)).Inc()
			s.logger.Info("stranded event re-enqueued", "event_id", ev.ID, "status", status)
		}
	}
	return errors.Join(errs...)
}
