package eventstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mattjoyce/hookrelay/internal/storage"
)

// update applies "SET status = to, updated_at = now, <set>" to id only when
// the current status is one of from. It reports ErrNotFound or
// ErrInvalidTransition when no row matched.
func (s *Store) update(ctx context.Context, q storage.Querier, id string, from []Status, to Status, set string, setArgs []any, guard string, guardArgs []any) error {
	now := storage.FormatTime(s.now())

	placeholders := make([]string, len(from))
	args := []any{string(to), now}
	args = append(args, setArgs...)
	args = append(args, id)
	for i, st := range from {
		placeholders[i] = "?"
		args = append(args, string(st))
	}
	args = append(args, guardArgs...)

	query := `UPDATE webhook_events SET status = ?, updated_at = ?` + set +
		` WHERE id = ? AND status IN (` + strings.Join(placeholders, ", ") + `)` + guard + `;`
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update event %s to %s: %w", id, to, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}

	var current string
	err = q.QueryRowContext(ctx, `SELECT status FROM webhook_events WHERE id = ?;`, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load event status: %w", err)
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, to)
}

// settleAttempts moves the event's attempts from one outcome to another.
func (s *Store) settleAttempts(ctx context.Context, q storage.Querier, eventID string, from, to Outcome, detail string) error {
	set := `outcome = ?`
	args := []any{string(to)}
	switch to {
	case OutcomeDispatched:
		set += `, dispatched_at = ?`
		args = append(args, storage.FormatTime(s.now()))
	case OutcomeFailed:
		set += `, error_detail = ?`
		args = append(args, storage.NullString(detail))
	}
	args = append(args, eventID, string(from))
	if _, err := q.ExecContext(ctx, `UPDATE retry_attempts SET `+set+` WHERE event_id = ? AND outcome = ?;`, args...); err != nil {
		return fmt.Errorf("settle attempts for %s: %w", eventID, err)
	}
	return nil
}

// inTx runs fn in a transaction and reloads the event afterwards.
func (s *Store) inTx(ctx context.Context, id string, fn func(tx *storage.Tx) error) (Event, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return Event{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return Event{}, err
	}
	if err := tx.Commit(); err != nil {
		return Event{}, fmt.Errorf("commit: %w", err)
	}
	return s.Get(ctx, id)
}

// MarkProcessing claims an event for execution. It succeeds from pending,
// or from scheduled_retry once no scheduled attempt lies in the future.
// Exactly one concurrent caller wins; the others get ErrInvalidTransition.
func (s *Store) MarkProcessing(ctx context.Context, id string) (Event, error) {
	now := storage.FormatTime(s.now())
	return s.inTx(ctx, id, func(tx *storage.Tx) error {
		guard := ` AND (status = 'pending' OR NOT EXISTS (
  SELECT 1 FROM retry_attempts a WHERE a.event_id = webhook_events.id AND a.outcome = 'scheduled' AND a.scheduled_for > ?))`
		if err := s.update(ctx, tx, id, []Status{StatusPending, StatusScheduledRetry}, StatusProcessing, "", nil, guard, []any{now}); err != nil {
			return err
		}
		return s.settleAttempts(ctx, tx, id, OutcomeScheduled, OutcomeDispatched, "")
	})
}

// MarkSuccess completes an event.
func (s *Store) MarkSuccess(ctx context.Context, id string) (Event, error) {
	return s.inTx(ctx, id, func(tx *storage.Tx) error {
		set := `, processed_at = ?, last_error = NULL`
		if err := s.update(ctx, tx, id, []Status{StatusProcessing}, StatusSuccess, set, []any{storage.FormatTime(s.now())}, "", nil); err != nil {
			return err
		}
		return s.settleAttempts(ctx, tx, id, OutcomeDispatched, OutcomeSucceeded, "")
	})
}

// MarkFailed records a processing failure.
func (s *Store) MarkFailed(ctx context.Context, id, detail string) (Event, error) {
	return s.inTx(ctx, id, func(tx *storage.Tx) error {
		if err := s.update(ctx, tx, id, []Status{StatusProcessing}, StatusFailed, `, last_error = ?`, []any{storage.NullString(detail)}, "", nil); err != nil {
			return err
		}
		return s.settleAttempts(ctx, tx, id, OutcomeDispatched, OutcomeFailed, detail)
	})
}

// IncrementRetry moves a failed event to scheduled_retry and bumps its
// retry count, refusing once the ceiling is reached.
func (s *Store) IncrementRetry(ctx context.Context, id string) (Event, error) {
	return s.inTx(ctx, id, func(tx *storage.Tx) error {
		return s.incrementRetry(ctx, tx, id)
	})
}

func (s *Store) incrementRetry(ctx context.Context, q storage.Querier, id string) error {
	err := s.update(ctx, q, id, []Status{StatusFailed}, StatusScheduledRetry,
		`, retry_count = retry_count + 1`, nil, ` AND retry_count < ?`, []any{s.ceiling})
	if !errors.Is(err, ErrInvalidTransition) {
		return err
	}
	var (
		status string
		count  int
	)
	if qerr := q.QueryRowContext(ctx, `SELECT status, retry_count FROM webhook_events WHERE id = ?;`, id).Scan(&status, &count); qerr == nil &&
		Status(status) == StatusFailed && count >= s.ceiling {
		return ErrRetryCeiling
	}
	return err
}

// RecordRetryAttempt increments the retry count and inserts the attempt in
// one transaction. Attempt numbers increase monotonically per event, across
// manual requeues.
func (s *Store) RecordRetryAttempt(ctx context.Context, eventID string, scheduledFor time.Time, detail string) (RetryAttempt, error) {
	a := RetryAttempt{
		ID:           uuid.NewString(),
		EventID:      eventID,
		ScheduledFor: scheduledFor.UTC(),
		ErrorDetail:  detail,
		Outcome:      OutcomeScheduled,
		CreatedAt:    s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return RetryAttempt{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.incrementRetry(ctx, tx, eventID); err != nil {
		return RetryAttempt{}, err
	}
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(attempt_number), 0) + 1 FROM retry_attempts WHERE event_id = ?;`, eventID).Scan(&a.AttemptNumber); err != nil {
		return RetryAttempt{}, fmt.Errorf("next attempt number: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO retry_attempts(id, event_id, attempt_number, scheduled_for, error_detail, outcome, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?);
`, a.ID, a.EventID, a.AttemptNumber, storage.FormatTime(a.ScheduledFor), storage.NullString(detail),
		string(a.Outcome), storage.FormatTime(a.CreatedAt)); err != nil {
		return RetryAttempt{}, fmt.Errorf("insert retry attempt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return RetryAttempt{}, fmt.Errorf("commit: %w", err)
	}
	return a, nil
}

// MarkDeadLetter parks an event that exhausted its retries.
func (s *Store) MarkDeadLetter(ctx context.Context, id, detail string) (Event, error) {
	return s.inTx(ctx, id, func(tx *storage.Tx) error {
		set, args := "", []any(nil)
		if detail != "" {
			set, args = `, last_error = ?`, []any{detail}
		}
		return s.update(ctx, tx, id, []Status{StatusFailed}, StatusDeadLetter, set, args, "", nil)
	})
}

// Requeue is the manual escape from dead_letter: the event returns to
// pending with a fresh retry budget. The action is audited.
func (s *Store) Requeue(ctx context.Context, id, actor string) (Event, error) {
	return s.inTx(ctx, id, func(tx *storage.Tx) error {
		if err := s.update(ctx, tx, id, []Status{StatusDeadLetter}, StatusPending, `, retry_count = 0, processed_at = NULL`, nil, "", nil); err != nil {
			return err
		}
		var tenantID string
		if err := tx.QueryRowContext(ctx, `SELECT tenant_id FROM webhook_events WHERE id = ?;`, id).Scan(&tenantID); err != nil {
			return fmt.Errorf("load tenant: %w", err)
		}
		return storage.WriteAudit(ctx, tx, storage.AuditEntry{
			TenantID: tenantID, Actor: actor, Action: storage.AuditEventRequeued, Subject: id,
		}, s.now())
	})
}

// Transition applies the named target status using the matching
// operation. detail is the error text for failed/dead_letter and the actor
// for a requeue to pending.
func (s *Store) Transition(ctx context.Context, id string, to Status, detail string) (Event, error) {
	switch to {
	case StatusProcessing:
		return s.MarkProcessing(ctx, id)
	case StatusSuccess:
		return s.MarkSuccess(ctx, id)
	case StatusFailed:
		return s.MarkFailed(ctx, id, detail)
	case StatusScheduledRetry:
		return s.IncrementRetry(ctx, id)
	case StatusDeadLetter:
		return s.MarkDeadLetter(ctx, id, detail)
	case StatusPending:
		return s.Requeue(ctx, id, detail)
	default:
		return Event{}, fmt.Errorf("%w: cannot move to %q", ErrInvalidTransition, to)
	}
}
