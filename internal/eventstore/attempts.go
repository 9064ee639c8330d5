package eventstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattjoyce/hookrelay/internal/storage"
)

const attemptColumns = `a.id, a.event_id, a.attempt_number, a.scheduled_for, a.error_detail, a.outcome, a.created_at, a.dispatched_at`

// RetryAttempts lists an event's attempts in order.
func (s *Store) RetryAttempts(ctx context.Context, eventID string) ([]RetryAttempt, error) {
	return s.scanAttempts(ctx, `SELECT `+attemptColumns+` FROM retry_attempts a
WHERE a.event_id = ? ORDER BY a.attempt_number;`, eventID)
}

// DueRetries returns scheduled attempts whose time has come and whose
// event is still waiting on them.
func (s *Store) DueRetries(ctx context.Context, now time.Time, limit int) ([]RetryAttempt, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.scanAttempts(ctx, `SELECT `+attemptColumns+` FROM retry_attempts a
JOIN webhook_events e ON e.id = a.event_id
WHERE a.outcome = 'scheduled' AND a.scheduled_for <= ? AND e.status = 'scheduled_retry'
ORDER BY a.scheduled_for LIMIT ?;`, storage.FormatTime(now), limit)
}

// MarkRetryDispatched records that a due attempt was handed to the queue.
func (s *Store) MarkRetryDispatched(ctx context.Context, attemptID string) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := storage.FormatTime(s.now())
	var eventID string
	err = tx.QueryRowContext(ctx, `
UPDATE retry_attempts SET outcome = 'dispatched', dispatched_at = ?
WHERE id = ? AND outcome = 'scheduled'
RETURNING event_id;`, now, attemptID).Scan(&eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: attempt %s is not scheduled", ErrInvalidTransition, attemptID)
	}
	if err != nil {
		return fmt.Errorf("mark attempt dispatched: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE webhook_events SET updated_at = ? WHERE id = ? AND status = 'scheduled_retry';`, now, eventID); err != nil {
		return fmt.Errorf("touch event: %w", err)
	}
	return tx.Commit()
}

func (s *Store) scanAttempts(ctx context.Context, query string, args ...any) ([]RetryAttempt, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query retry attempts: %w", err)
	}
	defer rows.Close()

	var out []RetryAttempt
	for rows.Next() {
		var (
			a                  RetryAttempt
			scheduled, created string
			outcome            string
			detail, dispatched sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.EventID, &a.AttemptNumber, &scheduled, &detail, &outcome, &created, &dispatched); err != nil {
			return nil, fmt.Errorf("scan retry attempt: %w", err)
		}
		a.Outcome = Outcome(outcome)
		a.ErrorDetail = detail.String
		if a.ScheduledFor, err = storage.ParseTime(scheduled); err != nil {
			return nil, err
		}
		if a.CreatedAt, err = storage.ParseTime(created); err != nil {
			return nil, err
		}
		if a.DispatchedAt, err = storage.NullTime(dispatched); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
