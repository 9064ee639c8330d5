package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mattjoyce/hookrelay/internal/storage"
)

// SQL is a table-backed queue living next to the event store.
type SQL struct {
	db         *storage.DB
	visibility time.Duration
	now        func() time.Time
}

// NewSQL builds a queue. A claimed message reappears if it is neither acked
// nor released within visibility.
func NewSQL(db *storage.DB, visibility time.Duration) *SQL {
	if visibility <= 0 {
		visibility = 2 * time.Minute
	}
	return &SQL{db: db, visibility: visibility, now: time.Now}
}

// Enqueue makes eventID available. Enqueuing an id that is already queued
// keeps its earliest availability, so a recovery sweep never pushes older
// work behind newer work. An expired claim is voided; a live claim is kept
// and flagged so the holder's Ack returns the message instead of dropping it.
// The table holds one row per event, so version is not needed to dedupe.
func (q *SQL) Enqueue(ctx context.Context, eventID, _ string) error {
	if eventID == "" {
		return errors.New("event id is empty")
	}
	now := storage.FormatTime(q.now())
	_, err := q.db.ExecContext(ctx, `
INSERT INTO work_queue(id, event_id, available_at, deliveries, requeued, created_at)
VALUES(?, ?, ?, 0, 0, ?)
ON CONFLICT (event_id) DO UPDATE
SET available_at = CASE WHEN work_queue.available_at < excluded.available_at
                        THEN work_queue.available_at ELSE excluded.available_at END,
    requeued      = CASE WHEN work_queue.claimed_until >= excluded.available_at THEN 1 ELSE 0 END,
    claim_token   = CASE WHEN work_queue.claimed_until >= excluded.available_at THEN work_queue.claim_token END,
    claimed_until = CASE WHEN work_queue.claimed_until >= excluded.available_at THEN work_queue.claimed_until END;
`, uuid.NewString(), eventID, now, now)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", eventID, err)
	}
	return nil
}

// Receive claims the oldest available message.
func (q *SQL) Receive(ctx context.Context) (Delivery, error) {
	now := q.now()
	nowS := storage.FormatTime(now)
	token := uuid.NewString()

	d := &sqlDelivery{q: q, token: token}
	err := q.db.QueryRowContext(ctx, `
UPDATE work_queue
SET claim_token = ?, claimed_until = ?, deliveries = deliveries + 1
WHERE id = (
  SELECT id FROM work_queue
  WHERE available_at <= ? AND (claimed_until IS NULL OR claimed_until < ?)
  ORDER BY available_at, created_at
  LIMIT 1`+q.db.SkipLocked()+`
)
RETURNING id, event_id, deliveries;
`, token, storage.FormatTime(now.Add(q.visibility)), nowS, nowS).Scan(&d.id, &d.eventID, &d.attempt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("claim message: %w", err)
	}
	return d, nil
}

// Depth reports how many messages are queued or claimed.
func (q *SQL) Depth(ctx context.Context) (int, error) {
	var n int
	if err := q.db.QueryRowContext(ctx, `SELECT count(*) FROM work_queue;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("queue depth: %w", err)
	}
	return n, nil
}

type sqlDelivery struct {
	q       *SQL
	id      string
	eventID string
	token   string
	attempt int
}

func (d *sqlDelivery) EventID() string { return d.eventID }
func (d *sqlDelivery) Attempt() int    { return d.attempt }

// Ack removes the message if this delivery still holds the claim. A message
// re-enqueued while claimed is handed back to the queue instead.
func (d *sqlDelivery) Ack(ctx context.Context) error {
	res, err := d.q.db.ExecContext(ctx, `DELETE FROM work_queue WHERE id = ? AND claim_token = ? AND requeued = 0;`, d.id, d.token)
	if err != nil {
		return fmt.Errorf("ack %s: %w", d.eventID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	_, err = d.q.db.ExecContext(ctx, `
UPDATE work_queue SET claim_token = NULL, claimed_until = NULL, requeued = 0
WHERE id = ? AND claim_token = ?;
`, d.id, d.token)
	if err != nil {
		return fmt.Errorf("ack %s: %w", d.eventID, err)
	}
	return nil
}

// Release returns the message for immediate redelivery.
func (d *sqlDelivery) Release(ctx context.Context) error {
	_, err := d.q.db.ExecContext(ctx, `
UPDATE work_queue SET claim_token = NULL, claimed_until = NULL, requeued = 0, available_at = ?
WHERE id = ? AND claim_token = ?;
`, storage.FormatTime(d.q.now()), d.id, d.token)
	if err != nil {
		return fmt.Errorf("release %s: %w", d.eventID, err)
	}
	return nil
}
