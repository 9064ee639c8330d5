package eventstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mattjoyce/hookrelay/internal/signature"
	"github.com/mattjoyce/hookrelay/internal/storage"
)

// DefaultRetryCeiling is the number of retries before dead-lettering.
const DefaultRetryCeiling = 3

// Store is the durable event ledger.
type Store struct {
	db      *storage.DB
	now     func() time.Time
	ceiling int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRetryCeiling sets how many retries an event gets.
func WithRetryCeiling(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.ceiling = n
		}
	}
}

func NewStore(db *storage.DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now, ceiling: DefaultRetryCeiling}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RetryCeiling reports the configured ceiling.
func (s *Store) RetryCeiling() int { return s.ceiling }

const eventColumns = `id, tenant_id, provider_id, provider_kind, external_event_id, payload, payload_digest,
  signature, signature_valid, status, retry_count, last_error, received_at, processed_at, updated_at`

// Admit records a delivery. A valid delivery whose (provider, external id)
// already exists returns the existing event with duplicate=true and changes
// nothing. Invalid deliveries always produce a fresh rejected row, which
// never occupies the idempotency key.
func (s *Store) Admit(ctx context.Context, req AdmitRequest) (ev Event, duplicate bool, err error) {
	if req.TenantID == "" || req.ProviderID == "" || req.ExternalEventID == "" {
		return Event{}, false, errors.New("admit: tenant, provider and external event id are required")
	}

	now := s.now().UTC()
	ev = Event{
		ID:              uuid.NewString(),
		TenantID:        req.TenantID,
		ProviderID:      req.ProviderID,
		ProviderKind:    req.ProviderKind,
		ExternalEventID: req.ExternalEventID,
		Payload:         req.Payload,
		PayloadDigest:   signature.Digest(req.Payload),
		Signature:       req.Signature,
		SignatureValid:  req.SignatureValid,
		Status:          StatusPending,
		ReceivedAt:      now,
		UpdatedAt:       now,
	}
	if ev.Payload == nil {
		ev.Payload = []byte{}
	}
	if !req.SignatureValid {
		ev.Status = StatusRejected
	}

	insert := `
INSERT INTO webhook_events(` + eventColumns + `)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, NULL, ?, NULL, ?)`
	args := []any{
		ev.ID, ev.TenantID, ev.ProviderID, string(ev.ProviderKind), ev.ExternalEventID, ev.Payload, ev.PayloadDigest,
		ev.Signature, storage.BoolInt(ev.SignatureValid), string(ev.Status), storage.FormatTime(now), storage.FormatTime(now),
	}

	if ev.Status == StatusRejected {
		if _, err := s.db.ExecContext(ctx, insert+`;`, args...); err != nil {
			return Event{}, false, fmt.Errorf("insert rejected event: %w", err)
		}
		return ev, false, nil
	}

	var insertedID string
	err = s.db.QueryRowContext(ctx, insert+`
ON CONFLICT (provider_id, external_event_id) WHERE status <> 'rejected' DO NOTHING
RETURNING id;`, args...).Scan(&insertedID)
	switch {
	case err == nil:
		return ev, false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return Event{}, false, fmt.Errorf("admit event: %w", err)
	}

	existing, err := s.scanOne(ctx, `provider_id = ? AND external_event_id = ? AND status <> 'rejected'`, req.ProviderID, req.ExternalEventID)
	if err != nil {
		return Event{}, false, fmt.Errorf("load duplicate: %w", err)
	}
	return existing, true, nil
}

// Get loads one event.
func (s *Store) Get(ctx context.Context, id string) (Event, error) {
	return s.scanOne(ctx, `id = ?`, id)
}

// List returns a tenant's events, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]Event, error) {
	if f.TenantID == "" {
		return nil, errors.New("list events: tenant id is required")
	}
	where := []string{"tenant_id = ?"}
	args := []any{f.TenantID}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	args = append(args, limit, max(f.Offset, 0))

	return s.scanMany(ctx, `SELECT `+eventColumns+` FROM webhook_events WHERE `+strings.Join(where, " AND ")+`
ORDER BY received_at DESC, id LIMIT ? OFFSET ?;`, args...)
}

// Stale returns events sitting in status since before olderThan. For
// scheduled_retry only events with no pending scheduled attempt qualify,
// since those are still owned by the retry schedule.
func (s *Store) Stale(ctx context.Context, status Status, olderThan time.Time, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 100
	}
	extra := ""
	if status == StatusScheduledRetry {
		extra = ` AND NOT EXISTS (SELECT 1 FROM retry_attempts a WHERE a.event_id = webhook_events.id AND a.outcome = 'scheduled')`
	}
	return s.scanMany(ctx, `SELECT `+eventColumns+` FROM webhook_events
WHERE status = ? AND updated_at < ?`+extra+`
ORDER BY updated_at LIMIT ?;`, string(status), storage.FormatTime(olderThan), limit)
}

func (s *Store) scanOne(ctx context.Context, where string, args ...any) (Event, error) {
	ev, err := scanEvent(s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM webhook_events WHERE `+where+`;`, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, ErrNotFound
	}
	return ev, err
}

func (s *Store) scanMany(ctx context.Context, query string, args ...any) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (Event, error) {
	var (
		ev                 Event
		kind, status       string
		valid              bool
		lastErr, processed sql.NullString
		received, updated  string
	)
	err := row.Scan(&ev.ID, &ev.TenantID, &ev.ProviderID, &kind, &ev.ExternalEventID, &ev.Payload, &ev.PayloadDigest,
		&ev.Signature, &valid, &status, &ev.RetryCount, &lastErr, &received, &processed, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, err
		}
		return Event{}, fmt.Errorf("scan event: %w", err)
	}
	ev.ProviderKind = signature.Kind(kind)
	ev.Status = Status(status)
	ev.SignatureValid = valid
	ev.LastError = lastErr.String

	if ev.ReceivedAt, err = storage.ParseTime(received); err != nil {
		return Event{}, err
	}
	if ev.UpdatedAt, err = storage.ParseTime(updated); err != nil {
		return Event{}, err
	}
	if ev.ProcessedAt, err = storage.NullTime(processed); err != nil {
		return Event{}, err
	}
	return ev, nil
}
