package storage

import (
	"context"
	"fmt"
	"strings"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tenants (
  id         TEXT PRIMARY KEY,
  name       TEXT NOT NULL,
  slug       TEXT NOT NULL UNIQUE,
  active     INTEGER NOT NULL DEFAULT 1,
  quota      INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS providers (
  id                TEXT PRIMARY KEY,
  tenant_id         TEXT NOT NULL REFERENCES tenants(id),
  kind              TEXT NOT NULL,
  secret_ciphertext TEXT,
  active            INTEGER NOT NULL DEFAULT 1,
  forward_url       TEXT,
  created_at        TEXT NOT NULL,
  updated_at        TEXT NOT NULL,
  UNIQUE (tenant_id, kind)
);`,
	`CREATE TABLE IF NOT EXISTS webhook_events (
  id                TEXT PRIMARY KEY,
  tenant_id         TEXT NOT NULL REFERENCES tenants(id),
  provider_id       TEXT NOT NULL REFERENCES providers(id),
  provider_kind     TEXT NOT NULL,
  external_event_id TEXT NOT NULL,
  payload           BLOB NOT NULL,
  payload_digest    TEXT NOT NULL,
  signature         TEXT NOT NULL,
  signature_valid   INTEGER NOT NULL,
  status            TEXT NOT NULL,
  retry_count       INTEGER NOT NULL DEFAULT 0,
  last_error        TEXT,
  received_at       TEXT NOT NULL,
  processed_at      TEXT,
  updated_at        TEXT NOT NULL
);`,
	// Rejected rows are audit records and never hold the idempotency key.
	`CREATE UNIQUE INDEX IF NOT EXISTS webhook_events_idempotency_idx
  ON webhook_events(provider_id, external_event_id) WHERE status <> 'rejected';`,
	`CREATE INDEX IF NOT EXISTS webhook_events_tenant_received_idx ON webhook_events(tenant_id, received_at);`,
	`CREATE INDEX IF NOT EXISTS webhook_events_status_updated_idx ON webhook_events(status, updated_at);`,
	`CREATE TABLE IF NOT EXISTS retry_attempts (
  id             TEXT PRIMARY KEY,
  event_id       TEXT NOT NULL REFERENCES webhook_events(id),
  attempt_number INTEGER NOT NULL,
  scheduled_for  TEXT NOT NULL,
  error_detail   TEXT,
  outcome        TEXT NOT NULL,
  created_at     TEXT NOT NULL,
  dispatched_at  TEXT,
  UNIQUE (event_id, attempt_number)
);`,
	`CREATE INDEX IF NOT EXISTS retry_attempts_outcome_scheduled_idx ON retry_attempts(outcome, scheduled_for);`,
	`CREATE TABLE IF NOT EXISTS work_queue (
  id            TEXT PRIMARY KEY,
  event_id      TEXT NOT NULL UNIQUE,
  available_at  TEXT NOT NULL,
  claim_token   TEXT,
  claimed_until TEXT,
  deliveries    INTEGER NOT NULL DEFAULT 0,
  requeued      INTEGER NOT NULL DEFAULT 0,
  created_at    TEXT NOT NULL
);`,
	`CREATE INDEX IF NOT EXISTS work_queue_available_idx ON work_queue(available_at);`,
	`CREATE TABLE IF NOT EXISTS audit_log (
  id         TEXT PRIMARY KEY,
  tenant_id  TEXT NOT NULL,
  actor      TEXT NOT NULL,
  action     TEXT NOT NULL,
  subject    TEXT NOT NULL,
  created_at TEXT NOT NULL
);`,
}

// Bootstrap creates tables and indexes if missing.
func Bootstrap(ctx context.Context, db *DB) error {
	for _, stmt := range schema {
		if db.driver == DriverPostgres {
			stmt = strings.ReplaceAll(stmt, " BLOB ", " BYTEA ")
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap %s: %w", db.driver, err)
		}
	}
	return nil
}
