package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded by the core.
const (
	AuditSecretRotated       = "secret.rotated"
	AuditEventRequeued       = "event.requeued"
	AuditProviderActivated   = "provider.activated"
	AuditProviderDeactivated = "provider.deactivated"
)

// AuditEntry is a write-only record of an operator action.
type AuditEntry struct {
	TenantID string
	Actor    string
	Action   string
	Subject  string
}

// WriteAudit appends an entry using q, typically inside the transaction
// that performed the audited change.
func WriteAudit(ctx context.Context, q Querier, e AuditEntry, now time.Time) error {
	if e.Actor == "" {
		e.Actor = "system"
	}
	_, err := q.ExecContext(ctx, `
INSERT INTO audit_log(id, tenant_id, actor, action, subject, created_at)
VALUES(?, ?, ?, ?, ?, ?);
`, uuid.NewString(), e.TenantID, e.Actor, e.Action, e.Subject, FormatTime(now))
	if err != nil {
		return fmt.Errorf("write audit %s: %w", e.Action, err)
	}
	return nil
}
