// Package contract is the boundary between the public ingestion tier and
// the tier that owns tenant records, secrets, and the event ledger. Local
// runs the operations in-process; Client and Server carry the same
// operations over gRPC with mutual TLS. The wire types live in contractpb,
// generated from proto/hookrelay/contract/v1/store.proto.
package contract

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/mattjoyce/hookrelay --go-grpc_out=../.. --go-grpc_opt=module=github.com/mattjoyce/hookrelay hookrelay/contract/v1/store.proto

import (
	"context"
	"time"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

// Store is the full set of cross-tier operations.
type Store interface {
	GetProvider(ctx context.Context, tenantSlug string, kind signature.Kind) (directory.Provider, error)
	GetProviderByID(ctx context.Context, id string) (directory.Provider, error)
	GetProviderSecret(ctx context.Context, tenantID string, kind signature.Kind) ([]byte, error)
	RotateProviderSecret(ctx context.Context, tenantID string, kind signature.Kind, secret []byte, actor string) (directory.Provider, error)
	SetProviderActive(ctx context.Context, tenantID string, kind signature.Kind, active bool, actor string) (directory.Provider, error)

	CreateWebhookEvent(ctx context.Context, req eventstore.AdmitRequest) (eventstore.Event, bool, error)
	UpdateWebhookEventStatus(ctx context.Context, id string, to eventstore.Status, detail string) (eventstore.Event, error)
	GetWebhookEvent(ctx context.Context, id string) (eventstore.Event, error)
	ListWebhookEvents(ctx context.Context, f eventstore.Filter) ([]eventstore.Event, error)
	ListStaleEvents(ctx context.Context, status eventstore.Status, olderThan time.Time, limit int) ([]eventstore.Event, error)
	RequeueDeadLetter(ctx context.Context, id, actor string) (eventstore.Event, error)

	CreateRetryAttempt(ctx context.Context, eventID string, scheduledFor time.Time, detail string) (eventstore.RetryAttempt, error)
	ListRetryAttempts(ctx context.Context, eventID string) ([]eventstore.RetryAttempt, error)
	ListDueRetries(ctx context.Context, now time.Time, limit int) ([]eventstore.RetryAttempt, error)
	MarkRetryDispatched(ctx context.Context, attemptID string) error
}

// Vault is the secret path Local needs.
type Vault interface {
	GetSecret(ctx context.Context, tenantID string, kind signature.Kind) ([]byte, error)
	SetSecret(ctx context.Context, tenantID string, kind signature.Kind, plaintext []byte, actor string) error
}

// Local serves Store from the database directly.
type Local struct {
	dir    *directory.Store
	vault  Vault
	events *eventstore.Store
}

var _ Store = (*Local)(nil)

func NewLocal(dir *directory.Store, vault Vault, events *eventstore.Store) *Local {
	return &Local{dir: dir, vault: vault, events: events}
}

func (l *Local) GetProvider(ctx context.Context, tenantSlug string, kind signature.Kind) (directory.Provider, error) {
	return l.dir.GetProvider(ctx, tenantSlug, kind)
}

func (l *Local) GetProviderByID(ctx context.Context, id string) (directory.Provider, error) {
	return l.dir.ProviderByID(ctx, id)
}

func (l *Local) GetProviderSecret(ctx context.Context, tenantID string, kind signature.Kind) ([]byte, error) {
	return l.vault.GetSecret(ctx, tenantID, kind)
}

func (l *Local) RotateProviderSecret(ctx context.Context, tenantID string, kind signature.Kind, secret []byte, actor string) (directory.Provider, error) {
	if err := l.vault.SetSecret(ctx, tenantID, kind, secret, actor); err != nil {
		return directory.Provider{}, err
	}
	return l.dir.ProviderFor(ctx, tenantID, kind)
}

func (l *Local) SetProviderActive(ctx context.Context, tenantID string, kind signature.Kind, active bool, actor string) (directory.Provider, error) {
	return l.dir.SetProviderActive(ctx, tenantID, kind, active, actor)
}

func (l *Local) CreateWebhookEvent(ctx context.Context, req eventstore.AdmitRequest) (eventstore.Event, bool, error) {
	return l.events.Admit(ctx, req)
}

func (l *Local) UpdateWebhookEventStatus(ctx context.Context, id string, to eventstore.Status, detail string) (eventstore.Event, error) {
	return l.events.Transition(ctx, id, to, detail)
}

func (l *Local) GetWebhookEvent(ctx context.Context, id string) (eventstore.Event, error) {
	return l.events.Get(ctx, id)
}

func (l *Local) ListWebhookEvents(ctx context.Context, f eventstore.Filter) ([]eventstore.Event, error) {
	return l.events.List(ctx, f)
}

func (l *Local) ListStaleEvents(ctx context.Context, status eventstore.Status, olderThan time.Time, limit int) ([]eventstore.Event, error) {
	return l.events.Stale(ctx, status, olderThan, limit)
}

func (l *Local) RequeueDeadLetter(ctx context.Context, id, actor string) (eventstore.Event, error) {
	return l.events.Requeue(ctx, id, actor)
}

func (l *Local) CreateRetryAttempt(ctx context.Context, eventID string, scheduledFor time.Time, detail string) (eventstore.RetryAttempt, error) {
	return l.events.RecordRetryAttempt(ctx, eventID, scheduledFor, detail)
}

func (l *Local) ListRetryAttempts(ctx context.Context, eventID string) ([]eventstore.RetryAttempt, error) {
	return l.events.RetryAttempts(ctx, eventID)
}

func (l *Local) ListDueRetries(ctx context.Context, now time.Time, limit int) ([]eventstore.RetryAttempt, error) {
	return l.events.DueRetries(ctx, now, limit)
}

func (l *Local) MarkRetryDispatched(ctx context.Context, attemptID string) error {
	return l.events.MarkRetryDispatched(ctx, attemptID)
}
