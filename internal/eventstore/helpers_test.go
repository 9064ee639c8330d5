package eventstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/signature"
	"github.com/mattjoyce/hookrelay/internal/storage"
	"github.com/mattjoyce/hookrelay/internal/storage/storagetest"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	db       *storage.DB
	store    *Store
	clock    *fakeClock
	tenant   directory.Tenant
	provider directory.Provider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureOn(t, storagetest.SQLite(t))
}

func newFixtureOn(t *testing.T, db *storage.DB) *fixture {
	t.Helper()
	ctx := context.Background()
	dir := directory.NewStore(db)
	tenant, err := dir.CreateTenant(ctx, "Acme", "acme", 0)
	require.NoError(t, err)
	provider, err := dir.CreateProvider(ctx, tenant.ID, signature.Stripe, "")
	require.NoError(t, err)

	clock := newFakeClock()
	return &fixture{
		db:       db,
		store:    NewStore(db, WithClock(clock.Now)),
		clock:    clock,
		tenant:   tenant,
		provider: provider,
	}
}

func (f *fixture) request(externalID string, valid bool) AdmitRequest {
	return AdmitRequest{
		TenantID:        f.tenant.ID,
		ProviderID:      f.provider.ID,
		ProviderKind:    signature.Stripe,
		ExternalEventID: externalID,
		Payload:         []byte(`{"id":"` + externalID + `","type":"x"}`),
		Signature:       "sha256=abc",
		SignatureValid:  valid,
	}
}

func (f *fixture) admit(t *testing.T, externalID string) Event {
	t.Helper()
	ev, dup, err := f.store.Admit(context.Background(), f.request(externalID, true))
	require.NoError(t, err)
	require.False(t, dup)
	return ev
}

// force puts an event into an arbitrary state for transition tests.
func (f *fixture) force(t *testing.T, id string, status Status, retryCount int) {
	t.Helper()
	_, err := f.db.ExecContext(context.Background(),
		`UPDATE webhook_events SET status = ?, retry_count = ? WHERE id = ?`, string(status), retryCount, id)
	require.NoError(t, err)
}
