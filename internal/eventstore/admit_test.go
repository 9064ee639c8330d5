package eventstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitNewAndDuplicate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	first, dup, err := f.store.Admit(ctx, f.request("evt_1", true))
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, StatusPending, first.Status)
	assert.NotEmpty(t, first.PayloadDigest)

	second, dup, err := f.store.Admit(ctx, f.request("evt_1", true))
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, StatusPending, second.Status)

	var n int
	require.NoError(t, f.db.QueryRowContext(ctx, `SELECT count(*) FROM webhook_events`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestAdmitRejectedNeverHoldsKey(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	forged1, dup, err := f.store.Admit(ctx, f.request("evt_1", false))
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, StatusRejected, forged1.Status)
	assert.False(t, forged1.SignatureValid)

	forged2, dup, err := f.store.Admit(ctx, f.request("evt_1", false))
	require.NoError(t, err)
	assert.False(t, dup)
	assert.NotEqual(t, forged1.ID, forged2.ID, "each rejection is its own audit row")

	genuine, dup, err := f.store.Admit(ctx, f.request("evt_1", true))
	require.NoError(t, err)
	assert.False(t, dup, "forged deliveries must not squat on the key")
	assert.Equal(t, StatusPending, genuine.Status)
}

func TestAdmitDuplicateReturnsCurrentState(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	ev := f.admit(t, "evt_1")
	_, err := f.store.MarkProcessing(ctx, ev.ID)
	require.NoError(t, err)

	again, dup, err := f.store.Admit(ctx, f.request("evt_1", true))
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, StatusProcessing, again.Status)

	f.force(t, ev.ID, StatusDeadLetter, 3)
	again, dup, err = f.store.Admit(ctx, f.request("evt_1", true))
	require.NoError(t, err)
	assert.True(t, dup)
	assert.Equal(t, StatusDeadLetter, again.Status, "dead letters are not revived by redelivery")
}

func TestAdmitConcurrentDeliveriesCollapse(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	const n = 16
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		ids   = map[string]int{}
		fresh int
		errs  []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev, dup, err := f.store.Admit(ctx, f.request("evt_race", true))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			ids[ev.ID]++
			if !dup {
				fresh++
			}
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Equal(t, 1, fresh)
	assert.Len(t, ids, 1)
}

func TestAdmitValidation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	req := f.request("", true)
	_, _, err := f.store.Admit(context.Background(), req)
	assert.Error(t, err)
}

func TestListScopedToTenant(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	a := f.admit(t, "evt_a")
	f.clock.Advance(1)
	f.admit(t, "evt_b")
	_, _, err := f.store.Admit(ctx, f.request("evt_c", false))
	require.NoError(t, err)
	_, err = f.store.MarkProcessing(ctx, a.ID)
	require.NoError(t, err)

	_, err = f.store.List(ctx, Filter{})
	assert.Error(t, err)

	all, err := f.store.List(ctx, Filter{TenantID: f.tenant.ID})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := f.store.List(ctx, Filter{TenantID: f.tenant.ID, Status: StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "evt_b", pending[0].ExternalEventID)

	none, err := f.store.List(ctx, Filter{TenantID: "other-tenant"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
