package eventstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hookrelay/internal/storage/storagetest"
)

func TestPostgresAdmissionAndLifecycle(t *testing.T) {
	f := newFixtureOn(t, storagetest.Postgres(t))
	ctx := context.Background()

	_, _, err := f.store.Admit(ctx, f.request("evt_1", false))
	require.NoError(t, err)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		fresh int
		ids   = map[string]bool{}
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev, dup, err := f.store.Admit(ctx, f.request("evt_1", true))
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			ids[ev.ID] = true
			if !dup {
				fresh++
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, fresh)
	require.Len(t, ids, 1)

	var id string
	for k := range ids {
		id = k
	}
	_, err = f.store.MarkProcessing(ctx, id)
	require.NoError(t, err)
	_, err = f.store.MarkProcessing(ctx, id)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	_, err = f.store.MarkFailed(ctx, id, "boom")
	require.NoError(t, err)
	a, err := f.store.RecordRetryAttempt(ctx, id, f.clock.Now(), "boom")
	require.NoError(t, err)
	assert.Equal(t, 1, a.AttemptNumber)

	due, err := f.store.DueRetries(ctx, f.clock.Now(), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
}
