package eventstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHappyPath(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	ev := f.admit(t, "evt_1")
	ev, err := f.store.MarkProcessing(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, ev.Status)

	f.clock.Advance(time.Second)
	ev, err = f.store.MarkSuccess(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, ev.Status)
	require.NotNil(t, ev.ProcessedAt)
	assert.True(t, ev.ProcessedAt.Equal(f.clock.Now()))
	assert.True(t, ev.Status.Terminal())
}

// Every operation is attempted from every persisted status; only the
// edges of the lifecycle graph may succeed.
func TestTransitionSoundness(t *testing.T) {
	t.Parallel()

	type op struct {
		name    string
		allowed map[Status]bool
		run     func(ctx context.Context, s *Store, id string) error
	}
	ops := []op{
		{"MarkProcessing", map[Status]bool{StatusPending: true, StatusScheduledRetry: true},
			func(ctx context.Context, s *Store, id string) error { _, err := s.MarkProcessing(ctx, id); return err }},
		{"MarkSuccess", map[Status]bool{StatusProcessing: true},
			func(ctx context.Context, s *Store, id string) error { _, err := s.MarkSuccess(ctx, id); return err }},
		{"MarkFailed", map[Status]bool{StatusProcessing: true},
			func(ctx context.Context, s *Store, id string) error { _, err := s.MarkFailed(ctx, id, "boom"); return err }},
		{"IncrementRetry", map[Status]bool{StatusFailed: true},
			func(ctx context.Context, s *Store, id string) error { _, err := s.IncrementRetry(ctx, id); return err }},
		{"MarkDeadLetter", map[Status]bool{StatusFailed: true},
			func(ctx context.Context, s *Store, id string) error { _, err := s.MarkDeadLetter(ctx, id, ""); return err }},
		{"Requeue", map[Status]bool{StatusDeadLetter: true},
			func(ctx context.Context, s *Store, id string) error { _, err := s.Requeue(ctx, id, "ops"); return err }},
	}
	statuses := []Status{StatusRejected, StatusPending, StatusProcessing, StatusSuccess, StatusFailed, StatusScheduledRetry, StatusDeadLetter}

	f := newFixture(t)
	ctx := context.Background()
	for _, o := range ops {
		for _, from := range statuses {
			ev := f.admit(t, o.name+"-"+string(from))
			f.force(t, ev.ID, from, 0)

			err := o.run(ctx, f.store, ev.ID)
			if o.allowed[from] {
				assert.NoError(t, err, "%s from %s", o.name, from)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidTransition), "%s from %s: got %v", o.name, from, err)
				got, gerr := f.store.Get(ctx, ev.ID)
				require.NoError(t, gerr)
				assert.Equal(t, from, got.Status, "%s from %s must not mutate", o.name, from)
			}
		}
	}
}

func TestTransitionUnknownEvent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.store.MarkProcessing(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = f.store.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMarkProcessingSingleWinner(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ev := f.admit(t, "evt_1")

	const workers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  int
		invalids int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.store.MarkProcessing(context.Background(), ev.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errors.Is(err, ErrInvalidTransition):
				invalids++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, winners)
	assert.Equal(t, workers-1, invalids)
}

func TestRetryLifecycle(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	ev := f.admit(t, "evt_1")

	for attempt := 1; attempt <= DefaultRetryCeiling; attempt++ {
		_, err := f.store.MarkProcessing(ctx, ev.ID)
		require.NoError(t, err)
		_, err = f.store.MarkFailed(ctx, ev.ID, "downstream 500")
		require.NoError(t, err)

		due := f.clock.Now().Add(time.Minute)
		a, err := f.store.RecordRetryAttempt(ctx, ev.ID, due, "downstream 500")
		require.NoError(t, err)
		assert.Equal(t, attempt, a.AttemptNumber)
		assert.Equal(t, OutcomeScheduled, a.Outcome)

		got, err := f.store.Get(ctx, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusScheduledRetry, got.Status)
		assert.Equal(t, attempt, got.RetryCount)

		// Not due yet.
		_, err = f.store.MarkProcessing(ctx, ev.ID)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
		none, err := f.store.DueRetries(ctx, f.clock.Now(), 10)
		require.NoError(t, err)
		assert.Empty(t, none)

		f.clock.Advance(time.Minute)
		dueNow, err := f.store.DueRetries(ctx, f.clock.Now(), 10)
		require.NoError(t, err)
		require.Len(t, dueNow, 1)
		require.NoError(t, f.store.MarkRetryDispatched(ctx, dueNow[0].ID))
		assert.True(t, errors.Is(f.store.MarkRetryDispatched(ctx, dueNow[0].ID), ErrInvalidTransition))
	}

	_, err := f.store.MarkProcessing(ctx, ev.ID)
	require.NoError(t, err)
	_, err = f.store.MarkFailed(ctx, ev.ID, "still failing")
	require.NoError(t, err)

	_, err = f.store.RecordRetryAttempt(ctx, ev.ID, f.clock.Now(), "still failing")
	assert.True(t, errors.Is(err, ErrRetryCeiling))

	dead, err := f.store.MarkDeadLetter(ctx, ev.ID, "")
	require.NoError(t, err)
	assert.Equal(t, StatusDeadLetter, dead.Status)
	assert.Equal(t, "still failing", dead.LastError)

	attempts, err := f.store.RetryAttempts(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, attempts, DefaultRetryCeiling, "no attempt beyond the ceiling")
	for i, a := range attempts {
		assert.Equal(t, i+1, a.AttemptNumber)
		assert.Equal(t, OutcomeFailed, a.Outcome)
		assert.NotNil(t, a.DispatchedAt)
	}
}

func TestMarkSuccessSettlesDispatchedAttempt(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	ev := f.admit(t, "evt_1")

	_, err := f.store.MarkProcessing(ctx, ev.ID)
	require.NoError(t, err)
	_, err = f.store.MarkFailed(ctx, ev.ID, "timeout")
	require.NoError(t, err)
	_, err = f.store.RecordRetryAttempt(ctx, ev.ID, f.clock.Now(), "timeout")
	require.NoError(t, err)

	// Claiming a due retry dispatches its attempt even if the sweeper has not.
	_, err = f.store.MarkProcessing(ctx, ev.ID)
	require.NoError(t, err)
	_, err = f.store.MarkSuccess(ctx, ev.ID)
	require.NoError(t, err)

	attempts, err := f.store.RetryAttempts(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, OutcomeSucceeded, attempts[0].Outcome)
}

func TestRequeueResetsBudgetAndAudits(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	ev := f.admit(t, "evt_1")

	for i := 0; i < DefaultRetryCeiling; i++ {
		_, err := f.store.MarkProcessing(ctx, ev.ID)
		require.NoError(t, err)
		_, err = f.store.MarkFailed(ctx, ev.ID, "x")
		require.NoError(t, err)
		_, err = f.store.RecordRetryAttempt(ctx, ev.ID, f.clock.Now(), "x")
		require.NoError(t, err)
	}
	_, err := f.store.MarkProcessing(ctx, ev.ID)
	require.NoError(t, err)
	_, err = f.store.MarkFailed(ctx, ev.ID, "x")
	require.NoError(t, err)
	_, err = f.store.MarkDeadLetter(ctx, ev.ID, "")
	require.NoError(t, err)

	requeued, err := f.store.Requeue(ctx, ev.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, requeued.Status)
	assert.Equal(t, 0, requeued.RetryCount)

	var actor string
	require.NoError(t, f.db.QueryRowContext(ctx,
		`SELECT actor FROM audit_log WHERE action = 'event.requeued' AND subject = ?`, ev.ID).Scan(&actor))
	assert.Equal(t, "alice", actor)

	_, err = f.store.MarkProcessing(ctx, ev.ID)
	require.NoError(t, err)
	_, err = f.store.MarkFailed(ctx, ev.ID, "x")
	require.NoError(t, err)
	a, err := f.store.RecordRetryAttempt(ctx, ev.ID, f.clock.Now(), "x")
	require.NoError(t, err)
	assert.Equal(t, DefaultRetryCeiling+1, a.AttemptNumber, "attempt numbers keep increasing")
}

func TestTransitionDispatch(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	ev := f.admit(t, "evt_1")

	got, err := f.store.Transition(ctx, ev.ID, StatusProcessing, "")
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, got.Status)
	got, err = f.store.Transition(ctx, ev.ID, StatusFailed, "bad gateway")
	require.NoError(t, err)
	assert.Equal(t, "bad gateway", got.LastError)
	got, err = f.store.Transition(ctx, ev.ID, StatusScheduledRetry, "")
	require.NoError(t, err)
	assert.Equal(t, 1, got.RetryCount)

	_, err = f.store.Transition(ctx, ev.ID, StatusRejected, "")
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestStale(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	old := f.admit(t, "evt_old")
	_, err := f.store.MarkProcessing(ctx, old.ID)
	require.NoError(t, err)
	f.clock.Advance(10 * time.Minute)
	fresh := f.admit(t, "evt_new")
	_, err = f.store.MarkProcessing(ctx, fresh.ID)
	require.NoError(t, err)

	stale, err := f.store.Stale(ctx, StatusProcessing, f.clock.Now().Add(-5*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, old.ID, stale[0].ID)
}

func TestStaleScheduledRetryIgnoresOwnedBySchedule(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	ev := f.admit(t, "evt_1")
	_, err := f.store.MarkProcessing(ctx, ev.ID)
	require.NoError(t, err)
	_, err = f.store.MarkFailed(ctx, ev.ID, "x")
	require.NoError(t, err)
	a, err := f.store.RecordRetryAttempt(ctx, ev.ID, f.clock.Now().Add(time.Minute), "x")
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	stale, err := f.store.Stale(ctx, StatusScheduledRetry, f.clock.Now(), 10)
	require.NoError(t, err)
	assert.Empty(t, stale, "a scheduled attempt still owns the event")

	require.NoError(t, f.store.MarkRetryDispatched(ctx, a.ID))
	f.clock.Advance(time.Hour)
	stale, err = f.store.Stale(ctx, StatusScheduledRetry, f.clock.Now(), 10)
	require.NoError(t, err)
	assert.Len(t, stale, 1)
}
