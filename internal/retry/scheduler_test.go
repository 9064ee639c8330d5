package retry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hookrelay/internal/contract"
	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/events"
	"github.com/mattjoyce/hookrelay/internal/log"
	"github.com/mattjoyce/hookrelay/internal/signature"
	"github.com/mattjoyce/hookrelay/internal/storage/storagetest"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type recordingQueue struct {
	mu  sync.Mutex
	ids []string
	err error
}

func (q *recordingQueue) Enqueue(_ context.Context, id, _ string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.ids = append(q.ids, id)
	return nil
}

func (q *recordingQueue) Enqueued() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.ids...)
}

type fixture struct {
	sched    *Scheduler
	store    *contract.Local
	events   *eventstore.Store
	queue    *recordingQueue
	clock    *clock
	hub      *events.Hub
	provider directory.Provider
	seq      int
}

func newFixture(t *testing.T, delays ...time.Duration) *fixture {
	t.Helper()
	if len(delays) == 0 {
		delays = DefaultDelays
	}
	ctx := context.Background()
	db := storagetest.SQLite(t)
	dir := directory.NewStore(db)
	tenant, err := dir.CreateTenant(ctx, "Acme", "acme", 0)
	require.NoError(t, err)
	provider, err := dir.CreateProvider(ctx, tenant.ID, signature.Stripe, "")
	require.NoError(t, err)

	clk := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	evs := eventstore.NewStore(db, eventstore.WithClock(clk.Now), eventstore.WithRetryCeiling(len(delays)))
	local := contract.NewLocal(dir, nil, evs)
	q := &recordingQueue{}
	hub := events.NewHub(64)

	s := New(Config{Delays: delays, Lease: 5 * time.Minute, Stranded: time.Minute}, local, q, hub, log.Discard())
	s.now = clk.Now
	return &fixture{sched: s, store: local, events: evs, queue: q, clock: clk, hub: hub, provider: provider}
}

func (f *fixture) admit(t *testing.T) eventstore.Event {
	t.Helper()
	f.seq++
	id := "evt_" + string(rune('a'+f.seq))
	ev, dup, err := f.events.Admit(context.Background(), eventstore.AdmitRequest{
		TenantID:        f.provider.TenantID,
		ProviderID:      f.provider.ID,
		ProviderKind:    signature.Stripe,
		ExternalEventID: id,
		Payload:         []byte(`{"id":"` + id + `"}`),
		Signature:       "sha256=00",
		SignatureValid:  true,
	})
	require.NoError(t, err)
	require.False(t, dup)
	return ev
}

// fail drives ev through processing into failed.
func (f *fixture) fail(t *testing.T, id string) eventstore.Event {
	t.Helper()
	ctx := context.Background()
	_, err := f.events.MarkProcessing(ctx, id)
	require.NoError(t, err)
	ev, err := f.events.MarkFailed(ctx, id, "upstream 500")
	require.NoError(t, err)
	return ev
}

func TestDelayLadderIsMonotonic(t *testing.T) {
	s := New(Config{}, nil, nil, nil, log.Discard())
	assert.Equal(t, 3, s.Ceiling())
	assert.Equal(t, time.Minute, s.Delay(0))
	assert.Equal(t, 5*time.Minute, s.Delay(1))
	assert.Equal(t, 15*time.Minute, s.Delay(2))
	assert.Equal(t, 15*time.Minute, s.Delay(7))
	assert.Equal(t, time.Minute, s.Delay(-1))

	prev := time.Duration(0)
	for i := 0; i < 10; i++ {
		d := s.Delay(i)
		assert.GreaterOrEqual(t, d, prev, "delay for retry %d shrank", i)
		prev = d
	}
}

func TestScheduleRetryUntilDeadLetter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	feed, cancel := f.hub.Subscribe(32)
	defer cancel()

	ev := f.admit(t)
	for i, delay := range DefaultDelays {
		failed := f.fail(t, ev.ID)
		attempt, err := f.sched.ScheduleRetry(ctx, failed)
		require.NoError(t, err)
		assert.Equal(t, i+1, attempt.AttemptNumber)
		assert.True(t, attempt.ScheduledFor.Equal(f.clock.Now().Add(delay)), "retry %d at %v", i, attempt.ScheduledFor)

		got, err := f.store.GetWebhookEvent(ctx, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, eventstore.StatusScheduledRetry, got.Status)
		assert.Equal(t, i+1, got.RetryCount)

		f.clock.Advance(delay + time.Second)
	}

	failed := f.fail(t, ev.ID)
	_, err := f.sched.ScheduleRetry(ctx, failed)
	require.True(t, errors.Is(err, ErrDeadLettered), "got %v", err)

	got, err := f.store.GetWebhookEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, eventstore.StatusDeadLetter, got.Status)
	assert.Equal(t, 3, got.RetryCount)

	attempts, err := f.store.ListRetryAttempts(ctx, ev.ID)
	require.NoError(t, err)
	assert.Len(t, attempts, 3)

	var sawDead bool
	for len(feed) > 0 {
		if e := <-feed; e.Type == events.TypeDeadLetter {
			sawDead = true
		}
	}
	assert.True(t, sawDead)
}

func TestSweepDispatchesDueRetries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ev := f.admit(t)
	_, err := f.sched.ScheduleRetry(ctx, f.fail(t, ev.ID))
	require.NoError(t, err)

	require.NoError(t, f.sched.Sweep(ctx))
	assert.Empty(t, f.queue.Enqueued(), "retry is not due yet")

	f.clock.Advance(61 * time.Second)
	require.NoError(t, f.sched.Sweep(ctx))
	assert.Equal(t, []string{ev.ID}, f.queue.Enqueued())

	attempts, err := f.store.ListRetryAttempts(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, eventstore.OutcomeDispatched, attempts[0].Outcome)

	// dispatched once; a second sweep within the stranded window is quiet
	require.NoError(t, f.sched.Sweep(ctx))
	assert.Len(t, f.queue.Enqueued(), 1)

	// nobody claimed it: after the stranded window it is offered again
	f.clock.Advance(2 * time.Minute)
	require.NoError(t, f.sched.Sweep(ctx))
	assert.Equal(t, []string{ev.ID, ev.ID}, f.queue.Enqueued())
}

func TestSweepExpiresProcessingLease(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ev := f.admit(t)
	_, err := f.events.MarkProcessing(ctx, ev.ID)
	require.NoError(t, err)

	f.clock.Advance(4 * time.Minute)
	require.NoError(t, f.sched.Sweep(ctx))
	got, err := f.store.GetWebhookEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, eventstore.StatusProcessing, got.Status, "lease not yet expired")

	f.clock.Advance(2 * time.Minute)
	require.NoError(t, f.sched.Sweep(ctx))
	got, err = f.store.GetWebhookEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, eventstore.StatusScheduledRetry, got.Status)
	assert.Equal(t, 1, got.RetryCount)
	assert.Equal(t, "processing lease expired", got.LastError)
}

func TestSweepSchedulesOrphanedFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ev := f.admit(t)
	f.fail(t, ev.ID)

	f.clock.Advance(2 * time.Minute)
	require.NoError(t, f.sched.Sweep(ctx))

	got, err := f.store.GetWebhookEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, eventstore.StatusScheduledRetry, got.Status)
}

func TestSweepReenqueuesStrandedPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ev := f.admit(t)
	require.NoError(t, f.sched.Sweep(ctx))
	assert.Empty(t, f.queue.Enqueued(), "fresh pending events belong to the gateway")

	f.clock.Advance(2 * time.Minute)
	require.NoError(t, f.sched.Sweep(ctx))
	assert.Equal(t, []string{ev.ID}, f.queue.Enqueued())
}

func TestSweepKeepsGoingWhenQueueFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ev := f.admit(t)
	_, err := f.sched.ScheduleRetry(ctx, f.fail(t, ev.ID))
	require.NoError(t, err)
	f.clock.Advance(2 * time.Minute)

	f.queue.err = errors.New("queue down")
	require.NoError(t, f.sched.Sweep(ctx))

	attempts, err := f.store.ListRetryAttempts(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, eventstore.OutcomeScheduled, attempts[0].Outcome, "undelivered attempts stay scheduled")

	f.queue.err = nil
	require.NoError(t, f.sched.Sweep(ctx))
	assert.Equal(t, []string{ev.ID}, f.queue.Enqueued())
}

func TestRequeueDeadLetter(t *testing.T) {
	f := newFixture(t, time.Minute)
	ctx := context.Background()

	ev := f.admit(t)
	_, err := f.sched.ScheduleRetry(ctx, f.fail(t, ev.ID))
	require.NoError(t, err)
	f.clock.Advance(2 * time.Minute)
	_, err = f.sched.ScheduleRetry(ctx, f.fail(t, ev.ID))
	require.True(t, errors.Is(err, ErrDeadLettered))

	got, err := f.sched.Requeue(ctx, ev.ID, "ops@example.com")
	require.NoError(t, err)
	assert.Equal(t, eventstore.StatusPending, got.Status)
	assert.Equal(t, 0, got.RetryCount)
	assert.Equal(t, []string{ev.ID}, f.queue.Enqueued())

	_, err = f.sched.Requeue(ctx, ev.ID, "ops@example.com")
	assert.True(t, errors.Is(err, eventstore.ErrInvalidTransition), "only dead letters can be requeued")
}

func TestStartStop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.sched.Start(ctx))
	assert.Error(t, f.sched.Start(ctx))
	f.sched.Stop()
	f.sched.Stop()

	bad := New(Config{Schedule: "not a schedule"}, f.store, f.queue, nil, log.Discard())
	bad.now = f.clock.Now
	assert.Error(t, bad.Start(ctx))
}
