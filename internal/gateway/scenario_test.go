package gateway_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hookrelay/internal/contract"
	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/effect"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/gateway"
	"github.com/mattjoyce/hookrelay/internal/log"
	"github.com/mattjoyce/hookrelay/internal/queue"
	"github.com/mattjoyce/hookrelay/internal/retry"
	"github.com/mattjoyce/hookrelay/internal/secrets"
	"github.com/mattjoyce/hookrelay/internal/signature"
	"github.com/mattjoyce/hookrelay/internal/storage/storagetest"
	"github.com/mattjoyce/hookrelay/internal/worker"
)

type stack struct {
	srv    *httptest.Server
	store  *contract.Local
	queue  *queue.SQL
	tenant directory.Tenant
}

func newStack(t *testing.T) *stack {
	t.Helper()
	ctx := context.Background()
	db := storagetest.SQLite(t)
	dir := directory.NewStore(db)
	vault, err := secrets.NewVault(dir, bytes.Repeat([]byte{7}, secrets.KeySize))
	require.NoError(t, err)
	store := contract.NewLocal(dir, vault, eventstore.NewStore(db))

	tenant, err := dir.CreateTenant(ctx, "Acme", "acme", 0)
	require.NoError(t, err)
	_, err = dir.CreateProvider(ctx, tenant.ID, signature.Stripe, "")
	require.NoError(t, err)
	_, err = store.RotateProviderSecret(ctx, tenant.ID, signature.Stripe, []byte("whsec_test"), "test")
	require.NoError(t, err)

	q := queue.NewSQL(db, time.Minute)
	gw := gateway.New(gateway.Config{}, store, q, nil, log.Discard())
	srv := httptest.NewServer(gateway.NewServer(gw).Handler())
	t.Cleanup(srv.Close)
	return &stack{srv: srv, store: store, queue: q, tenant: tenant}
}

func (s *stack) post(t *testing.T, path string, payload []byte, sig string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, s.srv.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	if sig != "" {
		req.Header.Set("Stripe-Signature", sig)
	}
	resp, err := s.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestAcmeStripeScenario(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	sig := signature.Sign(payload, []byte("whsec_test"), signature.Stripe)

	code, first := s.post(t, "/webhooks/acme/stripe", payload, sig)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "received", first["status"])
	eventID, _ := first["event_id"].(string)
	require.NotEmpty(t, eventID)

	code, second := s.post(t, "/webhooks/acme/stripe", payload, sig)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, eventID, second["event_id"], "a replay returns the original event")

	depth, err := s.queue.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth, "a replay is not enqueued again")

	attempts, err := s.store.ListRetryAttempts(ctx, eventID)
	require.NoError(t, err)
	assert.Empty(t, attempts)

	code, bad := s.post(t, "/webhooks/acme/stripe", payload, "sha256=deadbeef")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid_signature", bad["error"])

	rejected, err := s.store.ListWebhookEvents(ctx, eventstore.Filter{TenantID: s.tenant.ID, Status: eventstore.StatusRejected})
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.False(t, rejected[0].SignatureValid)
	assert.NotEqual(t, eventID, rejected[0].ID)

	ev, err := s.store.GetWebhookEvent(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, eventstore.StatusPending, ev.Status, "the rejected delivery does not touch the admitted one")
}

func TestUnknownTenantIsNotFound(t *testing.T) {
	s := newStack(t)
	payload := []byte(`{"id":"evt_1"}`)
	code, body := s.post(t, "/webhooks/globex/stripe", payload, signature.Sign(payload, []byte("whsec_test"), signature.Stripe))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "provider_not_configured", body["error"])
}

func TestAckIndependentOfSlowEffect(t *testing.T) {
	s := newStack(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{}, 1)
	stall := effect.Func(func(ctx context.Context, _ eventstore.Event, _ directory.Provider) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		return ctx.Err()
	})
	sched := retry.New(retry.Config{}, s.store, s.queue, nil, log.Discard())
	pool := worker.New(worker.Config{Concurrency: 1, Poll: 10 * time.Millisecond, EffectTimeout: 500 * time.Millisecond},
		s.store, s.queue, stall, sched, nil, log.Discard())
	done := make(chan struct{})
	go func() {
		_ = pool.Start(ctx)
		close(done)
	}()

	first := []byte(`{"id":"evt_slow_1"}`)
	code, _ := s.post(t, "/webhooks/acme/stripe", first, signature.Sign(first, []byte("whsec_test"), signature.Stripe))
	require.Equal(t, http.StatusOK, code)

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("worker never picked up the event")
	}

	second := []byte(`{"id":"evt_slow_2"}`)
	start := time.Now()
	code, _ = s.post(t, "/webhooks/acme/stripe", second, signature.Sign(second, []byte("whsec_test"), signature.Stripe))
	assert.Equal(t, http.StatusOK, code)
	assert.Less(t, time.Since(start), gateway.DefaultAckDeadline, "ack must not wait on the stalled effect")

	cancel()
	<-done
}
