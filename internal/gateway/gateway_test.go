package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/gateway"
	"github.com/mattjoyce/hookrelay/internal/gateway/mocks"
	"github.com/mattjoyce/hookrelay/internal/log"
	"github.com/mattjoyce/hookrelay/internal/metrics"
	"github.com/mattjoyce/hookrelay/internal/secrets"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

var (
	secret   = []byte("whsec_test")
	body     = []byte(`{"id":"evt_1","type":"charge.succeeded"}`)
	provider = directory.Provider{
		ID: "p-1", TenantID: "t-1", TenantSlug: "acme", Kind: signature.Stripe,
		Active: true, TenantActive: true, HasSecret: true,
	}
)

type harness struct {
	gw      *gateway.Gateway
	backend *mocks.MockBackend
	queue   *mocks.MockEnqueuer
}

func newHarness(t *testing.T, cfg gateway.Config) *harness {
	ctrl := gomock.NewController(t)
	h := &harness{backend: mocks.NewMockBackend(ctrl), queue: mocks.NewMockEnqueuer(ctrl)}
	h.gw = gateway.New(cfg, h.backend, h.queue, nil, log.Discard())
	return h
}

func signed(b []byte) http.Header {
	h := http.Header{}
	h.Set("Stripe-Signature", signature.Sign(b, secret, signature.Stripe))
	return h
}

func errorCode(t *testing.T, resp gateway.Response) string {
	t.Helper()
	e, ok := resp.Body.(gateway.ErrorResponse)
	require.True(t, ok, "body is %T", resp.Body)
	return e.Error
}

func TestReceiveAdmitsAndEnqueues(t *testing.T) {
	h := newHarness(t, gateway.Config{})
	ctx := context.Background()

	h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(provider, nil)
	h.backend.EXPECT().GetProviderSecret(gomock.Any(), "t-1", signature.Stripe).Return(secret, nil)
	h.backend.EXPECT().CreateWebhookEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req eventstore.AdmitRequest) (eventstore.Event, bool, error) {
			assert.True(t, req.SignatureValid)
			assert.Equal(t, "evt_1", req.ExternalEventID)
			assert.Equal(t, "p-1", req.ProviderID)
			assert.Equal(t, body, req.Payload)
			return eventstore.Event{ID: "ev-1", Status: eventstore.StatusPending}, false, nil
		})
	h.queue.EXPECT().Enqueue(gomock.Any(), "ev-1", gomock.Any()).Return(nil)

	resp := h.gw.Receive(ctx, "acme", "stripe", body, signed(body))
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, gateway.ReceivedResponse{Status: "received", EventID: "ev-1"}, resp.Body)
}

func TestReceiveDuplicateSkipsEnqueue(t *testing.T) {
	h := newHarness(t, gateway.Config{})

	h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(provider, nil)
	h.backend.EXPECT().GetProviderSecret(gomock.Any(), "t-1", signature.Stripe).Return(secret, nil)
	h.backend.EXPECT().CreateWebhookEvent(gomock.Any(), gomock.Any()).
		Return(eventstore.Event{ID: "ev-1", Status: eventstore.StatusProcessing}, true, nil)

	resp := h.gw.Receive(context.Background(), "acme", "stripe", body, signed(body))
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "ev-1", resp.Body.(gateway.ReceivedResponse).EventID)
}

func TestReceiveInvalidSignatureIsRecorded(t *testing.T) {
	h := newHarness(t, gateway.Config{})
	headers := http.Header{}
	headers.Set("Stripe-Signature", "sha256=deadbeef")

	h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(provider, nil)
	h.backend.EXPECT().GetProviderSecret(gomock.Any(), "t-1", signature.Stripe).Return(secret, nil)
	h.backend.EXPECT().CreateWebhookEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req eventstore.AdmitRequest) (eventstore.Event, bool, error) {
			assert.False(t, req.SignatureValid)
			assert.Equal(t, "sha256=deadbeef", req.Signature)
			return eventstore.Event{ID: "ev-r", Status: eventstore.StatusRejected}, false, nil
		})

	resp := h.gw.Receive(context.Background(), "acme", "stripe", body, headers)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.Equal(t, gateway.CodeInvalidSignature, errorCode(t, resp))
}

func TestReceiveNotConfigured(t *testing.T) {
	inactive := provider
	inactive.Active = false
	noTenant := provider
	noTenant.TenantActive = false

	cases := []struct {
		name  string
		kind  string
		setup func(h *harness)
	}{
		{name: "unknown kind", kind: "paypal", setup: func(*harness) {}},
		{name: "missing provider", kind: "stripe", setup: func(h *harness) {
			h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(directory.Provider{}, directory.ErrNotFound)
		}},
		{name: "inactive provider", kind: "stripe", setup: func(h *harness) {
			h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(inactive, nil)
		}},
		{name: "inactive tenant", kind: "stripe", setup: func(h *harness) {
			h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(noTenant, nil)
		}},
		{name: "no secret", kind: "stripe", setup: func(h *harness) {
			h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(provider, nil)
			h.backend.EXPECT().GetProviderSecret(gomock.Any(), "t-1", signature.Stripe).Return(nil, secrets.ErrNotFound)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, gateway.Config{})
			tc.setup(h)
			resp := h.gw.Receive(context.Background(), "acme", tc.kind, body, signed(body))
			assert.Equal(t, http.StatusNotFound, resp.Status)
			assert.Equal(t, gateway.CodeNotConfigured, errorCode(t, resp))
		})
	}
}

func TestReceiveUnavailable(t *testing.T) {
	down := errors.New("connection refused")
	cases := []struct {
		name  string
		setup func(h *harness)
	}{
		{name: "store down", setup: func(h *harness) {
			h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(directory.Provider{}, down)
		}},
		{name: "vault down", setup: func(h *harness) {
			h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(provider, nil)
			h.backend.EXPECT().GetProviderSecret(gomock.Any(), "t-1", signature.Stripe).Return(nil, secrets.ErrUnavailable)
		}},
		{name: "admission fails", setup: func(h *harness) {
			h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(provider, nil)
			h.backend.EXPECT().GetProviderSecret(gomock.Any(), "t-1", signature.Stripe).Return(secret, nil)
			h.backend.EXPECT().CreateWebhookEvent(gomock.Any(), gomock.Any()).Return(eventstore.Event{}, false, down)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, gateway.Config{})
			tc.setup(h)
			resp := h.gw.Receive(context.Background(), "acme", "stripe", body, signed(body))
			assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
			assert.Equal(t, gateway.ErrorResponse{Error: gateway.CodeUnavailable, RetryAfter: 60}, resp.Body)
		})
	}
}

func TestReceiveEnqueueFailureStillAcknowledges(t *testing.T) {
	h := newHarness(t, gateway.Config{})

	h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(provider, nil)
	h.backend.EXPECT().GetProviderSecret(gomock.Any(), "t-1", signature.Stripe).Return(secret, nil)
	h.backend.EXPECT().CreateWebhookEvent(gomock.Any(), gomock.Any()).
		Return(eventstore.Event{ID: "ev-1", Status: eventstore.StatusPending}, false, nil)
	h.queue.EXPECT().Enqueue(gomock.Any(), "ev-1", gomock.Any()).Return(errors.New("nats: no responders"))

	resp := h.gw.Receive(context.Background(), "acme", "stripe", body, signed(body))
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestReceiveAnswersWithinDeadline(t *testing.T) {
	h := newHarness(t, gateway.Config{AckDeadline: 100 * time.Millisecond})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	// a backend that ignores its context entirely
	h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).DoAndReturn(
		func(context.Context, string, signature.Kind) (directory.Provider, error) {
			<-release
			return directory.Provider{}, directory.ErrNotFound
		})

	start := time.Now()
	resp := h.gw.Receive(context.Background(), "acme", "stripe", body, signed(body))
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
}

func TestHandlerWritesRetryAfter(t *testing.T) {
	h := newHarness(t, gateway.Config{})
	h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(directory.Provider{}, errors.New("down"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/acme/stripe", strings.NewReader(string(body)))
	gateway.NewServer(h.gw).Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "temporarily_unavailable", out["error"])
	assert.Equal(t, float64(60), out["retry_after"])
}

func TestHandlerRejectsOversizedBody(t *testing.T) {
	h := newHarness(t, gateway.Config{MaxBodySize: 16})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/acme/stripe", strings.NewReader(strings.Repeat("x", 17)))
	gateway.NewServer(h.gw).Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"error":"payload_too_large"}`, rec.Body.String())
}

func TestUnknownKindsShareOneMetricSeries(t *testing.T) {
	metrics.WebhooksReceived.Reset()
	metrics.IngressDuration.Reset()
	t.Cleanup(func() {
		metrics.WebhooksReceived.Reset()
		metrics.IngressDuration.Reset()
	})

	h := newHarness(t, gateway.Config{MaxBodySize: 16})
	handler := gateway.NewServer(h.gw).Handler()
	for i := 0; i < 50; i++ {
		kind := fmt.Sprintf("bogus-%d", i)
		resp := h.gw.Receive(context.Background(), "acme", kind, body, signed(body))
		require.Equal(t, http.StatusNotFound, resp.Status)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/acme/"+kind, strings.NewReader(strings.Repeat("x", 17)))
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	}

	assert.Equal(t, 2, testutil.CollectAndCount(metrics.WebhooksReceived))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.IngressDuration))
	assert.Equal(t, float64(50), testutil.ToFloat64(metrics.WebhooksReceived.WithLabelValues("unknown", "not_found")))
	assert.Equal(t, float64(50), testutil.ToFloat64(metrics.WebhooksReceived.WithLabelValues("unknown", "too_large")))
}

func TestKnownKindLabelIsNormalised(t *testing.T) {
	metrics.WebhooksReceived.Reset()
	t.Cleanup(metrics.WebhooksReceived.Reset)

	h := newHarness(t, gateway.Config{})
	h.backend.EXPECT().GetProvider(gomock.Any(), "acme", signature.Stripe).Return(directory.Provider{}, directory.ErrNotFound)

	resp := h.gw.Receive(context.Background(), "acme", " STRIPE ", body, signed(body))
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.WebhooksReceived.WithLabelValues("stripe", "not_found")))
}
