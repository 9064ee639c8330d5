package api_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hookrelay/internal/api"
	"github.com/mattjoyce/hookrelay/internal/auth"
	"github.com/mattjoyce/hookrelay/internal/contract"
	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/events"
	"github.com/mattjoyce/hookrelay/internal/log"
	"github.com/mattjoyce/hookrelay/internal/queue"
	"github.com/mattjoyce/hookrelay/internal/retry"
	"github.com/mattjoyce/hookrelay/internal/secrets"
	"github.com/mattjoyce/hookrelay/internal/signature"
	"github.com/mattjoyce/hookrelay/internal/storage/storagetest"
)

const (
	adminKey  = "admin-key"
	readToken = "read-token"
)

type fixture struct {
	srv      *httptest.Server
	store    *contract.Local
	events   *eventstore.Store
	queue    *queue.SQL
	hub      *events.Hub
	provider directory.Provider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := storagetest.SQLite(t)
	dir := directory.NewStore(db)
	vault, err := secrets.NewVault(dir, bytes.Repeat([]byte{3}, secrets.KeySize))
	require.NoError(t, err)
	evs := eventstore.NewStore(db)
	store := contract.NewLocal(dir, vault, evs)

	tenant, err := dir.CreateTenant(ctx, "Acme", "acme", 0)
	require.NoError(t, err)
	provider, err := dir.CreateProvider(ctx, tenant.ID, signature.Stripe, "")
	require.NoError(t, err)

	q := queue.NewSQL(db, time.Minute)
	hub := events.NewHub(64)
	sched := retry.New(retry.Config{}, store, q, hub, log.Discard())

	srv := api.New(api.Config{
		APIKey: adminKey,
		Tokens: []auth.TokenConfig{{Name: "dashboard", Token: readToken, Scopes: []string{auth.ScopeRead}}},
	}, store, sched, q, hub, log.Discard())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &fixture{srv: ts, store: store, events: evs, queue: q, hub: hub, provider: provider}
}

func (f *fixture) admit(t *testing.T, externalID string) eventstore.Event {
	t.Helper()
	ev, _, err := f.events.Admit(context.Background(), eventstore.AdmitRequest{
		TenantID:        f.provider.TenantID,
		ProviderID:      f.provider.ID,
		ProviderKind:    signature.Stripe,
		ExternalEventID: externalID,
		Payload:         []byte(`{"id":"` + externalID + `"}`),
		Signature:       "sha256=00",
		SignatureValid:  true,
	})
	require.NoError(t, err)
	return ev
}

func (f *fixture) deadLetter(t *testing.T, externalID string) eventstore.Event {
	t.Helper()
	ctx := context.Background()
	ev := f.admit(t, externalID)
	_, err := f.events.MarkProcessing(ctx, ev.ID)
	require.NoError(t, err)
	_, err = f.events.MarkFailed(ctx, ev.ID, "upstream 500")
	require.NoError(t, err)
	ev, err = f.events.MarkDeadLetter(ctx, ev.ID, "gave up")
	require.NoError(t, err)
	return ev
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(data)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, f.srv.URL+path, rdr)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestHealthzIsUnauthenticated(t *testing.T) {
	f := newFixture(t)
	f.admit(t, "evt_1")

	resp, body := f.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var h api.HealthzResponse
	require.NoError(t, json.Unmarshal(body, &h))
	assert.Equal(t, "ok", h.Status)
}

func TestAuth(t *testing.T) {
	f := newFixture(t)
	ev := f.deadLetter(t, "evt_auth")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"missing token", http.MethodGet, "/v1/events/" + ev.ID, "", http.StatusUnauthorized},
		{"wrong token", http.MethodGet, "/v1/events/" + ev.ID, "nope", http.StatusUnauthorized},
		{"read token reads", http.MethodGet, "/v1/events/" + ev.ID, readToken, http.StatusOK},
		{"read token cannot write", http.MethodPost, "/v1/events/" + ev.ID + "/retry", readToken, http.StatusForbidden},
		{"admin reads", http.MethodGet, "/v1/tenants/" + ev.TenantID + "/events", adminKey, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := f.do(t, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestListEvents(t *testing.T) {
	f := newFixture(t)
	f.admit(t, "evt_a")
	f.admit(t, "evt_b")
	f.deadLetter(t, "evt_c")

	resp, body := f.do(t, http.MethodGet, "/v1/tenants/"+f.provider.TenantID+"/events", adminKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all api.EventListResponse
	require.NoError(t, json.Unmarshal(body, &all))
	assert.Len(t, all.Events, 3)
	for _, ev := range all.Events {
		assert.Empty(t, ev.Payload, "listings omit payloads")
	}

	resp, body = f.do(t, http.MethodGet, "/v1/tenants/"+f.provider.TenantID+"/events?status=dead_letter", adminKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dead api.EventListResponse
	require.NoError(t, json.Unmarshal(body, &dead))
	require.Len(t, dead.Events, 1)
	assert.Equal(t, "evt_c", dead.Events[0].ExternalEventID)

	resp, _ = f.do(t, http.MethodGet, "/v1/tenants/"+f.provider.TenantID+"/events?status=bogus", adminKey, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = f.do(t, http.MethodGet, "/v1/tenants/"+f.provider.TenantID+"/events?limit=0", adminKey, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = f.do(t, http.MethodGet, "/v1/tenants/other-tenant/events", adminKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var none api.EventListResponse
	require.NoError(t, json.Unmarshal(body, &none))
	assert.Empty(t, none.Events, "tenants never see each other's events")
}

func TestGetEvent(t *testing.T) {
	f := newFixture(t)
	ev := f.admit(t, "evt_get")

	resp, body := f.do(t, http.MethodGet, "/v1/events/"+ev.ID, adminKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail api.EventDetailResponse
	require.NoError(t, json.Unmarshal(body, &detail))
	assert.Equal(t, ev.ID, detail.Event.ID)
	assert.Equal(t, eventstore.StatusPending, detail.Event.Status)
	assert.NotNil(t, detail.Attempts)

	resp, _ = f.do(t, http.MethodGet, "/v1/events/missing", adminKey, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRetryEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dead := f.deadLetter(t, "evt_dead")
	live := f.admit(t, "evt_live")

	resp, body := f.do(t, http.MethodPost, "/v1/events/"+dead.ID+"/retry", adminKey, nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode, string(body))
	var ev eventstore.Event
	require.NoError(t, json.Unmarshal(body, &ev))
	assert.Equal(t, eventstore.StatusPending, ev.Status)
	assert.Equal(t, 0, ev.RetryCount)

	depth, err := f.queue.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth, "requeued event is back on the work queue")

	resp, _ = f.do(t, http.MethodPost, "/v1/events/"+live.ID+"/retry", adminKey, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "only dead letters can be requeued")

	resp, _ = f.do(t, http.MethodPost, "/v1/events/missing/retry", adminKey, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	types := feedTypes(f.hub)
	assert.Contains(t, types, events.TypeRequeued)
}

func TestRotateSecret(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, body := f.do(t, http.MethodPut, "/v1/providers/acme/stripe/secret", adminKey, api.RotateSecretRequest{Secret: "whsec_new"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.NotContains(t, string(body), "whsec_new", "secrets are never echoed")

	var pr api.ProviderResponse
	require.NoError(t, json.Unmarshal(body, &pr))
	assert.True(t, pr.Provider.HasSecret)

	got, err := f.store.GetProviderSecret(ctx, f.provider.TenantID, signature.Stripe)
	require.NoError(t, err)
	assert.Equal(t, []byte("whsec_new"), got)

	resp, _ = f.do(t, http.MethodPut, "/v1/providers/acme/stripe/secret", adminKey, api.RotateSecretRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPut, "/v1/providers/acme/github/secret", adminKey, api.RotateSecretRequest{Secret: "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPut, "/v1/providers/acme/paypal/secret", adminKey, api.RotateSecretRequest{Secret: "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Contains(t, feedTypes(f.hub), events.TypeProviderChange)
}

func TestSetActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	off := false
	resp, body := f.do(t, http.MethodPut, "/v1/providers/acme/stripe/active", adminKey, api.SetActiveRequest{Active: &off})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	p, err := f.store.GetProvider(ctx, "acme", signature.Stripe)
	require.NoError(t, err)
	assert.False(t, p.Active)

	resp, _ = f.do(t, http.MethodPut, "/v1/providers/acme/stripe/active", adminKey, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "active is required")

	var change api.ProviderChange
	for _, ev := range f.hub.Since(0) {
		if ev.Type == events.TypeProviderChange {
			require.NoError(t, json.Unmarshal(ev.Data, &change))
		}
	}
	assert.Equal(t, "deactivated", change.Change)
	assert.Equal(t, "admin", change.Actor)
}

func TestFeedReplaysFromLastEventID(t *testing.T) {
	f := newFixture(t)
	f.hub.Publish(events.TypeReceived, events.Lifecycle{EventID: "one"})
	f.hub.Publish(events.TypeReceived, events.Lifecycle{EventID: "two"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.srv.URL+"/v1/feed", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+readToken)
	req.Header.Set("Last-Event-ID", "1")

	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	f.hub.Publish(events.TypeSucceeded, events.Lifecycle{EventID: "three"})

	sc := bufio.NewScanner(resp.Body)
	var ids []string
	for sc.Scan() && len(ids) < 2 {
		if line := sc.Text(); strings.HasPrefix(line, "id: ") {
			ids = append(ids, strings.TrimPrefix(line, "id: "))
		}
	}
	assert.Equal(t, []string{"2", "3"}, ids)
}

func TestOpenAPIDocListsRoutes(t *testing.T) {
	f := newFixture(t)
	resp, body := f.do(t, http.MethodGet, "/openapi.json", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "3.1.0", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/v1/events/{id}/retry")
	assert.Contains(t, doc.Paths["/v1/providers/{tenant_slug}/{kind}/secret"], "put")
}

func feedTypes(h *events.Hub) []string {
	var out []string
	for _, ev := range h.Since(0) {
		out = append(out, ev.Type)
	}
	return out
}
