package effect

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

// Headers set on forwarded requests.
const (
	HeaderSignature = "X-Hookrelay-Signature"
	HeaderEventID   = "X-Hookrelay-Event-Id"
	HeaderProvider  = "X-Hookrelay-Provider"
	HeaderExternal  = "X-Hookrelay-External-Id"
	HeaderAttempt   = "X-Hookrelay-Attempt"
)

// maxErrorBody caps how much of a failing response ends up in last_error.
const maxErrorBody = 512

// StatusError is returned when the downstream answers with a non-2xx code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("forward: downstream returned %d", e.Code)
	}
	return fmt.Sprintf("forward: downstream returned %d: %s", e.Code, e.Body)
}

// Forwarder POSTs the raw payload to the provider's forward URL, signed
// with a hex HMAC-SHA256 of the body so the receiver can authenticate it.
type Forwarder struct {
	client    *http.Client
	secret    []byte
	userAgent string
}

// NewForwarder builds a Forwarder. Timeouts are left to the caller's
// context; timeout only guards against a missing deadline.
func NewForwarder(secret []byte, timeout time.Duration, userAgent string) *Forwarder {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if userAgent == "" {
		userAgent = "hookrelay"
	}
	return &Forwarder{
		client:    &http.Client{Timeout: timeout},
		secret:    secret,
		userAgent: userAgent,
	}
}

func (f *Forwarder) Apply(ctx context.Context, ev eventstore.Event, p directory.Provider) error {
	if p.ForwardURL == "" {
		return fmt.Errorf("forward: provider %s has no forward url", p.ID)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.ForwardURL, bytes.NewReader(ev.Payload))
	if err != nil {
		return fmt.Errorf("forward: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set(HeaderEventID, ev.ID)
	req.Header.Set(HeaderProvider, string(ev.ProviderKind))
	req.Header.Set(HeaderExternal, ev.ExternalEventID)
	req.Header.Set(HeaderAttempt, strconv.Itoa(ev.RetryCount+1))
	if len(f.secret) > 0 {
		req.Header.Set(HeaderSignature, signature.Sign(ev.Payload, f.secret, signature.Generic))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	return nil
}
