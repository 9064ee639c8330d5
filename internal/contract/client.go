package contract

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/mattjoyce/hookrelay/internal/contract/contractpb"
	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

// Client calls a remote Server. It satisfies Store.
type Client struct {
	cc  *grpc.ClientConn
	rpc contractpb.StoreClient
}

var _ Store = (*Client)(nil)

// Dial prepares a client for address. Connections are established lazily
// on first call.
func Dial(address string, tlsCfg *tls.Config) (*Client, error) {
	if tlsCfg == nil || len(tlsCfg.Certificates) == 0 {
		return nil, errors.New("contract client requires a TLS config with a client certificate")
	}
	cc, err := grpc.NewClient(address, grpc.WithTransportCredentials(credentials.NewTLS(tlsCfg)))
	if err != nil {
		return nil, fmt.Errorf("dial contract %s: %w", address, err)
	}
	return &Client{cc: cc, rpc: contractpb.NewStoreClient(cc)}, nil
}

// Close tears down the connection.
func (c *Client) Close() error { return c.cc.Close() }

func (c *Client) GetProvider(ctx context.Context, tenantSlug string, kind signature.Kind) (directory.Provider, error) {
	out, err := c.rpc.GetProvider(ctx, &contractpb.GetProviderRequest{TenantSlug: tenantSlug, Kind: string(kind)})
	if err != nil {
		return directory.Provider{}, fromStatus(err)
	}
	return providerFromPB(out.GetProvider()), nil
}

func (c *Client) GetProviderByID(ctx context.Context, id string) (directory.Provider, error) {
	out, err := c.rpc.GetProviderByID(ctx, &contractpb.GetProviderByIDRequest{Id: id})
	if err != nil {
		return directory.Provider{}, fromStatus(err)
	}
	return providerFromPB(out.GetProvider()), nil
}

func (c *Client) GetProviderSecret(ctx context.Context, tenantID string, kind signature.Kind) ([]byte, error) {
	out, err := c.rpc.GetProviderSecret(ctx, &contractpb.GetProviderSecretRequest{TenantId: tenantID, Kind: string(kind)})
	if err != nil {
		return nil, fromStatus(err)
	}
	return out.GetSecret(), nil
}

func (c *Client) RotateProviderSecret(ctx context.Context, tenantID string, kind signature.Kind, secret []byte, actor string) (directory.Provider, error) {
	out, err := c.rpc.RotateProviderSecret(ctx, &contractpb.RotateProviderSecretRequest{
		TenantId: tenantID,
		Kind:     string(kind),
		Secret:   secret,
		Actor:    actor,
	})
	if err != nil {
		return directory.Provider{}, fromStatus(err)
	}
	return providerFromPB(out.GetProvider()), nil
}

func (c *Client) SetProviderActive(ctx context.Context, tenantID string, kind signature.Kind, active bool, actor string) (directory.Provider, error) {
	out, err := c.rpc.SetProviderActive(ctx, &contractpb.SetProviderActiveRequest{
		TenantId: tenantID,
		Kind:     string(kind),
		Active:   active,
		Actor:    actor,
	})
	if err != nil {
		return directory.Provider{}, fromStatus(err)
	}
	return providerFromPB(out.GetProvider()), nil
}

func (c *Client) CreateWebhookEvent(ctx context.Context, req eventstore.AdmitRequest) (eventstore.Event, bool, error) {
	out, err := c.rpc.CreateWebhookEvent(ctx, &contractpb.CreateWebhookEventRequest{
		TenantId:        req.TenantID,
		ProviderId:      req.ProviderID,
		ProviderKind:    string(req.ProviderKind),
		ExternalEventId: req.ExternalEventID,
		Payload:         req.Payload,
		Signature:       req.Signature,
		SignatureValid:  req.SignatureValid,
	})
	if err != nil {
		return eventstore.Event{}, false, fromStatus(err)
	}
	return eventFromPB(out.GetEvent()), out.GetDuplicate(), nil
}

func (c *Client) UpdateWebhookEventStatus(ctx context.Context, id string, to eventstore.Status, detail string) (eventstore.Event, error) {
	out, err := c.rpc.UpdateWebhookEventStatus(ctx, &contractpb.UpdateWebhookEventStatusRequest{Id: id, Status: string(to), Detail: detail})
	if err != nil {
		return eventstore.Event{}, fromStatus(err)
	}
	return eventFromPB(out.GetEvent()), nil
}

func (c *Client) GetWebhookEvent(ctx context.Context, id string) (eventstore.Event, error) {
	out, err := c.rpc.GetWebhookEvent(ctx, &contractpb.GetWebhookEventRequest{Id: id})
	if err != nil {
		return eventstore.Event{}, fromStatus(err)
	}
	return eventFromPB(out.GetEvent()), nil
}

func (c *Client) ListWebhookEvents(ctx context.Context, f eventstore.Filter) ([]eventstore.Event, error) {
	out, err := c.rpc.ListWebhookEvents(ctx, &contractpb.ListWebhookEventsRequest{
		TenantId: f.TenantID,
		Status:   string(f.Status),
		Limit:    int32(f.Limit),
		Offset:   int32(f.Offset),
	})
	if err != nil {
		return nil, fromStatus(err)
	}
	return eventsFromPB(out.GetEvents()), nil
}

func (c *Client) ListStaleEvents(ctx context.Context, status eventstore.Status, olderThan time.Time, limit int) ([]eventstore.Event, error) {
	out, err := c.rpc.ListStaleEvents(ctx, &contractpb.ListStaleEventsRequest{
		Status:    string(status),
		OlderThan: toTimestamp(olderThan),
		Limit:     int32(limit),
	})
	if err != nil {
		return nil, fromStatus(err)
	}
	return eventsFromPB(out.GetEvents()), nil
}

func (c *Client) RequeueDeadLetter(ctx context.Context, id, actor string) (eventstore.Event, error) {
	out, err := c.rpc.RequeueDeadLetter(ctx, &contractpb.RequeueDeadLetterRequest{Id: id, Actor: actor})
	if err != nil {
		return eventstore.Event{}, fromStatus(err)
	}
	return eventFromPB(out.GetEvent()), nil
}

func (c *Client) CreateRetryAttempt(ctx context.Context, eventID string, scheduledFor time.Time, detail string) (eventstore.RetryAttempt, error) {
	out, err := c.rpc.CreateRetryAttempt(ctx, &contractpb.CreateRetryAttemptRequest{
		EventId:      eventID,
		ScheduledFor: toTimestamp(scheduledFor),
		Detail:       detail,
	})
	if err != nil {
		return eventstore.RetryAttempt{}, fromStatus(err)
	}
	return attemptFromPB(out.GetAttempt()), nil
}

func (c *Client) ListRetryAttempts(ctx context.Context, eventID string) ([]eventstore.RetryAttempt, error) {
	out, err := c.rpc.ListRetryAttempts(ctx, &contractpb.ListRetryAttemptsRequest{EventId: eventID})
	if err != nil {
		return nil, fromStatus(err)
	}
	return attemptsFromPB(out.GetAttempts()), nil
}

func (c *Client) ListDueRetries(ctx context.Context, now time.Time, limit int) ([]eventstore.RetryAttempt, error) {
	out, err := c.rpc.ListDueRetries(ctx, &contractpb.ListDueRetriesRequest{Now: toTimestamp(now), Limit: int32(limit)})
	if err != nil {
		return nil, fromStatus(err)
	}
	return attemptsFromPB(out.GetAttempts()), nil
}

func (c *Client) MarkRetryDispatched(ctx context.Context, attemptID string) error {
	_, err := c.rpc.MarkRetryDispatched(ctx, &contractpb.MarkRetryDispatchedRequest{AttemptId: attemptID})
	return fromStatus(err)
}
