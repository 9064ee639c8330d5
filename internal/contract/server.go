package contract

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"

	"github.com/mattjoyce/hookrelay/internal/contract/contractpb"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "hookrelay.contract.v1.Store"

// Server exposes a Store over gRPC. Only clients presenting a certificate
// signed by the configured CA are accepted.
type Server struct {
	contractpb.UnimplementedStoreServer

	store  Store
	grpc   *grpc.Server
	logger *slog.Logger
}

var _ contractpb.StoreServer = (*Server)(nil)

// NewServer builds a server around store using tlsCfg for mutual TLS.
func NewServer(store Store, tlsCfg *tls.Config, logger *slog.Logger) (*Server, error) {
	if tlsCfg == nil {
		return nil, errors.New("contract server requires a TLS config")
	}
	if tlsCfg.ClientAuth != tls.RequireAndVerifyClientCert {
		return nil, errors.New("contract server must require client certificates")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{store: store, logger: logger.With("component", "contract-server")}
	s.grpc = grpc.NewServer(
		grpc.Creds(credentials.NewTLS(tlsCfg)),
		grpc.ChainUnaryInterceptor(s.logCalls, mapErrors),
	)
	contractpb.RegisterStoreServer(s.grpc, s)
	return s, nil
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("contract server listening", "addr", lis.Addr().String())
		errCh <- s.grpc.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		stopped := make(chan struct{})
		go func() {
			s.grpc.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(5 * time.Second):
			s.grpc.Stop()
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("contract server: %w", err)
	}
}

// Start listens on addr and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, lis)
}

func (s *Server) logCalls(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	attrs := []any{"method", info.FullMethod, "duration_ms", time.Since(start).Milliseconds()}
	if err != nil {
		st, _ := status.FromError(err)
		s.logger.Warn("contract call failed", append(attrs, "code", st.Code().String(), "error", st.Message())...)
	} else {
		s.logger.Debug("contract call", attrs...)
	}
	return resp, err
}

// mapErrors turns domain errors returned by handlers into status errors.
func mapErrors(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		return nil, toStatus(err)
	}
	return resp, nil
}

func requireField(v, name string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", errInvalidArgument, name)
	}
	return nil
}

func (s *Server) GetProvider(ctx context.Context, r *contractpb.GetProviderRequest) (*contractpb.ProviderResponse, error) {
	if err := requireField(r.GetTenantSlug(), "tenant_slug"); err != nil {
		return nil, err
	}
	p, err := s.store.GetProvider(ctx, r.GetTenantSlug(), signature.Kind(r.GetKind()))
	if err != nil {
		return nil, err
	}
	return &contractpb.ProviderResponse{Provider: providerToPB(p)}, nil
}

func (s *Server) GetProviderByID(ctx context.Context, r *contractpb.GetProviderByIDRequest) (*contractpb.ProviderResponse, error) {
	if err := requireField(r.GetId(), "provider_id"); err != nil {
		return nil, err
	}
	p, err := s.store.GetProviderByID(ctx, r.GetId())
	if err != nil {
		return nil, err
	}
	return &contractpb.ProviderResponse{Provider: providerToPB(p)}, nil
}

func (s *Server) GetProviderSecret(ctx context.Context, r *contractpb.GetProviderSecretRequest) (*contractpb.GetProviderSecretResponse, error) {
	if err := requireField(r.GetTenantId(), "tenant_id"); err != nil {
		return nil, err
	}
	secret, err := s.store.GetProviderSecret(ctx, r.GetTenantId(), signature.Kind(r.GetKind()))
	if err != nil {
		return nil, err
	}
	return &contractpb.GetProviderSecretResponse{Secret: secret}, nil
}

func (s *Server) RotateProviderSecret(ctx context.Context, r *contractpb.RotateProviderSecretRequest) (*contractpb.ProviderResponse, error) {
	if err := requireField(r.GetTenantId(), "tenant_id"); err != nil {
		return nil, err
	}
	p, err := s.store.RotateProviderSecret(ctx, r.GetTenantId(), signature.Kind(r.GetKind()), r.GetSecret(), r.GetActor())
	if err != nil {
		return nil, err
	}
	return &contractpb.ProviderResponse{Provider: providerToPB(p)}, nil
}

func (s *Server) SetProviderActive(ctx context.Context, r *contractpb.SetProviderActiveRequest) (*contractpb.ProviderResponse, error) {
	if err := requireField(r.GetTenantId(), "tenant_id"); err != nil {
		return nil, err
	}
	p, err := s.store.SetProviderActive(ctx, r.GetTenantId(), signature.Kind(r.GetKind()), r.GetActive(), r.GetActor())
	if err != nil {
		return nil, err
	}
	return &contractpb.ProviderResponse{Provider: providerToPB(p)}, nil
}

func (s *Server) CreateWebhookEvent(ctx context.Context, r *contractpb.CreateWebhookEventRequest) (*contractpb.CreateWebhookEventResponse, error) {
	ev, dup, err := s.store.CreateWebhookEvent(ctx, eventstore.AdmitRequest{
		TenantID:        r.GetTenantId(),
		ProviderID:      r.GetProviderId(),
		ProviderKind:    signature.Kind(r.GetProviderKind()),
		ExternalEventID: r.GetExternalEventId(),
		Payload:         r.GetPayload(),
		Signature:       r.GetSignature(),
		SignatureValid:  r.GetSignatureValid(),
	})
	if err != nil {
		return nil, err
	}
	return &contractpb.CreateWebhookEventResponse{Event: eventToPB(ev), Duplicate: dup}, nil
}

func (s *Server) UpdateWebhookEventStatus(ctx context.Context, r *contractpb.UpdateWebhookEventStatusRequest) (*contractpb.EventResponse, error) {
	if err := requireField(r.GetId(), "id"); err != nil {
		return nil, err
	}
	ev, err := s.store.UpdateWebhookEventStatus(ctx, r.GetId(), eventstore.Status(r.GetStatus()), r.GetDetail())
	if err != nil {
		return nil, err
	}
	return &contractpb.EventResponse{Event: eventToPB(ev)}, nil
}

func (s *Server) GetWebhookEvent(ctx context.Context, r *contractpb.GetWebhookEventRequest) (*contractpb.EventResponse, error) {
	ev, err := s.store.GetWebhookEvent(ctx, r.GetId())
	if err != nil {
		return nil, err
	}
	return &contractpb.EventResponse{Event: eventToPB(ev)}, nil
}

func (s *Server) ListWebhookEvents(ctx context.Context, r *contractpb.ListWebhookEventsRequest) (*contractpb.EventsResponse, error) {
	if err := requireField(r.GetTenantId(), "tenant_id"); err != nil {
		return nil, err
	}
	evs, err := s.store.ListWebhookEvents(ctx, eventstore.Filter{
		TenantID: r.GetTenantId(),
		Status:   eventstore.Status(r.GetStatus()),
		Limit:    int(r.GetLimit()),
		Offset:   int(r.GetOffset()),
	})
	if err != nil {
		return nil, err
	}
	return &contractpb.EventsResponse{Events: eventsToPB(evs)}, nil
}

func (s *Server) ListStaleEvents(ctx context.Context, r *contractpb.ListStaleEventsRequest) (*contractpb.EventsResponse, error) {
	evs, err := s.store.ListStaleEvents(ctx, eventstore.Status(r.GetStatus()), fromTimestamp(r.GetOlderThan()), int(r.GetLimit()))
	if err != nil {
		return nil, err
	}
	return &contractpb.EventsResponse{Events: eventsToPB(evs)}, nil
}

func (s *Server) RequeueDeadLetter(ctx context.Context, r *contractpb.RequeueDeadLetterRequest) (*contractpb.EventResponse, error) {
	ev, err := s.store.RequeueDeadLetter(ctx, r.GetId(), r.GetActor())
	if err != nil {
		return nil, err
	}
	return &contractpb.EventResponse{Event: eventToPB(ev)}, nil
}

func (s *Server) CreateRetryAttempt(ctx context.Context, r *contractpb.CreateRetryAttemptRequest) (*contractpb.RetryAttemptResponse, error) {
	a, err := s.store.CreateRetryAttempt(ctx, r.GetEventId(), fromTimestamp(r.GetScheduledFor()), r.GetDetail())
	if err != nil {
		return nil, err
	}
	return &contractpb.RetryAttemptResponse{Attempt: attemptToPB(a)}, nil
}

func (s *Server) ListRetryAttempts(ctx context.Context, r *contractpb.ListRetryAttemptsRequest) (*contractpb.RetryAttemptsResponse, error) {
	as, err := s.store.ListRetryAttempts(ctx, r.GetEventId())
	if err != nil {
		return nil, err
	}
	return &contractpb.RetryAttemptsResponse{Attempts: attemptsToPB(as)}, nil
}

func (s *Server) ListDueRetries(ctx context.Context, r *contractpb.ListDueRetriesRequest) (*contractpb.RetryAttemptsResponse, error) {
	as, err := s.store.ListDueRetries(ctx, fromTimestamp(r.GetNow()), int(r.GetLimit()))
	if err != nil {
		return nil, err
	}
	return &contractpb.RetryAttemptsResponse{Attempts: attemptsToPB(as)}, nil
}

func (s *Server) MarkRetryDispatched(ctx context.Context, r *contractpb.MarkRetryDispatchedRequest) (*contractpb.MarkRetryDispatchedResponse, error) {
	if err := s.store.MarkRetryDispatched(ctx, r.GetAttemptId()); err != nil {
		return nil, err
	}
	return &contractpb.MarkRetryDispatchedResponse{}, nil
}
