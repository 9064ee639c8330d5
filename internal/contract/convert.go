package contract

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mattjoyce/hookrelay/internal/contract/contractpb"
	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/signature"
)

// Zero times travel as absent timestamps so they come back as zero times.
func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func toOptionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return toTimestamp(*t)
}

func fromOptionalTimestamp(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func providerToPB(p directory.Provider) *contractpb.Provider {
	return &contractpb.Provider{
		Id:           p.ID,
		TenantId:     p.TenantID,
		TenantSlug:   p.TenantSlug,
		Kind:         string(p.Kind),
		Active:       p.Active,
		TenantActive: p.TenantActive,
		HasSecret:    p.HasSecret,
		ForwardUrl:   p.ForwardURL,
		CreatedAt:    toTimestamp(p.CreatedAt),
		UpdatedAt:    toTimestamp(p.UpdatedAt),
	}
}

func providerFromPB(p *contractpb.Provider) directory.Provider {
	if p == nil {
		return directory.Provider{}
	}
	return directory.Provider{
		ID:           p.GetId(),
		TenantID:     p.GetTenantId(),
		TenantSlug:   p.GetTenantSlug(),
		Kind:         signature.Kind(p.GetKind()),
		Active:       p.GetActive(),
		TenantActive: p.GetTenantActive(),
		HasSecret:    p.GetHasSecret(),
		ForwardURL:   p.GetForwardUrl(),
		CreatedAt:    fromTimestamp(p.GetCreatedAt()),
		UpdatedAt:    fromTimestamp(p.GetUpdatedAt()),
	}
}

func eventToPB(ev eventstore.Event) *contractpb.Event {
	return &contractpb.Event{
		Id:              ev.ID,
		TenantId:        ev.TenantID,
		ProviderId:      ev.ProviderID,
		ProviderKind:    string(ev.ProviderKind),
		ExternalEventId: ev.ExternalEventID,
		Payload:         ev.Payload,
		PayloadDigest:   ev.PayloadDigest,
		Signature:       ev.Signature,
		SignatureValid:  ev.SignatureValid,
		Status:          string(ev.Status),
		RetryCount:      int32(ev.RetryCount),
		LastError:       ev.LastError,
		ReceivedAt:      toTimestamp(ev.ReceivedAt),
		ProcessedAt:     toOptionalTimestamp(ev.ProcessedAt),
		UpdatedAt:       toTimestamp(ev.UpdatedAt),
	}
}

func eventFromPB(ev *contractpb.Event) eventstore.Event {
	if ev == nil {
		return eventstore.Event{}
	}
	return eventstore.Event{
		ID:              ev.GetId(),
		TenantID:        ev.GetTenantId(),
		ProviderID:      ev.GetProviderId(),
		ProviderKind:    signature.Kind(ev.GetProviderKind()),
		ExternalEventID: ev.GetExternalEventId(),
		Payload:         ev.GetPayload(),
		PayloadDigest:   ev.GetPayloadDigest(),
		Signature:       ev.GetSignature(),
		SignatureValid:  ev.GetSignatureValid(),
		Status:          eventstore.Status(ev.GetStatus()),
		RetryCount:      int(ev.GetRetryCount()),
		LastError:       ev.GetLastError(),
		ReceivedAt:      fromTimestamp(ev.GetReceivedAt()),
		ProcessedAt:     fromOptionalTimestamp(ev.GetProcessedAt()),
		UpdatedAt:       fromTimestamp(ev.GetUpdatedAt()),
	}
}

func eventsToPB(evs []eventstore.Event) []*contractpb.Event {
	out := make([]*contractpb.Event, 0, len(evs))
	for _, ev := range evs {
		out = append(out, eventToPB(ev))
	}
	return out
}

func eventsFromPB(evs []*contractpb.Event) []eventstore.Event {
	out := make([]eventstore.Event, 0, len(evs))
	for _, ev := range evs {
		out = append(out, eventFromPB(ev))
	}
	return out
}

func attemptToPB(a eventstore.RetryAttempt) *contractpb.RetryAttempt {
	return &contractpb.RetryAttempt{
		Id:            a.ID,
		EventId:       a.EventID,
		AttemptNumber: int32(a.AttemptNumber),
		ScheduledFor:  toTimestamp(a.ScheduledFor),
		ErrorDetail:   a.ErrorDetail,
		Outcome:       string(a.Outcome),
		CreatedAt:     toTimestamp(a.CreatedAt),
		DispatchedAt:  toOptionalTimestamp(a.DispatchedAt),
	}
}

func attemptFromPB(a *contractpb.RetryAttempt) eventstore.RetryAttempt {
	if a == nil {
		return eventstore.RetryAttempt{}
	}
	return eventstore.RetryAttempt{
		ID:            a.GetId(),
		EventID:       a.GetEventId(),
		AttemptNumber: int(a.GetAttemptNumber()),
		ScheduledFor:  fromTimestamp(a.GetScheduledFor()),
		ErrorDetail:   a.GetErrorDetail(),
		Outcome:       eventstore.Outcome(a.GetOutcome()),
		CreatedAt:     fromTimestamp(a.GetCreatedAt()),
		DispatchedAt:  fromOptionalTimestamp(a.GetDispatchedAt()),
	}
}

func attemptsToPB(as []eventstore.RetryAttempt) []*contractpb.RetryAttempt {
	out := make([]*contractpb.RetryAttempt, 0, len(as))
	for _, a := range as {
		out = append(out, attemptToPB(a))
	}
	return out
}

func attemptsFromPB(as []*contractpb.RetryAttempt) []eventstore.RetryAttempt {
	out := make([]eventstore.RetryAttempt, 0, len(as))
	for _, a := range as {
		out = append(out, attemptFromPB(a))
	}
	return out
}
