package contract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mattjoyce/hookrelay/internal/directory"
	"github.com/mattjoyce/hookrelay/internal/eventstore"
	"github.com/mattjoyce/hookrelay/internal/secrets"
)

// ErrUnavailable is returned by Client when the remote tier cannot be
// reached or did not answer in time.
var ErrUnavailable = errors.New("contract: store unavailable")

// errInvalidArgument marks malformed requests rejected by the server.
var errInvalidArgument = errors.New("contract: invalid argument")

// wireErrors pairs each domain sentinel with its gRPC code and a stable
// reason token carried at the front of the status message.
var wireErrors = []struct {
	reason string
	code   codes.Code
	err    error
}{
	{"provider_not_found", codes.NotFound, directory.ErrNotFound},
	{"provider_conflict", codes.AlreadyExists, directory.ErrConflict},
	{"secret_not_found", codes.NotFound, secrets.ErrNotFound},
	{"vault_unavailable", codes.Unavailable, secrets.ErrUnavailable},
	{"event_not_found", codes.NotFound, eventstore.ErrNotFound},
	{"invalid_transition", codes.FailedPrecondition, eventstore.ErrInvalidTransition},
	{"retry_ceiling", codes.FailedPrecondition, eventstore.ErrRetryCeiling},
	{"invalid_argument", codes.InvalidArgument, errInvalidArgument},
}

// toStatus converts a domain error into a gRPC status error.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, w := range wireErrors {
		if errors.Is(err, w.err) {
			return status.Error(w.code, w.reason+": "+err.Error())
		}
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// fromStatus restores the domain sentinel from a gRPC error so callers can
// keep using errors.Is.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if reason, rest, found := strings.Cut(st.Message(), ": "); found {
		for _, w := range wireErrors {
			if w.reason == reason && w.code == st.Code() {
				return fmt.Errorf("%w (remote: %s)", w.err, rest)
			}
		}
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.Canceled:
		return fmt.Errorf("%w: %s", context.Canceled, st.Message())
	}
	return fmt.Errorf("contract: remote error (%s): %s", st.Code(), st.Message())
}
