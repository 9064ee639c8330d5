package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusRoundTripPreservesSentinels(t *testing.T) {
	for _, w := range wireErrors {
		t.Run(w.reason, func(t *testing.T) {
			wrapped := fmt.Errorf("layer: %w", w.err)
			st := toStatus(wrapped)
			assert.Equal(t, w.code, status.Code(st))

			back := fromStatus(st)
			assert.True(t, errors.Is(back, w.err), "got %v", back)
		})
	}
}

func TestFromStatusTransportErrors(t *testing.T) {
	assert.True(t, errors.Is(fromStatus(status.Error(codes.Unavailable, "connection refused")), ErrUnavailable))
	assert.True(t, errors.Is(fromStatus(status.Error(codes.DeadlineExceeded, "deadline")), ErrUnavailable))
	assert.True(t, errors.Is(fromStatus(status.Error(codes.Canceled, "bye")), context.Canceled))

	other := fromStatus(status.Error(codes.Internal, "disk on fire"))
	assert.Error(t, other)
	assert.False(t, errors.Is(other, ErrUnavailable))
	assert.Nil(t, fromStatus(nil))
}

func TestToStatusUnknownIsInternal(t *testing.T) {
	assert.Equal(t, codes.Internal, status.Code(toStatus(errors.New("boom"))))
	assert.Equal(t, codes.DeadlineExceeded, status.Code(toStatus(context.DeadlineExceeded)))
}
