package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishFansOut(t *testing.T) {
	h := NewHub(8)
	a, cancelA := h.Subscribe(4)
	b, cancelB := h.Subscribe(4)
	defer cancelA()
	defer cancelB()

	h.Publish(TypeSucceeded, Lifecycle{EventID: "ev-1", Status: "success"})

	for _, ch := range []<-chan Event{a, b} {
		select {
		case ev := <-ch:
			assert.Equal(t, TypeSucceeded, ev.Type)
			var lc Lifecycle
			require.NoError(t, json.Unmarshal(ev.Data, &lc))
			assert.Equal(t, "ev-1", lc.EventID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub(4)
	_, cancel := h.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			h.Publish(TypeReceived, nil)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestSinceUsesRing(t *testing.T) {
	h := NewHub(3)
	for i := 0; i < 5; i++ {
		h.Publish(TypeReceived, map[string]int{"n": i})
	}

	all := h.Since(0)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].ID)
	assert.Equal(t, int64(5), all[2].ID)

	tail := h.Since(4)
	require.Len(t, tail, 1)
	assert.Equal(t, int64(5), tail[0].ID)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	h := NewHub(2)
	ch, cancel := h.Subscribe(1)
	assert.Equal(t, 1, h.Subscribers())
	cancel()
	cancel()
	assert.Equal(t, 0, h.Subscribers())
	_, open := <-ch
	assert.False(t, open)
}

func TestNilHubPublishIsNoop(t *testing.T) {
	var h *Hub
	var p Publisher = h
	assert.NotPanics(t, func() { p.Publish(TypeFailed, nil) })
}
