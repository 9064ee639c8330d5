// Package events is the in-process lifecycle feed: every status change a
// webhook event goes through is published here and fanned out to operator
// subscribers (the SSE endpoint).
package events

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Lifecycle event types.
const (
	TypeReceived       = "event.received"
	TypeRejected       = "event.rejected"
	TypeDuplicate      = "event.duplicate"
	TypeProcessing     = "event.processing"
	TypeSucceeded      = "event.succeeded"
	TypeFailed         = "event.failed"
	TypeRetryScheduled = "event.retry_scheduled"
	TypeRetryDue       = "event.retry_due"
	TypeDeadLetter     = "event.dead_lettered"
	TypeRequeued       = "event.requeued"
	TypeProviderChange = "provider.changed"
)

// Event is one entry on the feed.
type Event struct {
	ID   int64           `json:"id"`
	Type string          `json:"type"`
	At   time.Time       `json:"at"`
	Data json.RawMessage `json:"data"`
}

// Lifecycle is the payload carried by event.* entries.
type Lifecycle struct {
	EventID    string `json:"event_id"`
	TenantID   string `json:"tenant_id,omitempty"`
	Provider   string `json:"provider,omitempty"`
	Status     string `json:"status,omitempty"`
	RetryCount int    `json:"retry_count,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

// Publisher is what producers depend on. A nil *Hub is a valid no-op
// Publisher.
type Publisher interface {
	Publish(eventType string, data any)
}

// Hub is an in-memory pub/sub with a ring buffer so late subscribers can
// catch up from a Last-Event-ID.
type Hub struct {
	nextID atomic.Int64
	now    func() time.Time

	mu    sync.Mutex
	ring  []Event
	start int
	size  int

	subs      map[int]chan Event
	nextSubID int
}

func NewHub(capacity int) *Hub {
	if capacity <= 0 {
		capacity = 256
	}
	return &Hub{
		now:  time.Now,
		ring: make([]Event, capacity),
		subs: make(map[int]chan Event),
	}
}

func (h *Hub) Publish(eventType string, data any) {
	if h == nil {
		return
	}
	payload := json.RawMessage("{}")
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			payload = b
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	ev := Event{
		ID:   h.nextID.Add(1),
		Type: eventType,
		At:   h.now().UTC(),
		Data: payload,
	}
	h.push(ev)
	for _, ch := range h.subs {
		// slow subscribers drop, producers never block
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a buffered subscriber. The returned func unsubscribes
// and closes the channel; calling it twice is safe.
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 128
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSubID
	h.nextSubID++
	ch := make(chan Event, buffer)
	h.subs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
}

// Subscribers reports the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Since returns buffered events with ID > lastID, oldest first.
func (h *Hub) Since(lastID int64) []Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Event, 0, h.size)
	for i := 0; i < h.size; i++ {
		ev := h.ring[(h.start+i)%len(h.ring)]
		if ev.ID > lastID {
			out = append(out, ev)
		}
	}
	return out
}

func (h *Hub) push(ev Event) {
	capacity := len(h.ring)
	if h.size < capacity {
		h.ring[(h.start+h.size)%capacity] = ev
		h.size++
		return
	}
	h.ring[h.start] = ev
	h.start = (h.start + 1) % capacity
}
