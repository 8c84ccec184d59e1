package events

import (
	"context"
	"sync"
	"time"
)

// Operation is the kind of write that produced a change
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Change announces that a collection was written
type Change struct {
	Collection string    `json:"collection"`
	Op         Operation `json:"op"`
	ID         int64     `json:"id,omitempty"`
	At         time.Time `json:"at"`
}

// Publisher announces changes
type Publisher interface {
	Publish(ctx context.Context, change Change) error
}

// Bus is the change feed shared by the admin writers and the public mirror
type Bus interface {
	Publisher
	// Subscribe returns a channel of changes that is closed when ctx ends
	Subscribe(ctx context.Context) (<-chan Change, error)
}

// subscriberBuffer is the per-subscriber queue length; a full queue drops the event
const subscriberBuffer = 16

// Hub is an in-process Bus
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Change]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Change]struct{})}
}

// Publish fans the change out without blocking on slow subscribers
func (h *Hub) Publish(_ context.Context, change Change) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- change:
		default:
		}
	}
	return nil
}

func (h *Hub) Subscribe(ctx context.Context) (<-chan Change, error) {
	ch := make(chan Change, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}

// Subscribers returns the number of live subscriptions
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
