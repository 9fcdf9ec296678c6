package registry

import "sync"

// snapshotBuffer is the per-subscriber channel depth. Registries publish
// one snapshot per mutation under their own lock, so subscribers observe
// every collection state in mutation order as long as they keep reading.
const snapshotBuffer = 256

// Hub broadcasts full collection snapshots to subscribed consumers.
// A subscriber that falls a whole buffer behind is closed rather than
// skipped, so a live stream never reorders or coalesces emissions.
type Hub[T any] struct {
	mu   sync.Mutex
	subs map[string]chan T
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[string]chan T)}
}

// Subscribe registers a consumer and returns its snapshot channel. The
// channel is closed on Unsubscribe or when the consumer stops draining.
func (h *Hub[T]) Subscribe(clientID string) <-chan T {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan T, snapshotBuffer)
	h.register(clientID, ch)
	return ch
}

// SubscribeWith registers a consumer and delivers initial as its first
// emission, without notifying any other subscriber.
func (h *Hub[T]) SubscribeWith(clientID string, initial T) <-chan T {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan T, snapshotBuffer)
	ch <- initial
	h.register(clientID, ch)
	return ch
}

// register installs ch under clientID, closing any channel a previous
// subscriber registered under the same id so its reader terminates.
func (h *Hub[T]) register(clientID string, ch chan T) {
	if old, ok := h.subs[clientID]; ok {
		close(old)
	}
	h.subs[clientID] = ch
}

// Unsubscribe removes a consumer and closes its channel.
func (h *Hub[T]) Unsubscribe(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[clientID]; ok {
		close(ch)
		delete(h.subs, clientID)
	}
}

// Publish delivers one snapshot to every subscriber.
func (h *Hub[T]) Publish(snapshot T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- snapshot:
		default:
			// Consumer stopped draining; terminate its stream instead
			// of silently dropping an emission.
			close(ch)
			delete(h.subs, id)
		}
	}
}

// Count returns the number of active subscribers.
func (h *Hub[T]) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
