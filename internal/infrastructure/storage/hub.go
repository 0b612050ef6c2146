// internal/infrastructure/storage/hub.go
package storage

import (
	"sync"
)

// Hub fans change events out to the subscribers of each namespace. Store
// implementations embed it.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]func(Change)
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[uint64]func(Change))}
}

// Subscribe registers fn for changes in namespace.
func (h *Hub) Subscribe(namespace string, fn func(Change)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	if h.subs[namespace] == nil {
		h.subs[namespace] = make(map[uint64]func(Change))
	}
	h.subs[namespace][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[namespace], id)
			if len(h.subs[namespace]) == 0 {
				delete(h.subs, namespace)
			}
		})
	}
}

// Publish calls every subscriber of change.Namespace. Subscribers run on the
// caller's goroutine, outside the hub lock, so they may write to the store.
func (h *Hub) Publish(change Change) {
	h.mu.RLock()
	fns := make([]func(Change), 0, len(h.subs[change.Namespace]))
	for _, fn := range h.subs[change.Namespace] {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		fn(change)
	}
}

// Subscribers returns the number of live subscriptions for namespace.
func (h *Hub) Subscribers(namespace string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[namespace])
}
