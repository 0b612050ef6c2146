// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/pawtopia/storefront/internal/infrastructure/storage"
	"github.com/sirupsen/logrus"
)

// Store reads and writes the cart of one storage namespace on behalf of one
// page session. Every mutation re-reads the persisted cart, changes it and
// writes it back; concurrent tabs overwrite each other, last write wins.
type Store struct {
	bucket storage.Bucket
	origin string
	log    logrus.FieldLogger

	mu        sync.Mutex
	nextID    int
	observers map[int]func()
	unwatch   func()
}

// NewStore creates a cart store. origin names the page session so that
// its own writes are not reported back to it as cross-tab changes.
func NewStore(bucket storage.Bucket, origin string, log logrus.FieldLogger) *Store {
	s := &Store{
		bucket:    bucket,
		origin:    origin,
		log:       log.WithField("component", "cart"),
		observers: make(map[int]func()),
	}
	s.unwatch = bucket.Watch(func(c storage.Change) {
		if c.Key == StorageKey && c.Origin != origin {
			s.notify()
		}
	})
	return s
}

// Close stops listening for cross-tab changes
func (s *Store) Close() {
	s.unwatch()
}

// Subscribe registers fn to run after every local save and every cart
// write made by another tab. The returned function removes it.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Load returns the persisted cart. Missing or malformed data yields an
// empty cart.
func (s *Store) Load(ctx context.Context) []LineItem {
	raw, ok, err := s.bucket.Get(ctx, StorageKey)
	if err != nil {
		s.log.WithError(err).Debug("Failed to read cart, treating as empty")
		return []LineItem{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []LineItem{}
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.WithError(err).Debug("Discarding malformed cart")
		return []LineItem{}
	}
	return normalize(items)
}

// Save writes items and notifies observers. A failed write is logged and
// otherwise ignored; items is returned either way.
func (s *Store) Save(ctx context.Context, items []LineItem) []LineItem {
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		s.log.WithError(err).Debug("Failed to encode cart")
	} else if err := s.bucket.Set(storage.WithOrigin(ctx, s.origin), StorageKey, string(data)); err != nil {
		s.log.WithError(err).Debug("Failed to save cart")
	}
	s.notify()
	return items
}

// AddItem merges qty of item into the line with the same slug, or appends
// a new line. qty below 1 counts as 1.
func (s *Store) AddItem(ctx context.Context, item LineItem, qty int) []LineItem {
	if qty < 1 {
		qty = 1
	}
	items := s.Load(ctx)
	if i := find(items, item.Slug); i >= 0 {
		items[i].Qty += qty
	} else {
		item.Qty = qty
		items = append(items, item)
	}
	return s.Save(ctx, items)
}

// ChangeQty adds delta to the quantity of slug, never going below 1.
// An unknown slug leaves the cart as it is.
func (s *Store) ChangeQty(ctx context.Context, slug string, delta int) []LineItem {
	items := s.Load(ctx)
	if i := find(items, slug); i >= 0 {
		items[i].Qty += delta
		if items[i].Qty < 1 {
			items[i].Qty = 1
		}
	}
	return s.Save(ctx, items)
}

// RemoveItem deletes the line for slug
func (s *Store) RemoveItem(ctx context.Context, slug string) []LineItem {
	items := s.Load(ctx)
	if i := find(items, slug); i >= 0 {
		items = append(items[:i], items[i+1:]...)
	}
	return s.Save(ctx, items)
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) []LineItem {
	return s.Save(ctx, []LineItem{})
}

func find(items []LineItem, slug string) int {
	for i, item := range items {
		if item.Slug == slug {
			return i
		}
	}
	return -1
}

// normalize restores the line invariants on data written by older or
// foreign code: no blank slugs, one line per slug, qty at least 1.
func normalize(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.Slug == "" {
			continue
		}
		if item.Qty < 1 {
			item.Qty = 1
		}
		if i := find(out, item.Slug); i >= 0 {
			out[i].Qty += item.Qty
			continue
		}
		out = append(out, item)
	}
	return out
}
