// internal/infrastructure/storage/store.go
package storage

import (
	"context"
)

// Change describes a write to one key of a namespace.
type Change struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	// Origin identifies the page session that made the write, if known.
	Origin string `json:"origin,omitempty"`
}

// Store is a string key-value store partitioned into namespaces. Each
// namespace behaves like the local storage of one browser: every tab
// sharing it sees the same values and is told about each write.
type Store interface {
	Get(ctx context.Context, namespace, key string) (string, bool, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace, key string) error
	// Subscribe registers fn for writes to namespace. The returned function
	// removes the subscription.
	Subscribe(namespace string, fn func(Change)) (unsubscribe func())
	Ping(ctx context.Context) error
	Close() error
}

// Bucket is a Store bound to one namespace.
type Bucket interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Watch(fn func(Change)) (unsubscribe func())
}

type scoped struct {
	store     Store
	namespace string
}

// Scope binds store to namespace.
func Scope(store Store, namespace string) Bucket {
	return &scoped{store: store, namespace: namespace}
}

func (s *scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.namespace, key)
}

func (s *scoped) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.namespace, key, value)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.namespace, key)
}

func (s *scoped) Watch(fn func(Change)) func() {
	return s.store.Subscribe(s.namespace, fn)
}

type originKey struct{}

// WithOrigin tags writes made with ctx as coming from the given page session.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey{}, origin)
}

// OriginFrom returns the page session recorded by WithOrigin.
func OriginFrom(ctx context.Context) string {
	origin, _ := ctx.Value(originKey{}).(string)
	return origin
}
