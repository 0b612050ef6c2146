// internal/infrastructure/database/redis/store.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pawtopia/storefront/internal/infrastructure/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Store keeps namespaced values in Redis and relays writes between
// processes over a pub/sub channel, so tabs served by different instances
// still see each other's cart updates.
type Store struct {
	*storage.Hub

	client *redis.Client
	prefix string
	ttl    time.Duration
	log    logrus.FieldLogger

	mu     sync.Mutex
	pubsub *redis.PubSub
	done   chan struct{}
}

// NewStore creates a store on client. Keys live under "<prefix>:<ns>:<key>"
// and expire ttl after their last write; ttl 0 keeps them forever.
func NewStore(client *redis.Client, prefix string, ttl time.Duration, log logrus.FieldLogger) *Store {
	return &Store{
		Hub:    storage.NewHub(),
		client: client,
		prefix: prefix,
		ttl:    ttl,
		log:    log,
	}
}

func (s *Store) key(namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, namespace, key)
}

// Channel is the pub/sub channel carrying change events.
func (s *Store) Channel() string {
	return s.prefix + ":changes"
}

// Start subscribes to the change channel and relays events to local
// subscribers until ctx is done or Close is called.
func (s *Store) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pubsub != nil {
		return nil
	}

	pubsub := s.client.Subscribe(ctx, s.Channel())
	// Wait for confirmation so no publish issued after Start is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", s.Channel(), err)
	}

	s.pubsub = pubsub
	s.done = make(chan struct{})
	go s.relay(ctx, pubsub.Channel(), s.done)
	return nil
}

func (s *Store) relay(ctx context.Context, messages <-chan *redis.Message, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			var change storage.Change
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				s.log.WithError(err).Debug("Dropping malformed change event")
				continue
			}
			s.Publish(change)
		}
	}
}

func (s *Store) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(namespace, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, namespace, key, value string) error {
	event, err := json.Marshal(storage.Change{Namespace: namespace, Key: key, Origin: storage.OriginFrom(ctx)})
	if err != nil {
		return fmt.Errorf("failed to encode change event: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(namespace, key), value, s.ttl)
	pipe.Publish(ctx, s.Channel(), event)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, namespace, key string) error {
	removed, err := s.client.Del(ctx, s.key(namespace, key)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	if removed == 0 {
		return nil
	}

	event, err := json.Marshal(storage.Change{Namespace: namespace, Key: key, Origin: storage.OriginFrom(ctx)})
	if err != nil {
		return fmt.Errorf("failed to encode change event: %w", err)
	}
	if err := s.client.Publish(ctx, s.Channel(), event).Err(); err != nil {
		return fmt.Errorf("failed to publish delete of %s: %w", key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close stops relaying change events. The underlying client stays open.
func (s *Store) Close() error {
	s.mu.Lock()
	pubsub, done := s.pubsub, s.done
	s.pubsub, s.done = nil, nil
	s.mu.Unlock()

	if pubsub == nil {
		return nil
	}
	err := pubsub.Close()
	<-done
	return err
}
