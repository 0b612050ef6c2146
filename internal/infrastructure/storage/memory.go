// internal/infrastructure/storage/memory.go
package storage

import (
	"context"
	"sync"
)

// Memory is a process-local Store. Change events are delivered
// synchronously before Set and Delete return.
type Memory struct {
	*Hub

	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		Hub:  NewHub(),
		data: make(map[string]map[string]string),
	}
}

func (m *Memory) Get(_ context.Context, namespace, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[namespace][key]
	return value, ok, nil
}

func (m *Memory) Set(ctx context.Context, namespace, key, value string) error {
	m.mu.Lock()
	if m.data[namespace] == nil {
		m.data[namespace] = make(map[string]string)
	}
	m.data[namespace][key] = value
	m.mu.Unlock()

	m.Publish(Change{Namespace: namespace, Key: key, Origin: OriginFrom(ctx)})
	return nil
}

func (m *Memory) Delete(ctx context.Context, namespace, key string) error {
	m.mu.Lock()
	_, existed := m.data[namespace][key]
	delete(m.data[namespace], key)
	m.mu.Unlock()

	if existed {
		m.Publish(Change{Namespace: namespace, Key: key, Origin: OriginFrom(ctx)})
	}
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
