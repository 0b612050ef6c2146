// internal/domain/storefront/registry.go
package storefront

import (
	"context"
	"sync"
	"time"
)

// Registry keeps one session per browser tab and closes sessions that have
// been idle longer than the configured TTL
type Registry struct {
	deps Deps
	idle time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry
func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps:     deps,
		idle:     deps.Config.Session.IdleTTL,
		sessions: make(map[string]*Session),
	}
}

func registryKey(namespace, tab string) string {
	return namespace + "/" + tab
}

// Get returns the session of tab in namespace, opening it on first use
func (r *Registry) Get(ctx context.Context, namespace, tab string) *Session {
	key := registryKey(namespace, tab)

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[key]; ok {
		s.touch()
		return s
	}
	s := NewSession(ctx, r.deps, namespace, tab)
	r.sessions[key] = s
	r.deps.Log.WithField("session", key).Debug("Opened session")
	return s
}

// Len returns the number of open sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes sessions idle since before now minus the TTL and returns
// how many it closed
func (r *Registry) Sweep(now time.Time) int {
	if r.idle <= 0 {
		return 0
	}

	r.mu.Lock()
	var stale []*Session
	for key, s := range r.sessions {
		if now.Sub(s.LastSeen()) > r.idle {
			stale = append(stale, s)
			delete(r.sessions, key)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	if len(stale) > 0 {
		r.deps.Log.WithField("closed", len(stale)).Debug("Swept idle sessions")
	}
	return len(stale)
}

// Run sweeps every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.Sweep(now)
		}
	}
}

// Close closes every session
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
