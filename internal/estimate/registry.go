package estimate

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// Registry keeps one Session per browser, keyed by a random id.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry
	deps     Deps
	now      func() time.Time
}

// NewRegistry creates an empty registry whose sessions share deps.
func NewRegistry(deps Deps) *Registry {
	return &Registry{
		sessions: make(map[string]*registryEntry),
		deps:     deps,
		now:      time.Now,
	}
}

// Create starts a session with the default estimate.
func (r *Registry) Create() (string, *Session) {
	id := uuid.NewString()
	s := NewSession(r.deps)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &registryEntry{session: s, lastSeen: r.now()}
	return id, s
}

// Lookup returns the session for id and marks it as used.
func (r *Registry) Lookup(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.session, true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Prune drops sessions unused for longer than maxIdle and returns how many
// were removed. Sessions with a request in flight are kept.
func (r *Registry) Prune(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.sessions {
		if !e.lastSeen.Before(cutoff) {
			continue
		}
		st := e.session.State()
		if st.Generate.Busy() || st.Optimize.Busy() {
			continue
		}
		delete(r.sessions, id)
		removed++
	}
	return removed
}

// PruneEvery runs Prune on every tick until ctx is done, reporting the number
// of live sessions after each pass.
func (r *Registry) PruneEvery(ctx context.Context, every, maxIdle time.Duration, report func(live int)) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Prune(maxIdle)
			if report != nil {
				report(r.Len())
			}
		}
	}
}
