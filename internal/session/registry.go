package session

import (
	"context"
	"sync"
	"time"
	"waypoint-route-service/internal/domain"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type entry struct {
	store    *domain.WaypointStore
	lastSeen time.Time
}

// Registry owns one WaypointStore per interactive session.
// A session starts empty on Create and ends on Delete or after sitting idle.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Create starts a session with an empty store and returns its id.
func (r *Registry) Create() string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[id] = &entry{store: domain.NewWaypointStore(), lastSeen: r.now()}
	return id
}

// Get returns the store for id and marks the session as active.
func (r *Registry) Get(id string) (*domain.WaypointStore, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.store, true
}

// Delete ends a session. Reports whether it existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many were removed.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval, maxIdle time.Duration) {
	if interval <= 0 || maxIdle <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(maxIdle); n > 0 {
				log.WithFields(log.Fields{"removed": n, "active": r.Len()}).Info("expired idle sessions")
			}
		}
	}
}
