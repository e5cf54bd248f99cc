package domain

import (
	"slices"
	"sync"
)

// WaypointStore is the ordered waypoint collection of one session.
// Records keep insertion order; sorting for display happens elsewhere.
// The store is safe for concurrent use.
type WaypointStore struct {
	mu        sync.Mutex
	waypoints []Waypoint
}

func NewWaypointStore() *WaypointStore {
	return &WaypointStore{}
}

// Append a waypoint to the end of the collection and return its id.
func (s *WaypointStore) Add(w Waypoint) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.waypoints = append(s.waypoints, w)
	return w.ID
}

// Remove the waypoint with the given id.
// Reports whether a record was removed; an unknown id is a no-op.
func (s *WaypointStore) RemoveByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.waypoints, func(w Waypoint) bool { return w.ID == id })
	if i < 0 {
		return false
	}
	s.waypoints = slices.Delete(s.waypoints, i, i+1)
	return true
}

// Remove all waypoints.
func (s *WaypointStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.waypoints = nil
}

// Return a copy of the waypoints in insertion order.
func (s *WaypointStore) List() []Waypoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.waypoints)
}

func (s *WaypointStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.waypoints)
}
