package domain

import (
	"testing"
)

func mustWaypoint(t *testing.T, label, coords, tod string) Waypoint {
	t.Helper()

	w, err := NewWaypoint(WaypointInput{Label: label, Coordinates: coords, Time: tod})
	if err != nil {
		t.Fatalf("build waypoint %q: %v", label, err)
	}
	return w
}

func labels(ws []Waypoint) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Label)
	}
	return out
}

func TestWaypointStoreRemoveMiddle(t *testing.T) {
	store := NewWaypointStore()

	store.Add(mustWaypoint(t, "first", "1, 1", "08:00"))
	second := store.Add(mustWaypoint(t, "second", "2, 2", "09:00"))
	store.Add(mustWaypoint(t, "third", "3, 3", "10:00"))

	if !store.RemoveByID(second) {
		t.Fatalf("RemoveByID(%q) = false, want true", second)
	}

	got := labels(store.List())
	if len(got) != 2 || got[0] != "first" || got[1] != "third" {
		t.Fatalf("remaining = %v, want [first third]", got)
	}
	for _, w := range store.List() {
		if w.ID == second {
			t.Fatalf("removed id %q still present", second)
		}
	}
}

func TestWaypointStoreRemoveUnknownIsNoop(t *testing.T) {
	store := NewWaypointStore()
	store.Add(mustWaypoint(t, "only", "1, 1", "08:00"))

	if store.RemoveByID("does-not-exist") {
		t.Fatal("RemoveByID on unknown id returned true")
	}
	if store.Len() != 1 {
		t.Fatalf("len = %d, want 1", store.Len())
	}
}

func TestWaypointStoreRemoveIdenticalRecords(t *testing.T) {
	store := NewWaypointStore()

	// Structurally identical stops must still be removable one at a time.
	a := store.Add(mustWaypoint(t, "dup", "1, 1", "08:00"))
	store.Add(mustWaypoint(t, "dup", "1, 1", "08:00"))

	store.RemoveByID(a)

	remaining := store.List()
	if len(remaining) != 1 {
		t.Fatalf("len = %d, want 1", len(remaining))
	}
	if remaining[0].ID == a {
		t.Fatalf("wrong duplicate removed")
	}
}

func TestWaypointStoreClear(t *testing.T) {
	store := NewWaypointStore()
	id := store.Add(mustWaypoint(t, "a", "1, 1", "08:00"))
	store.Add(mustWaypoint(t, "b", "2, 2", "09:00"))

	store.Clear()

	if store.Len() != 0 || len(store.List()) != 0 {
		t.Fatalf("store not empty after Clear: %v", store.List())
	}
	if store.RemoveByID(id) {
		t.Fatal("RemoveByID after Clear returned true")
	}
	if len(store.List()) != 0 {
		t.Fatal("store not empty after RemoveByID on cleared store")
	}
}

func TestWaypointStoreListIsSnapshot(t *testing.T) {
	store := NewWaypointStore()
	store.Add(mustWaypoint(t, "a", "1, 1", "08:00"))

	snap := store.List()
	snap[0].Label = "changed"

	if store.List()[0].Label != "a" {
		t.Fatal("mutating the snapshot changed the store")
	}
}
