package routing

import (
	"context"
	"errors"
	"testing"
	"waypoint-route-service/internal/domain"

	"github.com/google/go-cmp/cmp"
)

type memoryRouteCache struct {
	entries map[string][]domain.Coordinates
	getErr  error
	puts    int
}

func (m *memoryRouteCache) Get(ctx context.Context, key string) ([]domain.Coordinates, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	p, ok := m.entries[key]
	return p, ok, nil
}

func (m *memoryRouteCache) Put(ctx context.Context, key string, path []domain.Coordinates) error {
	m.puts++
	m.entries[key] = path
	return nil
}

func TestCachedProviderServesRepeatsFromCache(t *testing.T) {
	street := []domain.Coordinates{{Lat: 1, Lon: 1}, {Lat: 1.5, Lon: 1.5}, {Lat: 2, Lon: 2}}
	next := &MockRoutingProvider{Path: street}
	cache := &memoryRouteCache{entries: map[string][]domain.Coordinates{}}
	provider := NewCachedProvider(next, cache)

	stops := []domain.Coordinates{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}

	for i := 0; i < 3; i++ {
		path, err := provider.Route(context.Background(), stops)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(street, path); diff != "" {
			t.Fatalf("path mismatch (-want +got):\n%s", diff)
		}
	}

	if next.Calls() != 1 {
		t.Fatalf("wrapped provider calls = %d, want 1", next.Calls())
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cache.puts)
	}
}

func TestCachedProviderBypassesBrokenCache(t *testing.T) {
	next := &MockRoutingProvider{Path: []domain.Coordinates{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}}
	cache := &memoryRouteCache{entries: map[string][]domain.Coordinates{}, getErr: errors.New("down")}
	provider := NewCachedProvider(next, cache)

	if _, err := provider.Route(context.Background(), []domain.Coordinates{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Calls() != 1 {
		t.Fatalf("wrapped provider calls = %d, want 1", next.Calls())
	}
}

func TestCachedProviderDoesNotCacheFailures(t *testing.T) {
	next := &MockRoutingProvider{Err: errors.New("unreachable")}
	cache := &memoryRouteCache{entries: map[string][]domain.Coordinates{}}
	provider := NewCachedProvider(next, cache)

	if _, err := provider.Route(context.Background(), []domain.Coordinates{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}); err == nil {
		t.Fatal("expected error")
	}
	if cache.puts != 0 {
		t.Fatalf("cache puts = %d, want 0", cache.puts)
	}
}

func TestCacheKey(t *testing.T) {
	a := []domain.Coordinates{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}}
	b := []domain.Coordinates{{Lat: 3, Lon: 4}, {Lat: 1, Lon: 2}}

	if CacheKey("osrm:driving", a) != CacheKey("osrm:driving", a) {
		t.Fatal("CacheKey is not deterministic")
	}
	if CacheKey("osrm:driving", a) == CacheKey("osrm:driving", b) {
		t.Fatal("reordered stops share a cache key")
	}
	if CacheKey("osrm:driving", a) == CacheKey("ors:driving-car", a) {
		t.Fatal("providers share a cache key")
	}
}

func TestCachedProviderSkipsUndrawablePaths(t *testing.T) {
	next := &MockRoutingProvider{Path: []domain.Coordinates{{Lat: 1, Lon: 1}}}
	cache := &memoryRouteCache{entries: map[string][]domain.Coordinates{}}
	provider := NewCachedProvider(next, cache)
	stops := []domain.Coordinates{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}

	for i := 0; i < 2; i++ {
		if _, err := provider.Route(context.Background(), stops); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if cache.puts != 0 {
		t.Fatalf("cache puts = %d, want 0", cache.puts)
	}
	if next.Calls() != 2 {
		t.Fatalf("wrapped provider calls = %d, want 2", next.Calls())
	}
}
