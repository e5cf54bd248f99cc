package cache

import (
	"context"
	"testing"
	"time"
	"waypoint-route-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
)

func TestRedisRouteCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewRedisRouteCache(client, time.Hour)

	if _, ok, err := c.Get(ctx, "route:abc"); err != nil || ok {
		t.Fatalf("Get on empty cache = ok:%v err:%v, want miss", ok, err)
	}

	path := []domain.Coordinates{{Lat: -2.91, Lon: -79.01}, {Lat: -2.9, Lon: -79.0}}
	if err := c.Put(ctx, "route:abc", path); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := c.Get(ctx, "route:abc")
	if err != nil || !ok {
		t.Fatalf("Get after Put = ok:%v err:%v", ok, err)
	}
	if diff := cmp.Diff(path, got); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}

	mr.FastForward(2 * time.Hour)

	if _, ok, _ := c.Get(ctx, "route:abc"); ok {
		t.Fatal("entry survived its TTL")
	}
}

func TestRedisRouteCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	if err := mr.Set("route:bad", "not wkb"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c := NewRedisRouteCache(client, 0)
	if _, _, err := c.Get(ctx, "route:bad"); err == nil {
		t.Fatal("expected decode error")
	}
}
