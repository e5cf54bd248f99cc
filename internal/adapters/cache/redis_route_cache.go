package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

// RedisRouteCache keeps street paths in redis with a per-entry expiry.
type RedisRouteCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{Client: client, TTL: ttl}
}

func (r *RedisRouteCache) Get(
	ctx context.Context,
	key string,
) (_ []domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if r.Client == nil {
		return nil, false, errors.New("route cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get route cache: key must not be empty")
	}

	blob, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: redis get: %w", err)
	}

	path, err := decodePath(blob)
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: %w", err)
	}
	return path, true, nil
}

func (r *RedisRouteCache) Put(
	ctx context.Context,
	key string,
	path []domain.Coordinates,
) error {
	if r.Client == nil {
		return errors.New("route cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	blob, err := encodePath(path)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	if err := r.Client.Set(ctx, key, blob, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}
	return nil
}
