package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/platform/obs"
)

// SQLRouteCache is a postgres-backed cache of street paths.
// Entries older than TTL are treated as misses; a zero TTL never expires.
type SQLRouteCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLRouteCache(db *sql.DB, ttl time.Duration) *SQLRouteCache {
	return &SQLRouteCache{DB: db, TTL: ttl}
}

// Create the route_cache table when missing.
func (s *SQLRouteCache) EnsureSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS route_cache (
		cache_key TEXT PRIMARY KEY,
		geometry BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("route cache: create table: %w", err)
	}
	return nil
}

// Fetch the cached path for key.
func (s *SQLRouteCache) Get(
	ctx context.Context,
	key string,
) (_ []domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT geometry, created_at
	FROM route_cache
	WHERE cache_key = $1;
	`

	var blob []byte
	var createdAt time.Time
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&blob, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	if s.TTL > 0 && time.Since(createdAt) > s.TTL {
		return nil, false, nil
	}

	path, err := decodePath(blob)
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: %w", err)
	}
	return path, true, nil
}

// Store the path for key.
func (s *SQLRouteCache) Put(
	ctx context.Context,
	key string,
	path []domain.Coordinates,
) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	blob, err := encodePath(path)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	q := `
	INSERT INTO route_cache (cache_key, geometry, created_at)
	VALUES ($1, $2, now())
	ON CONFLICT (cache_key) DO UPDATE
	SET geometry = EXCLUDED.geometry,
		created_at = EXCLUDED.created_at;
	`
	if _, err := s.DB.ExecContext(ctx, q, key, blob); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
