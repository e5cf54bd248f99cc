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

// SQLite backed cache of street paths.
// The route_cache table is created by repositories.InitSchema.
type SqliteRouteCache struct {
	DB  *sql.DB
	TTL time.Duration

	now func() time.Time
}

func NewSqliteRouteCache(db *sql.DB, ttl time.Duration) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db, TTL: ttl, now: time.Now}
}

// Fetch the cached path for key.
func (s *SqliteRouteCache) Get(
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
	SELECT
		geometry,
		created_at
	FROM route_cache
	WHERE cache_key = ?;
	`

	var blob []byte
	var createdAt int64
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&blob, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	if s.TTL > 0 && s.now().Sub(time.Unix(createdAt, 0)) > s.TTL {
		return nil, false, nil
	}

	path, err := decodePath(blob)
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: %w", err)
	}
	return path, true, nil
}

// Store the path for key.
func (s *SqliteRouteCache) Put(
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
	INSERT OR REPLACE INTO route_cache (
		cache_key,
		geometry,
		created_at
	)
	VALUES (?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, key, blob, s.now().Unix()); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
