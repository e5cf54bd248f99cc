package routing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/ports"

	log "github.com/sirupsen/logrus"
)

// CachedProvider consults a RouteCache before delegating to the wrapped provider.
// Entries are keyed by the full ordered stop list, so any change to the stops
// misses the cache. Cache failures are logged and never fail a route.
type CachedProvider struct {
	next  ports.RoutingProvider
	cache ports.RouteCache
	name  string
}

func NewCachedProvider(next ports.RoutingProvider, cache ports.RouteCache) *CachedProvider {
	name := "provider"
	if np, ok := next.(ports.NamedRoutingProvider); ok {
		name = np.Name()
	}
	return &CachedProvider{next: next, cache: cache, name: name}
}

func (c *CachedProvider) Name() string { return c.name }

func (c *CachedProvider) Route(ctx context.Context, stops []domain.Coordinates) ([]domain.Coordinates, error) {
	key := CacheKey(c.name, stops)

	path, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("route cache read failed")
	} else if ok {
		return path, nil
	}

	path, err = c.next.Route(ctx, stops)
	if err != nil {
		return nil, err
	}

	// A path that cannot be drawn is returned for the caller to reject, but
	// not stored, so the next request asks the provider again.
	if len(path) < 2 {
		return path, nil
	}
	if err := c.cache.Put(ctx, key, path); err != nil {
		log.WithError(err).WithField("key", key).Warn("route cache write failed")
	}
	return path, nil
}

// CacheKey derives a fixed-length key from the provider name and ordered stops.
func CacheKey(provider string, stops []domain.Coordinates) string {
	var b strings.Builder
	b.WriteString(provider)
	for _, s := range stops {
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(s.Lat, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(s.Lon, 'f', -1, 64))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return "route:" + hex.EncodeToString(sum[:])
}
