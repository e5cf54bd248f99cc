package ports

import (
	"context"
	"waypoint-route-service/internal/domain"
)

// Port: persistent storage for street paths keyed by their exact input stops.
type RouteCache interface {
	// Return the cached path for key; ok is false on a miss.
	Get(ctx context.Context, key string) (path []domain.Coordinates, ok bool, err error)
	// Store the path for key, replacing any previous entry.
	Put(ctx context.Context, key string, path []domain.Coordinates) error
}
