package ports

import (
	"context"
	"waypoint-route-service/internal/domain"
)

// Contract for turning an ordered list of stops into a street-following path.
type RoutingProvider interface {
	// Return the road geometry visiting the given coordinates in order.
	// The result usually holds many more points than the input.
	Route(ctx context.Context, stops []domain.Coordinates) ([]domain.Coordinates, error)
}

// Optional extension reporting a stable provider name (used for cache keys and logs).
type NamedRoutingProvider interface {
	RoutingProvider
	Name() string
}
