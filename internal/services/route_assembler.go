package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
	"waypoint-route-service/internal/domain"
	"waypoint-route-service/internal/platform/obs"
	"waypoint-route-service/internal/ports"

	log "github.com/sirupsen/logrus"
)

// DefaultRoutingTimeout bounds how long one route request may block.
const DefaultRoutingTimeout = 5 * time.Second

// Where the path of an AssembledRoute came from.
type RouteSource string

const (
	// Fewer than two waypoints: no line is drawn.
	RouteSourceNone RouteSource = "none"
	// Road geometry returned by the routing provider.
	RouteSourceStreet RouteSource = "street"
	// The sorted waypoint coordinates joined directly.
	RouteSourceStraightLine RouteSource = "straight_line"
)

// The display-ready result of one assembly: markers/rows come from Waypoints,
// the route line from Path.
type AssembledRoute struct {
	Waypoints []domain.Waypoint
	Path      []domain.Coordinates
	Source    RouteSource
}

// DrawLine reports whether the path should be rendered as a line.
func (r AssembledRoute) DrawLine() bool { return len(r.Path) >= 2 && r.Source != RouteSourceNone }

// RouteAssembler orders waypoints by schedule and derives the path to display.
// It keeps no state between calls; each call works on the snapshot it is given.
type RouteAssembler struct {
	Provider ports.RoutingProvider // nil disables street routing
	Timeout  time.Duration
}

func NewRouteAssembler(provider ports.RoutingProvider, timeout time.Duration) *RouteAssembler {
	if timeout <= 0 {
		timeout = DefaultRoutingTimeout
	}
	return &RouteAssembler{Provider: provider, Timeout: timeout}
}

// SortWaypoints returns a copy of waypoints stably sorted by date then time.
// Waypoints with equal keys keep their insertion order.
func SortWaypoints(waypoints []domain.Waypoint) []domain.Waypoint {
	sorted := slices.Clone(waypoints)
	slices.SortStableFunc(sorted, domain.CompareSchedule)
	return sorted
}

func straightLine(waypoints []domain.Waypoint) []domain.Coordinates {
	path := make([]domain.Coordinates, 0, len(waypoints))
	for _, w := range waypoints {
		path = append(path, w.Location)
	}
	return path
}

// Assemble sorts the waypoints and computes the route path.
//
// With two or more waypoints a street path is requested from the provider.
// Any provider failure (timeout, bad status, malformed geometry) degrades to
// the straight-line path through the sorted waypoints; it is logged, not returned.
func (a *RouteAssembler) Assemble(ctx context.Context, waypoints []domain.Waypoint) AssembledRoute {
	sorted := SortWaypoints(waypoints)
	stops := straightLine(sorted)

	if len(sorted) < 2 {
		return AssembledRoute{Waypoints: sorted, Path: stops, Source: RouteSourceNone}
	}

	path, err := a.streetPath(ctx, stops)
	if err != nil {
		log.WithFields(log.Fields{
			"req_id": obs.RequestID(ctx),
			"stops":  len(stops),
		}).WithError(err).Warn("street routing unavailable, using straight line")

		return AssembledRoute{Waypoints: sorted, Path: stops, Source: RouteSourceStraightLine}
	}

	return AssembledRoute{Waypoints: sorted, Path: path, Source: RouteSourceStreet}
}

var errNoProvider = errors.New("no routing provider configured")

// streetPath asks the provider for road geometry under the assembler's timeout
// and validates what comes back.
func (a *RouteAssembler) streetPath(ctx context.Context, stops []domain.Coordinates) ([]domain.Coordinates, error) {
	if a.Provider == nil {
		return nil, errNoProvider
	}

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = DefaultRoutingTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	path, err := a.Provider.Route(ctx, stops)
	if err != nil {
		return nil, fmt.Errorf("street path: %w", err)
	}

	if len(path) < 2 {
		return nil, fmt.Errorf("street path: geometry has %d points, need at least 2", len(path))
	}
	for i, c := range path {
		if !c.IsFinite() {
			return nil, fmt.Errorf("street path: point %d is not finite", i)
		}
	}

	return path, nil
}
