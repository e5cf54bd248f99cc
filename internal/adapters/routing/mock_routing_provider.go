package routing

import (
	"context"
	"sync/atomic"
	"waypoint-route-service/internal/domain"
)

// MockRoutingProvider returns a fixed path or a fixed error.
// With Block set it waits for the context to end, simulating a hung service.
type MockRoutingProvider struct {
	Path  []domain.Coordinates
	Err   error
	Block bool

	calls atomic.Int64
}

func (p *MockRoutingProvider) Name() string { return "mock" }

func (p *MockRoutingProvider) Route(ctx context.Context, stops []domain.Coordinates) ([]domain.Coordinates, error) {
	p.calls.Add(1)

	if p.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if p.Err != nil {
		return nil, p.Err
	}

	out := make([]domain.Coordinates, len(p.Path))
	copy(out, p.Path)
	return out, nil
}

// Calls reports how many times Route was invoked.
func (p *MockRoutingProvider) Calls() int { return int(p.calls.Load()) }
