package osrm

import (
	"context"
	"errors"
	"sync"

	"route-compare-service/internal/domain"
)

// MockRoutePathProvider is a configurable in-memory RoutePathProvider for
// tests. Fn decides the outcome per call; when nil every call fails.
type MockRoutePathProvider struct {
	Fn func(ctx context.Context, points []domain.LatLng) ([]domain.LatLng, error)

	mu    sync.Mutex
	calls int
}

func (p *MockRoutePathProvider) GetRoutePath(ctx context.Context, points []domain.LatLng) ([]domain.LatLng, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.Fn == nil {
		return nil, errors.New("mock provider: no handler configured")
	}
	return p.Fn(ctx, points)
}

// Calls returns how many lookups the provider has served.
func (p *MockRoutePathProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
