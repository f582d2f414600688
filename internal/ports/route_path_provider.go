package ports

import (
	"context"

	"route-compare-service/internal/domain"
)

// Contract for retrieving a road-snapped path visiting the given points in
// order. Implementations return points in display axis order (lat, lon).
//
// Providers are best-effort: a failed lookup is an error, and callers are
// expected to degrade to straight-line geometry rather than surface it.
type RoutePathProvider interface {
	// Return a road-following polyline through points, which must hold at
	// least two entries.
	GetRoutePath(ctx context.Context, points []domain.LatLng) ([]domain.LatLng, error)
}
