package services

import (
	"context"
	"log"
	"sync"

	"route-compare-service/internal/domain"
	"route-compare-service/internal/ports"
)

// RoutePaths is the display geometry for one selection: one polyline per
// plan, each either road-snapped or the straight-line fallback.
type RoutePaths struct {
	Baseline  []domain.LatLng
	Optimized []domain.LatLng

	BaselineSnapped  bool
	OptimizedSnapped bool
}

// PathEnricher resolves display geometry for the active selection,
// best-effort road-snapping each plan through a RoutePathProvider.
//
// Failures of any kind (network, bad status, unusable geometry) degrade to
// the straight-line polyline with an advisory log; the enricher never
// returns an error. Results for one selection are memoized so repeated
// lookups cost no further network calls. When the active selection changes
// while a lookup is in flight, the superseded result is discarded on
// arrival instead of overwriting the memo (generation token comparison).
type PathEnricher struct {
	provider ports.RoutePathProvider

	mu      sync.Mutex
	gen     uint64
	memoKey domain.RouteKey
	memo    *RoutePaths
}

func NewPathEnricher(provider ports.RoutePathProvider) *PathEnricher {
	return &PathEnricher{provider: provider}
}

// Paths returns display geometry for the selection identified by key.
// Both plans are resolved concurrently.
func (e *PathEnricher) Paths(ctx context.Context, key domain.RouteKey, baseline, optimized []domain.Stop) RoutePaths {
	e.mu.Lock()
	if e.memo != nil && e.memoKey == key {
		memo := *e.memo
		e.mu.Unlock()
		return memo
	}
	e.gen++
	token := e.gen
	e.mu.Unlock()

	var result RoutePaths
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Baseline, result.BaselineSnapped = e.resolve(ctx, key, "baseline", baseline)
	}()
	go func() {
		defer wg.Done()
		result.Optimized, result.OptimizedSnapped = e.resolve(ctx, key, "optimized", optimized)
	}()
	wg.Wait()

	e.mu.Lock()
	// A newer selection may have started while we were fetching; its memo
	// must not be overwritten by this stale result.
	if e.gen == token {
		e.memoKey = key
		e.memo = &result
	}
	e.mu.Unlock()

	return result
}

// resolve snaps one plan's stop sequence to the road network, falling back
// to the straight-line polyline on any failure. Sequences of fewer than two
// stops never trigger a lookup.
func (e *PathEnricher) resolve(ctx context.Context, key domain.RouteKey, plan string, stops []domain.Stop) ([]domain.LatLng, bool) {
	if len(stops) < 2 || e.provider == nil {
		return domain.StraightLine(stops), false
	}

	path, err := e.provider.GetRoutePath(ctx, domain.StraightLine(stops))
	if err != nil || len(path) < 2 {
		log.Printf(
			"road path lookup failed, using straight line: date=%s vehicle=%s plan=%s err=%v",
			key.Date, key.VehicleID, plan, err,
		)
		return domain.StraightLine(stops), false
	}

	return path, true
}
