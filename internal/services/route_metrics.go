package services

import (
	"route-compare-service/internal/domain"
)

// EmissionCoefficients convert route length into fuel and CO2 figures.
// Both values are caller-supplied and unbounded; a nonsensical coefficient
// yields nonsensical but well-defined output.
type EmissionCoefficients struct {
	LitersPerKm   float64
	KgCo2PerLiter float64
}

// CompareRoutes computes the savings of the optimized plan over the
// baseline plan for one selection.
//
// Saved quantities are clamped to non-negative: an optimized plan that is
// worse than baseline reports zero savings, never negative. A zero-length
// baseline yields a zero percentage, never a division error.
func CompareRoutes(baseline, optimized []domain.Stop, coef EmissionCoefficients) domain.RouteMetrics {
	baseKm := domain.RouteLengthKm(baseline)
	optKm := domain.RouteLengthKm(optimized)

	savedKm := clamp(baseKm - optKm)

	var savedPct float64
	if baseKm > 0 {
		savedPct = savedKm / baseKm * 100
	}

	baseFuel := baseKm * coef.LitersPerKm
	optFuel := optKm * coef.LitersPerKm

	baseCo2 := baseFuel * coef.KgCo2PerLiter
	optCo2 := optFuel * coef.KgCo2PerLiter

	return domain.RouteMetrics{
		BaselineKm:  baseKm,
		OptimizedKm: optKm,
		SavedKm:     savedKm,
		SavedPct:    savedPct,

		BaselineFuelL:  baseFuel,
		OptimizedFuelL: optFuel,
		FuelSavedL:     clamp(baseFuel - optFuel),

		BaselineCo2Kg:  baseCo2,
		OptimizedCo2Kg: optCo2,
		Co2SavedKg:     clamp(baseCo2 - optCo2),

		BaselineStops:  len(baseline),
		OptimizedStops: len(optimized),
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
