package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"route-compare-service/internal/api/dto"
	"route-compare-service/internal/domain"
	"route-compare-service/internal/services"
)

// View mode values recognized by the routes endpoint.
const (
	viewBaseline  = "baseline"
	viewOptimized = "optimized"
	viewBoth      = "both"
)

// RouteHandler serves per-selection route comparisons: KPI metrics plus the
// display geometry the map widget consumes.
type RouteHandler struct {
	Optimized domain.RouteIndex
	Baseline  domain.RouteIndex
	Enricher  *services.PathEnricher

	DefaultCoefficients services.EmissionCoefficients
	DefaultCenter       domain.LatLng
	DefaultZoom         int
}

// Compare handles GET /api/routes.
//
// Required query parameters: date, vehicle. Optional: l_per_km and
// kg_co2_per_l override the configured coefficients (numeric, otherwise
// unbounded); view selects which plan geometries are included and defaults
// to "both". Metrics always cover both plans. An unknown selection is not
// an error: it yields zero metrics and empty geometry.
func (h *RouteHandler) Compare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	date := strings.TrimSpace(q.Get("date"))
	vehicle := strings.TrimSpace(q.Get("vehicle"))
	if date == "" || vehicle == "" {
		writeError(w, r, http.StatusBadRequest, "date and vehicle are required")
		return
	}

	view := q.Get("view")
	if view == "" {
		view = viewBoth
	}
	if view != viewBaseline && view != viewOptimized && view != viewBoth {
		writeError(w, r, http.StatusBadRequest, "view must be one of baseline, optimized, both")
		return
	}

	coef := h.DefaultCoefficients
	if raw := q.Get("l_per_km"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "l_per_km must be numeric")
			return
		}
		coef.LitersPerKm = v
	}
	if raw := q.Get("kg_co2_per_l"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "kg_co2_per_l must be numeric")
			return
		}
		coef.KgCo2PerLiter = v
	}

	key := domain.RouteKey{Date: date, VehicleID: vehicle}
	baseStops := h.Baseline.Stops(key)
	optStops := h.Optimized.Stops(key)

	metrics := services.CompareRoutes(baseStops, optStops, coef)
	paths := h.Enricher.Paths(r.Context(), key, baseStops, optStops)

	res := dto.RouteComparisonResponse{
		Date:      date,
		VehicleID: vehicle,
		View:      view,
		Metrics: dto.MetricsResponse{
			BaselineKm:  metrics.BaselineKm,
			OptimizedKm: metrics.OptimizedKm,
			SavedKm:     metrics.SavedKm,
			SavedPct:    metrics.SavedPct,

			BaselineFuelL:  metrics.BaselineFuelL,
			OptimizedFuelL: metrics.OptimizedFuelL,
			FuelSavedL:     metrics.FuelSavedL,

			BaselineCo2Kg:  metrics.BaselineCo2Kg,
			OptimizedCo2Kg: metrics.OptimizedCo2Kg,
			Co2SavedKg:     metrics.Co2SavedKg,

			BaselineStops:  metrics.BaselineStops,
			OptimizedStops: metrics.OptimizedStops,
		},
		Map: h.mapView(optStops, baseStops),
	}

	if view == viewBaseline || view == viewBoth {
		res.Baseline = geometry(baseStops, paths.Baseline, paths.BaselineSnapped)
	}
	if view == viewOptimized || view == viewBoth {
		res.Optimized = geometry(optStops, paths.Optimized, paths.OptimizedSnapped)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// mapView frames the map on the first optimized stop, then the first
// baseline stop, then the configured default center.
func (h *RouteHandler) mapView(optStops, baseStops []domain.Stop) dto.MapViewResponse {
	center := h.DefaultCenter
	if len(optStops) > 0 {
		center = optStops[0].Point()
	} else if len(baseStops) > 0 {
		center = baseStops[0].Point()
	}

	return dto.MapViewResponse{
		CenterLat: center.Lat,
		CenterLon: center.Lon,
		Zoom:      h.DefaultZoom,
	}
}

func geometry(stops []domain.Stop, path []domain.LatLng, snapped bool) *dto.GeometryResponse {
	g := &dto.GeometryResponse{
		Path:        make([][2]float64, 0, len(path)),
		RoadSnapped: snapped,
		Markers:     make([]dto.MarkerResponse, 0, len(stops)),
	}

	for _, p := range path {
		g.Path = append(g.Path, [2]float64{p.Lat, p.Lon})
	}
	for _, s := range stops {
		g.Markers = append(g.Markers, dto.MarkerResponse{
			Lat:          s.Latitude,
			Lon:          s.Longitude,
			StopOrder:    s.StopOrder,
			Neighborhood: s.Neighborhood,
			VehicleID:    s.VehicleID,
			Date:         s.Date,
		})
	}

	return g
}
