package dto

type MetricsResponse struct {
	BaselineKm  float64 `json:"baseline_km"`
	OptimizedKm float64 `json:"optimized_km"`
	SavedKm     float64 `json:"saved_km"`
	SavedPct    float64 `json:"saved_pct"`

	BaselineFuelL  float64 `json:"baseline_fuel_l"`
	OptimizedFuelL float64 `json:"optimized_fuel_l"`
	FuelSavedL     float64 `json:"fuel_saved_l"`

	BaselineCo2Kg  float64 `json:"baseline_co2_kg"`
	OptimizedCo2Kg float64 `json:"optimized_co2_kg"`
	Co2SavedKg     float64 `json:"co2_saved_kg"`

	BaselineStops  int `json:"baseline_stops"`
	OptimizedStops int `json:"optimized_stops"`
}

// MarkerResponse carries the popup metadata the map widget renders for one
// stop.
type MarkerResponse struct {
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	StopOrder    float64 `json:"stop_order"`
	Neighborhood string  `json:"neighborhood"`
	VehicleID    string  `json:"vehicle_id"`
	Date         string  `json:"date"`
}

// GeometryResponse is one plan's display geometry: an ordered [lat, lon]
// polyline (road-snapped when the routing service cooperated) plus the
// plan's stop markers.
type GeometryResponse struct {
	Path        [][2]float64     `json:"path"`
	RoadSnapped bool             `json:"road_snapped"`
	Markers     []MarkerResponse `json:"markers"`
}

type MapViewResponse struct {
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
	Zoom      int     `json:"zoom"`
}

type RouteComparisonResponse struct {
	Date      string            `json:"date"`
	VehicleID string            `json:"vehicle_id"`
	View      string            `json:"view"`
	Metrics   MetricsResponse   `json:"metrics"`
	Baseline  *GeometryResponse `json:"baseline,omitempty"`
	Optimized *GeometryResponse `json:"optimized,omitempty"`
	Map       MapViewResponse   `json:"map"`
}
