package domain

// Geographic point in display axis order (latitude first).
type LatLng struct {
	Lat float64
	Lon float64
}

// Return the point as [lon, lat] for external routing API compatibility.
func (p LatLng) LonLatList() []float64 { return []float64{p.Lon, p.Lat} }

// Represents one waypoint of a vehicle's route on a specific date.
// A Stop is only ever constructed from a record carrying a non-empty date,
// a non-empty vehicle id and finite coordinates; records failing that are
// dropped during normalization and never reach the index.
type Stop struct {
	Date         string
	VehicleID    string
	VehicleType  string
	StopOrder    float64
	Neighborhood string
	Latitude     float64
	Longitude    float64
}

// Point returns the stop position in display axis order.
func (s Stop) Point() LatLng { return LatLng{Lat: s.Latitude, Lon: s.Longitude} }

// RouteKey identifies one vehicle's route on one date.
// A tuple key with structural equality; dates and vehicle ids need no
// reserved delimiter characters.
type RouteKey struct {
	Date      string
	VehicleID string
}

// RouteIndex maps a route key to its stops ordered ascending by StopOrder.
// Built once per dataset load and treated as immutable afterwards. The
// baseline and optimized datasets each get their own independent index.
type RouteIndex map[RouteKey][]Stop

// Stops returns the ordered stop sequence for key, or nil when absent.
func (idx RouteIndex) Stops(key RouteKey) []Stop { return idx[key] }

// SelectionCatalog is the derived set of choosable (date, vehicle)
// combinations across two indices.
type SelectionCatalog struct {
	Dates          []string
	VehiclesByDate map[string][]string
}

// Vehicles returns the ordered vehicle ids selectable for date.
func (c SelectionCatalog) Vehicles(date string) []string { return c.VehiclesByDate[date] }

// RouteMetrics holds the per-selection comparison figures between the
// baseline and optimized plans. All "saved" quantities are clamped to zero
// from below: a plan worse than baseline reports zero savings.
type RouteMetrics struct {
	BaselineKm  float64
	OptimizedKm float64
	SavedKm     float64
	SavedPct    float64

	BaselineFuelL  float64
	OptimizedFuelL float64
	FuelSavedL     float64

	BaselineCo2Kg  float64
	OptimizedCo2Kg float64
	Co2SavedKg     float64

	BaselineStops  int
	OptimizedStops int
}
