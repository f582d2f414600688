package domain

import "math"

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(a, b LatLng) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// RouteLengthKm returns the cumulative great-circle length across
// consecutive stops. Fewer than two stops yields 0; duplicate consecutive
// points contribute nothing.
func RouteLengthKm(stops []Stop) float64 {
	if len(stops) < 2 {
		return 0
	}

	var sum float64
	for i := 1; i < len(stops); i++ {
		sum += HaversineKm(stops[i-1].Point(), stops[i].Point())
	}
	return sum
}

// StraightLine returns the polyline implied by the stop sequence itself,
// used as display geometry whenever road-path enrichment is unavailable.
func StraightLine(stops []Stop) []LatLng {
	if len(stops) == 0 {
		return nil
	}

	line := make([]LatLng, 0, len(stops))
	for _, s := range stops {
		line = append(line, s.Point())
	}
	return line
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
