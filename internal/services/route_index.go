package services

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"route-compare-service/internal/domain"
	"route-compare-service/internal/ports"
)

// Dataset field names. The neighborhood column is "Mahalle" upstream;
// "neighborhood" is accepted as an alias.
const (
	fieldDate         = "date"
	fieldVehicleID    = "vehicle_id"
	fieldVehicleType  = "vehicle_type"
	fieldStopOrder    = "stop_order"
	fieldNeighborhood = "Mahalle"
	fieldNeighAlias   = "neighborhood"
	fieldLatitude     = "latitude"
	fieldLongitude    = "longitude"
)

// NormalizeRecord converts one raw record into a validated Stop.
//
// A record is rejected (ok=false) when its date or vehicle id is empty or
// its latitude/longitude does not parse to a finite number. Rejection is
// silent: dirty upstream rows are tolerated, not reported. A stop_order
// that fails to parse defaults to 0 and is never a rejection reason.
func NormalizeRecord(rec ports.RawRecord) (domain.Stop, bool) {
	date := strings.TrimSpace(rec[fieldDate])
	vehicleID := strings.TrimSpace(rec[fieldVehicleID])
	if date == "" || vehicleID == "" {
		return domain.Stop{}, false
	}

	lat := toNum(rec[fieldLatitude])
	lon := toNum(rec[fieldLongitude])
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return domain.Stop{}, false
	}

	order := toNum(rec[fieldStopOrder])
	if math.IsNaN(order) {
		order = 0
	}

	neighborhood := strings.TrimSpace(rec[fieldNeighborhood])
	if neighborhood == "" {
		neighborhood = strings.TrimSpace(rec[fieldNeighAlias])
	}

	return domain.Stop{
		Date:         date,
		VehicleID:    vehicleID,
		VehicleType:  strings.TrimSpace(rec[fieldVehicleType]),
		StopOrder:    order,
		Neighborhood: neighborhood,
		Latitude:     lat,
		Longitude:    lon,
	}, true
}

// toNum parses a raw field as a number, returning NaN when the value is
// absent or not finite. NaN is the "failed to parse" sentinel, distinct
// from a legitimate 0.
func toNum(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return math.NaN()
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) {
		return math.NaN()
	}
	return n
}

// BuildRouteIndex normalizes a dataset's records and groups the surviving
// stops by (date, vehicle), each bucket sorted ascending by stop order.
// The sort is stable: rows sharing a stop order keep their input order.
func BuildRouteIndex(records []ports.RawRecord) domain.RouteIndex {
	idx := make(domain.RouteIndex)
	for _, rec := range records {
		stop, ok := NormalizeRecord(rec)
		if !ok {
			continue
		}

		key := domain.RouteKey{Date: stop.Date, VehicleID: stop.VehicleID}
		idx[key] = append(idx[key], stop)
	}

	for key, stops := range idx {
		sort.SliceStable(stops, func(i, j int) bool {
			return stops[i].StopOrder < stops[j].StopOrder
		})
		idx[key] = stops
	}

	return idx
}
