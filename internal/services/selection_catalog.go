package services

import (
	"sort"
	"strconv"

	"route-compare-service/internal/domain"
)

// BuildSelectionCatalog derives the choosable dates and per-date vehicles
// from the union of both indices.
//
// Dates are filtered to those on/after minDate (dates sort lexicographically
// in their ISO-like textual form) and listed ascending. Vehicles under each
// date are listed by numeric id value ascending: ids are short
// numeric-looking strings and a lexicographic order would put "10" before
// "2". Non-numeric ids sort after all numeric ones, lexicographically, so
// the order stays deterministic for unexpected id shapes.
func BuildSelectionCatalog(optimized, baseline domain.RouteIndex, minDate string) domain.SelectionCatalog {
	dateSet := make(map[string]struct{})
	vehicleSets := make(map[string]map[string]struct{})

	add := func(key domain.RouteKey) {
		dateSet[key.Date] = struct{}{}
		if _, ok := vehicleSets[key.Date]; !ok {
			vehicleSets[key.Date] = make(map[string]struct{})
		}
		vehicleSets[key.Date][key.VehicleID] = struct{}{}
	}

	for key := range optimized {
		add(key)
	}
	for key := range baseline {
		add(key)
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		if d >= minDate {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)

	vehiclesByDate := make(map[string][]string, len(dates))
	for _, d := range dates {
		vehicles := make([]string, 0, len(vehicleSets[d]))
		for v := range vehicleSets[d] {
			vehicles = append(vehicles, v)
		}
		sortVehicleIDs(vehicles)
		vehiclesByDate[d] = vehicles
	}

	return domain.SelectionCatalog{
		Dates:          dates,
		VehiclesByDate: vehiclesByDate,
	}
}

func sortVehicleIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, aOK := vehicleNum(ids[i])
		b, bOK := vehicleNum(ids[j])

		switch {
		case aOK && bOK:
			if a != b {
				return a < b
			}
			return ids[i] < ids[j]
		case aOK:
			return true
		case bOK:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
}

func vehicleNum(id string) (float64, bool) {
	n, err := strconv.ParseFloat(id, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
