package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-compare-service/internal/domain"
)

func index(keys ...domain.RouteKey) domain.RouteIndex {
	idx := make(domain.RouteIndex)
	for _, k := range keys {
		idx[k] = []domain.Stop{{Date: k.Date, VehicleID: k.VehicleID, Latitude: 40, Longitude: 29}}
	}
	return idx
}

func TestBuildSelectionCatalogUnionAndCutoff(t *testing.T) {
	opt := index(
		domain.RouteKey{Date: "2025-12-19", VehicleID: "2"},
		domain.RouteKey{Date: "2025-12-21", VehicleID: "4"},
		// Before the cutoff, excluded.
		domain.RouteKey{Date: "2025-12-01", VehicleID: "1"},
	)
	base := index(
		domain.RouteKey{Date: "2025-12-19", VehicleID: "10"},
		domain.RouteKey{Date: "2025-12-20", VehicleID: "3"},
	)

	catalog := BuildSelectionCatalog(opt, base, "2025-12-19")

	assert.Equal(t, []string{"2025-12-19", "2025-12-20", "2025-12-21"}, catalog.Dates)

	// Vehicles come from either index; numeric order puts "2" before "10".
	assert.Equal(t, []string{"2", "10"}, catalog.Vehicles("2025-12-19"))
	assert.Equal(t, []string{"3"}, catalog.Vehicles("2025-12-20"))
	assert.Equal(t, []string{"4"}, catalog.Vehicles("2025-12-21"))
}

func TestBuildSelectionCatalogNonNumericVehicles(t *testing.T) {
	opt := index(
		domain.RouteKey{Date: "2025-12-19", VehicleID: "B7"},
		domain.RouteKey{Date: "2025-12-19", VehicleID: "12"},
		domain.RouteKey{Date: "2025-12-19", VehicleID: "A3"},
		domain.RouteKey{Date: "2025-12-19", VehicleID: "2"},
	)

	catalog := BuildSelectionCatalog(opt, domain.RouteIndex{}, "2025-12-19")

	// Numeric ids first ascending, then non-numeric ids lexicographically.
	assert.Equal(t, []string{"2", "12", "A3", "B7"}, catalog.Vehicles("2025-12-19"))
}

func TestBuildSelectionCatalogEmptyIndices(t *testing.T) {
	catalog := BuildSelectionCatalog(domain.RouteIndex{}, domain.RouteIndex{}, "2025-12-19")

	require.Empty(t, catalog.Dates)
	require.Empty(t, catalog.VehiclesByDate)
}
