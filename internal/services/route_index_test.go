package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-compare-service/internal/domain"
	"route-compare-service/internal/ports"
)

func validRecord() ports.RawRecord {
	return ports.RawRecord{
		"date":         "2025-12-19",
		"vehicle_id":   "3",
		"vehicle_type": "truck",
		"stop_order":   "1",
		"Mahalle":      "Nilüfer",
		"latitude":     "40.19",
		"longitude":    "29.06",
	}
}

func TestNormalizeRecordValid(t *testing.T) {
	stop, ok := NormalizeRecord(validRecord())
	require.True(t, ok)

	assert.Equal(t, "2025-12-19", stop.Date)
	assert.Equal(t, "3", stop.VehicleID)
	assert.Equal(t, "truck", stop.VehicleType)
	assert.Equal(t, 1.0, stop.StopOrder)
	assert.Equal(t, "Nilüfer", stop.Neighborhood)
	assert.Equal(t, 40.19, stop.Latitude)
	assert.Equal(t, 29.06, stop.Longitude)
}

func TestNormalizeRecordRejections(t *testing.T) {
	cases := map[string]func(r ports.RawRecord){
		"missing date":        func(r ports.RawRecord) { delete(r, "date") },
		"blank date":          func(r ports.RawRecord) { r["date"] = "   " },
		"missing vehicle":     func(r ports.RawRecord) { delete(r, "vehicle_id") },
		"blank vehicle":       func(r ports.RawRecord) { r["vehicle_id"] = "" },
		"missing latitude":    func(r ports.RawRecord) { delete(r, "latitude") },
		"unparseable lat":     func(r ports.RawRecord) { r["latitude"] = "north-ish" },
		"unparseable lon":     func(r ports.RawRecord) { r["longitude"] = "" },
		"infinite coordinate": func(r ports.RawRecord) { r["latitude"] = "+Inf" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rec := validRecord()
			mutate(rec)

			_, ok := NormalizeRecord(rec)
			assert.False(t, ok)
		})
	}
}

func TestNormalizeRecordStopOrderDefaultsToZero(t *testing.T) {
	rec := validRecord()
	rec["stop_order"] = "not a number"

	stop, ok := NormalizeRecord(rec)
	require.True(t, ok)
	assert.Zero(t, stop.StopOrder)

	delete(rec, "stop_order")
	stop, ok = NormalizeRecord(rec)
	require.True(t, ok)
	assert.Zero(t, stop.StopOrder)
}

func TestNormalizeRecordTrimsAndAliases(t *testing.T) {
	rec := validRecord()
	rec["date"] = " 2025-12-20 "
	rec["vehicle_id"] = " 7 "
	delete(rec, "Mahalle")
	rec["neighborhood"] = " Osmangazi "

	stop, ok := NormalizeRecord(rec)
	require.True(t, ok)
	assert.Equal(t, "2025-12-20", stop.Date)
	assert.Equal(t, "7", stop.VehicleID)
	assert.Equal(t, "Osmangazi", stop.Neighborhood)
}

func TestBuildRouteIndexGroupsAndSorts(t *testing.T) {
	mk := func(date, vehicle, order, mahalle string) ports.RawRecord {
		r := validRecord()
		r["date"] = date
		r["vehicle_id"] = vehicle
		r["stop_order"] = order
		r["Mahalle"] = mahalle
		return r
	}

	records := []ports.RawRecord{
		mk("2025-12-19", "3", "2", "b"),
		mk("2025-12-19", "3", "1", "a"),
		mk("2025-12-19", "5", "1", "x"),
		mk("2025-12-20", "3", "3", "c"),
		// Equal stop orders keep input order (stable sort).
		mk("2025-12-19", "3", "1", "a2"),
		// Dirty rows never reach the index.
		{"date": "2025-12-19", "vehicle_id": "3", "latitude": "bad", "longitude": "29"},
		{"date": "", "vehicle_id": "9", "latitude": "40", "longitude": "29"},
	}

	idx := BuildRouteIndex(records)
	require.Len(t, idx, 3)

	stops := idx[domain.RouteKey{Date: "2025-12-19", VehicleID: "3"}]
	require.Len(t, stops, 3)
	assert.Equal(t, "a", stops[0].Neighborhood)
	assert.Equal(t, "a2", stops[1].Neighborhood)
	assert.Equal(t, "b", stops[2].Neighborhood)

	for _, bucket := range idx {
		for i := 1; i < len(bucket); i++ {
			assert.LessOrEqual(t, bucket[i-1].StopOrder, bucket[i].StopOrder)
		}
	}
}

func TestBuildRouteIndexIdempotent(t *testing.T) {
	records := []ports.RawRecord{validRecord(), validRecord()}
	records[1]["stop_order"] = "2"

	first := BuildRouteIndex(records)
	second := BuildRouteIndex(records)
	assert.Equal(t, first, second)
}
