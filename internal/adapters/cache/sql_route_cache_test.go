package cache

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"route-compare-service/internal/domain"
)

func newTestCache(t *testing.T) *SQLRouteCache {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db))
	return NewSQLRouteCache(db)
}

func TestSQLRouteCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	path := []domain.LatLng{
		{Lat: 40.19, Lon: 29.06},
		{Lat: 40.195, Lon: 29.065},
		{Lat: 40.2, Lon: 29.07},
	}

	_, ok, err := c.Get(ctx, "driving|29.06,40.19;29.07,40.2")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "driving|29.06,40.19;29.07,40.2", path))

	got, ok, err := c.Get(ctx, "driving|29.06,40.19;29.07,40.2")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, len(path))

	// Polyline encoding quantizes to 1e-5 degrees.
	for i := range path {
		assert.InDelta(t, path[i].Lat, got[i].Lat, 1e-5)
		assert.InDelta(t, path[i].Lon, got[i].Lon, 1e-5)
	}
}

func TestSQLRouteCachePutReplaces(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	first := []domain.LatLng{{Lat: 40.19, Lon: 29.06}, {Lat: 40.2, Lon: 29.07}}
	second := []domain.LatLng{{Lat: 41.0, Lon: 30.0}, {Lat: 41.1, Lon: 30.1}}

	require.NoError(t, c.Put(ctx, "k", first))
	require.NoError(t, c.Put(ctx, "k", second))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 41.0, got[0].Lat, 1e-5)
}

func TestSQLRouteCacheRejectsBadInput(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	assert.Error(t, c.Put(ctx, "", []domain.LatLng{{Lat: 1, Lon: 2}}))
	assert.Error(t, c.Put(ctx, "k", nil))

	_, _, err := c.Get(ctx, "")
	assert.Error(t, err)
}
