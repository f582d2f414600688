package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/twpayne/go-polyline"

	"route-compare-service/internal/domain"
	"route-compare-service/internal/platform/obs"
)

// SQLRouteCache is a SQL-backed cache for road-snapped route geometries,
// keyed by the requested coordinate path. Geometries are stored as encoded
// polylines to keep rows compact.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Get fetches the cached geometry for key. ok is false on a cache miss.
func (s *SQLRouteCache) Get(ctx context.Context, key string) (_ []domain.LatLng, ok bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}
	if key == "" {
		return nil, false, errors.New("route cache: key must not be empty")
	}

	q := `
	SELECT geometry
	FROM route_path_cache
	WHERE coord_key = $1;
	`

	var encoded string
	if err := s.DB.QueryRowContext(ctx, q, key).Scan(&encoded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("route cache get: query route_path_cache table: %w", err)
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, false, fmt.Errorf("route cache get: decode polyline for key %q: %w", key, err)
	}

	path := make([]domain.LatLng, 0, len(coords))
	for _, c := range coords {
		path = append(path, domain.LatLng{Lat: c[0], Lon: c[1]})
	}
	return path, true, nil
}

// Put stores the geometry for key, replacing any previous entry.
func (s *SQLRouteCache) Put(ctx context.Context, key string, path []domain.LatLng) (err error) {
	defer obs.Time(ctx, "route.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}
	if key == "" {
		return errors.New("route cache: key must not be empty")
	}
	if len(path) == 0 {
		return errors.New("route cache: path must not be empty")
	}

	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	encoded := string(polyline.EncodeCoords(coords))

	q := `
	INSERT INTO route_path_cache (coord_key, geometry)
	VALUES ($1, $2)
	ON CONFLICT (coord_key) DO UPDATE SET geometry = excluded.geometry;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, encoded); err != nil {
		return fmt.Errorf("route cache put: upsert route_path_cache table: %w", err)
	}
	return nil
}
