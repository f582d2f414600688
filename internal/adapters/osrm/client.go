package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"route-compare-service/internal/adapters/cache"
	"route-compare-service/internal/domain"
	"route-compare-service/internal/platform/obs"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Client implements RoutePathProvider using the OSRM route service.
//
// Lookups are best-effort enrichment, so the client makes exactly one
// attempt per call: no retry, no backoff. Callers degrade to straight-line
// geometry on error. Responses may be cached persistently, keyed by the
// requested coordinate path.
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
	profile string
	cache   *cache.SQLRouteCache
}

func NewClient(baseURL, profile string, timeout time.Duration, routeCache *cache.SQLRouteCache) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("OSRM base URL is empty")
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: profile,
		cache:   routeCache,
	}, nil
}

type routeResponse struct {
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// GetRoutePath returns a road-following polyline through points.
//
// OSRM speaks GeoJSON, which puts longitude first; the request path is
// built as "lon,lat" pairs and response coordinates are swapped back to
// (lat, lon) for internal use. This conversion is a fixed contract of the
// adapter.
func (c *Client) GetRoutePath(ctx context.Context, points []domain.LatLng) (_ []domain.LatLng, err error) {
	defer obs.Time(ctx, "osrm.GetRoutePath")(&err)

	if len(points) < 2 {
		return nil, errors.New("get route path: at least two points are required")
	}

	coords := coordPath(points)
	cacheKey := c.profile + "|" + coords

	if c.cache != nil {
		path, ok, err := c.cache.Get(ctx, cacheKey)
		if err != nil {
			log.Printf("route cache read failed: %v", err)
		} else if ok {
			return path, nil
		}
	}

	url := fmt.Sprintf(
		"%s/route/v1/%s/%s?overview=full&geometries=geojson",
		c.baseURL, c.profile, coords,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return nil, errors.New("route response contains no routes")
	}

	geometry := decoded.Routes[0].Geometry.Coordinates
	if len(geometry) < 2 {
		return nil, errors.New("route response contains no usable geometry")
	}

	path := make([]domain.LatLng, 0, len(geometry))
	for _, pair := range geometry {
		if len(pair) != 2 {
			return nil, errors.New("route response contains a malformed coordinate")
		}
		// GeoJSON [lon, lat] -> internal (lat, lon).
		path = append(path, domain.LatLng{Lat: pair[1], Lon: pair[0]})
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, cacheKey, path); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return path, nil
}

// coordPath renders points as the "lon,lat;lon,lat" path segment OSRM
// expects.
func coordPath(points []domain.LatLng) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatFloat(p.Lon, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Lat, 'f', -1, 64))
	}
	return b.String()
}
