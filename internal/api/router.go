package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"route-compare-service/internal/api/handlers"
	"route-compare-service/internal/domain"
	"route-compare-service/internal/services"
)

// RouterDeps carries everything the HTTP surface needs.
type RouterDeps struct {
	Optimized domain.RouteIndex
	Baseline  domain.RouteIndex
	Catalog   domain.SelectionCatalog
	Enricher  *services.PathEnricher

	DefaultCoefficients services.EmissionCoefficients
	DefaultCenter       domain.LatLng
	DefaultZoom         int

	// Origins allowed to call the API from a browser (the dashboard
	// frontend); empty means same-origin only.
	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	catalogHandler := &handlers.CatalogHandler{Catalog: deps.Catalog}
	routeHandler := &handlers.RouteHandler{
		Optimized:           deps.Optimized,
		Baseline:            deps.Baseline,
		Enricher:            deps.Enricher,
		DefaultCoefficients: deps.DefaultCoefficients,
		DefaultCenter:       deps.DefaultCenter,
		DefaultZoom:         deps.DefaultZoom,
	}

	r := chi.NewRouter()
	r.Use(loggingMiddleware)

	if len(deps.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}))
	}

	r.Get("/health", handlers.Health)
	r.Get("/api/catalog", catalogHandler.Get)
	r.Get("/api/routes", routeHandler.Compare)

	return r
}
