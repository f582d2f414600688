package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	_ "github.com/jackc/pgx/v5/stdlib"

	"route-compare-service/internal/adapters/cache"
	"route-compare-service/internal/adapters/datasets"
	"route-compare-service/internal/adapters/osrm"
	"route-compare-service/internal/api"
	"route-compare-service/internal/config"
	"route-compare-service/internal/domain"
	"route-compare-service/internal/platform/db"
	"route-compare-service/internal/ports"
	"route-compare-service/internal/services"
)

// main is the application composition root.
// It loads both route datasets, builds the indices and catalog, and wires
// concrete adapters (OSRM, SQL cache) behind ports before starting the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yml"))
	if err != nil {
		log.Fatal(err)
	}

	port := config.Get("PORT", fmt.Sprintf("%d", cfg.Server.Port))
	optimizedLoc := config.Get("OPTIMIZED_CSV", cfg.Datasets.Optimized)
	baselineLoc := config.Get("BASELINE_CSV", cfg.Datasets.Baseline)

	cacheDB, err := openCacheDB()
	if err != nil {
		log.Fatal(err)
	}
	defer cacheDB.Close()

	if err := cache.InitSchema(cacheDB); err != nil {
		log.Fatal(err)
	}

	// Both datasets load concurrently and both must succeed before the
	// service is considered ready; a partially-loaded state is never served.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	optRecords, baseRecords, err := loadDatasets(ctx, optimizedLoc, baselineLoc)
	cancel()
	if err != nil {
		log.Fatal(err)
	}

	optIndex := services.BuildRouteIndex(optRecords)
	baseIndex := services.BuildRouteIndex(baseRecords)
	catalog := services.BuildSelectionCatalog(optIndex, baseIndex, cfg.Datasets.MinDate)

	log.Printf(
		"datasets loaded: optimized_rows=%d baseline_rows=%d optimized_routes=%d baseline_routes=%d dates=%d",
		len(optRecords), len(baseRecords), len(optIndex), len(baseIndex), len(catalog.Dates),
	)

	routeCache := cache.NewSQLRouteCache(cacheDB)
	provider, err := osrm.NewClient(
		cfg.Routing.BaseURL,
		cfg.Routing.Profile,
		time.Duration(cfg.Routing.TimeoutMS)*time.Millisecond,
		routeCache,
	)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(api.RouterDeps{
		Optimized: optIndex,
		Baseline:  baseIndex,
		Catalog:   catalog,
		Enricher:  services.NewPathEnricher(provider),
		DefaultCoefficients: services.EmissionCoefficients{
			LitersPerKm:   cfg.Emissions.LitersPerKm,
			KgCo2PerLiter: cfg.Emissions.KgCo2PerLiter,
		},
		DefaultCenter:  domain.LatLng{Lat: cfg.Map.CenterLat, Lon: cfg.Map.CenterLon},
		DefaultZoom:    cfg.Map.Zoom,
		AllowedOrigins: allowedOrigins(),
	})

	// Timeouts are tuned for cold-cache road-path lookups (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openCacheDB prefers Postgres when DATABASE_URL is set and falls back to a
// local SQLite file otherwise.
func openCacheDB() (*sql.DB, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		return db.OpenPostgres(databaseURL)
	}
	return db.OpenSQLite(config.Get("CACHE_DB_PATH", "data/cache.db"))
}

type loadResult struct {
	records []ports.RawRecord
	err     error
}

func loadDatasets(ctx context.Context, optimizedLoc, baselineLoc string) ([]ports.RawRecord, []ports.RawRecord, error) {
	fetch := func(location string, out chan<- loadResult) {
		records, err := datasets.NewCSVLoader(location).Load(ctx)
		out <- loadResult{records: records, err: err}
	}

	optCh := make(chan loadResult, 1)
	baseCh := make(chan loadResult, 1)
	go fetch(optimizedLoc, optCh)
	go fetch(baselineLoc, baseCh)

	opt, base := <-optCh, <-baseCh
	if opt.err != nil {
		return nil, nil, fmt.Errorf("load datasets: %w", opt.err)
	}
	if base.err != nil {
		return nil, nil, fmt.Errorf("load datasets: %w", base.err)
	}

	return opt.records, base.records, nil
}

func allowedOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
