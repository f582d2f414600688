package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"route-compare-service/internal/adapters/datasets"
	"route-compare-service/internal/config"
	"route-compare-service/internal/domain"
	"route-compare-service/internal/ports"
	"route-compare-service/internal/services"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// datacheck loads both route datasets, runs them through normalization and
// indexing, and reports what the server would serve: row counts, dropped
// dirty rows, route keys and the selectable date range. Useful before
// pointing the dashboard at a fresh export.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yml"))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	optRecords := mustLoad(ctx, config.Get("OPTIMIZED_CSV", cfg.Datasets.Optimized))
	baseRecords := mustLoad(ctx, config.Get("BASELINE_CSV", cfg.Datasets.Baseline))

	optIndex, optDropped := indexWithProgress("optimized", optRecords)
	baseIndex, baseDropped := indexWithProgress("baseline", baseRecords)

	catalog := services.BuildSelectionCatalog(optIndex, baseIndex, cfg.Datasets.MinDate)

	fmt.Println(titleStyle.Render("Dataset summary"))
	printDataset("optimized", optRecords, optIndex, optDropped)
	printDataset("baseline", baseRecords, baseIndex, baseDropped)

	fmt.Println(titleStyle.Render("Selection catalog"))
	fmt.Printf("%s %d (cutoff %s)\n", labelStyle.Render("selectable dates"), len(catalog.Dates), cfg.Datasets.MinDate)
	if len(catalog.Dates) > 0 {
		first := catalog.Dates[0]
		last := catalog.Dates[len(catalog.Dates)-1]
		fmt.Printf("%s %s .. %s\n", labelStyle.Render("date range"), first, last)
		fmt.Printf("%s %v\n", labelStyle.Render("vehicles on "+first), catalog.Vehicles(first))
	} else {
		fmt.Println(warnStyle.Render("no dates pass the cutoff; the dashboard would be empty"))
		os.Exit(1)
	}
}

func mustLoad(ctx context.Context, location string) []ports.RawRecord {
	records, err := datasets.NewCSVLoader(location).Load(ctx)
	if err != nil {
		log.Fatal(err)
	}
	return records
}

// indexWithProgress mirrors BuildRouteIndex but counts dropped rows; the
// server keeps its silent-drop policy, the check tool reports them.
func indexWithProgress(name string, records []ports.RawRecord) (domain.RouteIndex, int) {
	bar := progressbar.Default(int64(len(records)), "normalizing "+name)

	kept := make([]ports.RawRecord, 0, len(records))
	dropped := 0
	for _, rec := range records {
		if _, ok := services.NormalizeRecord(rec); ok {
			kept = append(kept, rec)
		} else {
			dropped++
		}
		_ = bar.Add(1)
	}

	return services.BuildRouteIndex(kept), dropped
}

func printDataset(name string, records []ports.RawRecord, idx domain.RouteIndex, dropped int) {
	fmt.Printf("%s %d rows, %d routes\n", labelStyle.Render(name), len(records), len(idx))
	if dropped > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("  %d rows dropped (missing date/vehicle or bad coordinates)", dropped)))
	}
}
