package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int `yaml:"port" validate:"omitempty,gt=0"`
}

// DatasetsConfig locates the two route datasets and the catalog cutoff.
// Locations may be local file paths or http(s) URLs.
type DatasetsConfig struct {
	Optimized string `yaml:"optimized" validate:"required"`
	Baseline  string `yaml:"baseline" validate:"required"`
	// Dates before MinDate are excluded from the selection catalog.
	MinDate string `yaml:"minDate" validate:"required"`
}

// EmissionsConfig holds the default conversion coefficients. Callers may
// override both per request; no bounds are enforced either way.
type EmissionsConfig struct {
	LitersPerKm   float64 `yaml:"litersPerKm"`
	KgCo2PerLiter float64 `yaml:"kgCo2PerLiter"`
}

// RoutingConfig configures the external road-routing service.
type RoutingConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	Profile   string `yaml:"profile"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// MapConfig is the default framing handed to the map rendering surface
// when a selection has no stops to center on.
type MapConfig struct {
	CenterLat float64 `yaml:"centerLat"`
	CenterLon float64 `yaml:"centerLon"`
	Zoom      int     `yaml:"zoom"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Datasets  DatasetsConfig  `yaml:"datasets"`
	Emissions EmissionsConfig `yaml:"emissions"`
	Routing   RoutingConfig   `yaml:"routing"`
	Map       MapConfig       `yaml:"map"`
}

// Load reads and validates the application configuration from path,
// then fills unset values with working defaults.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("load config: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("load config: parse %q: %w", path, err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("load config: validate %q: %w", path, err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Emissions.LitersPerKm == 0 {
		cfg.Emissions.LitersPerKm = 0.4
	}
	if cfg.Emissions.KgCo2PerLiter == 0 {
		cfg.Emissions.KgCo2PerLiter = 2.68
	}
	if cfg.Routing.BaseURL == "" {
		cfg.Routing.BaseURL = "https://router.project-osrm.org"
	}
	if cfg.Routing.Profile == "" {
		cfg.Routing.Profile = "driving"
	}
	if cfg.Routing.TimeoutMS == 0 {
		cfg.Routing.TimeoutMS = 10000
	}
	if cfg.Map.CenterLat == 0 && cfg.Map.CenterLon == 0 {
		cfg.Map.CenterLat = 40.195
		cfg.Map.CenterLon = 29.06
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 12
	}
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
