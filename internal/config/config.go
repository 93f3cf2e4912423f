// Package config loads service configuration from environment variables
// and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	Port     string
	LogLevel string

	// Fixed origin coordinate (Metro Manila by default, matching the
	// deployment this service was built for).
	OriginLat float64
	OriginLon float64

	// External lookup providers
	ElevationBaseURL  string
	NominatimBaseURL  string
	GeocoderUserAgent string

	// Lookup cache backend: "redis", "postgres", or "none".
	CacheBackend string
	CacheTTL     time.Duration
	RedisAddr    string
	DatabaseURL  string
}

// Load reads configuration from environment variables, consulting a .env
// file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     Get("PORT", "8080"),
		LogLevel: Get("LOG_LEVEL", "info"),

		ElevationBaseURL:  Get("ELEVATION_BASE_URL", "https://api.open-elevation.com"),
		NominatimBaseURL:  Get("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: Get("GEOCODER_USER_AGENT", "route-summary-service"),

		CacheBackend: Get("CACHE_BACKEND", "none"),
		RedisAddr:    Get("REDIS_ADDR", "localhost:6379"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}

	var err error
	cfg.OriginLat, err = parseFloat("ORIGIN_LAT", "14.64171")
	if err != nil {
		return nil, fmt.Errorf("invalid ORIGIN_LAT: %w", err)
	}

	cfg.OriginLon, err = parseFloat("ORIGIN_LON", "121.05078")
	if err != nil {
		return nil, fmt.Errorf("invalid ORIGIN_LON: %w", err)
	}

	cfg.CacheTTL, err = time.ParseDuration(Get("CACHE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	return cfg, nil
}

// Get retrieves an environment variable or returns a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseFloat(key, fallback string) (float64, error) {
	return strconv.ParseFloat(Get(key, fallback), 64)
}
