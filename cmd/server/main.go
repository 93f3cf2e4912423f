package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"route-summary-service/internal/adapters/cache"
	"route-summary-service/internal/adapters/elevation"
	"route-summary-service/internal/adapters/geocode"
	"route-summary-service/internal/api"
	"route-summary-service/internal/config"
	"route-summary-service/internal/domain"
	"route-summary-service/internal/platform/db"
	"route-summary-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Open-Elevation, Nominatim, the chosen cache
// backend) behind ports and starts the HTTP server.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}
	setLogLevel(cfg.LogLevel)

	// A bad origin is a deployment error, not a runtime condition.
	origin, err := domain.NewCoordinate(cfg.OriginLat, cfg.OriginLon)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid origin coordinate")
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open lookup cache")
	}
	if closeStore != nil {
		defer closeStore()
	}

	elevationProvider := elevation.NewOpenElevationProvider(
		cfg.ElevationBaseURL,
		store,
		log.With().Str("component", "elevation").Logger(),
	)
	addressProvider := geocode.NewNominatimProvider(
		cfg.NominatimBaseURL,
		cfg.GeocoderUserAgent,
		store,
		log.With().Str("component", "geocode").Logger(),
	)

	router := api.NewRouter(origin, elevationProvider, addressProvider)

	log.Info().
		Str("origin", origin.String()).
		Str("cache", cfg.CacheBackend).
		Str("port", cfg.Port).
		Msg("server listening")

	// WriteTimeout covers up to four sequential external lookups on a cold
	// cache.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

// openStore builds the configured lookup cache backend. A nil store means
// caching is disabled and every lookup goes to the upstream provider.
func openStore(cfg *config.Config) (ports.LookupStore, func(), error) {
	switch cfg.CacheBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("open lookup cache: ping redis at %q: %w", cfg.RedisAddr, err)
		}
		return cache.NewRedisStore(client, cfg.CacheTTL), func() { _ = client.Close() }, nil

	case "postgres":
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return nil, nil, errors.New("open lookup cache: DATABASE_URL is required for the postgres backend")
		}
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open lookup cache: %w", err)
		}
		return cache.NewSQLStore(conn), func() { _ = conn.Close() }, nil

	case "none", "":
		return nil, nil, nil

	default:
		return nil, nil, fmt.Errorf("open lookup cache: unknown backend %q", cfg.CacheBackend)
	}
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
