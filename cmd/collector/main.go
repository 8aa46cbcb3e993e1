package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/jonboulle/clockwork"

	httpadapter "github.com/couchcryptid/weatherkit-collector/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/weatherkit-collector/internal/adapter/kafka"
	"github.com/couchcryptid/weatherkit-collector/internal/adapter/mapbox"
	"github.com/couchcryptid/weatherkit-collector/internal/adapter/weatherkit"
	"github.com/couchcryptid/weatherkit-collector/internal/config"
	"github.com/couchcryptid/weatherkit-collector/internal/domain"
	"github.com/couchcryptid/weatherkit-collector/internal/observability"
	"github.com/couchcryptid/weatherkit-collector/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	client, err := weatherkit.New(weatherkit.Config{
		TransportConfig: weatherkit.TransportConfig{
			BaseURL:         cfg.WeatherKitBaseURL,
			Timeout:         cfg.WeatherKitTimeout,
			RateLimit:       cfg.WeatherKitRateLimit,
			RateBurst:       cfg.WeatherKitRateBurst,
			BreakerFailures: cfg.BreakerFailures,
			BreakerTimeout:  cfg.BreakerTimeout,
		},
		KeyID:      cfg.WeatherKitKeyID,
		TeamID:     cfg.WeatherKitTeamID,
		ServiceID:  cfg.WeatherKitServiceID,
		PrivateKey: cfg.WeatherKitPrivateKey,
		Language:   cfg.WeatherKitLanguage,
		Timezone:   cfg.WeatherKitTimezone,
	}, clock, metrics, logger)
	if err != nil {
		logger.Error("failed to create weatherkit client", "error", err)
		os.Exit(1)
	}

	// Initialize geocoder (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		mb := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		geocoder = mapbox.NewCachedGeocoder(mb, cfg.MapboxCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(client.Timezone(), geocoder, clock, logger)
	targets := pipeline.Targets{Locations: cfg.Locations, Datasets: cfg.Datasets}

	p := pipeline.New(client, transformer, writer, targets, logger, metrics, clock)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start collector.
	go func() {
		if err := p.Run(ctx, cfg.Schedule); err != nil {
			logger.Error("collector error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
