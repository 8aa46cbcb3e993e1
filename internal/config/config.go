package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/couchcryptid/weatherkit-collector/internal/dataset"
	"github.com/couchcryptid/weatherkit-collector/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// WeatherKit credentials and request defaults.
	WeatherKitKeyID      string
	WeatherKitTeamID     string
	WeatherKitServiceID  string
	WeatherKitPrivateKey []byte
	WeatherKitBaseURL    string
	WeatherKitLanguage   string
	WeatherKitTimezone   string
	WeatherKitTimeout    time.Duration
	WeatherKitRateLimit  float64
	WeatherKitRateBurst  int
	BreakerFailures      uint32
	BreakerTimeout       time.Duration

	// Collector schedule and targets.
	Schedule  string
	Locations []domain.Location
	Datasets  []dataset.Name

	KafkaBrokers       []string
	KafkaSinkTopic     string
	BatchSize          int
	BatchFlushInterval time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Mapbox geocoding configuration.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int
}

// Load reads configuration from environment variables, applying defaults where
// unset. A .env file in the working directory is loaded first when present;
// variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	wkTimeout, err := parsePositiveDuration("WEATHERKIT_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	breakerTimeout, err := parsePositiveDuration("WEATHERKIT_BREAKER_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}

	mapboxTimeout, err := parsePositiveDuration("MAPBOX_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	rateLimit, err := strconv.ParseFloat(sharedcfg.EnvOrDefault("WEATHERKIT_RATE_LIMIT", "5"), 64)
	if err != nil || rateLimit < 0 {
		return nil, errors.New("invalid WEATHERKIT_RATE_LIMIT")
	}

	rateBurst, err := parsePositiveInt("WEATHERKIT_RATE_BURST", "5")
	if err != nil {
		return nil, err
	}

	breakerFailures, err := parsePositiveInt("WEATHERKIT_BREAKER_FAILURES", "5")
	if err != nil {
		return nil, err
	}

	privateKey, err := loadPrivateKey()
	if err != nil {
		return nil, err
	}

	schedule := sharedcfg.EnvOrDefault("COLLECTOR_SCHEDULE", "@every 15m")
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid COLLECTOR_SCHEDULE: %w", err)
	}

	locations, err := ParseLocations(os.Getenv("COLLECTOR_LOCATIONS"))
	if err != nil {
		return nil, err
	}

	datasets, err := ParseDatasets(os.Getenv("COLLECTOR_DATASETS"))
	if err != nil {
		return nil, err
	}

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	mapboxEnabled := mapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		mapboxEnabled = v == "true"
	}

	cfg := &Config{
		WeatherKitKeyID:      os.Getenv("WEATHERKIT_KEY_ID"),
		WeatherKitTeamID:     os.Getenv("WEATHERKIT_TEAM_ID"),
		WeatherKitServiceID:  os.Getenv("WEATHERKIT_SERVICE_ID"),
		WeatherKitPrivateKey: privateKey,
		WeatherKitBaseURL:    sharedcfg.EnvOrDefault("WEATHERKIT_BASE_URL", "https://weatherkit.apple.com"),
		WeatherKitLanguage:   sharedcfg.EnvOrDefault("WEATHERKIT_LANGUAGE", "en"),
		WeatherKitTimezone:   sharedcfg.EnvOrDefault("WEATHERKIT_TIMEZONE", "UTC"),
		WeatherKitTimeout:    wkTimeout,
		WeatherKitRateLimit:  rateLimit,
		WeatherKitRateBurst:  rateBurst,
		BreakerFailures:      uint32(breakerFailures),
		BreakerTimeout:       breakerTimeout,

		Schedule:  schedule,
		Locations: locations,
		Datasets:  datasets,

		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "weatherkit-reports"),
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		MapboxToken:     mapboxToken,
		MapboxEnabled:   mapboxEnabled,
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: parseMapboxCacheSize(),
	}

	if cfg.WeatherKitKeyID == "" {
		return nil, errors.New("WEATHERKIT_KEY_ID is required")
	}
	if cfg.WeatherKitTeamID == "" {
		return nil, errors.New("WEATHERKIT_TEAM_ID is required")
	}
	if cfg.WeatherKitServiceID == "" {
		return nil, errors.New("WEATHERKIT_SERVICE_ID is required")
	}
	if len(cfg.WeatherKitPrivateKey) == 0 {
		return nil, errors.New("WEATHERKIT_PRIVATE_KEY or WEATHERKIT_PRIVATE_KEY_FILE is required")
	}
	if _, err := time.LoadLocation(cfg.WeatherKitTimezone); err != nil {
		return nil, fmt.Errorf("invalid WEATHERKIT_TIMEZONE: %w", err)
	}
	if len(cfg.Locations) == 0 {
		return nil, errors.New("COLLECTOR_LOCATIONS is required")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	if cfg.MapboxEnabled && cfg.MapboxToken == "" {
		return nil, errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}

	return cfg, nil
}

// loadPrivateKey reads the PEM key inline or from a file. Inline keys may use
// literal "\n" sequences so they fit on one line of a .env file.
func loadPrivateKey() ([]byte, error) {
	if inline := os.Getenv("WEATHERKIT_PRIVATE_KEY"); inline != "" {
		return []byte(strings.ReplaceAll(inline, `\n`, "\n")), nil
	}
	path := os.Getenv("WEATHERKIT_PRIVATE_KEY_FILE")
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read WEATHERKIT_PRIVATE_KEY_FILE: %w", err)
	}
	return data, nil
}

// ParseLocations parses a semicolon-separated list of locations. Each entry is
// "[name=]lat,lon[,countryCode]", e.g. "chicago=41.88,-87.63,US;51.5,-0.13,GB".
func ParseLocations(s string) ([]domain.Location, error) {
	var out []domain.Location
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		var loc domain.Location
		if name, rest, ok := strings.Cut(entry, "="); ok {
			loc.Name = strings.TrimSpace(name)
			entry = rest
		}
		parts := strings.Split(entry, ",")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid COLLECTOR_LOCATIONS entry %q", entry)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("invalid latitude in COLLECTOR_LOCATIONS entry %q", entry)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("invalid longitude in COLLECTOR_LOCATIONS entry %q", entry)
		}
		loc.Coordinate = domain.Coordinate{Latitude: lat, Longitude: lon}
		if len(parts) == 3 {
			loc.CountryCode = strings.ToUpper(strings.TrimSpace(parts[2]))
		}
		if loc.Name == "" {
			loc.Name = loc.Coordinate.String()
		}
		out = append(out, loc)
	}
	return out, nil
}

// ParseDatasets parses a comma-separated list of dataset names. Empty selects
// every dataset.
func ParseDatasets(s string) ([]dataset.Name, error) {
	if strings.TrimSpace(s) == "" {
		return append([]dataset.Name(nil), dataset.Names...), nil
	}
	var out []dataset.Name
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, ok := dataset.ParseName(part)
		if !ok {
			return nil, fmt.Errorf("invalid COLLECTOR_DATASETS entry %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key, def string) (int, error) {
	n, err := strconv.Atoi(sharedcfg.EnvOrDefault(key, def))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func parseMapboxCacheSize() int {
	if s := os.Getenv("MAPBOX_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
