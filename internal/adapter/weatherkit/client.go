// Package weatherkit is a client for the Apple WeatherKit REST API. It owns
// authentication, endpoint construction and HTTP status interpretation, and
// hands decoded payloads to the dataset package for typing.
package weatherkit

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weatherkit-collector/internal/dataset"
	"github.com/couchcryptid/weatherkit-collector/internal/domain"
	"github.com/couchcryptid/weatherkit-collector/internal/observability"
)

// DefaultBaseURL is the production WeatherKit host.
const DefaultBaseURL = "https://weatherkit.apple.com"

// Config holds the credentials and request defaults for a Client.
type Config struct {
	TransportConfig

	KeyID      string
	TeamID     string
	ServiceID  string
	PrivateKey []byte // PEM

	Language string // e.g. "en"
	Timezone string // IANA name timestamps are converted to
}

// Client fetches typed WeatherKit datasets. It is safe for concurrent use.
type Client struct {
	transport *Transport
	language  string
	tzName    string
	tz        *time.Location
}

// New builds a Client from cfg. clock drives token expiry.
func New(cfg Config, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) (*Client, error) {
	tokens, err := NewTokenSource(cfg.KeyID, cfg.TeamID, cfg.ServiceID, cfg.PrivateKey, clock)
	if err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return newClient(cfg, NewTransport(cfg.TransportConfig, tokens, metrics, logger))
}

func newClient(cfg Config, transport *Transport) (*Client, error) {
	tzName := cfg.Timezone
	if tzName == "" {
		tzName = "UTC"
	}
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tzName, err)
	}
	language := cfg.Language
	if language == "" {
		language = "en"
	}
	return &Client{transport: transport, language: language, tzName: tzName, tz: tz}, nil
}

// Timezone is the location returned timestamps are in.
func (c *Client) Timezone() *time.Location { return c.tz }

func coordPath(loc domain.Coordinate) string {
	return strconv.FormatFloat(loc.Latitude, 'f', -1, 64) + "/" + strconv.FormatFloat(loc.Longitude, 'f', -1, 64)
}

// Raw fetches the undecoded weather response for the given datasets.
// countryCode is required by WeatherKit for weatherAlerts and ignored
// otherwise.
func (c *Client) Raw(ctx context.Context, loc domain.Coordinate, countryCode string, names ...dataset.Name) (map[string]any, error) {
	sets := make([]string, len(names))
	for i, n := range names {
		sets[i] = string(n)
	}
	query := url.Values{
		"dataSets": {strings.Join(sets, ",")},
		"timezone": {c.tzName},
	}
	if countryCode != "" {
		query.Set("countryCode", countryCode)
	}
	path := "/api/v1/weather/" + url.PathEscape(c.language) + "/" + coordPath(loc)
	raw, err := c.transport.getObject(ctx, "weather", path, query)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	return raw, nil
}

// Weather fetches and types several datasets in one request. Datasets the
// response lacks are left nil.
func (c *Client) Weather(ctx context.Context, loc domain.Coordinate, countryCode string, names ...dataset.Name) (*dataset.Weather, error) {
	if len(names) == 0 {
		names = dataset.Names
	}
	raw, err := c.Raw(ctx, loc, countryCode, names...)
	if err != nil {
		return nil, err
	}
	return dataset.ParseWeather(raw, c.tz)
}

func single[D any](ctx context.Context, c *Client, loc domain.Coordinate, countryCode string, name dataset.Name, build func(map[string]any, *time.Location) (D, error)) (D, error) {
	var zero D
	raw, err := c.Raw(ctx, loc, countryCode, name)
	if err != nil {
		return zero, err
	}
	obj, ok := raw[string(name)].(map[string]any)
	if !ok || len(obj) == 0 {
		return zero, fmt.Errorf("fetch %s: %w", name, ErrNoData)
	}
	return build(obj, c.tz)
}

// CurrentWeather fetches only the currentWeather dataset for loc.
func (c *Client) CurrentWeather(ctx context.Context, loc domain.Coordinate) (dataset.Currently, error) {
	return single(ctx, c, loc, "", dataset.NameCurrentWeather, dataset.CurrentWeather)
}

// DailyForecast fetches the forecastDaily dataset for loc.
func (c *Client) DailyForecast(ctx context.Context, loc domain.Coordinate) (dataset.Daily, error) {
	return single(ctx, c, loc, "", dataset.NameForecastDaily, dataset.ForecastDaily)
}

// HourlyForecast fetches the forecastHourly dataset for loc.
func (c *Client) HourlyForecast(ctx context.Context, loc domain.Coordinate) (dataset.Hourly, error) {
	return single(ctx, c, loc, "", dataset.NameForecastHourly, dataset.ForecastHourly)
}

// NextHourForecast fetches the minute-by-minute forecastNextHour dataset.
// Coverage is regional; outside it the call returns ErrNoData.
func (c *Client) NextHourForecast(ctx context.Context, loc domain.Coordinate) (dataset.NextHour, error) {
	return single(ctx, c, loc, "", dataset.NameForecastNextHour, dataset.ForecastNextHour)
}

// WeatherAlerts fetches the alerts in effect at loc. countryCode is required
// by WeatherKit for this dataset.
func (c *Client) WeatherAlerts(ctx context.Context, loc domain.Coordinate, countryCode string) (dataset.Alerts, error) {
	return single(ctx, c, loc, countryCode, dataset.NameWeatherAlerts, dataset.WeatherAlerts)
}

// AlertDetails fetches the full record of one alert.
func (c *Client) AlertDetails(ctx context.Context, id uuid.UUID) (dataset.AlertDetails, error) {
	path := "/api/v1/weatherAlert/" + url.PathEscape(c.language) + "/" + id.String()
	raw, err := c.transport.getObject(ctx, "weatherAlert", path, nil)
	if err != nil {
		return dataset.AlertDetails{}, fmt.Errorf("fetch alert details: %w", err)
	}
	if len(raw) == 0 {
		return dataset.AlertDetails{}, fmt.Errorf("fetch alert details: %w", ErrNoData)
	}
	return dataset.AlertDetailsOf(raw, c.tz)
}

// Availability lists the datasets WeatherKit offers at loc. Names this client
// does not know are dropped.
func (c *Client) Availability(ctx context.Context, loc domain.Coordinate, countryCode string) ([]dataset.Name, error) {
	query := url.Values{}
	if countryCode != "" {
		query.Set("country", countryCode)
	}
	raw, err := c.transport.getStrings(ctx, "availability", "/api/v1/availability/"+coordPath(loc), query)
	if err != nil {
		return nil, fmt.Errorf("fetch availability: %w", err)
	}
	names := make([]dataset.Name, 0, len(raw))
	for _, s := range raw {
		if n, ok := dataset.ParseName(s); ok {
			names = append(names, n)
		}
	}
	return names, nil
}
