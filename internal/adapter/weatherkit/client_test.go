package weatherkit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weatherkit-collector/internal/dataset"
	"github.com/couchcryptid/weatherkit-collector/internal/domain"
	"github.com/couchcryptid/weatherkit-collector/internal/observability"
)

var austin = domain.Coordinate{Latitude: 30.27, Longitude: -97.74}

const currentResponse = `{
	"currentWeather": {
		"name": "CurrentWeather",
		"metadata": {"latitude": 30.27, "longitude": -97.74, "version": 1},
		"asOf": "2024-04-26T20:15:00Z",
		"cloudCover": 0.31,
		"conditionCode": "PartlyCloudy",
		"temperature": 27.1
	}
}`

func testClient(t *testing.T, baseURL string, breakerFailures uint32) (*Client, *observability.Metrics) {
	t.Helper()
	_, pemKey := testKey(t)
	metrics := observability.NewMetricsForTesting()
	cfg := Config{
		TransportConfig: TransportConfig{
			BaseURL:         baseURL,
			Timeout:         2 * time.Second,
			BreakerFailures: breakerFailures,
			BreakerTimeout:  time.Minute,
		},
		KeyID:      testKeyID,
		TeamID:     testTeamID,
		ServiceID:  testServiceID,
		PrivateKey: pemKey,
		Language:   "en",
		Timezone:   "UTC",
	}
	c, err := New(cfg, clockwork.NewFakeClock(), metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return c, metrics
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestClient_CurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/weather/en/30.27/-97.74", r.URL.Path)
		assert.Equal(t, "currentWeather", r.URL.Query().Get("dataSets"))
		assert.Equal(t, "UTC", r.URL.Query().Get("timezone"))
		assert.False(t, r.URL.Query().Has("countryCode"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))
		respond(http.StatusOK, currentResponse)(w, r)
	}))
	defer srv.Close()

	c, metrics := testClient(t, srv.URL, 0)
	cur, err := c.CurrentWeather(context.Background(), austin)
	require.NoError(t, err)

	assert.Equal(t, "31%", cur.Current.CloudCover.String())
	assert.Equal(t, austin, *cur.Location)
	assert.Equal(t, 1, cur.Version)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WeatherKitRequests.WithLabelValues("weather", "success")))
}

func TestClient_Weather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "currentWeather,weatherAlerts", r.URL.Query().Get("dataSets"))
		assert.Equal(t, "US", r.URL.Query().Get("countryCode"))
		respond(http.StatusOK, currentResponse)(w, r)
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL, 0)
	w, err := c.Weather(context.Background(), austin, "US", dataset.NameCurrentWeather, dataset.NameWeatherAlerts)
	require.NoError(t, err)
	assert.NotNil(t, w.CurrentWeather)
	assert.Nil(t, w.WeatherAlerts)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name:    "no content",
			handler: respond(http.StatusNoContent, ""),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoData)
			},
		},
		{
			name:    "client error",
			handler: respond(http.StatusUnauthorized, `{"reason":"NOT_ENABLED"}`),
			check: func(t *testing.T, err error) {
				var clientErr *ClientError
				require.ErrorAs(t, err, &clientErr)
				assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
				assert.Contains(t, clientErr.Body, "NOT_ENABLED")
			},
		},
		{
			name:    "server error",
			handler: respond(http.StatusBadGateway, "upstream down"),
			check: func(t *testing.T, err error) {
				var serverErr *ServerError
				require.ErrorAs(t, err, &serverErr)
				assert.Equal(t, http.StatusBadGateway, serverErr.StatusCode)
			},
		},
		{
			name:    "decode error",
			handler: respond(http.StatusOK, `{"currentWeather":`),
			check: func(t *testing.T, err error) {
				var decodeErr *DecodeError
				assert.ErrorAs(t, err, &decodeErr)
			},
		},
		{
			name:    "parse error",
			handler: respond(http.StatusOK, `{"currentWeather":{"asOf":"2024-04-26T20:15:00Z"}}`),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrMissingField)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c, _ := testClient(t, srv.URL, 0)
			_, err := c.CurrentWeather(context.Background(), austin)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_RawNoContent(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusNoContent, ""))
	defer srv.Close()

	c, metrics := testClient(t, srv.URL, 0)
	raw, err := c.Raw(context.Background(), austin, "", dataset.NameForecastDaily)
	require.NoError(t, err)
	assert.Empty(t, raw)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WeatherKitRequests.WithLabelValues("weather", "empty")))
}

func TestClient_RequestError(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, "{}"))
	url := srv.URL
	srv.Close()

	c, _ := testClient(t, url, 0)
	_, err := c.CurrentWeather(context.Background(), austin)
	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
}

func TestClient_CircuitBreaker(t *testing.T) {
	t.Run("opens after consecutive server errors", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			respond(http.StatusServiceUnavailable, "")(w, r)
		}))
		defer srv.Close()

		c, metrics := testClient(t, srv.URL, 2)
		for range 2 {
			_, err := c.CurrentWeather(context.Background(), austin)
			var serverErr *ServerError
			require.ErrorAs(t, err, &serverErr)
		}

		_, err := c.CurrentWeather(context.Background(), austin)
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
		assert.Equal(t, int32(2), hits.Load())
		assert.Equal(t, float64(gobreaker.StateOpen), testutil.ToFloat64(metrics.BreakerState))
	})

	t.Run("client errors do not trip", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			respond(http.StatusNotFound, "")(w, r)
		}))
		defer srv.Close()

		c, _ := testClient(t, srv.URL, 2)
		for range 4 {
			_, err := c.CurrentWeather(context.Background(), austin)
			var clientErr *ClientError
			require.ErrorAs(t, err, &clientErr)
		}
		assert.Equal(t, int32(4), hits.Load())
	})
}

func TestClient_AlertDetails(t *testing.T) {
	id := uuid.MustParse("2e53dc4b-5fb3-4a64-9d6c-2cc10d8c0b07")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/weatherAlert/en/"+id.String(), r.URL.Path)
		respond(http.StatusOK, `{
			"id": "2e53dc4b-5fb3-4a64-9d6c-2cc10d8c0b07",
			"description": "Flood Watch",
			"severity": "moderate",
			"certainty": "possible",
			"urgency": "future",
			"source": "National Weather Service",
			"issuedTime": "2024-04-26T10:00:00Z",
			"messages": [{"language": "en", "text": "Flooding is possible."}]
		}`)(w, r)
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL, 0)
	details, err := c.AlertDetails(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, details.Details.ID)
	assert.Len(t, details.Details.Messages, 1)
}

func TestClient_Availability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/availability/30.27/-97.74", r.URL.Path)
		assert.Equal(t, "US", r.URL.Query().Get("country"))
		respond(http.StatusOK, `["currentWeather","forecastDaily","forecastHourly","marineForecast"]`)(w, r)
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL, 0)
	names, err := c.Availability(context.Background(), austin, "US")
	require.NoError(t, err)
	assert.Equal(t, []dataset.Name{dataset.NameCurrentWeather, dataset.NameForecastDaily, dataset.NameForecastHourly}, names)
}

func TestNew_BadTimezone(t *testing.T) {
	_, pemKey := testKey(t)
	_, err := New(Config{PrivateKey: pemKey, Timezone: "Mars/Olympus_Mons"}, nil, observability.NewMetricsForTesting(), slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load timezone")
}
