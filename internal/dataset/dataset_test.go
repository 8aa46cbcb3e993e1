package dataset

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weatherkit-collector/internal/domain"
)

var chicago = time.FixedZone("CDT", -5*60*60)

func decode(t *testing.T, payload string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	return m
}

const metadataBlock = `{
	"attributionURL": "https://developer.apple.com/weatherkit/data-source-attribution/",
	"expireTime": "2024-04-26T21:15:00Z",
	"language": "en-US",
	"latitude": 30.27,
	"longitude": -97.74,
	"providerLogo": "https://tools.applemediaservices.com/logo.png",
	"providerName": "National Weather Service",
	"readTime": "2024-04-26T20:15:00Z",
	"reportedTime": "2024-04-26T19:00:00Z",
	"temporarilyUnavailable": false,
	"units": "m",
	"version": 1
}`

const dailyPayload = `{
	"name": "DailyForecast",
	"metadata": ` + metadataBlock + `,
	"days": [{
		"forecastStart": "2024-04-26T05:00:00Z",
		"forecastEnd": "2024-04-27T05:00:00Z",
		"conditionCode": "Thunderstorms",
		"temperatureMax": 24.3,
		"temperatureMin": 16.24,
		"precipitationChance": 0.69
	}]
}`

func TestForecastDaily(t *testing.T) {
	daily, err := ForecastDaily(decode(t, dailyPayload), chicago)
	require.NoError(t, err)

	require.Len(t, daily.Days, 1)
	day := daily.Days[0]
	assert.Equal(t, 69.0, day.PrecipitationChance.Value())
	assert.Equal(t, "16.24 °C", day.TemperatureMin.String())
	assert.Equal(t, "24.3 °C", day.TemperatureMax.String())

	require.NotNil(t, daily.Location)
	assert.Equal(t, domain.Coordinate{Latitude: 30.27, Longitude: -97.74}, *daily.Location)
	require.NotNil(t, daily.Provider)
	assert.Equal(t, "National Weather Service", daily.Provider.Name)
	assert.False(t, daily.Provider.TemporarilyUnavailable)
	assert.Equal(t, "https://developer.apple.com/weatherkit/data-source-attribution/", daily.LegalURL)
	assert.Equal(t, 1, daily.Version)
	assert.Equal(t, "m", daily.Units)
	assert.Equal(t, "en-US", daily.Language)
	require.NotNil(t, daily.ReadTime)
	assert.Equal(t, chicago, daily.ReadTime.Location())
	assert.Equal(t, chicago, daily.Timezone())
	assert.False(t, daily.Expired(time.Date(2024, 4, 26, 21, 0, 0, 0, time.UTC)))
	assert.True(t, daily.Expired(time.Date(2024, 4, 26, 21, 15, 0, 0, time.UTC)))
}

func TestDailyOn(t *testing.T) {
	daily, err := ForecastDaily(decode(t, dailyPayload), chicago)
	require.NoError(t, err)

	day, ok := daily.On(time.Date(2024, 4, 26, 23, 0, 0, 0, chicago))
	require.True(t, ok)
	assert.Equal(t, daily.Days[0], day)

	// 03:00 UTC on the 27th is still the 26th in Chicago.
	_, ok = daily.On(time.Date(2024, 4, 27, 3, 0, 0, 0, time.UTC))
	assert.True(t, ok)

	_, ok = daily.On(time.Date(2024, 4, 28, 12, 0, 0, 0, chicago))
	assert.False(t, ok)
}

func TestMetadataMerge(t *testing.T) {
	t.Run("unknown keys are ignored", func(t *testing.T) {
		raw := decode(t, `{
			"metadata": {"latitude": 51.5, "longitude": -0.12, "sourceType": "modeled", "qualityScore": 0.9},
			"days": []
		}`)

		daily, err := ForecastDaily(raw, nil)
		require.NoError(t, err)
		require.NotNil(t, daily.Location)
		assert.Equal(t, "51.5,-0.12", daily.Location.String())
		assert.Nil(t, daily.Provider)
		assert.Empty(t, daily.Days)
		assert.Equal(t, time.UTC, daily.Timezone())
	})

	t.Run("key spelling is normalized", func(t *testing.T) {
		raw := decode(t, `{"metadata": {"attribution_url": "https://example.com/legal", "Expire-Time": "2024-04-26T21:15:00Z"}, "days": []}`)

		daily, err := ForecastDaily(raw, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/legal", daily.LegalURL)
		assert.NotNil(t, daily.ExpireTime)
	})

	t.Run("json.Number values from UseNumber", func(t *testing.T) {
		dec := json.NewDecoder(strings.NewReader(`{
			"metadata": {"latitude": 30.27, "longitude": -97.74, "version": 1},
			"asOf": "2024-04-26T20:15:00Z",
			"cloudCover": 0.31,
			"conditionCode": "Clear",
			"temperature": 27.1
		}`))
		dec.UseNumber()
		var raw map[string]any
		require.NoError(t, dec.Decode(&raw))

		cur, err := CurrentWeather(raw, chicago)
		require.NoError(t, err)
		require.NotNil(t, cur.Location)
		assert.Equal(t, "30.27,-97.74", cur.Location.String())
		assert.Equal(t, 1, cur.Version)
		require.NotNil(t, cur.Current.CloudCover)
		assert.Equal(t, "31%", cur.Current.CloudCover.String())
	})

	t.Run("latitude alone leaves location unset", func(t *testing.T) {
		raw := decode(t, `{"metadata": {"latitude": 51.5}, "days": []}`)

		daily, err := ForecastDaily(raw, nil)
		require.NoError(t, err)
		assert.Nil(t, daily.Location)
	})

	t.Run("malformed known key fails", func(t *testing.T) {
		raw := decode(t, `{"metadata": {"readTime": "noonish"}, "days": []}`)

		_, err := ForecastDaily(raw, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidTime)
	})

	t.Run("metadata must be an object", func(t *testing.T) {
		raw := decode(t, `{"metadata": [1, 2], "days": []}`)

		_, err := ForecastDaily(raw, nil)
		assert.ErrorIs(t, err, domain.ErrFieldType)
	})

	t.Run("no metadata", func(t *testing.T) {
		hourly, err := ForecastHourly(decode(t, `{"hours": []}`), nil)
		require.NoError(t, err)
		assert.Nil(t, hourly.Location)
		assert.Zero(t, hourly.Version)
	})
}

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"attributionURL":          "attributionurl",
		"provider_name":           "providername",
		"temporarily-unavailable": "temporarilyunavailable",
		"Reported Time":           "reportedtime",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeKey(in), in)
	}
}

func TestCurrentWeather(t *testing.T) {
	raw := decode(t, `{
		"name": "CurrentWeather",
		"metadata": {"latitude": 30.27, "longitude": -97.74},
		"asOf": "2024-04-26T20:15:00Z",
		"cloudCover": 0.31,
		"conditionCode": "PartlyCloudy",
		"temperature": 27.1
	}`)

	cur, err := CurrentWeather(raw, chicago)
	require.NoError(t, err)
	assert.Equal(t, "31%", cur.Current.CloudCover.String())
	assert.Equal(t, "30.27,-97.74", cur.Location.String())

	delete(raw, "temperature")
	_, err = CurrentWeather(raw, chicago)
	var missing *domain.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "current", missing.Entity)
	assert.Contains(t, err.Error(), "build current weather")
}

func TestForecastNextHour(t *testing.T) {
	raw := decode(t, `{
		"name": "NextHourForecast",
		"forecastStart": "2024-04-26T20:16:00Z",
		"forecastEnd": "2024-04-26T21:16:00Z",
		"summary": [
			{"startTime": "2024-04-26T20:16:00Z", "endTime": "2024-04-26T20:40:00Z", "condition": "rain", "precipitationChance": 0.7},
			{"startTime": "2024-04-26T20:40:00Z", "condition": "clear"}
		],
		"minutes": [
			{"startTime": "2024-04-26T20:16:00Z", "precipitationChance": 0.7, "precipitationIntensity": 1.2},
			{"startTime": "2024-04-26T20:17:00Z", "precipitationChance": 0.68, "precipitationIntensity": 1.1}
		]
	}`)

	next, err := ForecastNextHour(raw, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, next.Period.Duration())
	require.Len(t, next.Summary, 2)
	assert.Nil(t, next.Summary[1].Period.End)
	require.Len(t, next.Minutes, 2)
	assert.Equal(t, "1.1 mm", next.Minutes[1].PrecipitationIntensity.String())

	raw["minutes"].([]any)[1].(map[string]any)["precipitationChance"] = nil
	_, err = ForecastNextHour(raw, time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minutes[1]")
}

func TestWeatherAlerts(t *testing.T) {
	raw := decode(t, `{
		"name": "WeatherAlerts",
		"detailsUrl": "https://weatherkit.apple.com/alertDetails/index.html",
		"alerts": [{
			"id": "2e53dc4b-5fb3-4a64-9d6c-2cc10d8c0b07",
			"description": "Flood Watch",
			"severity": "moderate",
			"certainty": "possible",
			"urgency": "future",
			"source": "National Weather Service",
			"issuedTime": "2024-04-26T10:00:00Z",
			"effectiveTime": "2024-04-26T12:00:00Z",
			"expireTime": "2024-04-27T12:00:00Z"
		}]
	}`)

	alerts, err := WeatherAlerts(raw, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "https://weatherkit.apple.com/alertDetails/index.html", alerts.DetailsURL)
	require.Len(t, alerts.Alerts, 1)
	assert.Len(t, alerts.Active(time.Date(2024, 4, 26, 18, 0, 0, 0, time.UTC)), 1)
	assert.Empty(t, alerts.Active(time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC)))
}

func TestAlertDetailsOf(t *testing.T) {
	raw := decode(t, `{
		"id": "2e53dc4b-5fb3-4a64-9d6c-2cc10d8c0b07",
		"description": "Flood Watch",
		"severity": "moderate",
		"certainty": "possible",
		"urgency": "future",
		"source": "National Weather Service",
		"issuedTime": "2024-04-26T10:00:00Z",
		"importance": "normal",
		"messages": [{"language": "en", "text": "Flooding is possible."}],
		"metadata": {"language": "en"}
	}`)

	details, err := AlertDetailsOf(raw, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "Flood Watch", details.Details.Description)
	require.Len(t, details.Details.Messages, 1)
	assert.Equal(t, "en", details.Language)
}

func TestToFieldMapDataset(t *testing.T) {
	daily, err := ForecastDaily(decode(t, dailyPayload), chicago)
	require.NoError(t, err)

	m := domain.ToFieldMap(daily)
	assert.Equal(t, []string{
		"location", "provider", "legalUrl", "expireTime", "readTime", "reportedTime",
		"version", "units", "language", "days",
	}, m.Keys())

	loc, _ := m.Get("location")
	assert.IsType(t, &domain.FieldMap{}, loc)
	days, _ := m.Get("days")
	assert.IsType(t, []domain.Day{}, days)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "CDT")
	assert.Contains(t, string(data), `"precipitationChance":{"value":69,"unit":"%"}`)
}
