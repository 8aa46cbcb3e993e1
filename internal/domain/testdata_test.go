package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// chicago stands in for a configured client timezone.
var chicago = time.FixedZone("CDT", -5*60*60)

func decode(t *testing.T, payload string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	return m
}

const dayPayload = `{
	"forecastStart": "2024-04-26T05:00:00Z",
	"forecastEnd": "2024-04-27T05:00:00Z",
	"conditionCode": "Thunderstorms",
	"maxUvIndex": 7,
	"moonPhase": "waxingGibbous",
	"moonrise": "2024-04-26T22:10:00Z",
	"moonset": "2024-04-26T10:30:00Z",
	"precipitationAmount": 12.4,
	"precipitationChance": 0.69,
	"precipitationType": "rain",
	"snowfallAmount": 0,
	"solarMidnight": "2024-04-26T06:31:00Z",
	"solarNoon": "2024-04-26T18:31:00Z",
	"sunrise": "2024-04-26T11:52:00Z",
	"sunset": "2024-04-27T01:10:00Z",
	"temperatureMax": 24.3,
	"temperatureMaxTime": "2024-04-26T21:00:00Z",
	"temperatureMin": 16.24,
	"temperatureMinTime": "2024-04-26T11:00:00Z",
	"windGustSpeedMax": 61.2,
	"windSpeedAvg": 18.4,
	"windSpeedMax": 32.1,
	"daytimeForecast": {
		"forecastStart": "2024-04-26T12:00:00Z",
		"forecastEnd": "2024-04-27T00:00:00Z",
		"cloudCover": 0.82,
		"conditionCode": "Thunderstorms",
		"humidity": 0.74,
		"precipitationChance": 0.65,
		"windDirection": 160
	},
	"overnightForecast": {
		"forecastStart": "2024-04-27T00:00:00Z",
		"forecastEnd": "2024-04-27T12:00:00Z",
		"conditionCode": "MostlyCloudy"
	}
}`

const alertPayload = `{
	"id": "2e53dc4b-5fb3-4a64-9d6c-2cc10d8c0b07",
	"areaId": "txc453",
	"areaName": "Travis County",
	"certainty": "likely",
	"countryCode": "US",
	"description": "Severe Thunderstorm Warning",
	"detailsUrl": "https://weatherkit.apple.com/alertDetails/index.html?ids=2e53dc4b",
	"effectiveTime": "2024-04-26T20:00:00Z",
	"expireTime": "2024-04-26T22:00:00Z",
	"issuedTime": "2024-04-26T19:58:00Z",
	"responses": ["shelter", "monitor"],
	"severity": "severe",
	"source": "National Weather Service",
	"urgency": "immediate"
}`
