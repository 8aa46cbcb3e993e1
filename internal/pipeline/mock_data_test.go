package pipeline_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weatherkit-collector/internal/domain"
	"github.com/couchcryptid/weatherkit-collector/internal/mockdata"
	"github.com/couchcryptid/weatherkit-collector/internal/pipeline"
)

// Runs generated responses for several locations through the real transformer
// and checks the exported report shape.
func TestReportTransformer_WithMockData(t *testing.T) {
	chicagoTZ, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	tfm := pipeline.NewTransformer(chicagoTZ, nil, clockwork.NewFakeClockAt(refTime), discardLogger())

	cases := []struct {
		name     string
		location domain.Location
	}{
		{"chicago", chicago},
		{"sydney", domain.Location{Name: "sydney", Coordinate: domain.Coordinate{Latitude: -33.87, Longitude: 151.21}, CountryCode: "AU"}},
		{"reykjavik", domain.Location{Name: "reykjavik", Coordinate: domain.Coordinate{Latitude: 64.15, Longitude: -21.94}, CountryCode: "IS"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := roundTrip(t, mockdata.Weather(refTime, tc.location.Coordinate))

			reports, err := tfm.Transform(context.Background(), tc.location, raw)
			require.NoError(t, err)
			require.Len(t, reports, 5)

			byName := make(map[string]domain.Report, len(reports))
			for _, r := range reports {
				byName[r.Dataset] = r
				assert.Equal(t, tc.location.Coordinate.String()+"/"+r.Dataset, r.Key())
				assert.Equal(t, refTime, r.ProcessedAt)
			}

			current := byName["currentWeather"].Fields
			v, ok := current.Get("current")
			require.True(t, ok)
			obs, ok := v.(*domain.FieldMap)
			require.True(t, ok)
			assert.Equal(t, "asOf", obs.Keys()[0])
			asOf, _ := obs.Get("asOf")
			assert.Equal(t, chicagoTZ, asOf.(time.Time).Location())

			data, err := json.Marshal(current)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"unit":"°C"`)
			assert.Contains(t, string(data), `"units":"m"`)

			daily := byName["forecastDaily"].Fields
			days, ok := daily.Get("days")
			require.True(t, ok)
			assert.Len(t, days, 10)

			alerts := byName["weatherAlerts"].Fields
			data, err = json.Marshal(alerts)
			require.NoError(t, err)
			assert.Contains(t, string(data), mockdata.AlertID(tc.location.Coordinate).String())
			assert.Contains(t, string(data), `"severity":"severe"`)
		})
	}
}

// roundTrip passes a payload through JSON so it has the types a decoded
// HTTP response would.
func roundTrip(t *testing.T, payload map[string]any) map[string]any {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}
