package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weatherkit-collector/internal/domain"
	"github.com/couchcryptid/weatherkit-collector/internal/mockdata"
)

func TestRoundTrip(t *testing.T) {
	t.Run("generated payload", func(t *testing.T) {
		now := time.Date(2024, 4, 26, 20, 0, 0, 0, time.UTC)
		out, err := roundTrip(mockdata.Weather(now, domain.Coordinate{Latitude: 41.88, Longitude: -87.63}))
		require.NoError(t, err)
		assert.Contains(t, out, "currentWeather")
	})

	t.Run("unencodable value", func(t *testing.T) {
		_, err := roundTrip(map[string]any{"bad": make(chan int)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "marshal")
	})
}
