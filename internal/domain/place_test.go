package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimePeriod(t *testing.T) {
	start := time.Date(2024, 4, 26, 0, 0, 0, 0, time.UTC)
	end := start.Add(12 * time.Hour)

	tests := []struct {
		name   string
		period TimePeriod
		at     time.Time
		want   bool
	}{
		{"start inclusive", TimePeriod{Start: &start, End: &end}, start, true},
		{"end exclusive", TimePeriod{Start: &start, End: &end}, end, false},
		{"before start", TimePeriod{Start: &start, End: &end}, start.Add(-time.Second), false},
		{"open end", TimePeriod{Start: &start}, end.Add(time.Hour), true},
		{"open start", TimePeriod{End: &end}, start.Add(-time.Hour), true},
		{"fully open", TimePeriod{}, start, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Contains(tt.at))
		})
	}
}

func TestCoordinate(t *testing.T) {
	c, err := BuildCoordinate(map[string]any{"latitude": 30.27, "longitude": -97.74}, nil)
	require.NoError(t, err)
	assert.Equal(t, "30.27,-97.74", c.String())

	_, err = BuildCoordinate(map[string]any{"latitude": 30.27}, nil)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestBuildArea(t *testing.T) {
	ring := func(points ...[2]float64) []any {
		out := make([]any, 0, len(points))
		for _, p := range points {
			out = append(out, []any{p[0], p[1]})
		}
		return out
	}
	collection := func(geometryType string, coords []any) map[string]any {
		return map[string]any{"features": []any{map[string]any{
			"geometry": map[string]any{"type": geometryType, "coordinates": coords},
		}}}
	}

	t.Run("polygon keeps first ring", func(t *testing.T) {
		raw := collection("Polygon", []any{
			ring([2]float64{-97.9, 30.1}, [2]float64{-97.5, 30.5}),
			ring([2]float64{0, 0}),
		})

		area, err := BuildArea(raw, nil)
		require.NoError(t, err)
		assert.Equal(t, []Coordinate{{30.1, -97.9}, {30.5, -97.5}}, area.Coordinates)
	})

	t.Run("multipolygon keeps first polygon's first ring", func(t *testing.T) {
		raw := collection("MultiPolygon", []any{
			[]any{ring([2]float64{-80, 25}, [2]float64{-81, 26})},
			[]any{ring([2]float64{-90, 35})},
		})

		area, err := BuildArea(raw, nil)
		require.NoError(t, err)
		assert.Equal(t, "MultiPolygon", area.GeometryType)
		assert.Equal(t, []Coordinate{{25, -80}, {26, -81}}, area.Coordinates)
	})

	t.Run("no features", func(t *testing.T) {
		area, err := BuildArea(map[string]any{"features": []any{}}, nil)
		require.NoError(t, err)
		assert.Empty(t, area.Coordinates)
	})

	t.Run("malformed position", func(t *testing.T) {
		raw := collection("Polygon", []any{[]any{[]any{"a", "b"}}})

		_, err := BuildArea(raw, nil)
		assert.ErrorIs(t, err, ErrFieldType)
	})

	t.Run("missing geometry", func(t *testing.T) {
		raw := map[string]any{"features": []any{map[string]any{}}}

		_, err := BuildArea(raw, nil)
		assert.ErrorIs(t, err, ErrMissingField)
	})
}
