package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weatherkit-collector/internal/domain"
)

type stubDataset struct{ temp float64 }

func (s stubDataset) Fields() []domain.Field {
	return []domain.Field{
		{Name: "temperature", Value: s.temp},
		{Name: "conditionCode", Value: "Clear"},
	}
}

func testReport(place string) domain.Report {
	return domain.Report{
		Location: domain.Location{
			Name:        "chicago",
			Coordinate:  domain.Coordinate{Latitude: 41.88, Longitude: -87.63},
			CountryCode: "US",
		},
		Dataset:     "currentWeather",
		Fields:      domain.ToFieldMap(stubDataset{temp: 16.24}),
		Place:       place,
		ProcessedAt: time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC),
	}
}

func TestSerializeToMessage(t *testing.T) {
	msg, err := serializeToMessage(testReport(""))
	require.NoError(t, err)

	assert.Equal(t, []byte("41.88,-87.63/currentWeather"), msg.Key)
	assert.Equal(t, `{"temperature":16.24,"conditionCode":"Clear"}`, string(msg.Value))
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "dataset", msg.Headers[0].Key)
	assert.Equal(t, []byte("currentWeather"), msg.Headers[0].Value)
	assert.Equal(t, "location", msg.Headers[1].Key)
	assert.Equal(t, []byte("chicago"), msg.Headers[1].Value)
	assert.Equal(t, "processed_at", msg.Headers[2].Key)
	assert.Equal(t, []byte("2024-04-26T15:10:00Z"), msg.Headers[2].Value)
}

func TestSerializeToMessage_WithPlace(t *testing.T) {
	msg, err := serializeToMessage(testReport("Chicago, Illinois, United States"))
	require.NoError(t, err)

	require.Len(t, msg.Headers, 4)
	assert.Equal(t, "place", msg.Headers[3].Key)
	assert.Equal(t, []byte("Chicago, Illinois, United States"), msg.Headers[3].Value)
}
