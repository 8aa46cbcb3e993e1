package domain

import (
	"time"

	"github.com/couchcryptid/weatherkit-collector/internal/enum"
	"github.com/couchcryptid/weatherkit-collector/internal/measure"
)

// Minute is one minute of the next-hour precipitation forecast.
type Minute struct {
	StartTime              time.Time
	PrecipitationChance    measure.Quantity
	PrecipitationIntensity measure.Quantity
}

// BuildMinute requires startTime, precipitationChance and
// precipitationIntensity.
func BuildMinute(raw map[string]any, tz *time.Location) (Minute, error) {
	r := newReader("minute", raw, tz)
	m := Minute{
		StartTime:              r.time("startTime"),
		PrecipitationChance:    r.quantity("precipitationChance", measure.Percentage),
		PrecipitationIntensity: r.quantity("precipitationIntensity", millimeters),
	}
	if r.err != nil {
		return Minute{}, r.err
	}
	return m, nil
}

func (m Minute) Fields() []Field {
	return []Field{
		{"startTime", m.StartTime},
		{"precipitationChance", m.PrecipitationChance},
		{"precipitationIntensity", m.PrecipitationIntensity},
	}
}

func (m Minute) MarshalJSON() ([]byte, error) { return MarshalFields(m) }

// Summary describes a stretch of the next hour with uniform precipitation.
// An absent end means the condition lasts past the forecast horizon.
type Summary struct {
	Period                 TimePeriod
	Condition              enum.PrecipitationType
	PrecipitationChance    *measure.Quantity
	PrecipitationIntensity *measure.Quantity
}

// BuildSummary requires startTime and condition; endTime is optional.
func BuildSummary(raw map[string]any, tz *time.Location) (Summary, error) {
	r := newReader("summary", raw, tz)
	start := r.time("startTime")
	s := Summary{
		Period:                 TimePeriod{Start: &start, End: r.optTime("endTime")},
		Condition:              strictEnum(r, "condition", enum.PrecipitationTypes),
		PrecipitationChance:    r.optQuantity("precipitationChance", measure.Percentage),
		PrecipitationIntensity: r.optQuantity("precipitationIntensity", millimeters),
	}
	if r.err != nil {
		return Summary{}, r.err
	}
	return s, nil
}

func (s Summary) Fields() []Field {
	return []Field{
		{"period", s.Period},
		{"condition", s.Condition},
		{"precipitationChance", Opt(s.PrecipitationChance)},
		{"precipitationIntensity", Opt(s.PrecipitationIntensity)},
	}
}

func (s Summary) MarshalJSON() ([]byte, error) { return MarshalFields(s) }
