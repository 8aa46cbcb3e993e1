package domain

import (
	"time"

	"github.com/couchcryptid/weatherkit-collector/internal/enum"
	"github.com/couchcryptid/weatherkit-collector/internal/measure"
)

// Hour is the forecast for one hour.
type Hour struct {
	ForecastStart          time.Time
	CloudCover             *measure.Quantity
	ConditionCode          *enum.Condition
	Daylight               *bool
	Humidity               *measure.Quantity
	PrecipitationAmount    *measure.Quantity
	PrecipitationChance    *measure.Quantity
	PrecipitationIntensity *measure.Quantity
	PrecipitationType      *enum.PrecipitationType
	Pressure               *measure.Quantity
	PressureTrend          *enum.PressureTrend
	SnowfallIntensity      *measure.Quantity
	Temperature            measure.Quantity
	TemperatureApparent    *measure.Quantity
	TemperatureDewPoint    *measure.Quantity
	UVIndex                *enum.UVIndex
	Visibility             *measure.Quantity
	WindDirection          *measure.Quantity
	WindGust               *measure.Quantity
	WindSpeed              *measure.Quantity
}

// BuildHour requires forecastStart, conditionCode and temperature.
func BuildHour(raw map[string]any, tz *time.Location) (Hour, error) {
	r := newReader("hour", raw, tz)
	h := Hour{
		ForecastStart:          r.time("forecastStart"),
		CloudCover:             r.optQuantity("cloudCover", measure.Percentage),
		ConditionCode:          r.condition("conditionCode"),
		Daylight:               r.optBool("daylight"),
		Humidity:               r.optQuantity("humidity", measure.Percentage),
		PrecipitationAmount:    r.optQuantity("precipitationAmount", millimeters),
		PrecipitationChance:    r.optQuantity("precipitationChance", measure.Percentage),
		PrecipitationIntensity: r.optQuantity("precipitationIntensity", millimeters),
		PrecipitationType:      optStrictEnum(r, "precipitationType", enum.PrecipitationTypes),
		Pressure:               r.optQuantity("pressure", measure.Pressure),
		PressureTrend:          optStrictEnum(r, "pressureTrend", enum.PressureTrends),
		SnowfallIntensity:      r.optQuantity("snowfallIntensity", millimeters),
		Temperature:            r.quantity("temperature", measure.Temperature),
		TemperatureApparent:    r.optQuantity("temperatureApparent", measure.Temperature),
		TemperatureDewPoint:    r.optQuantity("temperatureDewPoint", measure.Temperature),
		UVIndex:                r.uvIndex("uvIndex"),
		Visibility:             r.optQuantity("visibility", meters),
		WindDirection:          r.optQuantity("windDirection", measure.Bearing),
		WindGust:               r.optQuantity("windGust", measure.Speed),
		WindSpeed:              r.optQuantity("windSpeed", measure.Speed),
	}
	if r.err != nil {
		return Hour{}, r.err
	}
	return h, nil
}

func (h Hour) Fields() []Field {
	return []Field{
		{"forecastStart", h.ForecastStart},
		{"cloudCover", Opt(h.CloudCover)},
		{"conditionCode", Opt(h.ConditionCode)},
		{"daylight", Opt(h.Daylight)},
		{"humidity", Opt(h.Humidity)},
		{"precipitationAmount", Opt(h.PrecipitationAmount)},
		{"precipitationChance", Opt(h.PrecipitationChance)},
		{"precipitationIntensity", Opt(h.PrecipitationIntensity)},
		{"precipitationType", Opt(h.PrecipitationType)},
		{"pressure", Opt(h.Pressure)},
		{"pressureTrend", Opt(h.PressureTrend)},
		{"snowfallIntensity", Opt(h.SnowfallIntensity)},
		{"temperature", h.Temperature},
		{"temperatureApparent", Opt(h.TemperatureApparent)},
		{"temperatureDewPoint", Opt(h.TemperatureDewPoint)},
		{"uvIndex", Opt(h.UVIndex)},
		{"visibility", Opt(h.Visibility)},
		{"windDirection", Opt(h.WindDirection)},
		{"windGust", Opt(h.WindGust)},
		{"windSpeed", Opt(h.WindSpeed)},
	}
}

func (h Hour) MarshalJSON() ([]byte, error) { return MarshalFields(h) }

// Current is the observed weather at a point in time.
type Current struct {
	AsOf                   time.Time
	CloudCover             *measure.Quantity
	CloudCoverLowAlt       *measure.Quantity
	CloudCoverMidAlt       *measure.Quantity
	CloudCoverHighAlt      *measure.Quantity
	ConditionCode          *enum.Condition
	Daylight               *bool
	Humidity               *measure.Quantity
	PrecipitationIntensity *measure.Quantity
	Pressure               *measure.Quantity
	PressureTrend          *enum.PressureTrend
	Temperature            measure.Quantity
	TemperatureApparent    *measure.Quantity
	TemperatureDewPoint    *measure.Quantity
	UVIndex                *enum.UVIndex
	Visibility             *measure.Quantity
	WindDirection          *measure.Quantity
	WindGust               *measure.Quantity
	WindSpeed              *measure.Quantity
}

// BuildCurrent requires asOf, conditionCode and temperature.
func BuildCurrent(raw map[string]any, tz *time.Location) (Current, error) {
	r := newReader("current", raw, tz)
	c := Current{
		AsOf:                   r.time("asOf"),
		CloudCover:             r.optQuantity("cloudCover", measure.Percentage),
		CloudCoverLowAlt:       r.optQuantity("cloudCoverLowAltPct", measure.Percentage),
		CloudCoverMidAlt:       r.optQuantity("cloudCoverMidAltPct", measure.Percentage),
		CloudCoverHighAlt:      r.optQuantity("cloudCoverHighAltPct", measure.Percentage),
		ConditionCode:          r.condition("conditionCode"),
		Daylight:               r.optBool("daylight"),
		Humidity:               r.optQuantity("humidity", measure.Percentage),
		PrecipitationIntensity: r.optQuantity("precipitationIntensity", millimeters),
		Pressure:               r.optQuantity("pressure", measure.Pressure),
		PressureTrend:          optStrictEnum(r, "pressureTrend", enum.PressureTrends),
		Temperature:            r.quantity("temperature", measure.Temperature),
		TemperatureApparent:    r.optQuantity("temperatureApparent", measure.Temperature),
		TemperatureDewPoint:    r.optQuantity("temperatureDewPoint", measure.Temperature),
		UVIndex:                r.uvIndex("uvIndex"),
		Visibility:             r.optQuantity("visibility", meters),
		WindDirection:          r.optQuantity("windDirection", measure.Bearing),
		WindGust:               r.optQuantity("windGust", measure.Speed),
		WindSpeed:              r.optQuantity("windSpeed", measure.Speed),
	}
	if r.err != nil {
		return Current{}, r.err
	}
	return c, nil
}

func (c Current) Fields() []Field {
	return []Field{
		{"asOf", c.AsOf},
		{"cloudCover", Opt(c.CloudCover)},
		{"cloudCoverLowAlt", Opt(c.CloudCoverLowAlt)},
		{"cloudCoverMidAlt", Opt(c.CloudCoverMidAlt)},
		{"cloudCoverHighAlt", Opt(c.CloudCoverHighAlt)},
		{"conditionCode", Opt(c.ConditionCode)},
		{"daylight", Opt(c.Daylight)},
		{"humidity", Opt(c.Humidity)},
		{"precipitationIntensity", Opt(c.PrecipitationIntensity)},
		{"pressure", Opt(c.Pressure)},
		{"pressureTrend", Opt(c.PressureTrend)},
		{"temperature", c.Temperature},
		{"temperatureApparent", Opt(c.TemperatureApparent)},
		{"temperatureDewPoint", Opt(c.TemperatureDewPoint)},
		{"uvIndex", Opt(c.UVIndex)},
		{"visibility", Opt(c.Visibility)},
		{"windDirection", Opt(c.WindDirection)},
		{"windGust", Opt(c.WindGust)},
		{"windSpeed", Opt(c.WindSpeed)},
	}
}

func (c Current) MarshalJSON() ([]byte, error) { return MarshalFields(c) }
