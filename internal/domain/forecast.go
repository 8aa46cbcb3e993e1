package domain

import (
	"time"

	"github.com/couchcryptid/weatherkit-collector/internal/enum"
	"github.com/couchcryptid/weatherkit-collector/internal/measure"
)

// DayPart is a summary forecast for part of a day: daytime, overnight or the
// rest of the current day.
type DayPart struct {
	Period              TimePeriod
	CloudCover          *measure.Quantity
	ConditionCode       *enum.Condition
	Humidity            *measure.Quantity
	PrecipitationAmount *measure.Quantity
	PrecipitationChance *measure.Quantity
	PrecipitationType   *enum.PrecipitationType
	SnowfallAmount      *measure.Quantity
	TemperatureMax      *measure.Quantity
	TemperatureMin      *measure.Quantity
	WindDirection       *measure.Quantity
	WindGustSpeedMax    *measure.Quantity
	WindSpeed           *measure.Quantity
	WindSpeedMax        *measure.Quantity
}

// BuildDayPart requires forecastStart, forecastEnd and conditionCode.
func BuildDayPart(raw map[string]any, tz *time.Location) (DayPart, error) {
	r := newReader("day part", raw, tz)
	p := DayPart{
		Period:              r.period("forecastStart", "forecastEnd", true),
		CloudCover:          r.optQuantity("cloudCover", measure.Percentage),
		ConditionCode:       r.condition("conditionCode"),
		Humidity:            r.optQuantity("humidity", measure.Percentage),
		PrecipitationAmount: r.optQuantity("precipitationAmount", millimeters),
		PrecipitationChance: r.optQuantity("precipitationChance", measure.Percentage),
		PrecipitationType:   optStrictEnum(r, "precipitationType", enum.PrecipitationTypes),
		SnowfallAmount:      r.optQuantity("snowfallAmount", millimeters),
		TemperatureMax:      r.optQuantity("temperatureMax", measure.Temperature),
		TemperatureMin:      r.optQuantity("temperatureMin", measure.Temperature),
		WindDirection:       r.optQuantity("windDirection", measure.Bearing),
		WindGustSpeedMax:    r.optQuantity("windGustSpeedMax", measure.Speed),
		WindSpeed:           r.optQuantity("windSpeed", measure.Speed),
		WindSpeedMax:        r.optQuantity("windSpeedMax", measure.Speed),
	}
	if r.err != nil {
		return DayPart{}, r.err
	}
	return p, nil
}

func (p DayPart) Fields() []Field {
	return []Field{
		{"period", p.Period},
		{"cloudCover", Opt(p.CloudCover)},
		{"conditionCode", Opt(p.ConditionCode)},
		{"humidity", Opt(p.Humidity)},
		{"precipitationAmount", Opt(p.PrecipitationAmount)},
		{"precipitationChance", Opt(p.PrecipitationChance)},
		{"precipitationType", Opt(p.PrecipitationType)},
		{"snowfallAmount", Opt(p.SnowfallAmount)},
		{"temperatureMax", Opt(p.TemperatureMax)},
		{"temperatureMin", Opt(p.TemperatureMin)},
		{"windDirection", Opt(p.WindDirection)},
		{"windGustSpeedMax", Opt(p.WindGustSpeedMax)},
		{"windSpeed", Opt(p.WindSpeed)},
		{"windSpeedMax", Opt(p.WindSpeedMax)},
	}
}

func (p DayPart) MarshalJSON() ([]byte, error) { return MarshalFields(p) }

// Day is the forecast for one calendar day.
type Day struct {
	Period              TimePeriod
	ConditionCode       *enum.Condition
	MaxUVIndex          *enum.UVIndex
	Moon                *Moon
	PrecipitationAmount *measure.Quantity
	PrecipitationChance measure.Quantity
	PrecipitationType   *enum.PrecipitationType
	SnowfallAmount      *measure.Quantity
	Sun                 SunTimes
	TemperatureMax      measure.Quantity
	TemperatureMaxTime  *time.Time
	TemperatureMin      measure.Quantity
	TemperatureMinTime  *time.Time
	WindGustSpeedMax    *measure.Quantity
	WindSpeedAvg        *measure.Quantity
	WindSpeedMax        *measure.Quantity
	DaytimeForecast     *DayPart
	OvernightForecast   *DayPart
	RestOfDayForecast   *DayPart
}

// BuildDay requires forecastStart, forecastEnd, conditionCode,
// temperatureMax, temperatureMin and precipitationChance. Moon is set only
// when moonPhase is present.
func BuildDay(raw map[string]any, tz *time.Location) (Day, error) {
	r := newReader("day", raw, tz)
	d := Day{
		Period:              r.period("forecastStart", "forecastEnd", true),
		ConditionCode:       r.condition("conditionCode"),
		MaxUVIndex:          r.uvIndex("maxUvIndex"),
		PrecipitationAmount: r.optQuantity("precipitationAmount", millimeters),
		PrecipitationChance: r.quantity("precipitationChance", measure.Percentage),
		PrecipitationType:   optStrictEnum(r, "precipitationType", enum.PrecipitationTypes),
		SnowfallAmount:      r.optQuantity("snowfallAmount", millimeters),
		TemperatureMax:      r.quantity("temperatureMax", measure.Temperature),
		TemperatureMaxTime:  r.optTime("temperatureMaxTime"),
		TemperatureMin:      r.quantity("temperatureMin", measure.Temperature),
		TemperatureMinTime:  r.optTime("temperatureMinTime"),
		WindGustSpeedMax:    r.optQuantity("windGustSpeedMax", measure.Speed),
		WindSpeedAvg:        r.optQuantity("windSpeedAvg", measure.Speed),
		WindSpeedMax:        r.optQuantity("windSpeedMax", measure.Speed),
		DaytimeForecast:     child(r, "daytimeForecast", BuildDayPart),
		OvernightForecast:   child(r, "overnightForecast", BuildDayPart),
		RestOfDayForecast:   child(r, "restOfDayForecast", BuildDayPart),
	}
	if r.err != nil {
		return Day{}, r.err
	}

	// Sun and moon fields sit flat on the day object.
	sun, err := BuildSunTimes(raw, tz)
	if err != nil {
		return Day{}, err
	}
	d.Sun = sun
	if r.has("moonPhase") {
		moon, err := BuildMoon(raw, tz)
		if err != nil {
			return Day{}, err
		}
		d.Moon = &moon
	}
	return d, nil
}

// Date returns the local calendar date the day starts on.
func (d Day) Date() (year int, month time.Month, day int) {
	if d.Period.Start == nil {
		return 0, 0, 0
	}
	return d.Period.Start.Date()
}

func (d Day) Fields() []Field {
	return []Field{
		{"period", d.Period},
		{"conditionCode", Opt(d.ConditionCode)},
		{"maxUvIndex", Opt(d.MaxUVIndex)},
		{"moon", Opt(d.Moon)},
		{"precipitationAmount", Opt(d.PrecipitationAmount)},
		{"precipitationChance", d.PrecipitationChance},
		{"precipitationType", Opt(d.PrecipitationType)},
		{"snowfallAmount", Opt(d.SnowfallAmount)},
		{"sun", d.Sun},
		{"temperatureMax", d.TemperatureMax},
		{"temperatureMaxTime", Opt(d.TemperatureMaxTime)},
		{"temperatureMin", d.TemperatureMin},
		{"temperatureMinTime", Opt(d.TemperatureMinTime)},
		{"windGustSpeedMax", Opt(d.WindGustSpeedMax)},
		{"windSpeedAvg", Opt(d.WindSpeedAvg)},
		{"windSpeedMax", Opt(d.WindSpeedMax)},
		{"daytimeForecast", Opt(d.DaytimeForecast)},
		{"overnightForecast", Opt(d.OvernightForecast)},
		{"restOfDayForecast", Opt(d.RestOfDayForecast)},
	}
}

func (d Day) MarshalJSON() ([]byte, error) { return MarshalFields(d) }
