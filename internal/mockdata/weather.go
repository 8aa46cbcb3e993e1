// Package mockdata generates synthetic WeatherKit responses. The payloads
// follow the wire format closely enough to build every dataset and are fully
// determined by the reference time and coordinate, so fixtures are
// reproducible under a fixed clock.
package mockdata

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/couchcryptid/weatherkit-collector/internal/domain"
)

// AlertNamespace seeds the deterministic alert IDs.
var AlertNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

var conditions = []string{"Clear", "MostlyClear", "PartlyCloudy", "MostlyCloudy", "Cloudy", "Rain", "Thunderstorms"}

// Weather returns a full multi-dataset response for c as of now.
func Weather(now time.Time, c domain.Coordinate) map[string]any {
	now = now.UTC().Truncate(time.Minute)
	return map[string]any{
		"currentWeather":   CurrentWeather(now, c),
		"forecastHourly":   ForecastHourly(now, c, 24),
		"forecastDaily":    ForecastDaily(now, c, 10),
		"forecastNextHour": ForecastNextHour(now, c),
		"weatherAlerts":    WeatherAlerts(now, c),
	}
}

func metadata(now time.Time, c domain.Coordinate, expires time.Duration) map[string]any {
	return map[string]any{
		"attributionURL": "https://developer.apple.com/weatherkit/data-source-attribution/",
		"expireTime":     stamp(now.Add(expires)),
		"latitude":       c.Latitude,
		"longitude":      c.Longitude,
		"readTime":       stamp(now),
		"reportedTime":   stamp(now.Add(-5 * time.Minute)),
		"units":          "m",
		"version":        1,
	}
}

// baseTemp varies with latitude and the hour of day so neighboring locations
// and hours differ.
func baseTemp(t time.Time, c domain.Coordinate) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60
	return round(25-math.Abs(c.Latitude)*0.3+6*math.Sin((hour-9)*math.Pi/12), 2)
}

func condition(t time.Time, c domain.Coordinate) string {
	i := (t.YearDay() + t.Hour()/6 + int(math.Abs(c.Longitude))) % len(conditions)
	return conditions[i]
}

func CurrentWeather(now time.Time, c domain.Coordinate) map[string]any {
	temp := baseTemp(now, c)
	return map[string]any{
		"name":                   "CurrentWeather",
		"metadata":               metadata(now, c, 5*time.Minute),
		"asOf":                   stamp(now),
		"cloudCover":             0.31,
		"cloudCoverLowAltPct":    0.12,
		"cloudCoverMidAltPct":    0.2,
		"cloudCoverHighAltPct":   0.05,
		"conditionCode":          condition(now, c),
		"daylight":               now.Hour() >= 6 && now.Hour() < 20,
		"humidity":               0.69,
		"precipitationIntensity": 0.0,
		"pressure":               1014.2,
		"pressureTrend":          "steady",
		"temperature":            temp,
		"temperatureApparent":    round(temp-1.1, 2),
		"temperatureDewPoint":    round(temp-7.4, 2),
		"uvIndex":                uv(now),
		"visibility":             24100.0,
		"windDirection":          270.0,
		"windGust":               31.5,
		"windSpeed":              18.2,
	}
}

// ForecastHourly emits hours forecasts starting at the hour of now.
func ForecastHourly(now time.Time, c domain.Coordinate, hours int) map[string]any {
	start := now.Truncate(time.Hour)
	items := make([]any, 0, hours)
	for i := 0; i < hours; i++ {
		t := start.Add(time.Duration(i) * time.Hour)
		temp := baseTemp(t, c)
		items = append(items, map[string]any{
			"forecastStart":          stamp(t),
			"cloudCover":             0.35,
			"conditionCode":          condition(t, c),
			"daylight":               t.Hour() >= 6 && t.Hour() < 20,
			"humidity":               0.82,
			"precipitationAmount":    0.0,
			"precipitationChance":    0.1,
			"precipitationIntensity": 0.0,
			"precipitationType":      "clear",
			"pressure":               1013.6,
			"pressureTrend":          "falling",
			"snowfallIntensity":      0.0,
			"temperature":            temp,
			"temperatureApparent":    round(temp-1.1, 2),
			"temperatureDewPoint":    round(temp-7.4, 2),
			"uvIndex":                uv(t),
			"visibility":             20000.0,
			"windDirection":          float64((200 + 5*i) % 360),
			"windGust":               28.0,
			"windSpeed":              14.5,
		})
	}
	return map[string]any{
		"name":     "HourlyForecast",
		"metadata": metadata(now, c, time.Hour),
		"hours":    items,
	}
}

// ForecastDaily emits days forecasts starting at midnight UTC of now.
func ForecastDaily(now time.Time, c domain.Coordinate, days int) map[string]any {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	items := make([]any, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		high := baseTemp(day.Add(15*time.Hour), c)
		low := baseTemp(day.Add(3*time.Hour), c)
		part := func(from, to time.Time) map[string]any {
			return map[string]any{
				"forecastStart":       stamp(from),
				"forecastEnd":         stamp(to),
				"cloudCover":          0.35,
				"conditionCode":       condition(from, c),
				"humidity":            0.69,
				"precipitationAmount": 0.0,
				"precipitationChance": 0.1,
				"precipitationType":   "clear",
				"snowfallAmount":      0.0,
				"windDirection":       160.0,
				"windSpeed":           12.0,
			}
		}
		items = append(items, map[string]any{
			"forecastStart":       stamp(day),
			"forecastEnd":         stamp(day.AddDate(0, 0, 1)),
			"conditionCode":       condition(day.Add(12*time.Hour), c),
			"maxUvIndex":          uv(day.Add(13 * time.Hour)),
			"moonPhase":           moonPhase(day),
			"moonrise":            stamp(day.Add(19 * time.Hour)),
			"moonset":             stamp(day.Add(31 * time.Hour)),
			"precipitationAmount": 0.0,
			"precipitationChance": 0.1,
			"precipitationType":   "clear",
			"snowfallAmount":      0.0,
			"solarMidnight":       stamp(day),
			"solarNoon":           stamp(day.Add(12 * time.Hour)),
			"sunrise":             stamp(day.Add(6 * time.Hour)),
			"sunset":              stamp(day.Add(20 * time.Hour)),
			"temperatureMax":      high,
			"temperatureMin":      low,
			"daytimeForecast":     part(day.Add(7*time.Hour), day.Add(19*time.Hour)),
			"overnightForecast":   part(day.Add(19*time.Hour), day.Add(31*time.Hour)),
		})
	}
	return map[string]any{
		"name":     "DailyForecast",
		"metadata": metadata(now, c, time.Hour),
		"days":     items,
	}
}

func ForecastNextHour(now time.Time, c domain.Coordinate) map[string]any {
	minutes := make([]any, 0, 60)
	for i := 0; i < 60; i++ {
		minutes = append(minutes, map[string]any{
			"startTime":              stamp(now.Add(time.Duration(i) * time.Minute)),
			"precipitationChance":    0.0,
			"precipitationIntensity": 0.0,
		})
	}
	end := now.Add(time.Hour)
	return map[string]any{
		"name":          "NextHourForecast",
		"metadata":      metadata(now, c, 5*time.Minute),
		"forecastStart": stamp(now),
		"forecastEnd":   stamp(end),
		"summary": []any{
			map[string]any{
				"startTime":              stamp(now),
				"endTime":                stamp(end),
				"condition":              "clear",
				"precipitationChance":    0.0,
				"precipitationIntensity": 0.0,
			},
		},
		"minutes": minutes,
	}
}

func WeatherAlerts(now time.Time, c domain.Coordinate) map[string]any {
	return map[string]any{
		"name":       "WeatherAlerts",
		"metadata":   metadata(now, c, 30*time.Minute),
		"detailsUrl": "https://weatherkit.apple.com/alertDetails/index.html",
		"alerts":     []any{Alert(now, c)},
	}
}

// Alert is a single active severe thunderstorm warning.
func Alert(now time.Time, c domain.Coordinate) map[string]any {
	return map[string]any{
		"id":             AlertID(c).String(),
		"areaId":         "ilz014",
		"areaName":       "Cook County",
		"certainty":      "likely",
		"countryCode":    "US",
		"description":    "Severe Thunderstorm Warning",
		"detailsUrl":     "https://weatherkit.apple.com/alertDetails/index.html?id=" + AlertID(c).String(),
		"effectiveTime":  stamp(now.Add(-30 * time.Minute)),
		"expireTime":     stamp(now.Add(90 * time.Minute)),
		"issuedTime":     stamp(now.Add(-30 * time.Minute)),
		"eventOnsetTime": stamp(now.Add(-15 * time.Minute)),
		"eventEndTime":   stamp(now.Add(60 * time.Minute)),
		"responses":      []any{"shelter"},
		"severity":       "severe",
		"source":         "National Weather Service",
		"urgency":        "immediate",
	}
}

// AlertDetails returns the single-alert response for the alert at c.
func AlertDetails(now time.Time, c domain.Coordinate) map[string]any {
	out := Alert(now, c)
	out["name"] = "WeatherAlert"
	out["metadata"] = metadata(now, c, 30*time.Minute)
	out["importance"] = "high"
	out["messages"] = []any{
		map[string]any{"language": "en", "text": "A severe thunderstorm is moving through the area."},
	}
	out["area"] = map[string]any{
		"type": "FeatureCollection",
		"features": []any{
			map[string]any{
				"type": "Feature",
				"geometry": map[string]any{
					"type": "Polygon",
					"coordinates": []any{[]any{
						[]any{c.Longitude - 0.1, c.Latitude - 0.1},
						[]any{c.Longitude + 0.1, c.Latitude - 0.1},
						[]any{c.Longitude + 0.1, c.Latitude + 0.1},
						[]any{c.Longitude - 0.1, c.Latitude - 0.1},
					}},
				},
			},
		},
	}
	return out
}

// AlertID is derived from the coordinate so repeated runs produce the same ID.
func AlertID(c domain.Coordinate) uuid.UUID {
	return uuid.NewSHA1(AlertNamespace, []byte(c.String()))
}

func uv(t time.Time) float64 {
	h := t.Hour()
	if h < 7 || h > 19 {
		return 0
	}
	return float64(8 - absInt(13-h))
}

var phases = []string{"new", "waxingCrescent", "firstQuarter", "waxingGibbous", "full", "waningGibbous", "thirdQuarter", "waningCrescent"}

func moonPhase(day time.Time) string {
	return phases[(day.YearDay()/4)%len(phases)]
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
