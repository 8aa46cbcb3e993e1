package dataset

import (
	"fmt"
	"time"

	"github.com/couchcryptid/weatherkit-collector/internal/domain"
)

// Weather is a multi-dataset response. Datasets that were not requested or
// came back empty are nil.
type Weather struct {
	CurrentWeather   *Currently
	ForecastDaily    *Daily
	ForecastHourly   *Hourly
	ForecastNextHour *NextHour
	WeatherAlerts    *Alerts
}

// Entry is one present dataset of a Weather response.
type Entry struct {
	Name    Name
	Dataset domain.Fielder
}

// Datasets returns the present datasets in response order.
func (w *Weather) Datasets() []Entry {
	var out []Entry
	if w.CurrentWeather != nil {
		out = append(out, Entry{Name: NameCurrentWeather, Dataset: *w.CurrentWeather})
	}
	if w.ForecastDaily != nil {
		out = append(out, Entry{Name: NameForecastDaily, Dataset: *w.ForecastDaily})
	}
	if w.ForecastHourly != nil {
		out = append(out, Entry{Name: NameForecastHourly, Dataset: *w.ForecastHourly})
	}
	if w.ForecastNextHour != nil {
		out = append(out, Entry{Name: NameForecastNextHour, Dataset: *w.ForecastNextHour})
	}
	if w.WeatherAlerts != nil {
		out = append(out, Entry{Name: NameWeatherAlerts, Dataset: *w.WeatherAlerts})
	}
	return out
}

func (w *Weather) Fields() []domain.Field {
	return []domain.Field{
		{Name: string(NameCurrentWeather), Value: domain.Opt(w.CurrentWeather)},
		{Name: string(NameForecastDaily), Value: domain.Opt(w.ForecastDaily)},
		{Name: string(NameForecastHourly), Value: domain.Opt(w.ForecastHourly)},
		{Name: string(NameForecastNextHour), Value: domain.Opt(w.ForecastNextHour)},
		{Name: string(NameWeatherAlerts), Value: domain.Opt(w.WeatherAlerts)},
	}
}

func (w *Weather) MarshalJSON() ([]byte, error) { return domain.MarshalFields(w) }

// ParseWeather builds every known dataset in a weather response. Unknown
// dataset keys and empty dataset objects are skipped; a malformed entity in
// any dataset fails the whole response.
func ParseWeather(raw map[string]any, tz *time.Location) (*Weather, error) {
	w := &Weather{}
	for key, v := range raw {
		name, ok := ParseName(key)
		if !ok {
			continue
		}
		obj, ok := v.(map[string]any)
		if !ok || len(obj) == 0 {
			continue
		}
		if err := w.set(name, obj, tz); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return w, nil
}

func (w *Weather) set(name Name, obj map[string]any, tz *time.Location) error {
	switch name {
	case NameCurrentWeather:
		return build(&w.CurrentWeather, obj, tz, CurrentWeather)
	case NameForecastDaily:
		return build(&w.ForecastDaily, obj, tz, ForecastDaily)
	case NameForecastHourly:
		return build(&w.ForecastHourly, obj, tz, ForecastHourly)
	case NameForecastNextHour:
		return build(&w.ForecastNextHour, obj, tz, ForecastNextHour)
	case NameWeatherAlerts:
		return build(&w.WeatherAlerts, obj, tz, WeatherAlerts)
	}
	return nil
}

func build[D any](dst **D, obj map[string]any, tz *time.Location, parse func(map[string]any, *time.Location) (D, error)) error {
	d, err := parse(obj, tz)
	if err != nil {
		return err
	}
	*dst = &d
	return nil
}

// Parse builds a single dataset by name. It backs the parse diagnostics
// endpoint and the wkparse tool.
func Parse(name Name, raw map[string]any, tz *time.Location) (domain.Fielder, error) {
	switch name {
	case NameCurrentWeather:
		return fielder(CurrentWeather(raw, tz))
	case NameForecastDaily:
		return fielder(ForecastDaily(raw, tz))
	case NameForecastHourly:
		return fielder(ForecastHourly(raw, tz))
	case NameForecastNextHour:
		return fielder(ForecastNextHour(raw, tz))
	case NameWeatherAlerts:
		return fielder(WeatherAlerts(raw, tz))
	}
	return nil, fmt.Errorf("unknown dataset %q", name)
}

func fielder[D domain.Fielder](d D, err error) (domain.Fielder, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}
