// Package dataset assembles typed WeatherKit datasets from decoded responses.
//
// A dataset object carries two reserved keys: "name" and "metadata". Every
// other key is the dataset's primary payload and goes to its parser; the
// metadata block is merged afterwards through a static table of setters.
package dataset

import (
	"fmt"
	"time"

	"github.com/couchcryptid/weatherkit-collector/internal/domain"
)

// Name identifies a dataset in a weather response and in the dataSets query
// parameter.
type Name string

const (
	NameCurrentWeather   Name = "currentWeather"
	NameForecastDaily    Name = "forecastDaily"
	NameForecastHourly   Name = "forecastHourly"
	NameForecastNextHour Name = "forecastNextHour"
	NameWeatherAlerts    Name = "weatherAlerts"
)

// Names lists the datasets of a weather response in response order.
var Names = []Name{NameCurrentWeather, NameForecastDaily, NameForecastHourly, NameForecastNextHour, NameWeatherAlerts}

// ParseName resolves a dataset name, reporting false for unknown names.
func ParseName(s string) (Name, bool) {
	for _, n := range Names {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

const (
	keyName     = "name"
	keyMetadata = "metadata"
)

type carrier interface {
	meta() *Metadata
}

// Assemble splits raw into its primary payload and metadata block, builds the
// dataset from the primary payload with parse and merges the metadata into it.
func Assemble[D any, P interface {
	*D
	carrier
}](raw map[string]any, tz *time.Location, parse func(map[string]any, *time.Location) (D, error)) (D, error) {
	if tz == nil {
		tz = time.UTC
	}
	primary := make(map[string]any, len(raw))
	var block map[string]any
	for k, v := range raw {
		switch k {
		case keyName:
		case keyMetadata:
			m, ok := v.(map[string]any)
			if !ok && v != nil {
				var zero D
				return zero, &domain.FieldTypeError{Entity: "dataset", Field: keyMetadata, Want: "object", Got: v}
			}
			block = m
		default:
			primary[k] = v
		}
	}

	d, err := parse(primary, tz)
	if err != nil {
		var zero D
		return zero, err
	}
	m := P(&d).meta()
	m.tz = tz
	if err := m.merge(block); err != nil {
		var zero D
		return zero, err
	}
	return d, nil
}

// Currently is the currentWeather dataset.
type Currently struct {
	Metadata
	Current domain.Current
}

func (c Currently) Fields() []domain.Field {
	return append(c.Metadata.Fields(), domain.Field{Name: "current", Value: c.Current})
}

func (c Currently) MarshalJSON() ([]byte, error) { return domain.MarshalFields(c) }

// CurrentWeather builds the currentWeather dataset. Its primary payload is a
// single current observation.
func CurrentWeather(raw map[string]any, tz *time.Location) (Currently, error) {
	return Assemble(raw, tz, func(primary map[string]any, tz *time.Location) (Currently, error) {
		cur, err := domain.BuildCurrent(primary, tz)
		if err != nil {
			return Currently{}, fmt.Errorf("build current weather: %w", err)
		}
		return Currently{Current: cur}, nil
	})
}

// Hourly is the forecastHourly dataset.
type Hourly struct {
	Metadata
	Hours []domain.Hour
}

func (h Hourly) Fields() []domain.Field {
	return append(h.Metadata.Fields(), domain.Field{Name: "hours", Value: h.Hours})
}

func (h Hourly) MarshalJSON() ([]byte, error) { return domain.MarshalFields(h) }

// ForecastHourly builds the forecastHourly dataset from its "hours" array.
func ForecastHourly(raw map[string]any, tz *time.Location) (Hourly, error) {
	return Assemble(raw, tz, func(primary map[string]any, tz *time.Location) (Hourly, error) {
		hours, err := each(primary, "hours", tz, domain.BuildHour)
		if err != nil {
			return Hourly{}, fmt.Errorf("build hourly forecast: %w", err)
		}
		return Hourly{Hours: hours}, nil
	})
}

// Daily is the forecastDaily dataset.
type Daily struct {
	Metadata
	Days []domain.Day
}

func (d Daily) Fields() []domain.Field {
	return append(d.Metadata.Fields(), domain.Field{Name: "days", Value: d.Days})
}

func (d Daily) MarshalJSON() ([]byte, error) { return domain.MarshalFields(d) }

// On returns the day whose forecast starts on date's calendar day, comparing
// both in the dataset's timezone.
func (d Daily) On(date time.Time) (domain.Day, bool) {
	y, m, dd := date.In(d.Timezone()).Date()
	for _, day := range d.Days {
		if day.Period.Start == nil {
			continue
		}
		dy, dm, ddd := day.Period.Start.In(d.Timezone()).Date()
		if dy == y && dm == m && ddd == dd {
			return day, true
		}
	}
	return domain.Day{}, false
}

// ForecastDaily builds the forecastDaily dataset from its "days" array.
func ForecastDaily(raw map[string]any, tz *time.Location) (Daily, error) {
	return Assemble(raw, tz, func(primary map[string]any, tz *time.Location) (Daily, error) {
		days, err := each(primary, "days", tz, domain.BuildDay)
		if err != nil {
			return Daily{}, fmt.Errorf("build daily forecast: %w", err)
		}
		return Daily{Days: days}, nil
	})
}

// NextHour is the forecastNextHour dataset: minute-by-minute precipitation
// plus summaries of uniform stretches.
type NextHour struct {
	Metadata
	Period  domain.TimePeriod
	Summary []domain.Summary
	Minutes []domain.Minute
}

func (n NextHour) Fields() []domain.Field {
	return append(n.Metadata.Fields(),
		domain.Field{Name: "period", Value: n.Period},
		domain.Field{Name: "summary", Value: n.Summary},
		domain.Field{Name: "minutes", Value: n.Minutes},
	)
}

func (n NextHour) MarshalJSON() ([]byte, error) { return domain.MarshalFields(n) }

// ForecastNextHour builds the minute forecast with its summary and
// condition spans.
func ForecastNextHour(raw map[string]any, tz *time.Location) (NextHour, error) {
	return Assemble(raw, tz, func(primary map[string]any, tz *time.Location) (NextHour, error) {
		var n NextHour
		var err error
		if n.Period, err = period(primary, "forecastStart", "forecastEnd", tz); err != nil {
			return NextHour{}, fmt.Errorf("build next hour forecast: %w", err)
		}
		if n.Summary, err = each(primary, "summary", tz, domain.BuildSummary); err != nil {
			return NextHour{}, fmt.Errorf("build next hour forecast: %w", err)
		}
		if n.Minutes, err = each(primary, "minutes", tz, domain.BuildMinute); err != nil {
			return NextHour{}, fmt.Errorf("build next hour forecast: %w", err)
		}
		return n, nil
	})
}

// Alerts is the weatherAlerts dataset.
type Alerts struct {
	Metadata
	DetailsURL string
	Alerts     []domain.Alert
}

func (a Alerts) Fields() []domain.Field {
	return append(a.Metadata.Fields(),
		domain.Field{Name: "detailsUrl", Value: a.DetailsURL},
		domain.Field{Name: "alerts", Value: a.Alerts},
	)
}

func (a Alerts) MarshalJSON() ([]byte, error) { return domain.MarshalFields(a) }

// Active returns the alerts in force at t.
func (a Alerts) Active(t time.Time) []domain.Alert {
	var out []domain.Alert
	for _, alert := range a.Alerts {
		if alert.IsActive(t) {
			out = append(out, alert)
		}
	}
	return out
}

// WeatherAlerts builds an alert collection. A missing alerts array yields an
// empty collection.
func WeatherAlerts(raw map[string]any, tz *time.Location) (Alerts, error) {
	return Assemble(raw, tz, func(primary map[string]any, tz *time.Location) (Alerts, error) {
		alerts, err := each(primary, "alerts", tz, domain.BuildAlert)
		if err != nil {
			return Alerts{}, fmt.Errorf("build weather alerts: %w", err)
		}
		url, _ := primary["detailsUrl"].(string)
		return Alerts{DetailsURL: url, Alerts: alerts}, nil
	})
}

// AlertDetails is the response of a single alert lookup.
type AlertDetails struct {
	Metadata
	Details domain.AlertDetails
}

func (a AlertDetails) Fields() []domain.Field {
	return append(a.Metadata.Fields(), domain.Field{Name: "details", Value: a.Details})
}

func (a AlertDetails) MarshalJSON() ([]byte, error) { return domain.MarshalFields(a) }

// AlertDetailsOf builds an alert details response. The alert fields sit
// directly on the response object.
func AlertDetailsOf(raw map[string]any, tz *time.Location) (AlertDetails, error) {
	return Assemble(raw, tz, func(primary map[string]any, tz *time.Location) (AlertDetails, error) {
		details, err := domain.BuildAlertDetails(primary, tz)
		if err != nil {
			return AlertDetails{}, fmt.Errorf("build alert details: %w", err)
		}
		return AlertDetails{Details: details}, nil
	})
}

// each builds every element of the array under key. A missing or null array
// yields no elements.
func each[T any](raw map[string]any, key string, tz *time.Location, build func(map[string]any, *time.Location) (T, error)) ([]T, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, &domain.FieldTypeError{Entity: "dataset", Field: key, Want: "array", Got: v}
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, &domain.FieldTypeError{Entity: "dataset", Field: fmt.Sprintf("%s[%d]", key, i), Want: "object", Got: item}
		}
		built, err := build(m, tz)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, built)
	}
	return out, nil
}

func period(raw map[string]any, startKey, endKey string, tz *time.Location) (domain.TimePeriod, error) {
	var p domain.TimePeriod
	for _, b := range []struct {
		key string
		dst **time.Time
	}{{startKey, &p.Start}, {endKey, &p.End}} {
		v, ok := raw[b.key]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return domain.TimePeriod{}, &domain.FieldTypeError{Entity: "dataset", Field: b.key, Want: "string", Got: v}
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return domain.TimePeriod{}, &domain.InvalidTimeError{Entity: "dataset", Field: b.key, Value: s, Err: err}
		}
		t = t.In(tz)
		*b.dst = &t
	}
	return p, nil
}
