package domain

import (
	"time"

	"github.com/couchcryptid/weatherkit-collector/internal/enum"
)

// SunTimes holds the solar events of one day. Any of them may be absent near
// the poles.
type SunTimes struct {
	Sunrise             *time.Time
	SunriseCivil        *time.Time
	SunriseNautical     *time.Time
	SunriseAstronomical *time.Time
	Sunset              *time.Time
	SunsetCivil         *time.Time
	SunsetNautical      *time.Time
	SunsetAstronomical  *time.Time
	SolarNoon           *time.Time
	SolarMidnight       *time.Time
}

// BuildSunTimes reads the sun fields of a day object. All fields are optional.
func BuildSunTimes(raw map[string]any, tz *time.Location) (SunTimes, error) {
	r := newReader("sun", raw, tz)
	s := SunTimes{
		Sunrise:             r.optTime("sunrise"),
		SunriseCivil:        r.optTime("sunriseCivil"),
		SunriseNautical:     r.optTime("sunriseNautical"),
		SunriseAstronomical: r.optTime("sunriseAstronomical"),
		Sunset:              r.optTime("sunset"),
		SunsetCivil:         r.optTime("sunsetCivil"),
		SunsetNautical:      r.optTime("sunsetNautical"),
		SunsetAstronomical:  r.optTime("sunsetAstronomical"),
		SolarNoon:           r.optTime("solarNoon"),
		SolarMidnight:       r.optTime("solarMidnight"),
	}
	if r.err != nil {
		return SunTimes{}, r.err
	}
	return s, nil
}

// Daylight is Sunset-Sunrise, or 0 when either is absent.
func (s SunTimes) Daylight() time.Duration {
	return TimePeriod{Start: s.Sunrise, End: s.Sunset}.Duration()
}

func (s SunTimes) Fields() []Field {
	return []Field{
		{"sunrise", Opt(s.Sunrise)},
		{"sunriseCivil", Opt(s.SunriseCivil)},
		{"sunriseNautical", Opt(s.SunriseNautical)},
		{"sunriseAstronomical", Opt(s.SunriseAstronomical)},
		{"sunset", Opt(s.Sunset)},
		{"sunsetCivil", Opt(s.SunsetCivil)},
		{"sunsetNautical", Opt(s.SunsetNautical)},
		{"sunsetAstronomical", Opt(s.SunsetAstronomical)},
		{"solarNoon", Opt(s.SolarNoon)},
		{"solarMidnight", Opt(s.SolarMidnight)},
	}
}

func (s SunTimes) MarshalJSON() ([]byte, error) { return MarshalFields(s) }

// Moon holds the lunar phase and rise/set times of one day.
type Moon struct {
	Phase enum.MoonPhase
	Rise  *time.Time
	Set   *time.Time
}

// BuildMoon reads moonPhase (required, strict), moonrise and moonset.
func BuildMoon(raw map[string]any, tz *time.Location) (Moon, error) {
	r := newReader("moon", raw, tz)
	m := Moon{
		Phase: strictEnum(r, "moonPhase", enum.MoonPhases),
		Rise:  r.optTime("moonrise"),
		Set:   r.optTime("moonset"),
	}
	if r.err != nil {
		return Moon{}, r.err
	}
	return m, nil
}

func (m Moon) Fields() []Field {
	return []Field{
		{"phase", m.Phase},
		{"rise", Opt(m.Rise)},
		{"set", Opt(m.Set)},
	}
}

func (m Moon) MarshalJSON() ([]byte, error) { return MarshalFields(m) }
