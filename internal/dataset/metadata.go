package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/weatherkit-collector/internal/domain"
)

// Provider identifies the upstream data source of a dataset.
type Provider struct {
	Name                   string
	Logo                   string
	TemporarilyUnavailable bool
}

func (p Provider) Fields() []domain.Field {
	return []domain.Field{
		{Name: "name", Value: p.Name},
		{Name: "logo", Value: p.Logo},
		{Name: "temporarilyUnavailable", Value: p.TemporarilyUnavailable},
	}
}

// Metadata is the side-channel block every dataset carries.
type Metadata struct {
	Location     *domain.Coordinate
	Provider     *Provider
	LegalURL     string
	ExpireTime   *time.Time
	ReadTime     *time.Time
	ReportedTime *time.Time
	Version      int
	Units        string
	Language     string

	tz *time.Location
}

// Timezone is the location timestamps were converted to.
func (m *Metadata) Timezone() *time.Location {
	if m.tz == nil {
		return time.UTC
	}
	return m.tz
}

// Expired reports whether the dataset is past its expire time at now.
func (m *Metadata) Expired(now time.Time) bool {
	return m.ExpireTime != nil && !now.Before(*m.ExpireTime)
}

func (m *Metadata) meta() *Metadata { return m }

func (m Metadata) Fields() []domain.Field {
	return []domain.Field{
		{Name: "location", Value: domain.Opt(m.Location)},
		{Name: "provider", Value: domain.Opt(m.Provider)},
		{Name: "legalUrl", Value: m.LegalURL},
		{Name: "expireTime", Value: domain.Opt(m.ExpireTime)},
		{Name: "readTime", Value: domain.Opt(m.ReadTime)},
		{Name: "reportedTime", Value: domain.Opt(m.ReportedTime)},
		{Name: "version", Value: m.Version},
		{Name: "units", Value: m.Units},
		{Name: "language", Value: m.Language},
	}
}

// setter applies one metadata entry. v is the entry's value and block holds
// every entry under its normalized key, for setters that combine several.
type setter func(m *Metadata, v any, block map[string]any) error

// setters is keyed by normalized metadata key. Keys not listed are ignored.
var setters = map[string]setter{
	"latitude":               setLocation,
	"longitude":              setLocation,
	"providername":           setProvider,
	"providerlogo":           setProvider,
	"temporarilyunavailable": setProvider,
	"attributionurl": func(m *Metadata, v any, _ map[string]any) error {
		return assign(&m.LegalURL, "attributionURL", v, asString)
	},
	"expiretime": func(m *Metadata, v any, _ map[string]any) error {
		return assignTime(m, &m.ExpireTime, "expireTime", v)
	},
	"readtime": func(m *Metadata, v any, _ map[string]any) error {
		return assignTime(m, &m.ReadTime, "readTime", v)
	},
	"reportedtime": func(m *Metadata, v any, _ map[string]any) error {
		return assignTime(m, &m.ReportedTime, "reportedTime", v)
	},
	"version": func(m *Metadata, v any, _ map[string]any) error {
		return assign(&m.Version, "version", v, asInt)
	},
	"units": func(m *Metadata, v any, _ map[string]any) error {
		return assign(&m.Units, "units", v, asString)
	},
	"language": func(m *Metadata, v any, _ map[string]any) error {
		return assign(&m.Language, "language", v, asString)
	},
}

// normalizeKey strips separators and lower-cases, so "attribution_url",
// "attribution-url" and "attributionURL" all match.
func normalizeKey(key string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "", ".", "").Replace(key))
}

// merge applies a raw metadata block. Unknown keys are ignored.
func (m *Metadata) merge(raw map[string]any) error {
	block := make(map[string]any, len(raw))
	for k, v := range raw {
		block[normalizeKey(k)] = v
	}
	for k, v := range block {
		set, ok := setters[k]
		if !ok || v == nil {
			continue
		}
		if err := set(m, v, block); err != nil {
			return fmt.Errorf("merge metadata: %w", err)
		}
	}
	return nil
}

func setLocation(m *Metadata, _ any, block map[string]any) error {
	lat, hasLat := block["latitude"]
	lon, hasLon := block["longitude"]
	if !hasLat || !hasLon || lat == nil || lon == nil {
		return nil
	}
	var c domain.Coordinate
	if err := assign(&c.Latitude, "latitude", lat, asFloat); err != nil {
		return err
	}
	if err := assign(&c.Longitude, "longitude", lon, asFloat); err != nil {
		return err
	}
	m.Location = &c
	return nil
}

func setProvider(m *Metadata, _ any, block map[string]any) error {
	var p Provider
	if v, ok := block["providername"]; ok && v != nil {
		if err := assign(&p.Name, "providerName", v, asString); err != nil {
			return err
		}
	}
	if v, ok := block["providerlogo"]; ok && v != nil {
		if err := assign(&p.Logo, "providerLogo", v, asString); err != nil {
			return err
		}
	}
	if v, ok := block["temporarilyunavailable"]; ok && v != nil {
		if err := assign(&p.TemporarilyUnavailable, "temporarilyUnavailable", v, asBool); err != nil {
			return err
		}
	}
	m.Provider = &p
	return nil
}

func assign[T any](dst *T, field string, v any, conv func(any) (T, bool, string)) error {
	out, ok, want := conv(v)
	if !ok {
		return &domain.FieldTypeError{Entity: "metadata", Field: field, Want: want, Got: v}
	}
	*dst = out
	return nil
}

func assignTime(m *Metadata, dst **time.Time, field string, v any) error {
	var s string
	if err := assign(&s, field, v, asString); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return &domain.InvalidTimeError{Entity: "metadata", Field: field, Value: s, Err: err}
	}
	t = t.In(m.Timezone())
	*dst = &t
	return nil
}

func asString(v any) (string, bool, string) {
	s, ok := v.(string)
	return s, ok, "string"
}

func asBool(v any) (bool, bool, string) {
	b, ok := v.(bool)
	return b, ok, "boolean"
}

func asFloat(v any) (float64, bool, string) {
	f, ok := domain.ToFloat(v)
	return f, ok, "number"
}

func asInt(v any) (int, bool, string) {
	f, ok, want := asFloat(v)
	return int(f), ok, want
}
