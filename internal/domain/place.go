package domain

import (
	"fmt"
	"strconv"
	"time"
)

// TimePeriod is a span of time whose bounds may each be open.
type TimePeriod struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls in [Start, End). Open bounds are unbounded.
func (p TimePeriod) Contains(t time.Time) bool {
	if p.Start != nil && t.Before(*p.Start) {
		return false
	}
	if p.End != nil && !t.Before(*p.End) {
		return false
	}
	return true
}

// Duration is End-Start, or 0 when either bound is open.
func (p TimePeriod) Duration() time.Duration {
	if p.Start == nil || p.End == nil {
		return 0
	}
	return p.End.Sub(*p.Start)
}

func (p TimePeriod) Fields() []Field {
	return []Field{
		{"start", Opt(p.Start)},
		{"end", Opt(p.End)},
	}
}

func (p TimePeriod) MarshalJSON() ([]byte, error) { return MarshalFields(p) }

// Coordinate is a WGS-84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// String renders "{lat},{lon}".
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

func (c Coordinate) Fields() []Field {
	return []Field{
		{"latitude", c.Latitude},
		{"longitude", c.Longitude},
	}
}

func (c Coordinate) MarshalJSON() ([]byte, error) { return MarshalFields(c) }

// BuildCoordinate reads a {latitude, longitude} object.
func BuildCoordinate(raw map[string]any, tz *time.Location) (Coordinate, error) {
	r := newReader("coordinate", raw, tz)
	c := Coordinate{
		Latitude:  r.float("latitude"),
		Longitude: r.float("longitude"),
	}
	if r.err != nil {
		return Coordinate{}, r.err
	}
	return c, nil
}

// Area is the outline of an alert's affected region.
type Area struct {
	GeometryType string
	Coordinates  []Coordinate
}

func (a Area) Fields() []Field {
	return []Field{
		{"geometryType", a.GeometryType},
		{"coordinates", a.Coordinates},
	}
}

func (a Area) MarshalJSON() ([]byte, error) { return MarshalFields(a) }

// BuildArea reads a GeoJSON FeatureCollection. Only the first feature's first
// ring is kept; GeoJSON positions are [longitude, latitude].
func BuildArea(raw map[string]any, tz *time.Location) (Area, error) {
	r := newReader("area", raw, tz)
	features := r.array("features")
	if r.err != nil {
		return Area{}, r.err
	}
	if len(features) == 0 {
		return Area{}, nil
	}
	feature, ok := features[0].(map[string]any)
	if !ok {
		return Area{}, &FieldTypeError{Entity: "area", Field: "features[0]", Want: "object", Got: features[0]}
	}

	fr := newReader("area feature", feature, tz)
	geometry := fr.object("geometry")
	if fr.err != nil {
		return Area{}, fr.err
	}
	gr := newReader("area geometry", geometry, tz)
	area := Area{GeometryType: gr.string("type")}
	rings := gr.array("coordinates")
	if gr.err != nil {
		return Area{}, gr.err
	}

	ring, err := firstRing(rings)
	if err != nil {
		return Area{}, err
	}
	area.Coordinates = make([]Coordinate, 0, len(ring))
	for i, pos := range ring {
		c, err := position(pos)
		if err != nil {
			return Area{}, fmt.Errorf("area position %d: %w", i, err)
		}
		area.Coordinates = append(area.Coordinates, c)
	}
	return area, nil
}

// firstRing descends into nested coordinate arrays (Polygon or MultiPolygon)
// until it reaches an array of positions.
func firstRing(coords []any) ([]any, error) {
	for len(coords) > 0 {
		inner, ok := coords[0].([]any)
		if !ok {
			return nil, &FieldTypeError{Entity: "area geometry", Field: "coordinates", Want: "array", Got: coords[0]}
		}
		if len(inner) > 0 {
			if _, isNumber := ToFloat(inner[0]); isNumber {
				return coords, nil
			}
		}
		coords = inner
	}
	return nil, nil
}

func position(v any) (Coordinate, error) {
	pos, ok := v.([]any)
	if !ok || len(pos) < 2 {
		return Coordinate{}, &FieldTypeError{Entity: "area geometry", Field: "coordinates", Want: "[lon, lat]", Got: v}
	}
	lon, okLon := ToFloat(pos[0])
	lat, okLat := ToFloat(pos[1])
	if !okLon || !okLat {
		return Coordinate{}, &FieldTypeError{Entity: "area geometry", Field: "coordinates", Want: "[lon, lat]", Got: v}
	}
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}
