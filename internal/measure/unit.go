// Package measure models the physical quantities found in weather payloads:
// a value paired with a concrete unit, plus pairwise conversion tables
// between every unit of the same kind.
package measure

import "strings"

// Kind is the physical dimension a unit belongs to. Conversions are only
// defined between units of the same kind.
type Kind int

const (
	KindTemperature Kind = iota + 1
	KindPressure
	KindSpeed
	KindLength
	KindPercentage
	KindBearing
)

func (k Kind) String() string {
	switch k {
	case KindTemperature:
		return "temperature"
	case KindPressure:
		return "pressure"
	case KindSpeed:
		return "speed"
	case KindLength:
		return "length"
	case KindPercentage:
		return "percentage"
	case KindBearing:
		return "bearing"
	default:
		return "unknown"
	}
}

// Unit is a concrete unit of measurement. Units are plain values: two equal
// Units are interchangeable.
type Unit int

const (
	Celsius Unit = iota + 1
	Fahrenheit
	Kelvin

	Millibar
	InchOfMercury
	MillimeterOfMercury
	Kilopascal

	KilometerPerHour
	MeterPerSecond
	MilePerHour
	Knot

	Millimeter
	Centimeter
	Meter
	Kilometer
	Inch
	Foot
	Mile

	Percent

	Degree
)

type descriptor struct {
	kind Kind
	name string
	abbr string
}

var catalog = map[Unit]descriptor{
	Celsius:    {KindTemperature, "Celsius", "°C"},
	Fahrenheit: {KindTemperature, "Fahrenheit", "°F"},
	Kelvin:     {KindTemperature, "Kelvin", "K"},

	Millibar:            {KindPressure, "Millibar", "mbar"},
	InchOfMercury:       {KindPressure, "Inch of mercury", "inHg"},
	MillimeterOfMercury: {KindPressure, "Millimeter of mercury", "mmHg"},
	Kilopascal:          {KindPressure, "Kilopascal", "kPa"},

	KilometerPerHour: {KindSpeed, "Kilometer per hour", "km/h"},
	MeterPerSecond:   {KindSpeed, "Meter per second", "m/s"},
	MilePerHour:      {KindSpeed, "Mile per hour", "mph"},
	Knot:             {KindSpeed, "Knot", "kn"},

	Millimeter: {KindLength, "Millimeter", "mm"},
	Centimeter: {KindLength, "Centimeter", "cm"},
	Meter:      {KindLength, "Meter", "m"},
	Kilometer:  {KindLength, "Kilometer", "km"},
	Inch:       {KindLength, "Inch", "in"},
	Foot:       {KindLength, "Foot", "ft"},
	Mile:       {KindLength, "Mile", "mi"},

	Percent: {KindPercentage, "Percent", "%"},

	Degree: {KindBearing, "Degree", "°"},
}

// Kind returns the dimension of u, or 0 for a value outside the catalog.
func (u Unit) Kind() Kind { return catalog[u].kind }

// Name returns the display name, e.g. "Kilometer per hour".
func (u Unit) Name() string { return catalog[u].name }

// Abbreviation returns the unit symbol, e.g. "km/h".
func (u Unit) Abbreviation() string { return catalog[u].abbr }

func (u Unit) String() string {
	if d, ok := catalog[u]; ok {
		return d.abbr
	}
	return "unknown"
}

// MarshalText encodes the unit as its abbreviation.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnitsOf lists the catalog units of kind k in declaration order.
func UnitsOf(k Kind) []Unit {
	var out []Unit
	for u := Celsius; u <= Degree; u++ {
		if u.Kind() == k {
			out = append(out, u)
		}
	}
	return out
}

// ParseUnit looks a unit up by abbreviation or display name, ignoring case.
func ParseUnit(s string) (Unit, bool) {
	s = strings.TrimSpace(s)
	for u, d := range catalog {
		if d.abbr == s || strings.EqualFold(d.name, s) || strings.EqualFold(d.abbr, s) {
			return u, true
		}
	}
	return 0, false
}
