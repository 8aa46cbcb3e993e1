package measure

import (
	"errors"
	"fmt"
)

// ErrUnsupportedConversion is matched by every UnsupportedConversionError.
var ErrUnsupportedConversion = errors.New("unsupported conversion")

// UnsupportedConversionError reports a conversion between units of different
// kinds, or involving a unit outside the catalog.
type UnsupportedConversionError struct {
	From Unit
	To   Unit
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("unsupported conversion from %s (%s) to %s (%s)", e.From, e.From.Kind(), e.To, e.To.Kind())
}

func (e *UnsupportedConversionError) Is(target error) bool {
	return target == ErrUnsupportedConversion
}

type pair struct{ from, to Unit }

type formula func(float64) float64

func factor(f float64) formula {
	return func(v float64) float64 { return v * f }
}

// Tables hold direct factors per ordered pair rather than routing through a
// base unit, so A->B->C and A->C may differ by floating-point drift.
var tables = map[Kind]map[pair]formula{
	KindTemperature: {
		{Celsius, Fahrenheit}: func(v float64) float64 { return v*9/5 + 32 },
		{Celsius, Kelvin}:     func(v float64) float64 { return v + 273.15 },
		{Fahrenheit, Celsius}: func(v float64) float64 { return (v - 32) * 5 / 9 },
		{Fahrenheit, Kelvin}:  func(v float64) float64 { return (v-32)*5/9 + 273.15 },
		{Kelvin, Celsius}:     func(v float64) float64 { return v - 273.15 },
		{Kelvin, Fahrenheit}:  func(v float64) float64 { return (v-273.15)*9/5 + 32 },
	},
	KindPressure: {
		{Millibar, InchOfMercury}:            factor(0.02953),
		{Millibar, MillimeterOfMercury}:      factor(0.750062),
		{Millibar, Kilopascal}:               factor(0.1),
		{InchOfMercury, Millibar}:            factor(33.8639),
		{InchOfMercury, MillimeterOfMercury}: factor(25.4),
		{InchOfMercury, Kilopascal}:          factor(3.38639),
		{MillimeterOfMercury, Millibar}:      factor(1.33322),
		{MillimeterOfMercury, InchOfMercury}: factor(0.0393701),
		{MillimeterOfMercury, Kilopascal}:    factor(0.133322),
		{Kilopascal, Millibar}:               factor(10),
		{Kilopascal, InchOfMercury}:          factor(0.2953),
		{Kilopascal, MillimeterOfMercury}:    factor(7.50062),
	},
	KindSpeed: {
		{KilometerPerHour, MeterPerSecond}: factor(0.277778),
		{KilometerPerHour, MilePerHour}:    factor(0.621371),
		{KilometerPerHour, Knot}:           factor(0.539957),
		{MeterPerSecond, KilometerPerHour}: factor(3.6),
		{MeterPerSecond, MilePerHour}:      factor(2.236936),
		{MeterPerSecond, Knot}:             factor(1.943844),
		{MilePerHour, KilometerPerHour}:    factor(1.609344),
		{MilePerHour, MeterPerSecond}:      factor(0.44704),
		{MilePerHour, Knot}:                factor(0.868976),
		{Knot, KilometerPerHour}:           factor(1.852),
		{Knot, MeterPerSecond}:             factor(0.514444),
		{Knot, MilePerHour}:                factor(1.150779),
	},
	KindLength: {
		{Millimeter, Centimeter}: factor(0.1),
		{Millimeter, Meter}:      factor(0.001),
		{Millimeter, Kilometer}:  factor(0.000001),
		{Millimeter, Inch}:       factor(0.0393701),
		{Millimeter, Foot}:       factor(0.00328084),
		{Millimeter, Mile}:       factor(6.21371e-7),

		{Centimeter, Millimeter}: factor(10),
		{Centimeter, Meter}:      factor(0.01),
		{Centimeter, Kilometer}:  factor(0.00001),
		{Centimeter, Inch}:       factor(0.393701),
		{Centimeter, Foot}:       factor(0.0328084),
		{Centimeter, Mile}:       factor(6.21371e-6),

		{Meter, Millimeter}: factor(1000),
		{Meter, Centimeter}: factor(100),
		{Meter, Kilometer}:  factor(0.001),
		{Meter, Inch}:       factor(39.3701),
		{Meter, Foot}:       factor(3.28084),
		{Meter, Mile}:       factor(0.000621371),

		{Kilometer, Millimeter}: factor(1000000),
		{Kilometer, Centimeter}: factor(100000),
		{Kilometer, Meter}:      factor(1000),
		{Kilometer, Inch}:       factor(39370.1),
		{Kilometer, Foot}:       factor(3280.84),
		{Kilometer, Mile}:       factor(0.621371),

		{Inch, Millimeter}: factor(25.4),
		{Inch, Centimeter}: factor(2.54),
		{Inch, Meter}:      factor(0.0254),
		{Inch, Kilometer}:  factor(0.0000254),
		{Inch, Foot}:       factor(0.0833333),
		{Inch, Mile}:       factor(1.57828e-5),

		{Foot, Millimeter}: factor(304.8),
		{Foot, Centimeter}: factor(30.48),
		{Foot, Meter}:      factor(0.3048),
		{Foot, Kilometer}:  factor(0.0003048),
		{Foot, Inch}:       factor(12),
		{Foot, Mile}:       factor(0.000189394),

		{Mile, Millimeter}: factor(1609344),
		{Mile, Centimeter}: factor(160934.4),
		{Mile, Meter}:      factor(1609.344),
		{Mile, Kilometer}:  factor(1.609344),
		{Mile, Inch}:       factor(63360),
		{Mile, Foot}:       factor(5280),
	},
	// Percentage and bearing each have a single unit, so only identity
	// conversions exist.
	KindPercentage: {},
	KindBearing:    {},
}

// Convert converts value from one unit to another of the same kind.
// Identity conversions return value untouched.
func Convert(value float64, from, to Unit) (float64, error) {
	if from.Kind() == 0 || to.Kind() == 0 || from.Kind() != to.Kind() {
		return 0, &UnsupportedConversionError{From: from, To: to}
	}
	if from == to {
		return value, nil
	}
	f, ok := tables[from.Kind()][pair{from, to}]
	if !ok {
		return 0, &UnsupportedConversionError{From: from, To: to}
	}
	return f(value), nil
}
