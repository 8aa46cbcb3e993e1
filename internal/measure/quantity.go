package measure

import (
	"encoding/json"
	"strconv"
)

// Quantity is a measured value in a concrete unit. The zero Quantity has no
// unit and cannot be converted.
type Quantity struct {
	value float64
	unit  Unit
}

// New returns a Quantity of value expressed in unit.
func New(value float64, unit Unit) Quantity {
	return Quantity{value: value, unit: unit}
}

// Value is the magnitude in q's own unit.
func (q Quantity) Value() float64 { return q.value }

// Unit is the unit q is expressed in. It is zero for the zero Quantity.
func (q Quantity) Unit() Unit { return q.unit }

// Kind is the dimension of q's unit, or 0 when q has no unit.
func (q Quantity) Kind() Kind { return q.unit.Kind() }

// ConvertTo returns q expressed in target. The receiver is never modified.
func (q Quantity) ConvertTo(target Unit) (Quantity, error) {
	v, err := Convert(q.value, q.unit, target)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: v, unit: target}, nil
}

// String renders "{value} {abbr}", or "{value}{abbr}" for percentages and
// bearings, e.g. "16.24 °C", "31%", "270°". A Quantity without a unit renders
// as the bare value.
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.value, 'f', -1, 64)
	switch q.unit.Kind() {
	case 0:
		return v
	case KindPercentage, KindBearing:
		return v + q.unit.Abbreviation()
	default:
		return v + " " + q.unit.Abbreviation()
	}
}

type quantityJSON struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(quantityJSON{Value: q.value, Unit: q.unit})
}

// Temperature returns value in degrees Celsius, the payload default.
func Temperature(value float64) Quantity { return New(value, Celsius) }

// Pressure returns value in millibars, the payload default.
func Pressure(value float64) Quantity { return New(value, Millibar) }

// Speed returns value in kilometers per hour, the payload default.
func Speed(value float64) Quantity { return New(value, KilometerPerHour) }

// Length returns value in the given length unit.
func Length(value float64, unit Unit) Quantity { return New(value, unit) }

// Percentage scales a 0-1 fraction to a 0-100 percentage.
func Percentage(fraction float64) Quantity { return New(fraction*100, Percent) }

// Bearing returns value in degrees.
func Bearing(value float64) Quantity { return New(value, Degree) }
