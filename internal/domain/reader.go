package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/couchcryptid/weatherkit-collector/internal/enum"
	"github.com/couchcryptid/weatherkit-collector/internal/measure"
)

// reader extracts typed fields from one raw object. The first failure is kept
// in err and later reads become no-ops, so a builder can read every field and
// check err once.
type reader struct {
	entity string
	raw    map[string]any
	tz     *time.Location
	err    error
}

func newReader(entity string, raw map[string]any, tz *time.Location) *reader {
	if tz == nil {
		tz = time.UTC
	}
	return &reader{entity: entity, raw: raw, tz: tz}
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// lookup returns the value for key, treating JSON null as absent.
func (r *reader) lookup(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *reader) has(key string) bool {
	v, ok := r.raw[key]
	return ok && v != nil
}

func (r *reader) require(key string) (any, bool) {
	v, ok := r.lookup(key)
	if !ok && r.err == nil {
		r.fail(&MissingFieldError{Entity: r.entity, Field: key})
	}
	return v, ok
}

func (r *reader) typeError(key, want string, got any) {
	r.fail(&FieldTypeError{Entity: r.entity, Field: key, Want: want, Got: got})
}

// ToFloat coerces a decoded JSON number to float64. It accepts the float64
// produced by encoding/json, json.Number from a Decoder with UseNumber, and
// Go numeric types from hand-built maps.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func (r *reader) asFloat(key string, v any) (float64, bool) {
	f, ok := ToFloat(v)
	if !ok {
		r.typeError(key, "number", v)
	}
	return f, ok
}

func (r *reader) float(key string) float64 {
	v, ok := r.require(key)
	if !ok {
		return 0
	}
	f, _ := r.asFloat(key, v)
	return f
}

func (r *reader) optFloat(key string) *float64 {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	f, ok := r.asFloat(key, v)
	if !ok {
		return nil
	}
	return &f
}

func (r *reader) int(key string) int {
	return int(r.float(key))
}

// quantity reads a required number and wraps it with ctor, which carries the
// field's default unit.
func (r *reader) quantity(key string, ctor func(float64) measure.Quantity) measure.Quantity {
	v, ok := r.require(key)
	if !ok {
		return measure.Quantity{}
	}
	f, ok := r.asFloat(key, v)
	if !ok {
		return measure.Quantity{}
	}
	return ctor(f)
}

func (r *reader) optQuantity(key string, ctor func(float64) measure.Quantity) *measure.Quantity {
	f := r.optFloat(key)
	if f == nil {
		return nil
	}
	q := ctor(*f)
	return &q
}

func (r *reader) asString(key string, v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		r.typeError(key, "string", v)
	}
	return s, ok
}

func (r *reader) string(key string) string {
	v, ok := r.require(key)
	if !ok {
		return ""
	}
	s, _ := r.asString(key, v)
	return s
}

// optString returns "" when key is absent.
func (r *reader) optString(key string) string {
	v, ok := r.lookup(key)
	if !ok {
		return ""
	}
	s, _ := r.asString(key, v)
	return s
}

func (r *reader) optBool(key string) *bool {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		r.typeError(key, "boolean", v)
		return nil
	}
	return &b
}

func (r *reader) parseTime(key string, v any) (time.Time, bool) {
	s, ok := r.asString(key, v)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		r.fail(&InvalidTimeError{Entity: r.entity, Field: key, Value: s, Err: err})
		return time.Time{}, false
	}
	return t.In(r.tz), true
}

func (r *reader) time(key string) time.Time {
	v, ok := r.require(key)
	if !ok {
		return time.Time{}
	}
	t, _ := r.parseTime(key, v)
	return t
}

func (r *reader) optTime(key string) *time.Time {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	t, ok := r.parseTime(key, v)
	if !ok {
		return nil
	}
	return &t
}

// period reads a pair of bounds. With required set, both must be present.
func (r *reader) period(startKey, endKey string, required bool) TimePeriod {
	if required {
		start := r.time(startKey)
		end := r.time(endKey)
		return TimePeriod{Start: &start, End: &end}
	}
	return TimePeriod{Start: r.optTime(startKey), End: r.optTime(endKey)}
}

func (r *reader) object(key string) map[string]any {
	v, ok := r.require(key)
	if !ok {
		return nil
	}
	return r.asObject(key, v)
}

func (r *reader) optObject(key string) map[string]any {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	return r.asObject(key, v)
}

func (r *reader) asObject(key string, v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		r.typeError(key, "object", v)
	}
	return m
}

func (r *reader) optArray(key string) []any {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	a, ok := v.([]any)
	if !ok {
		r.typeError(key, "array", v)
	}
	return a
}

func (r *reader) array(key string) []any {
	if _, ok := r.require(key); !ok {
		return nil
	}
	return r.optArray(key)
}

// condition reads a required conditionCode leniently: the key must be present
// but an unrecognized code yields nil.
func (r *reader) condition(key string) *enum.Condition {
	v, ok := r.require(key)
	if !ok {
		return nil
	}
	s, ok := r.asString(key, v)
	if !ok {
		return nil
	}
	c, ok := enum.Conditions.Lenient(s)
	if !ok {
		return nil
	}
	return &c
}

func (r *reader) optCondition(key string) *enum.Condition {
	if !r.has(key) {
		return nil
	}
	return r.condition(key)
}

func (r *reader) uvIndex(key string) *enum.UVIndex {
	f := r.optFloat(key)
	if f == nil {
		return nil
	}
	uv, err := enum.ParseUVIndex(int(*f))
	if err != nil {
		r.fail(fmt.Errorf("%s.%s: %w", r.entity, key, err))
		return nil
	}
	return &uv
}

func strictEnum[T ~string](r *reader, key string, set enum.Set[T]) T {
	var zero T
	v, ok := r.require(key)
	if !ok {
		return zero
	}
	return resolveStrict(r, key, v, set)
}

func optStrictEnum[T ~string](r *reader, key string, set enum.Set[T]) *T {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	m := resolveStrict(r, key, v, set)
	if r.err != nil {
		return nil
	}
	return &m
}

func resolveStrict[T ~string](r *reader, key string, v any, set enum.Set[T]) T {
	var zero T
	s, ok := r.asString(key, v)
	if !ok {
		return zero
	}
	m, err := set.Strict(s)
	if err != nil {
		r.fail(fmt.Errorf("%s.%s: %w", r.entity, key, err))
		return zero
	}
	return m
}

// objects builds every element of an array of objects with build, stopping
// at the first failure.
func objects[T any](r *reader, key string, required bool, build func(map[string]any, *time.Location) (T, error)) []T {
	var items []any
	if required {
		items = r.array(key)
	} else {
		items = r.optArray(key)
	}
	if r.err != nil || items == nil {
		return nil
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			r.typeError(fmt.Sprintf("%s[%d]", key, i), "object", item)
			return nil
		}
		v, err := build(m, r.tz)
		if err != nil {
			r.fail(fmt.Errorf("%s[%d]: %w", key, i, err))
			return nil
		}
		out = append(out, v)
	}
	return out
}

// child builds a nested optional object.
func child[T any](r *reader, key string, build func(map[string]any, *time.Location) (T, error)) *T {
	m := r.optObject(key)
	if m == nil || r.err != nil {
		return nil
	}
	v, err := build(m, r.tz)
	if err != nil {
		r.fail(fmt.Errorf("%s.%s: %w", r.entity, key, err))
		return nil
	}
	return &v
}

func millimeters(v float64) measure.Quantity { return measure.Length(v, measure.Millimeter) }

func meters(v float64) measure.Quantity { return measure.Length(v, measure.Meter) }
