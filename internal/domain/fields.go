package domain

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Field is one externally readable field of an entity.
type Field struct {
	Name  string
	Value any
}

// Fielder is implemented by every entity and dataset. Fields lists the
// readable fields in declaration order; absent optional fields carry a nil
// Value. Context such as the timezone an entity was built in is not a field.
type Fielder interface {
	Fields() []Field
}

// FieldMap is an insertion-ordered string-keyed map.
type FieldMap struct {
	m *orderedmap.OrderedMap[string, any]
}

// ToFieldMap renders f as a FieldMap. Values that are themselves Fielders are
// rendered recursively; everything else, slices included, is kept as is.
func ToFieldMap(f Fielder) *FieldMap {
	fields := f.Fields()
	m := orderedmap.New[string, any](orderedmap.WithCapacity[string, any](len(fields)))
	for _, fld := range fields {
		v := fld.Value
		if nested, ok := v.(Fielder); ok {
			v = ToFieldMap(nested)
		}
		m.Set(fld.Name, v)
	}
	return &FieldMap{m: m}
}

// Keys returns the field names in order.
func (m *FieldMap) Keys() []string {
	out := make([]string, 0, m.m.Len())
	for pair := m.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Get returns the value stored under key.
func (m *FieldMap) Get(key string) (any, bool) { return m.m.Get(key) }

// Len is the number of fields.
func (m *FieldMap) Len() int { return m.m.Len() }

// MarshalJSON writes the fields in order.
func (m *FieldMap) MarshalJSON() ([]byte, error) { return m.m.MarshalJSON() }

// MarshalFields encodes f through its FieldMap. Entities use it for their
// MarshalJSON so that slices of entities encode the same way as a FieldMap.
func MarshalFields(f Fielder) ([]byte, error) {
	return json.Marshal(ToFieldMap(f))
}

// Opt turns a nil pointer into an untyped nil and dereferences the rest, so
// that absent nested entities are not mistaken for Fielders.
func Opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
