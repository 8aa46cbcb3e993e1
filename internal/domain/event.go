package domain

import "time"

// Location is a point the collector fetches weather for.
type Location struct {
	Name        string
	Coordinate  Coordinate
	CountryCode string
}

// Report is one exported dataset for one location, ready for the sink.
type Report struct {
	Location    Location
	Dataset     string
	Fields      *FieldMap
	Place       string // reverse geocoded place name, empty when geocoding is off or failed
	ProcessedAt time.Time
}

// Key identifies the report on the sink: "{lat},{lon}/{dataset}".
func (r Report) Key() string {
	return r.Location.Coordinate.String() + "/" + r.Dataset
}
