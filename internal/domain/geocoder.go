package domain

import "context"

// GeocodingResult contains place data returned by a geocoding provider.
type GeocodingResult struct {
	Coordinate       Coordinate
	FormattedAddress string
	PlaceName        string
	Confidence       float64 // 0.0–1.0 provider confidence score
}

// Geocoder names the place at a coordinate.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, c Coordinate) (GeocodingResult, error)
}
