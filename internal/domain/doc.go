// Package domain builds typed weather entities from decoded WeatherKit JSON.
//
// # Payload Conventions
//
// Every builder takes the already-decoded object (map[string]any, as produced
// by encoding/json) and the timezone the caller wants timestamps in:
//
//	day, err := domain.BuildDay(raw, tz)
//
// Timestamps:
//
//	RFC 3339 strings in UTC, e.g. "2024-04-26T05:00:00Z". They are converted
//	to the caller's timezone at build time.
//
// Units (the API is always queried in metric):
//
//	temperatures      °C
//	pressure          millibars
//	wind speed/gusts  km/h
//	precipitation     mm (amounts) and mm per hour (intensities)
//	visibility        meters
//	wind direction    degrees
//
// Fractions:
//
//	cloudCover, humidity, precipitationChance and the cloud cover altitude
//	bands arrive as 0-1 fractions and are stored as 0-100 percentages. The
//	scaling happens here, so Quantity.Value() already returns 0-100.
//
// Optional fields:
//
//	A field that is missing or null is left nil. Only the fields each builder
//	documents as required produce a MissingFieldError.
//
// Enumerations:
//
//	conditionCode is resolved leniently: an unknown code leaves the field nil
//	because Apple adds codes over time. Every other vocabulary is strict.
//
// # Serialization
//
// Entities implement Fielder. ToFieldMap walks the declared fields in order
// and produces an ordered FieldMap, recursing into nested entities and
// passing quantities, enumerations, times and slices through unchanged.
package domain
