package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weatherkit-collector/internal/dataset"
	"github.com/couchcryptid/weatherkit-collector/internal/domain"
)

// ReportTransformer implements Transformer: it builds typed datasets from a
// raw response, exports each as a generic field map and optionally enriches
// the reports with a reverse geocoded place name.
type ReportTransformer struct {
	tz       *time.Location
	geocoder domain.Geocoder
	clock    clockwork.Clock
	logger   *slog.Logger
}

// NewTransformer creates a ReportTransformer. Timestamps are converted to tz.
// Pass a nil geocoder to disable geocoding enrichment.
func NewTransformer(tz *time.Location, geocoder domain.Geocoder, clock clockwork.Clock, logger *slog.Logger) *ReportTransformer {
	return &ReportTransformer{
		tz:       tz,
		geocoder: geocoder,
		clock:    clock,
		logger:   logger,
	}
}

// Transform returns one report per dataset present in raw.
func (t *ReportTransformer) Transform(ctx context.Context, loc domain.Location, raw map[string]any) ([]domain.Report, error) {
	weather, err := dataset.ParseWeather(raw, t.tz)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", loc.Name, err)
	}

	entries := weather.Datasets()
	if len(entries) == 0 {
		return nil, nil
	}

	place := t.place(ctx, loc)
	now := t.clock.Now().UTC()
	reports := make([]domain.Report, 0, len(entries))
	for _, e := range entries {
		reports = append(reports, domain.Report{
			Location:    loc,
			Dataset:     string(e.Name),
			Fields:      domain.ToFieldMap(e.Dataset),
			Place:       place,
			ProcessedAt: now,
		})
	}
	return reports, nil
}

// place resolves a display name for loc. Geocoding failures are logged and
// leave the place empty.
func (t *ReportTransformer) place(ctx context.Context, loc domain.Location) string {
	if t.geocoder == nil {
		return ""
	}
	result, err := t.geocoder.ReverseGeocode(ctx, loc.Coordinate)
	if err != nil {
		t.logger.Warn("reverse geocode failed", "error", err, "location", loc.Name)
		return ""
	}
	return result.FormattedAddress
}
