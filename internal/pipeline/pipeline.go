package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	sharedretry "github.com/couchcryptid/storm-data-shared/retry"
	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"

	"github.com/couchcryptid/weatherkit-collector/internal/dataset"
	"github.com/couchcryptid/weatherkit-collector/internal/domain"
	"github.com/couchcryptid/weatherkit-collector/internal/observability"
)

// Fetcher retrieves an undecoded WeatherKit response for one location.
type Fetcher interface {
	Raw(ctx context.Context, loc domain.Coordinate, countryCode string, names ...dataset.Name) (map[string]any, error)
}

// Transformer turns one location's response into sink reports.
type Transformer interface {
	Transform(ctx context.Context, loc domain.Location, raw map[string]any) ([]domain.Report, error)
}

// BatchLoader writes multiple reports to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, reports []domain.Report) error
}

// Targets is what each run collects.
type Targets struct {
	Locations []domain.Location
	Datasets  []dataset.Name
}

// Pipeline orchestrates the scheduled fetch-transform-load run.
type Pipeline struct {
	fetcher     Fetcher
	transformer Transformer
	loader      BatchLoader
	targets     Targets
	logger      *slog.Logger
	metrics     *observability.Metrics
	clock       clockwork.Clock
	ready       atomic.Bool
}

// New creates a Pipeline with the given stages and observability.
func New(f Fetcher, t Transformer, l BatchLoader, targets Targets, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Pipeline {
	return &Pipeline{
		fetcher:     f,
		transformer: t,
		loader:      l,
		targets:     targets,
		logger:      logger,
		metrics:     metrics,
		clock:       clock,
	}
}

// CheckReadiness returns nil once a run has written to the sink, or an error
// describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("collector has not completed a run yet")
	}
	return nil
}

// Run collects once immediately and then on every tick of schedule until the
// context is cancelled. A tick that fires while a run is still in progress is
// skipped.
func (p *Pipeline) Run(ctx context.Context, schedule string) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{p.logger})))
	if _, err := c.AddFunc(schedule, func() { p.runLogged(ctx) }); err != nil {
		return fmt.Errorf("schedule collector: %w", err)
	}

	p.logger.Info("collector started",
		"schedule", schedule,
		"locations", len(p.targets.Locations),
		"datasets", len(p.targets.Datasets),
	)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	p.runLogged(ctx)
	c.Start()

	<-ctx.Done()
	p.logger.Info("collector stopping", "reason", ctx.Err())
	<-c.Stop().Done()
	return nil
}

func (p *Pipeline) runLogged(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.RunOnce(ctx); err != nil && ctx.Err() == nil {
		p.logger.Error("collector run failed", "error", err)
	}
}

// RunOnce fetches and transforms every target location and loads the
// resulting reports in one batch. A location that fails to fetch or transform
// is skipped; only a load failure fails the run.
func (p *Pipeline) RunOnce(ctx context.Context) error {
	start := p.clock.Now()
	p.metrics.CollectorRuns.Inc()

	var reports []domain.Report
	collected := 0
	for _, loc := range p.targets.Locations {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		out, ok := p.collect(ctx, loc)
		if !ok {
			continue
		}
		collected++
		reports = append(reports, out...)
	}
	p.metrics.LocationsPerRun.Observe(float64(collected))

	if len(reports) == 0 {
		p.logger.Warn("collector run produced no reports", "locations", len(p.targets.Locations))
		return nil
	}

	if err := p.loadWithRetry(ctx, reports); err != nil {
		return err
	}

	p.metrics.ReportsProduced.Add(float64(len(reports)))
	p.metrics.RunDuration.Observe(p.clock.Since(start).Seconds())
	p.ready.Store(true)
	p.logger.Info("collector run complete", "reports", len(reports), "locations", collected)
	return nil
}

// collect runs extract and transform for one location. Returns false if the
// location should be skipped.
func (p *Pipeline) collect(ctx context.Context, loc domain.Location) ([]domain.Report, bool) {
	names := p.datasetsFor(loc)
	if len(names) == 0 {
		return nil, false
	}

	raw, err := p.fetcher.Raw(ctx, loc.Coordinate, loc.CountryCode, names...)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Warn("fetch failed, skipping location", "error", err, "location", loc.Name)
			p.metrics.FetchErrors.Inc()
		}
		return nil, false
	}

	reports, err := p.transformer.Transform(ctx, loc, raw)
	if err != nil {
		p.logger.Warn("transform failed, skipping location", "error", err, "location", loc.Name)
		p.metrics.TransformErrors.Inc()
		return nil, false
	}
	return reports, true
}

// datasetsFor drops weatherAlerts for locations without a country code,
// which WeatherKit requires for that dataset.
func (p *Pipeline) datasetsFor(loc domain.Location) []dataset.Name {
	if loc.CountryCode != "" {
		return p.targets.Datasets
	}
	out := make([]dataset.Name, 0, len(p.targets.Datasets))
	for _, n := range p.targets.Datasets {
		if n == dataset.NameWeatherAlerts {
			p.logger.Debug("skipping weather alerts without country code", "location", loc.Name)
			continue
		}
		out = append(out, n)
	}
	return out
}

const maxLoadAttempts = 3

// loadWithRetry retries the sink write with exponential backoff: start at
// 200ms, double each retry, cap at 5s.
func (p *Pipeline) loadWithRetry(ctx context.Context, reports []domain.Report) error {
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	var err error
	for attempt := 1; attempt <= maxLoadAttempts; attempt++ {
		if err = p.loader.LoadBatch(ctx, reports); err == nil {
			return nil
		}
		p.logger.Error("load batch failed", "error", err, "batch_size", len(reports), "attempt", attempt)
		if attempt == maxLoadAttempts || !sharedretry.SleepWithContext(ctx, backoff) {
			break
		}
		backoff = sharedretry.NextBackoff(backoff, maxBackoff)
	}
	return fmt.Errorf("load reports: %w", err)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
