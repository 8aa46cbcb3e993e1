package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weatherkit_collector"

// Metrics holds the Prometheus counters, histograms, and gauges for the collector.
type Metrics struct {
	CollectorRuns   prometheus.Counter
	FetchErrors     prometheus.Counter
	TransformErrors prometheus.Counter
	ReportsProduced prometheus.Counter
	PipelineRunning prometheus.Gauge
	RunDuration     prometheus.Histogram
	LocationsPerRun prometheus.Histogram

	// WeatherKit API metrics.
	WeatherKitRequests *prometheus.CounterVec   // labels: endpoint={weather,weatherAlert,availability}, outcome={success,empty,client_error,server_error,request_error,error}
	WeatherKitDuration *prometheus.HistogramVec // labels: endpoint
	BreakerState       prometheus.Gauge         // 0 closed, 1 half-open, 2 open

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
	GeocodeEnabled     prometheus.Gauge
}

func newMetrics(withHelp bool) *Metrics {
	help := func(s string) string {
		if withHelp {
			return s
		}
		return ""
	}
	return &Metrics{
		CollectorRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      help("Total scheduled collection runs."),
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_errors_total",
			Help:      help("Total failed WeatherKit fetches."),
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      help("Total responses that failed to build into typed datasets."),
		}),
		ReportsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_produced_total",
			Help:      help("Total dataset reports written to the sink topic."),
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      help("1 when the collector is scheduled, 0 when shut down."),
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      help("Duration of a complete fetch-transform-load run."),
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		LocationsPerRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "locations_per_run",
			Help:      help("Number of locations fetched successfully per run."),
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		WeatherKitRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weatherkit_requests_total",
			Help:      help("WeatherKit API requests by endpoint and outcome."),
		}, []string{"endpoint", "outcome"}),
		WeatherKitDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "weatherkit_request_duration_seconds",
			Help:      help("WeatherKit API request duration in seconds."),
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		BreakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "weatherkit_breaker_state",
			Help:      help("Circuit breaker state: 0 closed, 1 half-open, 2 open."),
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      help("Reverse geocoding API requests by outcome."),
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      help("Geocoding cache lookups by result."),
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocode_api_duration_seconds",
			Help:      help("Mapbox API request duration in seconds."),
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "geocode_enabled",
			Help:      help("1 when reverse geocoding enrichment is enabled, 0 otherwise."),
		}),
	}
}

// NewMetrics creates and registers all collector metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(true)
	prometheus.MustRegister(
		m.CollectorRuns,
		m.FetchErrors,
		m.TransformErrors,
		m.ReportsProduced,
		m.PipelineRunning,
		m.RunDuration,
		m.LocationsPerRun,
		m.WeatherKitRequests,
		m.WeatherKitDuration,
		m.BreakerState,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.GeocodeEnabled,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}
