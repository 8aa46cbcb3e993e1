package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/weatherkit-collector/internal/dataset"
	"github.com/couchcryptid/weatherkit-collector/internal/domain"
)

const maxParseBody = 8 << 20

// Server exposes health, readiness, metrics and parse HTTP endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and
// /parse/{dataset} routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /parse/{dataset}", s.handleParse)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleParse builds the posted WeatherKit JSON into typed datasets and
// returns their generic field map. {dataset} is a dataset name, "weather" for
// a multi-dataset response or "alertDetails" for a single alert lookup.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("dataset")
	parse, ok := parser(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown dataset %q", name))
		return
	}

	tz := time.UTC
	if tzName := r.URL.Query().Get("timezone"); tzName != "" {
		loc, err := time.LoadLocation(tzName)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid timezone %q", tzName))
			return
		}
		tz = loc
	}

	var raw map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxParseBody)).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}

	result, err := parse(raw, tz)
	if err != nil {
		s.logger.Debug("parse rejected", "dataset", name, "error", err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, domain.ToFieldMap(result))
}

type parseFunc func(map[string]any, *time.Location) (domain.Fielder, error)

func parser(name string) (parseFunc, bool) {
	switch name {
	case "weather":
		return func(raw map[string]any, tz *time.Location) (domain.Fielder, error) {
			return dataset.ParseWeather(raw, tz)
		}, true
	case "alertDetails":
		return func(raw map[string]any, tz *time.Location) (domain.Fielder, error) {
			return dataset.AlertDetailsOf(raw, tz)
		}, true
	}
	n, ok := dataset.ParseName(name)
	if !ok {
		return nil, false
	}
	return func(raw map[string]any, tz *time.Location) (domain.Fielder, error) {
		return dataset.Parse(n, raw, tz)
	}, true
}

func writeError(w http.ResponseWriter, status int, err error) {
	sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
}
