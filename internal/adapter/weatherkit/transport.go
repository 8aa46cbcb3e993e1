package weatherkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/couchcryptid/weatherkit-collector/internal/observability"
)

const userAgent = "weatherkit-collector/1.0"

type tokenSource interface {
	Token() (string, error)
}

// TransportConfig tunes the HTTP layer.
type TransportConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RateLimit       float64 // requests per second, 0 for unlimited
	RateBurst       int
	BreakerFailures uint32 // consecutive failures that open the breaker
	BreakerTimeout  time.Duration
}

// Transport performs authenticated GETs against WeatherKit. Requests wait on
// a token bucket and pass through a circuit breaker that counts transport
// failures and 5xx responses; 4xx responses do not trip it.
type Transport struct {
	http    *resty.Client
	tokens  tokenSource
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewTransport builds the rate-limited, breaker-guarded HTTP layer. A zero
// RateLimit disables limiting and a zero BreakerFailures defaults to 5.
func NewTransport(cfg TransportConfig, tokens tokenSource, metrics *observability.Metrics, logger *slog.Logger) *Transport {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherkit",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			metrics.BreakerState.Set(float64(to))
		},
	})

	return &Transport{
		http:    client,
		tokens:  tokens,
		limiter: rate.NewLimiter(limit, burst),
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// getObject fetches a JSON object. A 204 yields an empty map.
func (t *Transport) getObject(ctx context.Context, endpoint, path string, query url.Values) (map[string]any, error) {
	body, err := t.get(ctx, endpoint, path, query)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if len(body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return out, nil
}

// getStrings fetches a JSON array of strings. A 204 yields an empty slice.
func (t *Transport) getStrings(ctx context.Context, endpoint, path string, query url.Values) ([]string, error) {
	body, err := t.get(ctx, endpoint, path, query)
	if err != nil {
		return nil, err
	}
	out := []string{}
	if len(body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return out, nil
}

func (t *Transport) get(ctx context.Context, endpoint, path string, query url.Values) ([]byte, error) {
	start := time.Now()
	body, err := t.do(ctx, path, query)
	t.metrics.WeatherKitDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	t.metrics.WeatherKitRequests.WithLabelValues(endpoint, outcome(body, err)).Inc()
	if err != nil {
		t.logger.Debug("weatherkit request failed", "endpoint", endpoint, "path", path, "error", err)
	}
	return body, err
}

func (t *Transport) do(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, &RequestError{Err: fmt.Errorf("wait for rate limiter: %w", err)}
	}
	token, err := t.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}

	out, err := t.breaker.Execute(func() (any, error) {
		resp, err := t.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetQueryParamsFromValues(query).
			Get(path)
		if err != nil {
			return nil, &RequestError{Err: err}
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return nil, &ServerError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &RequestError{Err: err}
		}
		return nil, err
	}

	resp := out.(*resty.Response)
	switch code := resp.StatusCode(); {
	case code == http.StatusNoContent:
		return nil, nil
	case code >= http.StatusBadRequest:
		return nil, &ClientError{StatusCode: code, Body: string(resp.Body())}
	}
	return resp.Body(), nil
}

func outcome(body []byte, err error) string {
	var (
		clientErr *ClientError
		serverErr *ServerError
		reqErr    *RequestError
	)
	switch {
	case err == nil && len(body) == 0:
		return "empty"
	case err == nil:
		return "success"
	case errors.As(err, &clientErr):
		return "client_error"
	case errors.As(err, &serverErr):
		return "server_error"
	case errors.As(err, &reqErr):
		return "request_error"
	}
	return "error"
}
