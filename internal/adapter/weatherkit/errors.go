package weatherkit

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when a requested dataset is absent from the response,
// which WeatherKit does for locations it has no coverage for.
var ErrNoData = errors.New("dataset not available")

// ClientError is a 4xx response.
type ClientError struct {
	StatusCode int
	Body       string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("weatherkit client error: status %d: %s", e.StatusCode, e.Body)
}

// ServerError is a 5xx response.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("weatherkit server error: status %d: %s", e.StatusCode, e.Body)
}

// RequestError is a failure to complete the HTTP exchange, including a
// request refused by the open circuit breaker.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return "weatherkit request: " + e.Err.Error() }

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError is a response body that is not the expected JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "weatherkit decode: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }
