package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels for errors.Is. A *FetchError from the client matches one of
// them whenever the cause is known.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrRateLimited    = errors.New("rate limited")
	ErrServerError    = errors.New("server error")
	ErrTimeout        = errors.New("request timed out")
	ErrDecode         = errors.New("unexpected response format")
)

// APIError is a non-200 answer from the MVG API
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *APIError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("mvg %s: %s", e.Endpoint, status)
}

// Is classifies the status code
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrInvalidRequest:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrServerError:
		return e.StatusCode >= 500
	}
	return false
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, status, endpoint string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Endpoint:   endpoint,
	}
}

// FetchError is returned by every Client call that fails. Callers outside
// this package treat it as opaque; Unwrap exposes the cause for errors.Is/As.
type FetchError struct {
	Op  string // "list stations", "list departures"
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ValidationError rejects a request before it is sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ErrMissingField reports a required request parameter that was left empty
func ErrMissingField(field string) error {
	return &ValidationError{Field: field, Message: "must not be empty"}
}
