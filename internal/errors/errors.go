package errors

import (
	"errors"
	"net/http"
)

// Taxonomy codes returned to clients.
const (
	CodeValidation      = "validation_error"
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeUpstream        = "upstream_failure"
	CodeUnexpected      = "unexpected"
)

var (
	// ErrValidation is returned when request input is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthenticated is returned when no valid session is present.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when the session user lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when an addressed resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a resource already exists.
	ErrConflict = errors.New("conflict")
	// ErrUpstream is returned when the generation backend fails or returns unusable output.
	ErrUpstream = errors.New("upstream generation failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Server-side failures never
// carry the wrapped cause; callers pass the client-facing message via fallback.
func MapErrorToHTTP(err error, fallback string) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, clientMessage(err, ErrValidation.Error()), CodeValidation)
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, clientMessage(err, "Not authenticated"), CodeUnauthenticated)
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, clientMessage(err, "Forbidden"), CodeForbidden)
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, clientMessage(err, ErrNotFound.Error()), CodeNotFound)
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, clientMessage(err, ErrConflict.Error()), CodeConflict)
	case errors.Is(err, ErrUpstream):
		return NewHTTPError(http.StatusInternalServerError, fallback, CodeUpstream)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallback, CodeUnexpected)
	}
}

// Reason wraps a sentinel with a message that is safe to show to clients.
func Reason(sentinel error, message string) error {
	return &reasonError{sentinel: sentinel, message: message}
}

type reasonError struct {
	sentinel error
	message  string
}

func (e *reasonError) Error() string { return e.message }
func (e *reasonError) Unwrap() error { return e.sentinel }

func clientMessage(err error, def string) string {
	var re *reasonError
	if errors.As(err, &re) {
		return re.message
	}
	return def
}
