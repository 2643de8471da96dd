package httpclient

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
)

// APIError is returned when the API responds with a 4xx or 5xx status.
type APIError struct {
	// StatusCode is the HTTP status of the failing response.
	StatusCode int

	// Message is the API-provided error message, or "HTTP <code>" when the
	// body carried none.
	Message string

	// ResponseData is the decoded error body, when it was JSON.
	ResponseData map[string]any

	// Method and URL identify the failing request.
	Method string
	URL    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ophelos: %s (status=%d, %s %s)", e.Message, e.StatusCode, e.Method, e.URL)
}

// IsNotFound reports whether the error is an API 404.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsForbidden reports whether the error is an API 403.
func IsForbidden(err error) bool { return hasStatus(err, http.StatusForbidden) }

// IsConflict reports whether the error is an API 409.
func IsConflict(err error) bool { return hasStatus(err, http.StatusConflict) }

// IsValidation reports whether the error is an API 422.
func IsValidation(err error) bool { return hasStatus(err, http.StatusUnprocessableEntity) }

// IsRateLimited reports whether the error is an API 429.
func IsRateLimited(err error) bool { return hasStatus(err, http.StatusTooManyRequests) }

// IsServerError reports whether the error is an API 5xx.
func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// RequestError is returned when a request fails before an HTTP response is
// received: connection failures, timeouts, or exhausted retries.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("ophelos: request failed: %v (%s %s)", e.Err, e.Method, e.URL)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the underlying failure was a timeout.
func (e *RequestError) Timeout() bool {
	var netErr net.Error
	if errors.As(e.Err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(e.Err, os.ErrDeadlineExceeded)
}
