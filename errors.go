package ophelos

import (
	"github.com/ophelos/ophelos-go/auth"
	"github.com/ophelos/ophelos-go/httpclient"
)

// Error aliases so callers can match errors without importing the
// sub-packages that produce them.
type (
	// APIError is returned for 4xx/5xx API responses.
	APIError = httpclient.APIError

	// RequestError is returned for transport-level failures.
	RequestError = httpclient.RequestError

	// AuthenticationError is returned for token fetch failures and 401
	// responses.
	AuthenticationError = auth.Error
)

// ParseError is returned when a response body cannot be decoded into its
// typed model.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "ophelos: failed to parse response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
