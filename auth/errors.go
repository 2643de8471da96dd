package auth

import "fmt"

// Error is returned when authentication fails: the token endpoint is
// unreachable, returns an unparsable body, the response lacks an access
// token, or the API rejects the presented token.
type Error struct {
	// Message is a human-readable description of the failure.
	Message string

	// TokenURL is the token endpoint involved, when known.
	TokenURL string

	// ResponseBody holds the raw or decoded response that caused the
	// failure, when one was received.
	ResponseBody any

	// Err is the underlying transport error, if any.
	Err error
}

func (e *Error) Error() string {
	if e.TokenURL != "" {
		return fmt.Sprintf("auth: %s (token_url=%s)", e.Message, e.TokenURL)
	}
	return "auth: " + e.Message
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}
