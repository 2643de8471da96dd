package webhooks

import "errors"

var (
	// ErrMalformedHeader indicates the signature header is not a valid
	// "t=<timestamp>,v1=<signature>" sequence.
	ErrMalformedHeader = errors.New("webhooks: invalid signature header format")

	// ErrStaleTimestamp indicates the signed timestamp falls outside the
	// accepted tolerance window in either direction.
	ErrStaleTimestamp = errors.New("webhooks: timestamp outside tolerance")

	// ErrVerificationFailed indicates the signature did not match the
	// payload.
	ErrVerificationFailed = errors.New("webhooks: signature verification failed")

	// ErrInvalidPayload indicates the verified payload could not be parsed
	// into a webhook event.
	ErrInvalidPayload = errors.New("webhooks: invalid event payload")
)
