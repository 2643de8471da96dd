// Package webhooks validates and parses Ophelos webhook deliveries.
//
// Ophelos signs every delivery with an Ophelos-Signature header of the form
// "t=<unix-timestamp>,v1=<hex-hmac>". The signature is an HMAC-SHA256 over
// "<timestamp>.<payload>" keyed with the endpoint's signing secret. Handler
// verifies the signature with a constant-time comparison, enforces a replay
// tolerance window on the embedded timestamp, and deserializes the verified
// payload into a models.WebhookEvent.
//
// # Quick Start
//
//	handler := webhooks.NewHandler("whsec_...")
//
//	event, err := handler.VerifyAndParse(body, r.Header.Get("Ophelos-Signature"), webhooks.DefaultTolerance)
//	if err != nil {
//	    // reject the delivery
//	}
//
// Failure cases are distinguishable with errors.Is: ErrMalformedHeader,
// ErrStaleTimestamp, ErrVerificationFailed and ErrInvalidPayload.
//
// Handler holds no mutable state and is safe for concurrent use.
package webhooks
