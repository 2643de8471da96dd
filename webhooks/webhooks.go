package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ophelos/ophelos-go/models"
)

// DefaultTolerance is the maximum accepted distance between the signed
// timestamp and the current time.
const DefaultTolerance = 5 * time.Minute

// Handler verifies and parses webhook deliveries for one signing secret.
// The secret is immutable, so a Handler is safe for concurrent use.
type Handler struct {
	secret []byte
	now    func() time.Time
}

// NewHandler creates a webhook handler for the given signing secret.
func NewHandler(secret string) *Handler {
	return &Handler{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// VerifySignature checks the Ophelos-Signature header against the raw
// payload. It returns (false, nil) only when the signature does not match;
// malformed headers and timestamps outside the tolerance window return an
// error (ErrMalformedHeader, ErrStaleTimestamp).
//
// A tolerance of 0 uses DefaultTolerance. The window is symmetric: signed
// timestamps implausibly far in the future are rejected too.
func (h *Handler) VerifySignature(payload []byte, signatureHeader string, tolerance time.Duration) (bool, error) {
	timestamp, signature, err := parseSignatureHeader(signatureHeader)
	if err != nil {
		return false, err
	}

	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	age := h.now().Unix() - timestamp
	if age < 0 {
		age = -age
	}
	if age > int64(tolerance/time.Second) {
		return false, fmt.Errorf("%w: signed %ds from now, tolerance %ds",
			ErrStaleTimestamp, age, int64(tolerance/time.Second))
	}

	expected := computeSignature(h.secret, timestamp, payload)

	// Constant-time comparison over the hex strings.
	return hmac.Equal([]byte(signature), []byte(expected)), nil
}

// ParseEvent deserializes a JSON payload into a WebhookEvent without
// checking its signature.
func (h *Handler) ParseEvent(payload []byte) (*models.WebhookEvent, error) {
	var event models.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return &event, nil
}

// VerifyAndParse verifies the signature and parses the payload in one step.
// A signature mismatch surfaces as ErrVerificationFailed.
func (h *Handler) VerifyAndParse(payload []byte, signatureHeader string, tolerance time.Duration) (*models.WebhookEvent, error) {
	ok, err := h.VerifySignature(payload, signatureHeader, tolerance)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVerificationFailed
	}
	return h.ParseEvent(payload)
}

// ConstructEvent verifies and parses a webhook delivery with an explicit
// secret, without constructing a Handler first.
func ConstructEvent(payload []byte, signatureHeader, secret string, tolerance time.Duration) (*models.WebhookEvent, error) {
	return NewHandler(secret).VerifyAndParse(payload, signatureHeader, tolerance)
}

// Sign produces a valid Ophelos-Signature header value for the payload at
// the given time. It exists so endpoint implementations can be exercised in
// tests.
func Sign(payload []byte, secret string, at time.Time) string {
	t := at.Unix()
	return fmt.Sprintf("t=%d,v1=%s", t, computeSignature([]byte(secret), t, payload))
}

// parseSignatureHeader splits "t=<ts>,v1=<sig>" into its parts. Unknown keys
// are tolerated; missing or empty t/v1, or an unparsable pair, is a format
// error.
func parseSignatureHeader(header string) (timestamp int64, signature string, err error) {
	var ts, sig string

	for _, element := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(element), "=")
		if !found {
			return 0, "", fmt.Errorf("%w: %q", ErrMalformedHeader, element)
		}
		switch key {
		case "t":
			ts = value
		case "v1":
			sig = value
		}
	}

	if ts == "" || sig == "" {
		return 0, "", fmt.Errorf("%w: missing t or v1", ErrMalformedHeader)
	}

	timestamp, err = strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: bad timestamp %q", ErrMalformedHeader, ts)
	}

	return timestamp, sig, nil
}

// computeSignature returns the hex HMAC-SHA256 of "<timestamp>.<payload>".
func computeSignature(secret []byte, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
