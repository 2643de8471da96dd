package httpclient

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// maxJitter is the additive jitter applied on top of exponential backoff.
// Additive rather than multiplicative jitter keeps base timing predictable
// while still spreading out simultaneous retries.
const maxJitter = 1500 * time.Millisecond

// retryPolicy retries transport failures and 429/5xx responses. Context
// cancellation always wins. Method gating happens in Client.do: only
// idempotent requests are routed through the retrying client at all.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return true, nil
	}
	return false, nil
}

// jitteredBackoff is the default retryablehttp exponential backoff plus a
// random 0-1.5s.
func jitteredBackoff(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
	backoff := retryablehttp.DefaultBackoff(min, max, attemptNum, resp)
	if backoff <= 0 {
		return 0
	}
	return backoff + rand.N(maxJitter)
}

// idempotent reports whether a method is safe to retry automatically.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
