// Package httpclient makes authenticated JSON requests to the Ophelos API.
//
// It attaches bearer tokens from an auth.Authenticator to every request,
// retries idempotent requests on 429 and 5xx responses with exponential
// backoff plus additive jitter, maps error responses onto a typed error
// taxonomy, and extracts pagination state from Link and X-Total-Count
// response headers.
//
// # Features
//
//   - Bearer token injection with automatic invalidation on 401
//   - Retries for GET/HEAD/OPTIONS via hashicorp/go-retryablehttp (429, 5xx, transport errors)
//   - Exponential backoff with 0-1.5s additive jitter to avoid thundering herds
//   - Typed errors: *APIError for API failures, *RequestError for transport failures
//   - Link header pagination parsing into models.PageInfo
//
// # Quick Start
//
//	client := httpclient.NewClient(authenticator, "https://api.ophelos.dev",
//	    httpclient.WithTenantID("ten_123"),
//	)
//
//	resp, err := client.Get(ctx, "/debts", url.Values{"limit": {"10"}})
//
// The client is safe for concurrent use if its Authenticator is.
package httpclient
