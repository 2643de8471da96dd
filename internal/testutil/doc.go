// Package testutil provides test helpers for ophelos-go packages.
//
// It includes utilities to spin up IPv4-only local HTTP servers (avoiding IPv6 in sandboxes),
// stub OAuth2 token endpoints and API resources, and build signed webhook deliveries.
//
// # Utilities
//
//   - NewLocalHTTPServer: start httptest server bound to 127.0.0.1
//   - NewTokenServer: stub the OAuth2 client-credentials token endpoint and capture requests
//   - NewAPIServer with JSONResponse / ListResponse: stub API resources with canned bodies
//   - RoundTripFunc: inline http.RoundTripper implementations
//   - SignedWebhookHeader: compute a valid signature header for a payload
//
// These helpers are designed for tests; servers are shut down via tb.Cleanup.
package testutil
