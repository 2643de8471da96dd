// Package auth implements OAuth2 client-credentials authentication for the Ophelos API.
//
// It provides a thread-safe token cache that fetches bearer tokens from the
// environment-specific Auth0 token endpoint, refreshes them before expiry, and
// exposes them through the Authenticator interface consumed by the HTTP layer.
// A static-token variant exists for pre-provisioned credentials.
//
// # Features
//
//   - Client-credentials flow with automatic caching and early refresh (60s safety buffer)
//   - Double-checked locking so concurrent callers trigger at most one token fetch
//   - Explicit invalidation for 401 handling by the transport
//   - Static token authenticator satisfying the same contract
//   - oauth2.TokenSource interop for use with golang.org/x/oauth2 consumers
//   - Optional logging (WithLogger, WithLoggingEnabled)
//
// # Quick Start
//
//	authenticator := auth.NewOAuth2Authenticator(
//	    "client-id",
//	    "client-secret",
//	    "https://api.ophelos.com",
//	    auth.EnvironmentStaging,
//	)
//
//	token, err := authenticator.AccessToken(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Notes
//
//   - All authenticators are safe for concurrent use.
//   - Token fetch failures surface as *auth.Error with the token endpoint as context.
package auth
