package auth

import (
	"context"
)

// Authenticator supplies bearer tokens for outgoing Ophelos API requests.
// Both the OAuth2 and static-token implementations satisfy it, so the HTTP
// layer can depend on the capability rather than a concrete type.
type Authenticator interface {
	// AccessToken returns a currently-valid bearer token, fetching a new one
	// if necessary.
	AccessToken(ctx context.Context) (string, error)

	// AuthHeaders returns the headers for an authenticated request,
	// i.e. {"Authorization": "Bearer <token>"}.
	AuthHeaders(ctx context.Context) (map[string]string, error)

	// InvalidateToken discards any cached token so the next AccessToken call
	// performs a fresh fetch. The transport calls this when the API responds
	// with 401.
	InvalidateToken()
}

// Environment selects the Ophelos deployment the client talks to.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
)

// TokenURL returns the Auth0 token endpoint for the environment.
// Unknown values fall back to staging, matching the server-side default.
func (e Environment) TokenURL() string {
	switch e {
	case EnvironmentProduction:
		return "https://ophelos.eu.auth0.com/oauth/token"
	case EnvironmentDevelopment:
		return "https://ophelos-dev.eu.auth0.com/oauth/token"
	default:
		return "https://ophelos-staging.eu.auth0.com/oauth/token"
	}
}

// StaticTokenAuthenticator is an Authenticator backed by a pre-obtained
// access token. It never fetches or expires.
type StaticTokenAuthenticator struct {
	accessToken string
}

// NewStaticTokenAuthenticator wraps a pre-obtained access token.
func NewStaticTokenAuthenticator(accessToken string) *StaticTokenAuthenticator {
	return &StaticTokenAuthenticator{accessToken: accessToken}
}

// AccessToken returns the static token.
func (a *StaticTokenAuthenticator) AccessToken(_ context.Context) (string, error) {
	return a.accessToken, nil
}

// AuthHeaders returns the Authorization header for the static token.
func (a *StaticTokenAuthenticator) AuthHeaders(ctx context.Context) (map[string]string, error) {
	token, err := a.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{"Authorization": "Bearer " + token}, nil
}

// InvalidateToken is a no-op for static tokens.
func (a *StaticTokenAuthenticator) InvalidateToken() {}
