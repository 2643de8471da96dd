package auth

import (
	"golang.org/x/oauth2"
)

// Token implements oauth2.TokenSource, so an OAuth2Authenticator can be used
// anywhere a golang.org/x/oauth2 token source is expected (oauth2.NewClient,
// oauth2.Transport, gRPC credentials, ...). The returned token carries the
// cached expiry so downstream caches behave correctly.
func (a *OAuth2Authenticator) Token() (*oauth2.Token, error) {
	token, err := a.AccessToken(nil) //nolint:staticcheck // TokenSource has no context; AccessToken falls back to Background
	if err != nil {
		return nil, err
	}

	a.mu.RLock()
	expiry := a.expiresAt
	a.mu.RUnlock()

	return &oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
		Expiry:      expiry,
	}, nil
}

// Token implements oauth2.TokenSource for static tokens. The zero expiry
// marks the token as never expiring.
func (a *StaticTokenAuthenticator) Token() (*oauth2.Token, error) {
	return &oauth2.Token{
		AccessToken: a.accessToken,
		TokenType:   "Bearer",
	}, nil
}

var (
	_ oauth2.TokenSource = (*OAuth2Authenticator)(nil)
	_ oauth2.TokenSource = (*StaticTokenAuthenticator)(nil)
)
