package auth

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// tokenExpiryBuffer is subtracted from the token lifetime so a token is
	// refreshed before it can expire mid-request.
	tokenExpiryBuffer = 60 * time.Second

	// defaultExpiresIn is assumed when the token response omits expires_in.
	defaultExpiresIn = 3600 * time.Second

	// tokenFetchTimeout bounds a single token endpoint round trip.
	tokenFetchTimeout = 30 * time.Second
)

// Logger is an interface for optional logging in OAuth2Authenticator.
// Implementations can log token refresh events if desired.
type Logger interface {
	Printf(format string, args ...any)
}

// OAuth2Authenticator fetches and caches access tokens using the OAuth2
// client-credentials flow. It is safe for concurrent use: among any number
// of callers racing on a missing or expired token, exactly one performs the
// network fetch.
type OAuth2Authenticator struct {
	clientID     string
	clientSecret string
	audience     string
	tokenURL     string

	httpClient *http.Client
	logger     Logger
	now        func() time.Time

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

// Option is a functional option for configuring OAuth2Authenticator.
type Option func(*OAuth2Authenticator)

// WithLogger sets a custom logger for token refresh events.
// If not set, no logging will occur.
func WithLogger(logger Logger) Option {
	return func(a *OAuth2Authenticator) {
		a.logger = logger
	}
}

// WithLoggingEnabled enables logging using the default Go log package.
func WithLoggingEnabled() Option {
	return func(a *OAuth2Authenticator) {
		a.logger = log.Default()
	}
}

// WithHTTPClient overrides the HTTP client used for token fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(a *OAuth2Authenticator) {
		a.httpClient = client
	}
}

// WithTokenURL overrides the environment-derived token endpoint.
func WithTokenURL(tokenURL string) Option {
	return func(a *OAuth2Authenticator) {
		a.tokenURL = tokenURL
	}
}

// NewOAuth2Authenticator creates an authenticator for the given client
// credentials. The environment selects the token endpoint.
//
// Parameters:
//   - clientID: OAuth2 client identifier
//   - clientSecret: OAuth2 client secret
//   - audience: API audience/identifier
//   - environment: EnvironmentProduction, EnvironmentStaging or EnvironmentDevelopment
//   - opts: optional configuration (WithLogger, WithHTTPClient, WithTokenURL)
func NewOAuth2Authenticator(clientID, clientSecret, audience string, environment Environment, opts ...Option) *OAuth2Authenticator {
	a := &OAuth2Authenticator{
		clientID:     clientID,
		clientSecret: clientSecret,
		audience:     audience,
		tokenURL:     environment.TokenURL(),
		httpClient:   &http.Client{Timeout: tokenFetchTimeout},
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// AccessToken returns a valid access token, fetching a new one if necessary.
// It uses double-checked locking: the fast path reads the cache under a
// shared lock, and only a cache miss takes the exclusive lock and fetches.
func (a *OAuth2Authenticator) AccessToken(ctx context.Context) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// Fast path: valid cached token without the write lock.
	a.mu.RLock()
	if a.tokenValid() {
		token := a.accessToken
		a.mu.RUnlock()
		return token, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if a.tokenValid() {
		return a.accessToken, nil
	}

	return a.fetchNewToken(ctx)
}

// AuthHeaders returns the Authorization header for an authenticated request.
func (a *OAuth2Authenticator) AuthHeaders(ctx context.Context) (map[string]string, error) {
	token, err := a.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{"Authorization": "Bearer " + token}, nil
}

// InvalidateToken clears the cached token, forcing a refresh on the next
// AccessToken call.
func (a *OAuth2Authenticator) InvalidateToken() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accessToken = ""
	a.expiresAt = time.Time{}
}

// TokenURL returns the token endpoint this authenticator fetches from.
func (a *OAuth2Authenticator) TokenURL() string {
	return a.tokenURL
}

// tokenValid reports whether the cached token is usable. Callers must hold
// at least the read lock.
func (a *OAuth2Authenticator) tokenValid() bool {
	if a.accessToken == "" || a.expiresAt.IsZero() {
		return false
	}
	return a.now().Before(a.expiresAt.Add(-tokenExpiryBuffer))
}

// tokenResponse is the relevant subset of the token endpoint's JSON body.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   *int64 `json:"expires_in"`
}

// fetchNewToken performs the client-credentials exchange and stores the
// result. Callers must hold the write lock.
func (a *OAuth2Authenticator) fetchNewToken(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {a.clientID},
		"client_secret": {a.clientSecret},
		"audience":      {a.audience},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &Error{Message: "failed to build token request: " + err.Error(), TokenURL: a.tokenURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", &Error{Message: "failed to request access token: " + err.Error(), TokenURL: a.tokenURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Message: "failed to read token response: " + err.Error(), TokenURL: a.tokenURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{
			Message:      "failed to request access token: " + resp.Status,
			TokenURL:     a.tokenURL,
			ResponseBody: string(body),
		}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", &Error{
			Message:      "invalid token response format: " + err.Error(),
			TokenURL:     a.tokenURL,
			ResponseBody: string(body),
		}
	}

	if token.AccessToken == "" {
		var parsed map[string]any
		_ = json.Unmarshal(body, &parsed)
		return "", &Error{
			Message:      "missing access_token in response",
			TokenURL:     a.tokenURL,
			ResponseBody: parsed,
		}
	}

	expiresIn := defaultExpiresIn
	if token.ExpiresIn != nil {
		expiresIn = time.Duration(*token.ExpiresIn) * time.Second
	}

	a.accessToken = token.AccessToken
	a.expiresAt = a.now().Add(expiresIn)

	if a.logger != nil {
		a.logger.Printf("auth: obtained new access token (expires: %s)", a.expiresAt.Format(time.RFC3339))
	}

	return a.accessToken, nil
}
