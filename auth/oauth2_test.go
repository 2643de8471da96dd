package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ophelos/ophelos-go/internal/testutil"
)

func TestAccessTokenSendsClientCredentials(t *testing.T) {
	server := testutil.NewTokenServer(t, nil)

	a := NewOAuth2Authenticator("id-123", "secret-456", "https://api.ophelos.com", EnvironmentStaging,
		WithTokenURL(server.URL))

	token, err := a.AccessToken(context.Background())
	if err != nil {
		t.Fatalf("AccessToken: %v", err)
	}
	if token != "test-access-token" {
		t.Errorf("token = %q, want %q", token, "test-access-token")
	}

	form := server.LastRequest()
	if form == nil {
		t.Fatal("no token request recorded")
	}
	want := map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     "id-123",
		"client_secret": "secret-456",
		"audience":      "https://api.ophelos.com",
	}
	for key, value := range want {
		if form[key] != value {
			t.Errorf("form[%q] = %q, want %q", key, form[key], value)
		}
	}
}

func TestAccessTokenCachesUntilExpiry(t *testing.T) {
	server := testutil.NewTokenServer(t, nil)

	a := NewOAuth2Authenticator("id", "secret", "aud", EnvironmentStaging, WithTokenURL(server.URL))

	for i := 0; i < 5; i++ {
		if _, err := a.AccessToken(context.Background()); err != nil {
			t.Fatalf("AccessToken call %d: %v", i, err)
		}
	}
	if got := server.RequestCount(); got != 1 {
		t.Errorf("token requests = %d, want 1", got)
	}
}

func TestAccessTokenSingleFetchUnderContention(t *testing.T) {
	server := testutil.NewTokenServer(t, nil)

	a := NewOAuth2Authenticator("id", "secret", "aud", EnvironmentStaging, WithTokenURL(server.URL))

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := a.AccessToken(context.Background()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent AccessToken: %v", err)
	}

	if got := server.RequestCount(); got != 1 {
		t.Errorf("token requests = %d, want 1", got)
	}
}

func TestTokenValidExpiryBuffer(t *testing.T) {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"well before expiry", base.Add(2 * time.Hour), true},
		{"just outside buffer", base.Add(120 * time.Second), true},
		{"inside buffer", base.Add(30 * time.Second), false},
		{"exactly at buffer edge", base.Add(60 * time.Second), false},
		{"already expired", base.Add(-time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &OAuth2Authenticator{
				accessToken: "cached",
				expiresAt:   tt.expiresAt,
				now:         func() time.Time { return base },
			}
			if got := a.tokenValid(); got != tt.want {
				t.Errorf("tokenValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidateTokenForcesRefetch(t *testing.T) {
	server := testutil.NewTokenServer(t, nil)

	a := NewOAuth2Authenticator("id", "secret", "aud", EnvironmentStaging, WithTokenURL(server.URL))

	if _, err := a.AccessToken(context.Background()); err != nil {
		t.Fatalf("first AccessToken: %v", err)
	}
	a.InvalidateToken()
	if _, err := a.AccessToken(context.Background()); err != nil {
		t.Fatalf("second AccessToken: %v", err)
	}

	if got := server.RequestCount(); got != 2 {
		t.Errorf("token requests = %d, want 2", got)
	}
}

func TestAccessTokenDefaultsExpiresIn(t *testing.T) {
	server := testutil.NewTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","token_type":"Bearer"}`))
	})

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	a := NewOAuth2Authenticator("id", "secret", "aud", EnvironmentStaging, WithTokenURL(server.URL))
	a.now = func() time.Time { return base }

	if _, err := a.AccessToken(context.Background()); err != nil {
		t.Fatalf("AccessToken: %v", err)
	}
	if want := base.Add(time.Hour); !a.expiresAt.Equal(want) {
		t.Errorf("expiresAt = %v, want %v", a.expiresAt, want)
	}
}

func TestAccessTokenErrorOnNon2xx(t *testing.T) {
	server := testutil.NewTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"access_denied"}`, http.StatusUnauthorized)
	})

	a := NewOAuth2Authenticator("id", "bad-secret", "aud", EnvironmentStaging, WithTokenURL(server.URL))

	_, err := a.AccessToken(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var authErr *Error
	if !errors.As(err, &authErr) {
		t.Fatalf("error type = %T, want *auth.Error", err)
	}
	if authErr.TokenURL != server.URL {
		t.Errorf("TokenURL = %q, want %q", authErr.TokenURL, server.URL)
	}
	if !strings.Contains(authErr.Error(), server.URL) {
		t.Errorf("error %q should mention the token URL", authErr.Error())
	}
}

func TestAccessTokenErrorOnMissingAccessToken(t *testing.T) {
	server := testutil.NewTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token_type":"Bearer","expires_in":3600}`))
	})

	a := NewOAuth2Authenticator("id", "secret", "aud", EnvironmentStaging, WithTokenURL(server.URL))

	_, err := a.AccessToken(context.Background())
	var authErr *Error
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want *auth.Error", err)
	}
	if !strings.Contains(authErr.Message, "access_token") {
		t.Errorf("message %q should mention access_token", authErr.Message)
	}
}

func TestAccessTokenErrorOnInvalidJSON(t *testing.T) {
	server := testutil.NewTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	a := NewOAuth2Authenticator("id", "secret", "aud", EnvironmentStaging, WithTokenURL(server.URL))

	_, err := a.AccessToken(context.Background())
	var authErr *Error
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want *auth.Error", err)
	}
	if authErr.ResponseBody == nil {
		t.Error("ResponseBody should carry the unparsable body")
	}
}

func TestAuthHeadersBearerToken(t *testing.T) {
	server := testutil.NewTokenServer(t, nil)

	a := NewOAuth2Authenticator("id", "secret", "aud", EnvironmentStaging, WithTokenURL(server.URL))

	headers, err := a.AuthHeaders(context.Background())
	if err != nil {
		t.Fatalf("AuthHeaders: %v", err)
	}
	if got := headers["Authorization"]; got != "Bearer test-access-token" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer test-access-token")
	}
}

func TestEnvironmentTokenURL(t *testing.T) {
	tests := []struct {
		env  Environment
		want string
	}{
		{EnvironmentProduction, "https://ophelos.eu.auth0.com/oauth/token"},
		{EnvironmentDevelopment, "https://ophelos-dev.eu.auth0.com/oauth/token"},
		{EnvironmentStaging, "https://ophelos-staging.eu.auth0.com/oauth/token"},
		{Environment("unknown"), "https://ophelos-staging.eu.auth0.com/oauth/token"},
	}
	for _, tt := range tests {
		if got := tt.env.TokenURL(); got != tt.want {
			t.Errorf("TokenURL(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}
