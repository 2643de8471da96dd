package testutil

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"
)

// NewLocalHTTPServer starts an HTTP server bound to IPv4 loopback only.
// The sandbox blocks IPv6 listeners, so force tcp4 to keep tests runnable.
func NewLocalHTTPServer(tb testing.TB, handler http.Handler) *httptest.Server {
	tb.Helper()

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("failed to create IPv4 listener: %v", err)
	}

	server := httptest.NewUnstartedServer(handler)
	server.Listener = listener
	server.Start()
	tb.Cleanup(server.Close)

	return server
}

// RoundTripFunc allows inlining http.RoundTripper implementations.
type RoundTripFunc func(*http.Request) (*http.Response, error)

// RoundTrip calls the underlying function.
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// TokenServer stubs an OAuth2 client-credentials token endpoint. It records
// each form-encoded token request it receives.
type TokenServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []map[string]string
}

// NewTokenServer starts a token endpoint that serves responses from handler.
// If handler is nil, every request gets a successful token response with a
// one hour lifetime.
func NewTokenServer(tb testing.TB, handler http.HandlerFunc) *TokenServer {
	tb.Helper()

	ts := &TokenServer{}
	if handler == nil {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"access_token":"test-access-token","token_type":"Bearer","expires_in":3600}`)
		}
	}

	ts.Server = NewLocalHTTPServer(tb, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		form := map[string]string{}
		for key := range r.PostForm {
			form[key] = r.PostForm.Get(key)
		}
		ts.mu.Lock()
		ts.requests = append(ts.requests, form)
		ts.mu.Unlock()

		handler(w, r)
	}))

	return ts
}

// RequestCount returns how many token requests the server has received.
func (ts *TokenServer) RequestCount() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.requests)
}

// LastRequest returns the form fields of the most recent token request, or
// nil if none was received.
func (ts *TokenServer) LastRequest() map[string]string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if len(ts.requests) == 0 {
		return nil
	}
	return ts.requests[len(ts.requests)-1]
}

// NewAPIServer starts an API stub dispatching on "METHOD /path" keys, e.g.
// "GET /debts/deb_123". Unmatched requests get a 404 JSON error.
func NewAPIServer(tb testing.TB, routes map[string]http.HandlerFunc) *httptest.Server {
	tb.Helper()

	return NewLocalHTTPServer(tb, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := routes[r.Method+" "+r.URL.Path]; ok {
			handler(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, `{"error":"not_found","message":"no route for %s %s"}`, r.Method, r.URL.Path)
	}))
}

// JSONResponse writes body with the given status code.
func JSONResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

// ListResponse writes a list body along with the pagination headers the API
// sends, a Link header built from rels and an X-Total-Count header.
func ListResponse(body string, totalCount int, rels map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		link := ""
		for rel, u := range rels {
			if link != "" {
				link += ", "
			}
			link += fmt.Sprintf("<%s>; rel=%q", u, rel)
		}
		if link != "" {
			w.Header().Set("Link", link)
		}
		w.Header().Set("X-Total-Count", strconv.Itoa(totalCount))
		fmt.Fprint(w, body)
	}
}

// SignedWebhookHeader computes a signature header for payload the way the
// API signs deliveries, with at as the embedded timestamp.
func SignedWebhookHeader(payload []byte, secret string, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return "t=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}
