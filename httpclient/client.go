package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/ophelos/ophelos-go/auth"
	"github.com/ophelos/ophelos-go/models"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultUserAgent  = "ophelos-go"

	tenantIDHeader = "OPHELOS_TENANT_ID"
	versionHeader  = "Ophelos-Version"
)

// Response is a decoded API response.
type Response struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Header holds the raw response headers.
	Header http.Header

	// Body is the raw JSON body.
	Body json.RawMessage

	// Pagination is set for list responses, derived from response headers.
	Pagination *models.PageInfo
}

// Client makes authenticated requests against one API base URL.
type Client struct {
	authenticator auth.Authenticator
	baseURL       string
	tenantID      string
	version       string
	userAgent     string

	// retrying serves idempotent methods; plain serves everything else.
	retrying *retryablehttp.Client
	plain    *http.Client
}

// Option is a functional option for configuring Client.
type Option func(*settings)

type settings struct {
	timeout    time.Duration
	maxRetries int
	tenantID   string
	version    string
	userAgent  string
	transport  http.RoundTripper
}

// WithTimeout sets the per-request timeout. Default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) { s.timeout = timeout }
}

// WithMaxRetries sets how many times idempotent requests are retried on
// 429/5xx responses and transport failures. Default is 3.
func WithMaxRetries(maxRetries int) Option {
	return func(s *settings) { s.maxRetries = maxRetries }
}

// WithTenantID adds the OPHELOS_TENANT_ID header to every request.
func WithTenantID(tenantID string) Option {
	return func(s *settings) { s.tenantID = tenantID }
}

// WithVersion pins the Ophelos-Version API version header.
func WithVersion(version string) Option {
	return func(s *settings) { s.version = version }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) { s.userAgent = userAgent }
}

// WithTransport overrides the base transport, e.g. for tests or custom
// connection pools.
func WithTransport(transport http.RoundTripper) Option {
	return func(s *settings) { s.transport = transport }
}

// NewClient creates a client for the given authenticator and base URL.
func NewClient(authenticator auth.Authenticator, baseURL string, opts ...Option) *Client {
	s := &settings{
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}

	transport := s.transport
	if transport == nil {
		transport = cleanhttp.DefaultPooledTransport()
	}
	plain := &http.Client{Transport: transport, Timeout: s.timeout}

	retrying := retryablehttp.NewClient()
	retrying.HTTPClient = plain
	retrying.RetryMax = s.maxRetries
	retrying.CheckRetry = retryPolicy
	retrying.Backoff = jitteredBackoff
	retrying.Logger = nil
	// Surface the last response when retries run out, so a final 429/5xx is
	// mapped to an APIError instead of being swallowed as a transport error.
	retrying.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		authenticator: authenticator,
		baseURL:       strings.TrimRight(baseURL, "/"),
		tenantID:      s.tenantID,
		version:       s.version,
		userAgent:     s.userAgent,
		retrying:      retrying,
		plain:         plain,
	}
}

// Authenticator returns the authenticator requests are signed with.
func (c *Client) Authenticator() auth.Authenticator {
	return c.authenticator
}

// BaseURL returns the API base URL requests are made against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get makes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post makes a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, query, body)
}

// Put makes a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, query, body)
}

// Patch makes a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, query url.Values, body any) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, query, body)
}

// Delete makes a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, query, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	requestURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ophelos: encode request body: %w", err)
		}
		payload = encoded
	}

	headers, err := c.prepareHeaders(ctx, payload != nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.execute(ctx, method, requestURL, headers, payload)
	if err != nil {
		return nil, &RequestError{Method: method, URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	return c.handleResponse(method, requestURL, resp)
}

// execute routes idempotent requests through the retrying client and
// everything else through the plain client.
func (c *Client) execute(ctx context.Context, method, requestURL string, headers map[string]string, payload []byte) (*http.Response, error) {
	if idempotent(method) {
		req, err := retryablehttp.NewRequestWithContext(ctx, method, requestURL, payload)
		if err != nil {
			return nil, err
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		return c.retrying.Do(req)
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return c.plain.Do(req)
}

func (c *Client) prepareHeaders(ctx context.Context, hasBody bool) (map[string]string, error) {
	headers := map[string]string{
		"Accept":     "application/json",
		"User-Agent": c.userAgent,
	}
	if hasBody {
		headers["Content-Type"] = "application/json"
	}

	authHeaders, err := c.authenticator.AuthHeaders(ctx)
	if err != nil {
		return nil, err
	}
	for key, value := range authHeaders {
		headers[key] = value
	}

	if c.tenantID != "" {
		headers[tenantIDHeader] = c.tenantID
	}
	if c.version != "" {
		headers[versionHeader] = c.version
	}

	return headers, nil
}

func (c *Client) handleResponse(method, requestURL string, resp *http.Response) (*Response, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: method, URL: requestURL, Err: err}
	}

	if resp.StatusCode >= 400 {
		return nil, c.errorFromResponse(method, requestURL, resp.StatusCode, body)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}
	if isListResponse(body) {
		response.Pagination = extractPageInfo(resp.Header)
	}

	return response, nil
}

func (c *Client) errorFromResponse(method, requestURL string, status int, body []byte) error {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		data = map[string]any{"message": string(body)}
	}

	message, _ := data["message"].(string)
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}

	// A 401 means the server rejected a previously-valid-looking token:
	// drop it so the next request fetches a fresh one.
	if status == http.StatusUnauthorized {
		c.authenticator.InvalidateToken()
		return &auth.Error{Message: message, ResponseBody: data}
	}

	return &APIError{
		StatusCode:   status,
		Message:      message,
		ResponseData: data,
		Method:       method,
		URL:          requestURL,
	}
}
