package ophelos

import (
	"context"
	"time"

	"github.com/ophelos/ophelos-go/auth"
	"github.com/ophelos/ophelos-go/httpclient"
)

// Version is the SDK release version, sent in the User-Agent header.
const Version = "1.3.0"

// BaseURL returns the API base URL for an environment.
func BaseURL(environment auth.Environment) string {
	switch environment {
	case auth.EnvironmentProduction:
		return "https://api.ophelos.com"
	case auth.EnvironmentDevelopment:
		return "http://api.localhost:3000"
	default:
		return "https://api.ophelos.dev"
	}
}

// Client is the entry point to the Ophelos API. Construct one with NewClient
// or NewClientWithToken and use the per-resource services.
type Client struct {
	http *httpclient.Client

	Debts          *DebtsService
	Customers      *CustomersService
	Organisations  *OrganisationsService
	Payments       *PaymentsService
	PaymentPlans   *PaymentPlansService
	Invoices       *InvoicesService
	Communications *CommunicationsService
	Payouts        *PayoutsService
	Tenants        *TenantsService
	Webhooks       *WebhooksService
}

// ClientOption is a functional option for configuring Client.
type ClientOption func(*clientSettings)

type clientSettings struct {
	baseURL     string
	httpOptions []httpclient.Option
	authOptions []auth.Option
}

// WithTenantID includes the tenant ID in every request as the
// OPHELOS_TENANT_ID header.
func WithTenantID(tenantID string) ClientOption {
	return func(s *clientSettings) {
		s.httpOptions = append(s.httpOptions, httpclient.WithTenantID(tenantID))
	}
}

// WithVersion pins the Ophelos-Version API version header.
func WithVersion(version string) ClientOption {
	return func(s *clientSettings) {
		s.httpOptions = append(s.httpOptions, httpclient.WithVersion(version))
	}
}

// WithTimeout sets the per-request timeout (default 30s).
func WithTimeout(timeout time.Duration) ClientOption {
	return func(s *clientSettings) {
		s.httpOptions = append(s.httpOptions, httpclient.WithTimeout(timeout))
	}
}

// WithMaxRetries sets the retry budget for idempotent requests (default 3).
func WithMaxRetries(maxRetries int) ClientOption {
	return func(s *clientSettings) {
		s.httpOptions = append(s.httpOptions, httpclient.WithMaxRetries(maxRetries))
	}
}

// WithBaseURL overrides the environment-derived API base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(s *clientSettings) { s.baseURL = baseURL }
}

// WithHTTPOptions forwards additional options to the underlying HTTP client.
func WithHTTPOptions(opts ...httpclient.Option) ClientOption {
	return func(s *clientSettings) {
		s.httpOptions = append(s.httpOptions, opts...)
	}
}

// WithAuthOptions forwards additional options to the OAuth2 authenticator.
// Ignored by NewClientWithToken.
func WithAuthOptions(opts ...auth.Option) ClientOption {
	return func(s *clientSettings) {
		s.authOptions = append(s.authOptions, opts...)
	}
}

// NewClient creates a client that authenticates with OAuth2 client
// credentials against the given environment.
func NewClient(clientID, clientSecret, audience string, environment auth.Environment, opts ...ClientOption) *Client {
	s := applyOptions(environment, opts)

	authenticator := auth.NewOAuth2Authenticator(clientID, clientSecret, audience, environment, s.authOptions...)
	return newClient(authenticator, s)
}

// NewClientWithToken creates a client that presents a pre-obtained access
// token on every request.
func NewClientWithToken(accessToken string, environment auth.Environment, opts ...ClientOption) *Client {
	s := applyOptions(environment, opts)
	return newClient(auth.NewStaticTokenAuthenticator(accessToken), s)
}

// NewClientWithAuthenticator creates a client around a caller-supplied
// authenticator.
func NewClientWithAuthenticator(authenticator auth.Authenticator, environment auth.Environment, opts ...ClientOption) *Client {
	s := applyOptions(environment, opts)
	return newClient(authenticator, s)
}

func applyOptions(environment auth.Environment, opts []ClientOption) *clientSettings {
	s := &clientSettings{baseURL: BaseURL(environment)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newClient(authenticator auth.Authenticator, s *clientSettings) *Client {
	httpOptions := append([]httpclient.Option{
		httpclient.WithUserAgent("ophelos-go/" + Version),
	}, s.httpOptions...)

	c := &Client{http: httpclient.NewClient(authenticator, s.baseURL, httpOptions...)}

	c.Debts = &DebtsService{http: c.http}
	c.Customers = &CustomersService{http: c.http}
	c.Organisations = &OrganisationsService{http: c.http}
	c.Payments = &PaymentsService{http: c.http}
	c.PaymentPlans = &PaymentPlansService{http: c.http}
	c.Invoices = &InvoicesService{http: c.http}
	c.Communications = &CommunicationsService{http: c.http}
	c.Payouts = &PayoutsService{http: c.http}
	c.Tenants = &TenantsService{http: c.http}
	c.Webhooks = &WebhooksService{http: c.http}

	return c
}

// Authenticator returns the authenticator used by this client.
func (c *Client) Authenticator() auth.Authenticator {
	return c.http.Authenticator()
}

// TestConnection makes a simple authenticated request and reports whether it
// succeeded.
func (c *Client) TestConnection(ctx context.Context) bool {
	_, err := c.Tenants.Me(ctx)
	return err == nil
}
