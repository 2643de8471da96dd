package ophelos

import (
	"context"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// WebhooksService manages webhook endpoint subscriptions. Verifying inbound
// deliveries is handled by the webhooks package.
type WebhooksService struct {
	http *httpclient.Client
}

// List returns one page of webhook endpoints.
func (s *WebhooksService) List(ctx context.Context, opts *ListOptions) (*models.PaginatedList[models.Webhook], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "webhooks", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Webhook](resp)
}

// Get fetches a webhook endpoint by ID.
func (s *WebhooksService) Get(ctx context.Context, webhookID string, expand ...string) (*models.Webhook, error) {
	resp, err := s.http.Get(ctx, "webhooks/"+webhookID, expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.Webhook](resp)
}

// Create registers a new webhook endpoint.
func (s *WebhooksService) Create(ctx context.Context, webhook *models.Webhook, expand ...string) (*models.Webhook, error) {
	resp, err := s.http.Post(ctx, "webhooks", expandValues(expand), webhook)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Webhook](resp)
}

// Update applies a partial update to a webhook endpoint.
func (s *WebhooksService) Update(ctx context.Context, webhookID string, webhook *models.Webhook, expand ...string) (*models.Webhook, error) {
	resp, err := s.http.Patch(ctx, "webhooks/"+webhookID, expandValues(expand), webhook)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Webhook](resp)
}

// Delete deregisters a webhook endpoint.
func (s *WebhooksService) Delete(ctx context.Context, webhookID string) (map[string]any, error) {
	resp, err := s.http.Delete(ctx, "webhooks/"+webhookID, nil)
	if err != nil {
		return nil, err
	}
	result, err := parseResource[map[string]any](resp)
	if err != nil {
		return nil, err
	}
	return *result, nil
}
