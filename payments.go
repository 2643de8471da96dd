package ophelos

import (
	"context"
	"iter"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// PaymentsService reads payments across all debts. Payments are created and
// updated through DebtsService, under the debt they belong to.
type PaymentsService struct {
	http *httpclient.Client
}

// List returns one page of payments.
func (s *PaymentsService) List(ctx context.Context, opts *ListOptions) (*models.PaginatedList[models.Payment], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "payments", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Payment](resp)
}

// Search returns payments matching a query string, e.g. "status:succeeded".
func (s *PaymentsService) Search(ctx context.Context, q string, opts *SearchOptions) (*models.PaginatedList[models.Payment], error) {
	values, err := searchValues(q, opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "payments/search", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Payment](resp)
}

// Iterate yields individual payments across pages, fetching pages on demand.
func (s *PaymentsService) Iterate(ctx context.Context, opts *ListOptions) iter.Seq2[*models.Payment, error] {
	return iteratePages(ctx, opts, func(p *models.Payment) string { return p.ID }, s.List)
}

// Get fetches a payment by ID.
func (s *PaymentsService) Get(ctx context.Context, paymentID string, expand ...string) (*models.Payment, error) {
	resp, err := s.http.Get(ctx, "payments/"+paymentID, expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.Payment](resp)
}
