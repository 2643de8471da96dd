package ophelos

import (
	"context"
	"iter"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// PayoutsService reads payouts made to organisations.
type PayoutsService struct {
	http *httpclient.Client
}

// List returns one page of payouts.
func (s *PayoutsService) List(ctx context.Context, opts *ListOptions) (*models.PaginatedList[models.Payout], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "payouts", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Payout](resp)
}

// Search returns payouts matching a query string.
func (s *PayoutsService) Search(ctx context.Context, q string, opts *SearchOptions) (*models.PaginatedList[models.Payout], error) {
	values, err := searchValues(q, opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "payouts/search", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Payout](resp)
}

// Iterate yields individual payouts across pages, fetching pages on demand.
func (s *PayoutsService) Iterate(ctx context.Context, opts *ListOptions) iter.Seq2[*models.Payout, error] {
	return iteratePages(ctx, opts, func(p *models.Payout) string { return p.ID }, s.List)
}

// Get fetches a payout by ID.
func (s *PayoutsService) Get(ctx context.Context, payoutID string, expand ...string) (*models.Payout, error) {
	resp, err := s.http.Get(ctx, "payouts/"+payoutID, expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.Payout](resp)
}
