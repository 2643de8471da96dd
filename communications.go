package ophelos

import (
	"context"
	"iter"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// CommunicationsService reads the communications sent to customers.
type CommunicationsService struct {
	http *httpclient.Client
}

// List returns one page of communications.
func (s *CommunicationsService) List(ctx context.Context, opts *ListOptions) (*models.PaginatedList[models.Communication], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "communications", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Communication](resp)
}

// Iterate yields individual communications across pages, fetching pages on
// demand.
func (s *CommunicationsService) Iterate(ctx context.Context, opts *ListOptions) iter.Seq2[*models.Communication, error] {
	return iteratePages(ctx, opts, func(c *models.Communication) string { return c.ID }, s.List)
}
