package ophelos

import (
	"context"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// InvoicesService manages invoices, which live under the debt they bill.
type InvoicesService struct {
	http *httpclient.Client
}

// Get fetches one invoice of a debt.
func (s *InvoicesService) Get(ctx context.Context, debtID, invoiceID string, expand ...string) (*models.Invoice, error) {
	resp, err := s.http.Get(ctx, "debts/"+debtID+"/invoices/"+invoiceID, expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.Invoice](resp)
}

// Create creates an invoice against a debt.
func (s *InvoicesService) Create(ctx context.Context, debtID string, invoice *models.Invoice, expand ...string) (*models.Invoice, error) {
	resp, err := s.http.Post(ctx, "debts/"+debtID+"/invoices", expandValues(expand), invoice)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Invoice](resp)
}

// Update replaces one invoice of a debt.
func (s *InvoicesService) Update(ctx context.Context, debtID, invoiceID string, invoice *models.Invoice, expand ...string) (*models.Invoice, error) {
	resp, err := s.http.Put(ctx, "debts/"+debtID+"/invoices/"+invoiceID, expandValues(expand), invoice)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Invoice](resp)
}

// Search returns a debt's invoices matching a query string.
func (s *InvoicesService) Search(ctx context.Context, debtID, q string, opts *SearchOptions) (*models.PaginatedList[models.Invoice], error) {
	values, err := searchValues(q, opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "debts/"+debtID+"/invoices/search", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Invoice](resp)
}
