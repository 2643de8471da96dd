package ophelos

import (
	"context"
	"iter"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// DebtsService manages debts and their nested payments, line items and
// contact details.
type DebtsService struct {
	http *httpclient.Client
}

// List returns one page of debts.
func (s *DebtsService) List(ctx context.Context, opts *ListOptions) (*models.PaginatedList[models.Debt], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "debts", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Debt](resp)
}

// Search returns debts matching a query string, e.g.
// "status:paying AND updated_at>=2024-01-01".
func (s *DebtsService) Search(ctx context.Context, q string, opts *SearchOptions) (*models.PaginatedList[models.Debt], error) {
	values, err := searchValues(q, opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "debts/search", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Debt](resp)
}

// Iterate yields individual debts across pages, fetching pages on demand.
func (s *DebtsService) Iterate(ctx context.Context, opts *ListOptions) iter.Seq2[*models.Debt, error] {
	return iteratePages(ctx, opts, func(d *models.Debt) string { return d.ID }, s.List)
}

// Get fetches a debt by ID.
func (s *DebtsService) Get(ctx context.Context, debtID string, expand ...string) (*models.Debt, error) {
	resp, err := s.http.Get(ctx, "debts/"+debtID, expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.Debt](resp)
}

// Create creates a new debt.
func (s *DebtsService) Create(ctx context.Context, debt *models.Debt, expand ...string) (*models.Debt, error) {
	resp, err := s.http.Post(ctx, "debts", expandValues(expand), debt)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Debt](resp)
}

// Update replaces a debt's client-writable fields.
func (s *DebtsService) Update(ctx context.Context, debtID string, debt *models.Debt, expand ...string) (*models.Debt, error) {
	resp, err := s.http.Put(ctx, "debts/"+debtID, expandValues(expand), debt)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Debt](resp)
}

// Delete deletes a debt that has not started processing.
func (s *DebtsService) Delete(ctx context.Context, debtID string) (map[string]any, error) {
	resp, err := s.http.Delete(ctx, "debts/"+debtID, nil)
	if err != nil {
		return nil, err
	}
	result, err := parseResource[map[string]any](resp)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// Ready marks a debt as ready for processing.
func (s *DebtsService) Ready(ctx context.Context, debtID string, data map[string]any) (*models.Debt, error) {
	return s.lifecycle(ctx, debtID, "ready", data)
}

// Pause pauses a debt.
func (s *DebtsService) Pause(ctx context.Context, debtID string, data map[string]any) (*models.Debt, error) {
	return s.lifecycle(ctx, debtID, "pause", data)
}

// Resume resumes a paused debt.
func (s *DebtsService) Resume(ctx context.Context, debtID string, data map[string]any) (*models.Debt, error) {
	return s.lifecycle(ctx, debtID, "resume", data)
}

// Settle settles a debt.
func (s *DebtsService) Settle(ctx context.Context, debtID string, data map[string]any) (*models.Debt, error) {
	return s.lifecycle(ctx, debtID, "settle", data)
}

// Withdraw withdraws a debt from processing.
func (s *DebtsService) Withdraw(ctx context.Context, debtID string, data map[string]any) (*models.Debt, error) {
	return s.lifecycle(ctx, debtID, "withdraw", data)
}

// Dispute marks a debt as disputed.
func (s *DebtsService) Dispute(ctx context.Context, debtID string, data map[string]any) (*models.Debt, error) {
	return s.lifecycle(ctx, debtID, "dispute", data)
}

// ResolveDispute resolves a debt dispute.
func (s *DebtsService) ResolveDispute(ctx context.Context, debtID string, data map[string]any) (*models.Debt, error) {
	return s.lifecycle(ctx, debtID, "resolve-dispute", data)
}

func (s *DebtsService) lifecycle(ctx context.Context, debtID, action string, data map[string]any) (*models.Debt, error) {
	if data == nil {
		data = map[string]any{}
	}
	resp, err := s.http.Post(ctx, "debts/"+debtID+"/"+action, nil, data)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Debt](resp)
}

// Summary fetches a debt's summary.
func (s *DebtsService) Summary(ctx context.Context, debtID string) (*models.DebtSummary, error) {
	resp, err := s.http.Get(ctx, "debts/"+debtID+"/summary", nil)
	if err != nil {
		return nil, err
	}
	return parseResource[models.DebtSummary](resp)
}

// ListPayments returns one page of a debt's payments.
func (s *DebtsService) ListPayments(ctx context.Context, debtID string, opts *ListOptions) (*models.PaginatedList[models.Payment], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "debts/"+debtID+"/payments", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Payment](resp)
}

// SearchPayments returns a debt's payments matching a query string.
func (s *DebtsService) SearchPayments(ctx context.Context, debtID, q string, opts *SearchOptions) (*models.PaginatedList[models.Payment], error) {
	values, err := searchValues(q, opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "debts/"+debtID+"/payments/search", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Payment](resp)
}

// CreatePayment records a payment against a debt.
func (s *DebtsService) CreatePayment(ctx context.Context, debtID string, payment *models.Payment, expand ...string) (*models.Payment, error) {
	resp, err := s.http.Post(ctx, "debts/"+debtID+"/payments", expandValues(expand), payment)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Payment](resp)
}

// GetPayment fetches one payment of a debt.
func (s *DebtsService) GetPayment(ctx context.Context, debtID, paymentID string, expand ...string) (*models.Payment, error) {
	resp, err := s.http.Get(ctx, "debts/"+debtID+"/payments/"+paymentID, expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.Payment](resp)
}

// UpdatePayment updates one payment of a debt.
func (s *DebtsService) UpdatePayment(ctx context.Context, debtID, paymentID string, payment *models.Payment, expand ...string) (*models.Payment, error) {
	resp, err := s.http.Patch(ctx, "debts/"+debtID+"/payments/"+paymentID, expandValues(expand), payment)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Payment](resp)
}

// ListLineItems returns one page of a debt's line items.
func (s *DebtsService) ListLineItems(ctx context.Context, debtID string, opts *ListOptions) (*models.PaginatedList[models.LineItem], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "debts/"+debtID+"/line_items", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.LineItem](resp)
}

// CreateLineItem adds a line item to a debt.
func (s *DebtsService) CreateLineItem(ctx context.Context, debtID string, lineItem *models.LineItem) (*models.LineItem, error) {
	resp, err := s.http.Post(ctx, "debts/"+debtID+"/line_items", nil, lineItem)
	if err != nil {
		return nil, err
	}
	return parseResource[models.LineItem](resp)
}

// ListContactDetails returns one page of the contact details attached to a
// debt.
func (s *DebtsService) ListContactDetails(ctx context.Context, debtID string, opts *ListOptions) (*models.PaginatedList[models.ContactDetail], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "debts/"+debtID+"/contact-details", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.ContactDetail](resp)
}

// CreateContactDetail attaches a contact detail to a debt.
func (s *DebtsService) CreateContactDetail(ctx context.Context, debtID string, detail *models.ContactDetail, expand ...string) (*models.ContactDetail, error) {
	resp, err := s.http.Post(ctx, "debts/"+debtID+"/contact-details", expandValues(expand), detail)
	if err != nil {
		return nil, err
	}
	return parseResource[models.ContactDetail](resp)
}
