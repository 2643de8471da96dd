package ophelos

import (
	"context"
	"iter"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// CustomersService manages customers and their contact details.
type CustomersService struct {
	http *httpclient.Client
}

// List returns one page of customers.
func (s *CustomersService) List(ctx context.Context, opts *ListOptions) (*models.PaginatedList[models.Customer], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "customers", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Customer](resp)
}

// Search returns customers matching a query string, e.g.
// "email:john@example.com".
func (s *CustomersService) Search(ctx context.Context, q string, opts *SearchOptions) (*models.PaginatedList[models.Customer], error) {
	values, err := searchValues(q, opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "customers/search", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Customer](resp)
}

// Iterate yields individual customers across pages, fetching pages on demand.
func (s *CustomersService) Iterate(ctx context.Context, opts *ListOptions) iter.Seq2[*models.Customer, error] {
	return iteratePages(ctx, opts, func(c *models.Customer) string { return c.ID }, s.List)
}

// Get fetches a customer by ID.
func (s *CustomersService) Get(ctx context.Context, customerID string, expand ...string) (*models.Customer, error) {
	resp, err := s.http.Get(ctx, "customers/"+customerID, expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.Customer](resp)
}

// Create creates a new customer.
func (s *CustomersService) Create(ctx context.Context, customer *models.Customer, expand ...string) (*models.Customer, error) {
	resp, err := s.http.Post(ctx, "customers", expandValues(expand), customer)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Customer](resp)
}

// Update replaces a customer's client-writable fields.
func (s *CustomersService) Update(ctx context.Context, customerID string, customer *models.Customer, expand ...string) (*models.Customer, error) {
	resp, err := s.http.Put(ctx, "customers/"+customerID, expandValues(expand), customer)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Customer](resp)
}

// GetContactDetail fetches one contact detail of a customer.
func (s *CustomersService) GetContactDetail(ctx context.Context, customerID, contactDetailID string, expand ...string) (*models.ContactDetail, error) {
	resp, err := s.http.Get(ctx, "customers/"+customerID+"/contact_details/"+contactDetailID, expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.ContactDetail](resp)
}

// CreateContactDetail adds a contact detail to a customer.
func (s *CustomersService) CreateContactDetail(ctx context.Context, customerID string, detail *models.ContactDetail, expand ...string) (*models.ContactDetail, error) {
	resp, err := s.http.Post(ctx, "customers/"+customerID+"/contact_details", expandValues(expand), detail)
	if err != nil {
		return nil, err
	}
	return parseResource[models.ContactDetail](resp)
}

// UpdateContactDetail replaces one contact detail of a customer.
func (s *CustomersService) UpdateContactDetail(ctx context.Context, customerID, contactDetailID string, detail *models.ContactDetail, expand ...string) (*models.ContactDetail, error) {
	resp, err := s.http.Put(ctx, "customers/"+customerID+"/contact_details/"+contactDetailID, expandValues(expand), detail)
	if err != nil {
		return nil, err
	}
	return parseResource[models.ContactDetail](resp)
}

// DeleteContactDetail removes a contact detail from a customer. The API
// returns the deleted detail.
func (s *CustomersService) DeleteContactDetail(ctx context.Context, customerID, contactDetailID string) (*models.ContactDetail, error) {
	resp, err := s.http.Delete(ctx, "customers/"+customerID+"/contact_details/"+contactDetailID, nil)
	if err != nil {
		return nil, err
	}
	return parseResource[models.ContactDetail](resp)
}
