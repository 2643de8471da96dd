package ophelos

import (
	"context"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// OrganisationsService manages organisations, their payments and members.
type OrganisationsService struct {
	http *httpclient.Client
}

// List returns one page of organisations.
func (s *OrganisationsService) List(ctx context.Context, opts *ListOptions) (*models.PaginatedList[models.Organisation], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "organisations", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Organisation](resp)
}

// Get fetches an organisation by ID.
func (s *OrganisationsService) Get(ctx context.Context, orgID string, expand ...string) (*models.Organisation, error) {
	resp, err := s.http.Get(ctx, "organisations/"+orgID, expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.Organisation](resp)
}

// Create creates a new organisation.
func (s *OrganisationsService) Create(ctx context.Context, org *models.Organisation, expand ...string) (*models.Organisation, error) {
	resp, err := s.http.Post(ctx, "organisations", expandValues(expand), org)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Organisation](resp)
}

// Update applies a partial update to an organisation.
func (s *OrganisationsService) Update(ctx context.Context, orgID string, org *models.Organisation, expand ...string) (*models.Organisation, error) {
	resp, err := s.http.Patch(ctx, "organisations/"+orgID, expandValues(expand), org)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Organisation](resp)
}

// CreateContactDetail attaches a contact detail to an organisation.
func (s *OrganisationsService) CreateContactDetail(ctx context.Context, orgID string, detail *models.ContactDetail) (*models.ContactDetail, error) {
	resp, err := s.http.Post(ctx, "organisations/"+orgID+"/contact_details", nil, detail)
	if err != nil {
		return nil, err
	}
	return parseResource[models.ContactDetail](resp)
}

// ListPayments returns one page of an organisation's payments.
func (s *OrganisationsService) ListPayments(ctx context.Context, orgID string, opts *ListOptions) (*models.PaginatedList[models.Payment], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "organisations/"+orgID+"/payments", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Payment](resp)
}

// SearchPayments returns an organisation's payments matching a query string.
func (s *OrganisationsService) SearchPayments(ctx context.Context, orgID, q string, opts *SearchOptions) (*models.PaginatedList[models.Payment], error) {
	values, err := searchValues(q, opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "organisations/"+orgID+"/payments/search", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.Payment](resp)
}

// ListMembers returns one page of an organisation's members. Member records
// have no fixed schema and are returned as raw objects.
func (s *OrganisationsService) ListMembers(ctx context.Context, orgID string, opts *ListOptions) (*models.PaginatedList[map[string]any], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "organisations/"+orgID+"/members", values)
	if err != nil {
		return nil, err
	}
	return parseList[map[string]any](resp)
}

// InviteMember invites a member to an organisation. The invitation payload
// carries at least an email and a role.
func (s *OrganisationsService) InviteMember(ctx context.Context, orgID string, invitation map[string]any, expand ...string) (map[string]any, error) {
	resp, err := s.http.Post(ctx, "organisations/"+orgID+"/members", expandValues(expand), invitation)
	if err != nil {
		return nil, err
	}
	result, err := parseResource[map[string]any](resp)
	if err != nil {
		return nil, err
	}
	return *result, nil
}
