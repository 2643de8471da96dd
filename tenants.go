package ophelos

import (
	"context"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// TenantsService reads and updates the tenant the credentials belong to.
type TenantsService struct {
	http *httpclient.Client
}

// Me fetches the current tenant.
func (s *TenantsService) Me(ctx context.Context, expand ...string) (*models.Tenant, error) {
	resp, err := s.http.Get(ctx, "tenants/me", expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.Tenant](resp)
}

// UpdateMe applies a partial update to the current tenant.
func (s *TenantsService) UpdateMe(ctx context.Context, tenant *models.Tenant, expand ...string) (*models.Tenant, error) {
	resp, err := s.http.Patch(ctx, "tenants/me", expandValues(expand), tenant)
	if err != nil {
		return nil, err
	}
	return parseResource[models.Tenant](resp)
}
