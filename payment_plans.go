package ophelos

import (
	"context"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// PaymentPlansService manages payment plans.
//
// The API serves plans under two path spellings. List, Reschedule and Delay
// live under "payment_plans" while Get and Create live under "payment-plans".
type PaymentPlansService struct {
	http *httpclient.Client
}

// List returns one page of payment plans.
func (s *PaymentPlansService) List(ctx context.Context, opts *ListOptions) (*models.PaginatedList[models.PaymentPlan], error) {
	values, err := listValues(opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Get(ctx, "payment_plans", values)
	if err != nil {
		return nil, err
	}
	return parseList[models.PaymentPlan](resp)
}

// Get fetches a payment plan by ID.
func (s *PaymentPlansService) Get(ctx context.Context, planID string, expand ...string) (*models.PaymentPlan, error) {
	resp, err := s.http.Get(ctx, "payment-plans/"+planID, expandValues(expand))
	if err != nil {
		return nil, err
	}
	return parseResource[models.PaymentPlan](resp)
}

// Create creates a new payment plan.
func (s *PaymentPlansService) Create(ctx context.Context, plan *models.PaymentPlan, expand ...string) (*models.PaymentPlan, error) {
	resp, err := s.http.Post(ctx, "payment-plans", expandValues(expand), plan)
	if err != nil {
		return nil, err
	}
	return parseResource[models.PaymentPlan](resp)
}

// Reschedule replaces a plan's remaining schedule.
func (s *PaymentPlansService) Reschedule(ctx context.Context, planID string, data map[string]any) (*models.PaymentPlan, error) {
	resp, err := s.http.Patch(ctx, "payment_plans/"+planID+"/reschedule", nil, data)
	if err != nil {
		return nil, err
	}
	return parseResource[models.PaymentPlan](resp)
}

// Delay pushes a plan's upcoming instalments back.
func (s *PaymentPlansService) Delay(ctx context.Context, planID string, data map[string]any) (*models.PaymentPlan, error) {
	resp, err := s.http.Patch(ctx, "payment_plans/"+planID+"/delay", nil, data)
	if err != nil {
		return nil, err
	}
	return parseResource[models.PaymentPlan](resp)
}
