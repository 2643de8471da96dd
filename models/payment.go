package models

import "time"

// PaymentStatus enumerates payment states.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusDisputed  PaymentStatus = "disputed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusScheduled PaymentStatus = "scheduled"
	PaymentStatusCanceled  PaymentStatus = "canceled"
)

// Payment is money received (or scheduled) against a debt. Amounts are in
// minor units.
type Payment struct {
	ID              string                    `json:"id,omitempty"`
	Object          string                    `json:"object,omitempty"`
	Debt            *Expandable[Debt]         `json:"debt,omitempty"`
	Status          PaymentStatus             `json:"status,omitempty"`
	TransactionAt   *time.Time                `json:"transaction_at,omitempty"`
	TransactionRef  string                    `json:"transaction_ref,omitempty"`
	Amount          *int64                    `json:"amount,omitempty"`
	Currency        Currency                  `json:"currency,omitempty"`
	PaymentProvider string                    `json:"payment_provider,omitempty"`
	PaymentPlan     *Expandable[PaymentPlan]  `json:"payment_plan,omitempty"`
	CreatedAt       *time.Time                `json:"created_at,omitempty"`
	UpdatedAt       *time.Time                `json:"updated_at,omitempty"`
	Metadata        Metadata                  `json:"metadata,omitempty"`
}

// PaymentPlan is an agreed schedule of payments against a debt.
type PaymentPlan struct {
	ID        string            `json:"id,omitempty"`
	Object    string            `json:"object,omitempty"`
	Debt      *Expandable[Debt] `json:"debt,omitempty"`
	Status    string            `json:"status,omitempty"`
	Schedule  []any             `json:"schedule,omitempty"`
	CreatedAt *time.Time        `json:"created_at,omitempty"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
	Metadata  Metadata          `json:"metadata,omitempty"`
}
