package models

import "time"

// DebtStatus enumerates the debt lifecycle states.
type DebtStatus string

const (
	// Client flow
	DebtStatusInitializing DebtStatus = "initializing"
	DebtStatusPrepared     DebtStatus = "prepared"
	DebtStatusPaused       DebtStatus = "paused"
	DebtStatusWithdrawn    DebtStatus = "withdrawn"
	DebtStatusDeleted      DebtStatus = "deleted"

	// Ophelos flow
	DebtStatusAnalysing          DebtStatus = "analysing"
	DebtStatusResumed            DebtStatus = "resumed"
	DebtStatusContacted          DebtStatus = "contacted"
	DebtStatusContactEstablished DebtStatus = "contact_established"
	DebtStatusContactFailed      DebtStatus = "contact_failed"
	DebtStatusEnriching          DebtStatus = "enriching"
	DebtStatusReturned           DebtStatus = "returned"
	DebtStatusDischarged         DebtStatus = "discharged"

	// Customer flow
	DebtStatusArranging DebtStatus = "arranging"
	DebtStatusPaying    DebtStatus = "paying"
	DebtStatusSettled   DebtStatus = "settled"
	DebtStatusPaid      DebtStatus = "paid"

	// Action required
	DebtStatusQueried          DebtStatus = "queried"
	DebtStatusDisputed         DebtStatus = "disputed"
	DebtStatusDefaulted        DebtStatus = "defaulted"
	DebtStatusFollowUpRequired DebtStatus = "follow_up_required"
	DebtStatusAdjusted         DebtStatus = "adjusted"

	// Customer operations
	DebtStatusAssessing        DebtStatus = "assessing"
	DebtStatusRecovering       DebtStatus = "recovering"
	DebtStatusProcessExhausted DebtStatus = "process_exhausted"

	// Legal flow
	DebtStatusLegalProtection DebtStatus = "legal_protection"

	// Legacy
	DebtStatusClosed DebtStatus = "closed"
	DebtStatusOpen   DebtStatus = "open"
)

// StatusObject is a debt status with change metadata.
type StatusObject struct {
	Value     DebtStatus `json:"value"`
	Whodunnit string     `json:"whodunnit,omitempty"`
	Context   string     `json:"context,omitempty"`
	Reason    string     `json:"reason,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SummaryBreakdown itemises a debt balance. Amounts are in minor units.
type SummaryBreakdown struct {
	Principal     *int64 `json:"principal,omitempty"`
	Interest      *int64 `json:"interest,omitempty"`
	Fees          *int64 `json:"fees,omitempty"`
	Discounts     *int64 `json:"discounts,omitempty"`
	Charges       *int64 `json:"charges,omitempty"`
	ValueAddedTax *int64 `json:"value_added_tax,omitempty"`
	Miscellaneous *int64 `json:"miscellaneous,omitempty"`
	Refunds       *int64 `json:"refunds,omitempty"`
}

// DebtSummary aggregates a debt's monetary state.
type DebtSummary struct {
	AmountTotal     *int64            `json:"amount_total,omitempty"`
	AmountPaid      *int64            `json:"amount_paid,omitempty"`
	AmountRemaining *int64            `json:"amount_remaining,omitempty"`
	Breakdown       *SummaryBreakdown `json:"breakdown,omitempty"`
	History         []any             `json:"history,omitempty"`
	CreatedAt       *time.Time        `json:"created_at,omitempty"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`
}

// Debt is the central API object: a receivable placed with Ophelos.
type Debt struct {
	ID                       string                      `json:"id,omitempty"`
	Object                   string                      `json:"object,omitempty"`
	Status                   *StatusObject               `json:"status,omitempty"`
	Kind                     string                      `json:"kind,omitempty"`
	AccountNumber            string                      `json:"account_number,omitempty"`
	Customer                 *Expandable[Customer]       `json:"customer,omitempty"`
	CustomerID               string                      `json:"customer_id,omitempty"`
	Organisation             *Expandable[Organisation]   `json:"organisation,omitempty"`
	OrganisationID           string                      `json:"organisation_id,omitempty"`
	Originator               *Expandable[Organisation]   `json:"originator,omitempty"`
	Currency                 Currency                    `json:"currency,omitempty"`
	Summary                  *DebtSummary                `json:"summary,omitempty"`
	Invoices                 []Expandable[Invoice]       `json:"invoices,omitempty"`
	LineItems                []Expandable[LineItem]      `json:"line_items,omitempty"`
	Payments                 []Expandable[Payment]       `json:"payments,omitempty"`
	PaymentPlans             []Expandable[PaymentPlan]   `json:"payment_plans,omitempty"`
	Tags                     []string                    `json:"tags,omitempty"`
	Configurations           map[string]any              `json:"configurations,omitempty"`
	CalculatedConfigurations map[string]any              `json:"calculated_configurations,omitempty"`
	StartAt                  *Date                       `json:"start_at,omitempty"`
	CreatedAt                *time.Time                  `json:"created_at,omitempty"`
	UpdatedAt                *time.Time                  `json:"updated_at,omitempty"`
	Metadata                 Metadata                    `json:"metadata,omitempty"`
}

// BalanceAmount returns the remaining balance in minor units, or 0 when the
// summary is absent.
func (d *Debt) BalanceAmount() int64 {
	if d.Summary == nil || d.Summary.AmountRemaining == nil {
		return 0
	}
	return *d.Summary.AmountRemaining
}
