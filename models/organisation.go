package models

import "time"

// PaymentOptionsConfiguration controls which payment options an
// organisation's customers are offered.
type PaymentOptionsConfiguration struct {
	PayLaterPermitted     *bool    `json:"pay_later_permitted,omitempty"`
	PaymentPlansPermitted *bool    `json:"payment_plans_permitted,omitempty"`
	Metadata              Metadata `json:"metadata,omitempty"`
}

// Organisation is a creditor placing debts with Ophelos.
type Organisation struct {
	ID                          string                       `json:"id,omitempty"`
	Object                      string                       `json:"object,omitempty"`
	Name                        string                       `json:"name,omitempty"`
	InternalName                string                       `json:"internal_name,omitempty"`
	CustomerFacingName          string                       `json:"customer_facing_name,omitempty"`
	ContactDetails              []Expandable[ContactDetail]  `json:"contact_details,omitempty"`
	Configurations              map[string]any               `json:"configurations,omitempty"`
	DeletedAt                   *time.Time                   `json:"deleted_at,omitempty"`
	CreatedAt                   *time.Time                   `json:"created_at,omitempty"`
	UpdatedAt                   *time.Time                   `json:"updated_at,omitempty"`
	Metadata                    Metadata                     `json:"metadata,omitempty"`
	PaymentOptionsConfiguration *PaymentOptionsConfiguration `json:"payment_options_configuration,omitempty"`
}
