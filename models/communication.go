package models

import "time"

// CommunicationTemplate identifies the template a communication was built from.
type CommunicationTemplate struct {
	ID        string     `json:"id"`
	Object    string     `json:"object,omitempty"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Metadata  Metadata   `json:"metadata,omitempty"`
}

// Communication is a message sent to (or received from) a customer about a
// debt.
type Communication struct {
	ID                string                              `json:"id"`
	Object            string                              `json:"object,omitempty"`
	Debt              *Expandable[Debt]                   `json:"debt,omitempty"`
	Template          *Expandable[CommunicationTemplate]  `json:"template,omitempty"`
	Status            string                              `json:"status,omitempty"`
	Provider          string                              `json:"provider,omitempty"`
	ProviderReference string                              `json:"provider_reference,omitempty"`
	Direction         string                              `json:"direction,omitempty"`
	DeliveryMethod    string                              `json:"delivery_method,omitempty"`
	ContactDetail     *Expandable[ContactDetail]          `json:"contact_detail,omitempty"`
	CreatedAt         *time.Time                          `json:"created_at,omitempty"`
	UpdatedAt         *time.Time                          `json:"updated_at,omitempty"`
	Metadata          Metadata                            `json:"metadata,omitempty"`
}
