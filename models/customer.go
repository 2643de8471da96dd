package models

import "time"

// ContactDetailType enumerates contact detail kinds.
type ContactDetailType string

const (
	ContactDetailTypeEmail        ContactDetailType = "email"
	ContactDetailTypePhoneNumber  ContactDetailType = "phone_number"
	ContactDetailTypeMobileNumber ContactDetailType = "mobile_number"
	ContactDetailTypeFaxNumber    ContactDetailType = "fax_number"
	ContactDetailTypeAddress      ContactDetailType = "address"
)

// ContactDetailUsage enumerates how a contact detail is used.
type ContactDetailUsage string

const (
	ContactDetailUsagePermanent       ContactDetailUsage = "permanent"
	ContactDetailUsageWork            ContactDetailUsage = "work"
	ContactDetailUsageSupplyAddress   ContactDetailUsage = "supply_address"
	ContactDetailUsageDeliveryAddress ContactDetailUsage = "delivery_address"
	ContactDetailUsageTemporary       ContactDetailUsage = "temporary"
)

// ContactDetailSource enumerates where a contact detail came from.
type ContactDetailSource string

const (
	ContactDetailSourceClient       ContactDetailSource = "client"
	ContactDetailSourceCustomer     ContactDetailSource = "customer"
	ContactDetailSourceSupportAgent ContactDetailSource = "support_agent"
	ContactDetailSourceOther        ContactDetailSource = "other"
)

// ContactDetailStatus enumerates verification states.
type ContactDetailStatus string

const (
	ContactDetailStatusUnverified    ContactDetailStatus = "unverified"
	ContactDetailStatusVerified      ContactDetailStatus = "verified"
	ContactDetailStatusUndeliverable ContactDetailStatus = "undeliverable"
	ContactDetailStatusDeleted       ContactDetailStatus = "deleted"
)

// ContactDetail is a way of reaching a customer. Value is a string for most
// types and a structured object for addresses.
type ContactDetail struct {
	ID        string              `json:"id,omitempty"`
	Object    string              `json:"object,omitempty"`
	Type      ContactDetailType   `json:"type"`
	Value     any                 `json:"value"`
	Primary   *bool               `json:"primary,omitempty"`
	Usage     ContactDetailUsage  `json:"usage,omitempty"`
	Source    ContactDetailSource `json:"source,omitempty"`
	Status    ContactDetailStatus `json:"status,omitempty"`
	CreatedAt *time.Time          `json:"created_at,omitempty"`
	UpdatedAt *time.Time          `json:"updated_at,omitempty"`
	Metadata  Metadata            `json:"metadata,omitempty"`
}

// Customer is a debtor known to the API.
type Customer struct {
	ID              string                     `json:"id,omitempty"`
	Object          string                     `json:"object,omitempty"`
	Kind            string                     `json:"kind,omitempty"`
	FullName        string                     `json:"full_name,omitempty"`
	FirstName       string                     `json:"first_name,omitempty"`
	LastName        string                     `json:"last_name,omitempty"`
	PreferredLocale string                     `json:"preferred_locale,omitempty"`
	DateOfBirth     *Date                      `json:"date_of_birth,omitempty"`
	ContactDetails  []Expandable[ContactDetail] `json:"contact_details,omitempty"`
	Debts           []Expandable[Debt]          `json:"debts,omitempty"`
	CreatedAt       *time.Time                 `json:"created_at,omitempty"`
	UpdatedAt       *time.Time                 `json:"updated_at,omitempty"`
	Metadata        Metadata                   `json:"metadata,omitempty"`
}
