package models

import "time"

// Tenant is the API tenant the credentials belong to.
type Tenant struct {
	ID             string         `json:"id,omitempty"`
	Object         string         `json:"object,omitempty"`
	Name           string         `json:"name,omitempty"`
	Description    string         `json:"description,omitempty"`
	Configurations map[string]any `json:"configurations,omitempty"`
	Metadata       Metadata       `json:"metadata,omitempty"`
	CreatedAt      *time.Time     `json:"created_at,omitempty"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
}
