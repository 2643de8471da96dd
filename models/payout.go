package models

import "time"

// Payout is money remitted to an organisation. Amount is in minor units.
type Payout struct {
	ID             string     `json:"id,omitempty"`
	Object         string     `json:"object,omitempty"`
	Amount         int64      `json:"amount"`
	Currency       Currency   `json:"currency,omitempty"`
	Status         string     `json:"status,omitempty"`
	PayoutDate     *Date      `json:"payout_date,omitempty"`
	OrganisationID string     `json:"organisation_id,omitempty"`
	Metadata       Metadata   `json:"metadata,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
