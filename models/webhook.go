package models

import "time"

// Webhook is a registered webhook endpoint.
type Webhook struct {
	ID            string     `json:"id,omitempty"`
	Object        string     `json:"object,omitempty"`
	URL           string     `json:"url"`
	Enabled       *bool      `json:"enabled,omitempty"`
	SigningKey    string     `json:"signing_key,omitempty"`
	EnabledEvents []string   `json:"enabled_events,omitempty"`
	Version       string     `json:"version,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	Metadata      Metadata   `json:"metadata,omitempty"`
}

// WebhookEvent is a delivered webhook payload. It is only constructed after
// signature verification and JSON parsing succeed.
type WebhookEvent struct {
	ID        string         `json:"id,omitempty"`
	Object    string         `json:"object,omitempty"`
	Type      string         `json:"type,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	Livemode  bool           `json:"livemode,omitempty"`
}
