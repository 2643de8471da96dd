package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Currency is an ISO 4217 currency code supported by the API.
type Currency string

const (
	CurrencyGBP Currency = "GBP"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// Metadata is the free-form metadata object attached to most API resources.
type Metadata map[string]any

const dateLayout = "2006-01-02"

// Date is a date-only field (no time component) as used by start_at,
// invoiced_on, due_on, date_of_birth and payout_date.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON encodes the date as "2006-01-02".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON accepts "2006-01-02" or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("models: invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// Expandable is an API reference that arrives either as a bare ID string or,
// when requested through expand[], as a full nested object.
type Expandable[T any] struct {
	// ID is set when the API returned a bare identifier.
	ID string

	// Expanded is set when the API returned the full object.
	Expanded *T
}

// UnmarshalJSON decodes either a JSON string (bare ID) or an object.
func (e *Expandable[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		e.ID = ""
		e.Expanded = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &e.ID)
	}
	var obj T
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.Expanded = &obj
	return nil
}

// MarshalJSON encodes the expanded object when present, the bare ID otherwise.
func (e Expandable[T]) MarshalJSON() ([]byte, error) {
	if e.Expanded != nil {
		return json.Marshal(e.Expanded)
	}
	if e.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(e.ID)
}

// IsExpanded reports whether the reference carries the full object.
func (e Expandable[T]) IsExpanded() bool {
	return e.Expanded != nil
}
