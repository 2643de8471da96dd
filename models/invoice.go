package models

import "time"

// LineItemKind enumerates the balance components a line item can represent.
// Credit and discount amounts must be negative.
type LineItemKind string

const (
	LineItemKindDebt           LineItemKind = "debt"
	LineItemKindInterest       LineItemKind = "interest"
	LineItemKindFee            LineItemKind = "fee"
	LineItemKindVAT            LineItemKind = "vat"
	LineItemKindCredit         LineItemKind = "credit"
	LineItemKindDiscount       LineItemKind = "discount"
	LineItemKindRefund         LineItemKind = "refund"
	LineItemKindCreditorRefund LineItemKind = "creditor_refund"
)

// LineItem is a single component of a debt's balance. Amounts are in minor
// units.
type LineItem struct {
	ID            string       `json:"id,omitempty"`
	Object        string       `json:"object,omitempty"`
	DebtID        string       `json:"debt_id,omitempty"`
	InvoiceID     string       `json:"invoice_id,omitempty"`
	Kind          LineItemKind `json:"kind"`
	Description   string       `json:"description,omitempty"`
	Amount        int64        `json:"amount"`
	Currency      Currency     `json:"currency,omitempty"`
	TransactionAt *time.Time   `json:"transaction_at,omitempty"`
	CreatedAt     *time.Time   `json:"created_at,omitempty"`
	UpdatedAt     *time.Time   `json:"updated_at,omitempty"`
	Metadata      Metadata     `json:"metadata,omitempty"`
}

// Invoice groups line items billed against a debt.
type Invoice struct {
	ID          string                 `json:"id,omitempty"`
	Object      string                 `json:"object,omitempty"`
	Debt        *Expandable[Debt]      `json:"debt,omitempty"`
	Currency    Currency               `json:"currency,omitempty"`
	Reference   string                 `json:"reference,omitempty"`
	Status      string                 `json:"status,omitempty"`
	InvoicedOn  *Date                  `json:"invoiced_on,omitempty"`
	DueOn       *Date                  `json:"due_on,omitempty"`
	Description string                 `json:"description,omitempty"`
	LineItems   []Expandable[LineItem] `json:"line_items,omitempty"`
	CreatedAt   *time.Time             `json:"created_at,omitempty"`
	UpdatedAt   *time.Time             `json:"updated_at,omitempty"`
	Metadata    Metadata               `json:"metadata,omitempty"`
}
