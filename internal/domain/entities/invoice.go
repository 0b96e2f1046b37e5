package entities

import (
	"fmt"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch InvoiceStatus(s) {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return InvoiceStatus(s), nil
	}
	return "", fmt.Errorf("unknown invoice status %q", s)
}

// Payable reports whether the invoice can still receive payments.
func (s InvoiceStatus) Payable() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusOverdue
}

// LineItemKind separates billable service lines from the informational
// deposit line, so revenue grouping never counts the deposit twice.
type LineItemKind string

const (
	LineItemKindService LineItemKind = "service"
	LineItemKindDeposit LineItemKind = "deposit"
)

type LineItem struct {
	Kind        LineItemKind `json:"kind"`
	Description string       `json:"description"`
	Quantity    int64        `json:"quantity"`
	RateCents   int64        `json:"rate_cents"`
	TotalCents  int64        `json:"total_cents"`
}

// Invoice is the billable record spawned from an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//   - GSI2 (customer_id-index): customer_id
//
// Invariant: 0 <= DepositAmountCents <= AmountCents. The remaining amount is
// never persisted; it is always derived through the billing ledger.

type Invoice struct {
	ID                 string        `json:"id"`
	QuoteID            string        `json:"quote_id"`
	CustomerID         string        `json:"customer_id"`
	AmountCents        int64         `json:"amount_cents"`
	DepositRequired    bool          `json:"deposit_required"`
	DepositAmountCents int64         `json:"deposit_amount_cents"`
	DepositPaid        bool          `json:"deposit_paid"`
	Status             InvoiceStatus `json:"status"`
	DueDate            time.Time     `json:"due_date"`
	PaidDate           *time.Time    `json:"paid_date,omitempty"`
	LineItems          []LineItem    `json:"line_items,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
