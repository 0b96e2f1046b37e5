package response

import (
	"time"

	"freelance_hub/internal/domain/billing"
	"freelance_hub/internal/domain/entities"
)

type LineItemResponse struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	RateCents   int64  `json:"rate_cents"`
	TotalCents  int64  `json:"total_cents"`
}

// InvoiceResponse always carries the ledger-derived figures next to the
// stored ones so clients never re-implement the deposit math.
type InvoiceResponse struct {
	ID                 string             `json:"id"`
	QuoteID            string             `json:"quote_id"`
	CustomerID         string             `json:"customer_id"`
	AmountCents        int64              `json:"amount_cents"`
	DepositRequired    bool               `json:"deposit_required"`
	DepositAmountCents int64              `json:"deposit_amount_cents"`
	DepositPaid        bool               `json:"deposit_paid"`
	DepositDueCents    int64              `json:"deposit_due_cents"`
	RemainingDueCents  int64              `json:"remaining_due_cents"`
	FullyPaid          bool               `json:"fully_paid"`
	Status             string             `json:"status"`
	DueDate            time.Time          `json:"due_date"`
	PaidDate           *time.Time         `json:"paid_date,omitempty"`
	LineItems          []LineItemResponse `json:"line_items,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	ledger := billing.Ledger(inv)
	resp := InvoiceResponse{
		ID:                 inv.ID,
		QuoteID:            inv.QuoteID,
		CustomerID:         inv.CustomerID,
		AmountCents:        inv.AmountCents,
		DepositRequired:    inv.DepositRequired,
		DepositAmountCents: inv.DepositAmountCents,
		DepositPaid:        inv.DepositPaid,
		DepositDueCents:    ledger.DepositDueCents,
		RemainingDueCents:  ledger.RemainingDueCents,
		FullyPaid:          ledger.IsFullyPaid,
		Status:             string(inv.Status),
		DueDate:            inv.DueDate,
		PaidDate:           inv.PaidDate,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
	for _, li := range inv.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			Kind:        string(li.Kind),
			Description: li.Description,
			Quantity:    li.Quantity,
			RateCents:   li.RateCents,
			TotalCents:  li.TotalCents,
		})
	}
	return resp
}
