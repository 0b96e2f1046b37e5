package request

// UpdateInvoiceAmountRequest corrects the invoice total before any money is
// collected. The deposit is re-derived server side.
type UpdateInvoiceAmountRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required"`
}
