package entities

// QuoteEdit is a partial staff update applied to a non-terminal quote.
// Nil fields are left untouched. Editing never changes status.
type QuoteEdit struct {
	CustomerName       *string
	CustomerEmail      *string
	Description        *string
	EstimatedCostCents *int64
	Timeline           *string
	Priority           *QuotePriority
	RushDelivery       *RushDelivery
}

func (e QuoteEdit) IsZero() bool {
	return e.CustomerName == nil && e.CustomerEmail == nil && e.Description == nil &&
		e.EstimatedCostCents == nil && e.Timeline == nil && e.Priority == nil && e.RushDelivery == nil
}
