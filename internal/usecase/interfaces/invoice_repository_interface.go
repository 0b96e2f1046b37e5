package interfaces

import (
	"context"
	"time"

	"freelance_hub/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Payment markers are conditional writes: MarkDepositPaid requires a payable
// invoice with an unpaid deposit, MarkPaid requires a payable invoice. Both
// return a zero-value Invoice (nil error) when the condition fails, leaving
// the caller to distinguish not-found from an already-applied payment.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Invoice, error)
	MarkDepositPaid(ctx context.Context, id string) (entities.Invoice, error)
	MarkPaid(ctx context.Context, id string, paidDate time.Time) (entities.Invoice, error)
	UpdateAmount(ctx context.Context, id string, amountCents, depositCents int64) (entities.Invoice, error)
}
