package interfaces

import (
	"context"

	"freelance_hub/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Status transitions are compare-and-set: UpdateStatusFrom only writes when
// the current status is one of allowedFrom, and returns a zero-value Quote
// (nil error) when the precondition no longer holds. Callers decide whether
// that means not-found or an invalid transition.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error)
	UpdateStatusFrom(ctx context.Context, id string, to entities.QuoteStatus, allowedFrom []entities.QuoteStatus) (entities.Quote, error)
	UpdateFields(ctx context.Context, id string, edit entities.QuoteEdit) (entities.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
}
