package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SubmitQuoteInput is the customer-facing quote request payload after
// boundary validation.
type SubmitQuoteInput struct {
	CustomerID         string
	CustomerName       string
	CustomerEmail      string
	Description        string
	EstimatedCostCents int64
	Priority           string
	RushDelivery       string
	Timeline           string
	SelectedPackage    *entities.PackageSelection
}

// IQuoteUseCase exposes the quote review state machine.
//
//   - SubmitQuote: creates a pending quote
//   - ReviewQuote: pending -> under_review
//   - MarkQuoted:  under_review -> quoted
//   - CancelQuote: {pending, under_review, quoted} -> cancelled
//   - EditQuote:   field updates in any non-terminal state, status untouched
//   - DeleteQuote: explicit staff removal, refused once money is on the books
//
// Approval lives in IApprovalUseCase because it spawns dependent records.

type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, in SubmitQuoteInput) (entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	ReviewQuote(ctx context.Context, id string) (entities.Quote, error)
	MarkQuoted(ctx context.Context, id string) (entities.Quote, error)
	CancelQuote(ctx context.Context, id string) (entities.Quote, error)
	EditQuote(ctx context.Context, id string, edit entities.QuoteEdit) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	quotes     interfaces.IQuoteRepository
	invoices   interfaces.IInvoiceRepository
	dispatcher interfaces.INotificationDispatcher
	now        func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, invoices interfaces.IInvoiceRepository, dispatcher interfaces.INotificationDispatcher) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, invoices: invoices, dispatcher: dispatcher, now: time.Now}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, in SubmitQuoteInput) (entities.Quote, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if in.CustomerID == "" {
		return entities.Quote{}, validationError("customer_id is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return entities.Quote{}, validationError("description is required")
	}
	if in.EstimatedCostCents < 0 {
		return entities.Quote{}, validationError("estimated cost must not be negative")
	}
	priority, err := entities.ParseQuotePriority(in.Priority)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	rush, err := entities.ParseRushDelivery(in.RushDelivery)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := u.now().UTC()
	id := uuid.NewString()
	q := entities.Quote{
		ID:                 id,
		QuoteNumber:        quoteNumber(now, id),
		CustomerID:         in.CustomerID,
		CustomerName:       strings.TrimSpace(in.CustomerName),
		CustomerEmail:      strings.TrimSpace(in.CustomerEmail),
		Description:        strings.TrimSpace(in.Description),
		EstimatedCostCents: in.EstimatedCostCents,
		Status:             entities.QuoteStatusPending,
		Priority:           priority,
		RushDelivery:       rush,
		Timeline:           strings.TrimSpace(in.Timeline),
		SelectedPackage:    in.SelectedPackage,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, persistenceError(err)
	}
	log.Printf("[quote][usecase] submitted quote_id=%s number=%s customer_id=%s", created.ID, created.QuoteNumber, created.CustomerID)
	return created, nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, validationError("quote id is required")
	}
	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, persistenceError(err)
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ReviewQuote(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusUnderReview, []entities.QuoteStatus{entities.QuoteStatusPending})
}

func (u *QuoteUseCase) MarkQuoted(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusQuoted, []entities.QuoteStatus{entities.QuoteStatusUnderReview})
}

func (u *QuoteUseCase) CancelQuote(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusCancelled, []entities.QuoteStatus{
		entities.QuoteStatusPending,
		entities.QuoteStatusUnderReview,
		entities.QuoteStatusQuoted,
	})
}

// transition applies a compare-and-set status change. The repository only
// writes when the current status is in allowedFrom; on a miss we re-read to
// tell a missing quote apart from a rejected transition.
func (u *QuoteUseCase) transition(ctx context.Context, id string, to entities.QuoteStatus, allowedFrom []entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, validationError("quote id is required")
	}

	updated, err := u.quotes.UpdateStatusFrom(ctx, id, to, allowedFrom)
	if err != nil {
		return entities.Quote{}, persistenceError(err)
	}
	if updated.ID == "" {
		existing, gerr := u.quotes.GetByID(ctx, id)
		if gerr != nil {
			return entities.Quote{}, persistenceError(gerr)
		}
		if existing.ID == "" {
			return entities.Quote{}, ErrQuoteNotFound
		}
		return entities.Quote{}, transitionError("cannot move quote %s from %s to %s", id, existing.Status, to)
	}

	log.Printf("[quote][usecase] status change quote_id=%s status=%s", updated.ID, updated.Status)
	notify(u.dispatcher, updated.CustomerID, interfaces.NotificationQuoteStatusChanged, map[string]interface{}{
		"quote_id":     updated.ID,
		"quote_number": updated.QuoteNumber,
		"status":       string(updated.Status),
	})
	return updated, nil
}

func (u *QuoteUseCase) EditQuote(ctx context.Context, id string, edit entities.QuoteEdit) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, validationError("quote id is required")
	}
	if edit.IsZero() {
		return entities.Quote{}, validationError("no fields to update")
	}
	if edit.EstimatedCostCents != nil && *edit.EstimatedCostCents < 0 {
		return entities.Quote{}, validationError("estimated cost must not be negative")
	}

	updated, err := u.quotes.UpdateFields(ctx, id, edit)
	if err != nil {
		return entities.Quote{}, persistenceError(err)
	}
	if updated.ID == "" {
		existing, gerr := u.quotes.GetByID(ctx, id)
		if gerr != nil {
			return entities.Quote{}, persistenceError(gerr)
		}
		if existing.ID == "" {
			return entities.Quote{}, ErrQuoteNotFound
		}
		return entities.Quote{}, transitionError("quote %s is %s and can no longer be edited", id, existing.Status)
	}
	return updated, nil
}

func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return validationError("quote id is required")
	}

	inv, err := u.invoices.GetByQuoteID(ctx, id)
	if err != nil {
		return persistenceError(err)
	}
	if inv.ID != "" && (inv.DepositPaid || inv.Status == entities.InvoiceStatusPaid) {
		return ErrQuoteHasPayments
	}

	deleted, err := u.quotes.Delete(ctx, id)
	if err != nil {
		return persistenceError(err)
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] deleted quote_id=%s", id)
	return nil
}

// quoteNumber builds the human-readable reference staff use in conversation,
// e.g. QT-2026-1A2B3C.
func quoteNumber(now time.Time, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("QT-%d-%s", now.Year(), suffix)
}
