package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"freelance_hub/internal/domain/billing"
	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	invoiceDueAfter = 30 * 24 * time.Hour
	projectRunway   = 60 * 24 * time.Hour
)

// ApprovalResult is the invoice/project pair spawned by an approval.
type ApprovalResult struct {
	Invoice entities.Invoice
	Project entities.Project
}

// IApprovalUseCase turns an under_review quote into a billable invoice and a
// trackable project.

type IApprovalUseCase interface {
	ApproveQuote(ctx context.Context, quoteID string) (ApprovalResult, error)
}

// ApprovalUseCase drives the approval transaction.
//
// The status flip and both record creations are delegated to the approval
// store as one atomic commit; this layer only assembles the records and
// dispatches the post-commit notifications. Double submission is resolved by
// the store's compare-and-set on quote status: the second caller loses the
// race and gets an invalid-transition error, never a second invoice.
type ApprovalUseCase struct {
	quotes     interfaces.IQuoteRepository
	store      interfaces.IApprovalStore
	dispatcher interfaces.INotificationDispatcher
	now        func() time.Time
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(quotes interfaces.IQuoteRepository, store interfaces.IApprovalStore, dispatcher interfaces.INotificationDispatcher) *ApprovalUseCase {
	return &ApprovalUseCase{quotes: quotes, store: store, dispatcher: dispatcher, now: time.Now}
}

func (u *ApprovalUseCase) ApproveQuote(ctx context.Context, quoteID string) (ApprovalResult, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return ApprovalResult{}, validationError("quote id is required")
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return ApprovalResult{}, persistenceError(err)
	}
	if q.ID == "" {
		return ApprovalResult{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusUnderReview {
		return ApprovalResult{}, transitionError("cannot approve quote %s in status %s", q.ID, q.Status)
	}

	now := u.now().UTC()
	inv := u.buildInvoice(q, now)
	proj := u.buildProject(q, now)

	committed, err := u.store.CommitApproval(ctx, q.ID, inv, proj)
	if err != nil {
		log.Printf("[approval][usecase] commit failed quote_id=%s err=%v", q.ID, err)
		return ApprovalResult{}, persistenceError(err)
	}
	if !committed {
		// Lost the compare-and-set: someone approved or cancelled first.
		existing, gerr := u.quotes.GetByID(ctx, quoteID)
		if gerr != nil {
			return ApprovalResult{}, persistenceError(gerr)
		}
		if existing.ID == "" {
			return ApprovalResult{}, ErrQuoteNotFound
		}
		return ApprovalResult{}, transitionError("cannot approve quote %s in status %s", quoteID, existing.Status)
	}
	log.Printf("[approval][usecase] approved quote_id=%s invoice_id=%s project_id=%s amount_cents=%d deposit_cents=%d",
		q.ID, inv.ID, proj.ID, inv.AmountCents, inv.DepositAmountCents)

	notify(u.dispatcher, q.CustomerID, interfaces.NotificationInvoiceCreated, map[string]interface{}{
		"quote_id":     q.ID,
		"invoice_id":   inv.ID,
		"amount_cents": inv.AmountCents,
		"due_date":     inv.DueDate.Format(time.RFC3339),
	})
	notify(u.dispatcher, q.CustomerID, interfaces.NotificationDepositRequired, map[string]interface{}{
		"quote_id":            q.ID,
		"invoice_id":          inv.ID,
		"deposit_cents":       inv.DepositAmountCents,
		"remaining_cents":     inv.AmountCents - inv.DepositAmountCents,
		"deposit_due_by_date": inv.DueDate.Format(time.RFC3339),
	})

	return ApprovalResult{Invoice: inv, Project: proj}, nil
}

func (u *ApprovalUseCase) buildInvoice(q entities.Quote, now time.Time) entities.Invoice {
	deposit, _ := billing.DepositSplit(q.EstimatedCostCents)
	return entities.Invoice{
		ID:                 uuid.NewString(),
		QuoteID:            q.ID,
		CustomerID:         q.CustomerID,
		AmountCents:        q.EstimatedCostCents,
		DepositRequired:    true,
		DepositAmountCents: deposit,
		DepositPaid:        false,
		Status:             entities.InvoiceStatusPending,
		DueDate:            now.Add(invoiceDueAfter),
		LineItems: []entities.LineItem{
			{
				Kind:        entities.LineItemKindService,
				Description: q.ServiceName(),
				Quantity:    1,
				RateCents:   q.EstimatedCostCents,
				TotalCents:  q.EstimatedCostCents,
			},
			{
				Kind:        entities.LineItemKindDeposit,
				Description: "Deposit required (20%)",
				Quantity:    1,
				RateCents:   deposit,
				TotalCents:  deposit,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *ApprovalUseCase) buildProject(q entities.Quote, now time.Time) entities.Project {
	p := entities.Project{
		ID:           uuid.NewString(),
		QuoteID:      q.ID,
		CustomerID:   q.CustomerID,
		Status:       entities.ProjectStatusPending,
		Progress:     0,
		BudgetCents:  q.EstimatedCostCents,
		StartDate:    now,
		EndDate:      now.Add(projectRunway),
		RushDelivery: q.RushDelivery,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if q.SelectedPackage != nil {
		p.PackageName = q.SelectedPackage.Name
		p.Features = q.SelectedPackage.Features
	}
	return p
}
