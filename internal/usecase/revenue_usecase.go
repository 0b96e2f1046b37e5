package usecase

import (
	"context"
	"strings"
	"time"

	"freelance_hub/internal/domain/reporting"
	"freelance_hub/internal/usecase/interfaces"
)

// IRevenueUseCase serves the reporting reads. Both operations are snapshot
// reads over the collections and may run concurrently with writers.

type IRevenueUseCase interface {
	GetRevenueSummary(ctx context.Context, asOf time.Time) (reporting.Summary, error)
	GetCustomerOwedBalance(ctx context.Context, customerID string) (reporting.OwedBalance, error)
}

type RevenueUseCase struct {
	quotes   interfaces.IQuoteRepository
	invoices interfaces.IInvoiceRepository
}

var _ IRevenueUseCase = (*RevenueUseCase)(nil)

func NewRevenueUseCase(quotes interfaces.IQuoteRepository, invoices interfaces.IInvoiceRepository) *RevenueUseCase {
	return &RevenueUseCase{quotes: quotes, invoices: invoices}
}

func (u *RevenueUseCase) GetRevenueSummary(ctx context.Context, asOf time.Time) (reporting.Summary, error) {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	quotes, err := u.quotes.List(ctx)
	if err != nil {
		return reporting.Summary{}, persistenceError(err)
	}
	invoices, err := u.invoices.List(ctx)
	if err != nil {
		return reporting.Summary{}, persistenceError(err)
	}

	return reporting.Summarize(asOf, quotes, invoices, reporting.DefaultTopServices), nil
}

func (u *RevenueUseCase) GetCustomerOwedBalance(ctx context.Context, customerID string) (reporting.OwedBalance, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return reporting.OwedBalance{}, validationError("customer id is required")
	}

	invoices, err := u.invoices.ListByCustomerID(ctx, customerID)
	if err != nil {
		return reporting.OwedBalance{}, persistenceError(err)
	}
	return reporting.CustomerOwed(customerID, invoices), nil
}
