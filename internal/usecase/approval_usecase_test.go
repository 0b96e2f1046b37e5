package usecase

import (
	"context"
	"errors"
	"testing"

	"freelance_hub/internal/domain/entities"
	mock_interfaces "freelance_hub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestApprovalUseCase_ApproveQuote(t *testing.T) {
	underReview := entities.Quote{
		ID:                 "q-1",
		QuoteNumber:        "QT-2026-ABC123",
		CustomerID:         "cust-1",
		Description:        "e-commerce build",
		EstimatedCostCents: 50_000_00,
		Status:             entities.QuoteStatusUnderReview,
		RushDelivery:       entities.RushDeliveryPriority,
		SelectedPackage:    &entities.PackageSelection{Name: "Pro", Features: []string{"cms", "seo"}},
	}

	t.Run("missing id", func(t *testing.T) {
		uc := NewApprovalUseCase(nil, nil, nil)
		_, err := uc.ApproveQuote(context.Background(), "  ")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewApprovalUseCase(quotes, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)

		_, err := uc.ApproveQuote(context.Background(), "q-9")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("wrong status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewApprovalUseCase(quotes, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, nil)

		_, err := uc.ApproveQuote(context.Background(), "q-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("approve success builds invoice and project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		store := mock_interfaces.NewMockIApprovalStore(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewApprovalUseCase(quotes, store, dispatcher)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(underReview, nil)
		store.EXPECT().CommitApproval(gomock.Any(), "q-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, inv entities.Invoice, proj entities.Project) (bool, error) {
				if inv.AmountCents != 50_000_00 {
					t.Fatalf("expected invoice amount 5000000, got %d", inv.AmountCents)
				}
				if inv.DepositAmountCents != 10_000_00 {
					t.Fatalf("expected 20%% deposit 1000000, got %d", inv.DepositAmountCents)
				}
				if !inv.DepositRequired || inv.DepositPaid {
					t.Fatalf("expected deposit required and unpaid")
				}
				if len(inv.LineItems) != 2 {
					t.Fatalf("expected service + deposit line items, got %d", len(inv.LineItems))
				}
				if inv.LineItems[0].Description != "Pro" {
					t.Fatalf("expected package name as service line, got %q", inv.LineItems[0].Description)
				}
				if proj.Status != entities.ProjectStatusPending || proj.Progress != 0 {
					t.Fatalf("expected fresh pending project, got %s/%d", proj.Status, proj.Progress)
				}
				if proj.BudgetCents != 50_000_00 {
					t.Fatalf("expected project budget from quote, got %d", proj.BudgetCents)
				}
				if proj.PackageName != "Pro" || len(proj.Features) != 2 {
					t.Fatalf("expected package copied to project")
				}
				return true, nil
			})
		dispatcher.EXPECT().Notify(gomock.Any(), "cust-1", "invoice_created", gomock.Any()).Return(nil)
		dispatcher.EXPECT().Notify(gomock.Any(), "cust-1", "deposit_required", gomock.Any()).Return(nil)

		result, err := uc.ApproveQuote(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Invoice.QuoteID != "q-1" || result.Project.QuoteID != "q-1" {
			t.Fatalf("expected records linked to the quote")
		}
	})

	t.Run("lost commit race maps to invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		store := mock_interfaces.NewMockIApprovalStore(ctrl)
		uc := NewApprovalUseCase(quotes, store, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(underReview, nil)
		store.EXPECT().CommitApproval(gomock.Any(), "q-1", gomock.Any(), gomock.Any()).Return(false, nil)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved}, nil)

		_, err := uc.ApproveQuote(context.Background(), "q-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("commit error wraps persistence failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		store := mock_interfaces.NewMockIApprovalStore(ctrl)
		uc := NewApprovalUseCase(quotes, store, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(underReview, nil)
		store.EXPECT().CommitApproval(gomock.Any(), "q-1", gomock.Any(), gomock.Any()).Return(false, errors.New("db"))

		_, err := uc.ApproveQuote(context.Background(), "q-1")
		if !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})
}
