package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freelance_hub/internal/adapter/http/handlers/mocks"
	"freelance_hub/internal/domain/reporting"
	"freelance_hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_GetRevenueSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("summary returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRevenueUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().GetRevenueSummary(gomock.Any(), time.Time{}).Return(reporting.Summary{
			TotalRevenueCents:     100_000_00,
			TotalPaidRevenueCents: 60_000_00,
			OwedRevenueCents:      40_000_00,
			QuotePipeline: []reporting.PipelineBucket{
				{Label: "pending", Count: 1, Percent: 100},
				{Label: "quoted"},
				{Label: "in_progress"},
				{Label: "completed"},
			},
		}, nil)

		r := gin.New()
		r.GET("/v1/reports/revenue", h.GetRevenueSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/revenue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["total_revenue_cents"] != 10_000_000.0 {
			t.Fatalf("expected total 10000000, got %v", resp["total_revenue_cents"])
		}
		if _, ok := resp["quote_pipeline"].([]any); !ok {
			t.Fatalf("expected pipeline buckets, got %v", resp["quote_pipeline"])
		}
	})

	t.Run("as_of forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRevenueUseCase(ctrl)
		h := NewReportHandler(uc)

		asOf := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().GetRevenueSummary(gomock.Any(), asOf).Return(reporting.Summary{}, nil)

		r := gin.New()
		r.GET("/v1/reports/revenue", h.GetRevenueSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/revenue?as_of=2026-08-01T00:00:00Z", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed as_of", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRevenueUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/revenue", h.GetRevenueSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/revenue?as_of=yesterday", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestReportHandler_GetCustomerOwed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("balance returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRevenueUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().GetCustomerOwedBalance(gomock.Any(), "cust-1").Return(reporting.OwedBalance{
			CustomerID:        "cust-1",
			RemainingDueCents: 40_000_00,
			OpenInvoices:      1,
		}, nil)

		r := gin.New()
		r.GET("/v1/customers/:customer_id/owed", h.GetCustomerOwed)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers/cust-1/owed", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["remaining_due_cents"] != 4_000_000.0 {
			t.Fatalf("expected remaining 4000000, got %v", resp["remaining_due_cents"])
		}
	})

	t.Run("blank customer id maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRevenueUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().GetCustomerOwedBalance(gomock.Any(), " ").
			Return(reporting.OwedBalance{}, usecase.ErrValidation)

		r := gin.New()
		r.GET("/v1/customers/:customer_id/owed", h.GetCustomerOwed)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers/%20/owed", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
