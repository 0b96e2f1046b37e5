package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance_hub/internal/adapter/http/handlers/mocks"
	"freelance_hub/internal/domain/billing"
	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ledger figures in response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		inv := entities.Invoice{
			ID:                 "inv-1",
			AmountCents:        50_000_00,
			DepositRequired:    true,
			DepositAmountCents: 10_000_00,
			DepositPaid:        true,
			Status:             entities.InvoiceStatusPending,
		}
		uc.EXPECT().GetInvoice(gomock.Any(), "inv-1").Return(inv, billing.Ledger(inv), nil)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id", h.GetInvoice)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1", nil)
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
		if resp["deposit_due_cents"] != 0.0 {
			t.Fatalf("expected no deposit due, got %v", resp["deposit_due_cents"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().GetInvoice(gomock.Any(), "inv-9").
			Return(entities.Invoice{}, billing.Summary{}, usecase.ErrInvoiceNotFound)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id", h.GetInvoice)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_PayPhase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/pay/:phase", h.PayPhase)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/pay/half", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("deposit phase charged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().PayPhase(gomock.Any(), "inv-1", usecase.PaymentPhaseDeposit, gomock.Any()).
			Return(usecase.PaymentResult{
				Invoice:           entities.Invoice{ID: "inv-1", DepositPaid: true},
				ProviderPaymentID: "mp-1",
				ProviderStatus:    "approved",
			}, nil)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/pay/:phase", h.PayPhase)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/pay/deposit", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["provider_payment_id"] != "mp-1" {
			t.Fatalf("expected provider payment id, got %v", resp["provider_payment_id"])
		}
	})

	t.Run("declined maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().PayPhase(gomock.Any(), "inv-1", usecase.PaymentPhaseFinal, gomock.Any()).
			Return(usecase.PaymentResult{}, usecase.ErrPaymentDeclined)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/pay/:phase", h.PayPhase)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/pay/final", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("mp_payload envelope unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().PayPhase(gomock.Any(), "inv-1", usecase.PaymentPhaseDeposit, gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, _ usecase.PaymentPhase, payload json.RawMessage) (usecase.PaymentResult, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["token"] != "tok-1" {
					t.Fatalf("expected unwrapped mp payload, got %v", m)
				}
				return usecase.PaymentResult{Invoice: entities.Invoice{ID: "inv-1"}}, nil
			})

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/pay/:phase", h.PayPhase)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/pay/deposit", bytes.NewBufferString(`{"mp_payload":{"token":"tok-1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_RecordPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deposit recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().RecordDepositPaid(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", DepositPaid: true}, nil)

		r := gin.New()
		r.PATCH("/v1/invoices/:invoice_id/deposit-paid", h.RecordDepositPaid)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/deposit-paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("double deposit maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().RecordDepositPaid(gomock.Any(), "inv-1").
			Return(entities.Invoice{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.PATCH("/v1/invoices/:invoice_id/deposit-paid", h.RecordDepositPaid)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/deposit-paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("amount correction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().UpdateInvoiceAmount(gomock.Any(), "inv-1", int64(60_000_00)).
			Return(entities.Invoice{ID: "inv-1", AmountCents: 60_000_00, DepositAmountCents: 12_000_00}, nil)

		r := gin.New()
		r.PATCH("/v1/invoices/:invoice_id/amount", h.UpdateAmount)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/amount", bytes.NewBufferString(`{"amount_cents":6000000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
