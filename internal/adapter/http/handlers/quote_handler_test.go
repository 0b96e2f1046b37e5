package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance_hub/internal/adapter/http/handlers/mocks"
	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes", h.SubmitQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes", h.SubmitQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"customer_id":"cust-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().SubmitQuote(gomock.Any(), gomock.Any()).
			Return(entities.Quote{ID: "q-1", QuoteNumber: "QT-2026-ABC123", Status: entities.QuoteStatusPending}, nil)

		r := gin.New()
		r.POST("/v1/quotes", h.SubmitQuote)

		body := `{"customer_id":"cust-1","description":"portfolio site","estimated_cost_cents":5000000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["quote_number"] != "QT-2026-ABC123" {
			t.Fatalf("expected quote number in response, got %v", resp["quote_number"])
		}
	})
}

func TestQuoteHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("review success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().ReviewQuote(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusUnderReview}, nil)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/review", h.ReviewQuote)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().CancelQuote(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/cancel", h.CancelQuote)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().GetQuote(gomock.Any(), "q-9").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ApproveQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns invoice and project pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		approval := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteHandler(nil, approval)

		approval.EXPECT().ApproveQuote(gomock.Any(), "q-1").Return(usecase.ApprovalResult{
			Invoice: entities.Invoice{ID: "inv-1", QuoteID: "q-1", AmountCents: 50_000_00},
			Project: entities.Project{ID: "p-1", QuoteID: "q-1"},
		}, nil)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/approve", h.ApproveQuote)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if _, ok := resp["invoice"]; !ok {
			t.Fatalf("expected invoice in response")
		}
		if _, ok := resp["project"]; !ok {
			t.Fatalf("expected project in response")
		}
	})

	t.Run("double approve maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		approval := mocks.NewMockIApprovalUseCase(ctrl)
		h := NewQuoteHandler(nil, approval)

		approval.EXPECT().ApproveQuote(gomock.Any(), "q-1").
			Return(usecase.ApprovalResult{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/approve", h.ApproveQuote)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_DeleteQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("payments block deletion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().DeleteQuote(gomock.Any(), "q-1").Return(usecase.ErrQuoteHasPayments)

		r := gin.New()
		r.DELETE("/v1/quotes/:quote_id", h.DeleteQuote)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("no content on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().DeleteQuote(gomock.Any(), "q-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/quotes/:quote_id", h.DeleteQuote)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_EditQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown priority rejected at the boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id", h.EditQuote)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1", bytes.NewBufferString(`{"priority":"whenever"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial update passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().EditQuote(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, edit entities.QuoteEdit) (entities.Quote, error) {
				if edit.Description == nil || *edit.Description != "bigger scope" {
					t.Fatalf("expected description edit, got %+v", edit)
				}
				if edit.CustomerName != nil {
					t.Fatalf("expected untouched fields to stay nil")
				}
				return entities.Quote{ID: "q-1", Description: "bigger scope"}, nil
			})

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id", h.EditQuote)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1", bytes.NewBufferString(`{"description":"bigger scope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_InternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc, nil)

	uc.EXPECT().GetQuote(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("boom"))

	r := gin.New()
	r.GET("/v1/quotes/:quote_id", h.GetQuote)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
