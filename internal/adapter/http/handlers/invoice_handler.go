package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "freelance_hub/internal/adapter/http/dto/request"
	response "freelance_hub/internal/adapter/http/dto/response"
	"freelance_hub/internal/usecase"
	"freelance_hub/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices and their payments.

type InvoiceHandler struct {
	payments usecase.IPaymentUseCase
}

func NewInvoiceHandler(payments usecase.IPaymentUseCase) *InvoiceHandler {
	return &InvoiceHandler{payments: payments}
}

// GetInvoice returns the invoice with the ledger figures folded in.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, _, err := h.payments.GetInvoice(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// PayPhase charges one payment phase through the gateway. The body is the
// raw Mercado Pago payment payload; the charge amount always comes from the
// ledger.
func (h *InvoiceHandler) PayPhase(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	phase, err := usecase.ParsePaymentPhase(c.Param("phase"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_PHASE", "Payment phase must be deposit or final", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] pay start invoice_id=%s phase=%s", invoiceID, phase)

	payload, err := readGatewayPayload(c)
	if err != nil {
		log.Printf("[invoice][handler] invalid payload invoice_id=%s err=%v", invoiceID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.payments.PayPhase(c.Request.Context(), invoiceID, phase, payload)
	if err != nil {
		log.Printf("[invoice][handler] pay failed invoice_id=%s phase=%s err=%v", invoiceID, phase, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] pay success invoice_id=%s phase=%s provider_payment_id=%s", invoiceID, phase, result.ProviderPaymentID)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// RecordDepositPaid applies an externally settled deposit payment.
func (h *InvoiceHandler) RecordDepositPaid(c *gin.Context) {
	inv, err := h.payments.RecordDepositPaid(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// RecordPaid applies an externally settled final payment.
func (h *InvoiceHandler) RecordPaid(c *gin.Context) {
	inv, err := h.payments.RecordFullyPaid(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// UpdateAmount corrects the invoice total before any payment is collected.
func (h *InvoiceHandler) UpdateAmount(c *gin.Context) {
	var payload request.UpdateInvoiceAmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	inv, err := h.payments.UpdateInvoiceAmount(c.Request.Context(), c.Param("invoice_id"), payload.AmountCents)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func readGatewayPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment was not approved by the provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Invoice cannot accept this payment", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
