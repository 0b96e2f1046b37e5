package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "freelance_hub/internal/adapter/http/dto/request"
	response "freelance_hub/internal/adapter/http/dto/response"
	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase"
	"freelance_hub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote workflow, from customer
// submission through staff approval.

type QuoteHandler struct {
	quotes   usecase.IQuoteUseCase
	approval usecase.IApprovalUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, approval usecase.IApprovalUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, approval: approval}
}

// SubmitQuote creates a pending quote from the customer-facing payload.
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.quotes.SubmitQuote(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.quotes.GetQuote(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ReviewQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.quotes.ReviewQuote)
}

func (h *QuoteHandler) MarkQuoted(c *gin.Context) {
	h.patchQuoteStatus(c, h.quotes.MarkQuoted)
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.quotes.CancelQuote)
}

// ApproveQuote commits the approval transaction and returns the created
// invoice and project together.
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[quote][handler] approve start quote_id=%s", quoteID)

	result, err := h.approval.ApproveQuote(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[quote][handler] approve failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] approve success quote_id=%s invoice_id=%s project_id=%s", quoteID, result.Invoice.ID, result.Project.ID)

	c.JSON(http.StatusCreated, response.FromApproval(result))
}

func (h *QuoteHandler) EditQuote(c *gin.Context) {
	var payload request.EditQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	edit, err := payload.ToEdit()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.quotes.EditQuote(c.Request.Context(), c.Param("quote_id"), edit)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.quotes.DeleteQuote(c.Request.Context(), c.Param("quote_id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	quote, err := updater(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteHasPayments):
		return pkg.NewDomainErrorSimple("QUOTE_HAS_PAYMENTS", "Quote has recorded payments and cannot be deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Quote cannot change to the requested status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
