package handlers

import (
	"errors"
	"net/http"
	"time"

	"freelance_hub/internal/usecase"
	"freelance_hub/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard reads.

type ReportHandler struct {
	revenue usecase.IRevenueUseCase
}

func NewReportHandler(revenue usecase.IRevenueUseCase) *ReportHandler {
	return &ReportHandler{revenue: revenue}
}

// GetRevenueSummary returns the revenue summary, optionally as of a given
// RFC 3339 instant (?as_of=).
func (h *ReportHandler) GetRevenueSummary(c *gin.Context) {
	var asOf time.Time
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_AS_OF", "as_of must be an RFC 3339 timestamp", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		asOf = parsed
	}

	summary, err := h.revenue.GetRevenueSummary(c.Request.Context(), asOf)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetCustomerOwed returns one customer's outstanding balance.
func (h *ReportHandler) GetCustomerOwed(c *gin.Context) {
	balance, err := h.revenue.GetCustomerOwedBalance(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, balance)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
