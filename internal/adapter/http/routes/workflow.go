package routes

import (
	"freelance_hub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathInvoices  = "/invoices"
	PathProjects  = "/projects"
	PathReports   = "/reports"
	PathCustomers = "/customers"
)

func addWorkflowRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	invoiceHandler *handlers.InvoiceHandler,
	projectHandler *handlers.ProjectHandler,
	reportHandler *handlers.ReportHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.SubmitQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id", quoteHandler.EditQuote)
		quotes.PATCH("/:quote_id/review", quoteHandler.ReviewQuote)
		quotes.PATCH("/:quote_id/quote", quoteHandler.MarkQuoted)
		quotes.PATCH("/:quote_id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:quote_id/cancel", quoteHandler.CancelQuote)
		quotes.DELETE("/:quote_id", quoteHandler.DeleteQuote)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.POST("/:invoice_id/pay/:phase", invoiceHandler.PayPhase)
		invoices.PATCH("/:invoice_id/deposit-paid", invoiceHandler.RecordDepositPaid)
		invoices.PATCH("/:invoice_id/paid", invoiceHandler.RecordPaid)
		invoices.PATCH("/:invoice_id/amount", invoiceHandler.UpdateAmount)
	}

	projects := rg.Group(PathProjects)
	{
		projects.GET("/:project_id", projectHandler.GetProject)
		projects.PATCH("/:project_id/progress", projectHandler.UpdateProgress)
		projects.PATCH("/:project_id/github", projectHandler.SetGithubURL)
		projects.PATCH("/:project_id/hold", projectHandler.HoldProject)
		projects.PATCH("/:project_id/resume", projectHandler.ResumeProject)
	}

	rg.GET(PathReports+"/revenue", reportHandler.GetRevenueSummary)
	rg.GET(PathCustomers+"/:customer_id/owed", reportHandler.GetCustomerOwed)
}
