package response

import (
	"encoding/json"

	"freelance_hub/internal/usecase"
)

type PaymentResponse struct {
	Invoice           InvoiceResponse `json:"invoice"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	ProviderStatus    string          `json:"provider_status"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty"`
}

func FromPaymentResult(r usecase.PaymentResult) PaymentResponse {
	return PaymentResponse{
		Invoice:           FromInvoice(r.Invoice),
		ProviderPaymentID: r.ProviderPaymentID,
		ProviderStatus:    r.ProviderStatus,
		ProviderResponse:  r.ProviderResponse,
	}
}

// ApprovalResponse is the invoice/project pair created by approving a quote.
type ApprovalResponse struct {
	Invoice InvoiceResponse `json:"invoice"`
	Project ProjectResponse `json:"project"`
}

func FromApproval(r usecase.ApprovalResult) ApprovalResponse {
	return ApprovalResponse{
		Invoice: FromInvoice(r.Invoice),
		Project: FromProject(r.Project),
	}
}
