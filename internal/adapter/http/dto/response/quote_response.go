package response

import (
	"time"

	"freelance_hub/internal/domain/entities"
)

type PackageSelectionResponse struct {
	Name     string   `json:"name"`
	Features []string `json:"features,omitempty"`
}

type QuoteResponse struct {
	ID                 string                    `json:"id"`
	QuoteNumber        string                    `json:"quote_number"`
	CustomerID         string                    `json:"customer_id"`
	CustomerName       string                    `json:"customer_name,omitempty"`
	CustomerEmail      string                    `json:"customer_email,omitempty"`
	Description        string                    `json:"description"`
	EstimatedCostCents int64                     `json:"estimated_cost_cents"`
	Status             string                    `json:"status"`
	Priority           string                    `json:"priority"`
	RushDelivery       string                    `json:"rush_delivery"`
	Timeline           string                    `json:"timeline,omitempty"`
	SelectedPackage    *PackageSelectionResponse `json:"selected_package,omitempty"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:                 q.ID,
		QuoteNumber:        q.QuoteNumber,
		CustomerID:         q.CustomerID,
		CustomerName:       q.CustomerName,
		CustomerEmail:      q.CustomerEmail,
		Description:        q.Description,
		EstimatedCostCents: q.EstimatedCostCents,
		Status:             string(q.Status),
		Priority:           string(q.Priority),
		RushDelivery:       string(q.RushDelivery),
		Timeline:           q.Timeline,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
	if q.SelectedPackage != nil {
		resp.SelectedPackage = &PackageSelectionResponse{
			Name:     q.SelectedPackage.Name,
			Features: q.SelectedPackage.Features,
		}
	}
	return resp
}
