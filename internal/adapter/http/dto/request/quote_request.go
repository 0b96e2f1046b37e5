package request

import (
	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase"
)

type PackageSelectionRequest struct {
	Name     string   `json:"name" binding:"required"`
	Features []string `json:"features"`
}

// SubmitQuoteRequest is the customer-facing quote submission payload. Money
// travels as integer cents end to end.
type SubmitQuoteRequest struct {
	CustomerID         string                   `json:"customer_id" binding:"required"`
	CustomerName       string                   `json:"customer_name"`
	CustomerEmail      string                   `json:"customer_email"`
	Description        string                   `json:"description" binding:"required"`
	EstimatedCostCents int64                    `json:"estimated_cost_cents"`
	Priority           string                   `json:"priority"`
	RushDelivery       string                   `json:"rush_delivery"`
	Timeline           string                   `json:"timeline"`
	SelectedPackage    *PackageSelectionRequest `json:"selected_package"`
}

func (r SubmitQuoteRequest) ToInput() usecase.SubmitQuoteInput {
	in := usecase.SubmitQuoteInput{
		CustomerID:         r.CustomerID,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		Description:        r.Description,
		EstimatedCostCents: r.EstimatedCostCents,
		Priority:           r.Priority,
		RushDelivery:       r.RushDelivery,
		Timeline:           r.Timeline,
	}
	if r.SelectedPackage != nil {
		in.SelectedPackage = &entities.PackageSelection{
			Name:     r.SelectedPackage.Name,
			Features: r.SelectedPackage.Features,
		}
	}
	return in
}

// EditQuoteRequest carries staff field corrections. Absent fields are left
// untouched.
type EditQuoteRequest struct {
	CustomerName       *string `json:"customer_name"`
	CustomerEmail      *string `json:"customer_email"`
	Description        *string `json:"description"`
	EstimatedCostCents *int64  `json:"estimated_cost_cents"`
	Timeline           *string `json:"timeline"`
	Priority           *string `json:"priority"`
	RushDelivery       *string `json:"rush_delivery"`
}

func (r EditQuoteRequest) ToEdit() (entities.QuoteEdit, error) {
	edit := entities.QuoteEdit{
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		Description:        r.Description,
		EstimatedCostCents: r.EstimatedCostCents,
		Timeline:           r.Timeline,
	}
	if r.Priority != nil {
		p, err := entities.ParseQuotePriority(*r.Priority)
		if err != nil {
			return entities.QuoteEdit{}, err
		}
		edit.Priority = &p
	}
	if r.RushDelivery != nil {
		rd, err := entities.ParseRushDelivery(*r.RushDelivery)
		if err != nil {
			return entities.QuoteEdit{}, err
		}
		edit.RushDelivery = &rd
	}
	return edit, nil
}
