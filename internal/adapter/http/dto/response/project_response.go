package response

import (
	"time"

	"freelance_hub/internal/domain/entities"
)

type ProjectResponse struct {
	ID           string    `json:"id"`
	QuoteID      string    `json:"quote_id"`
	CustomerID   string    `json:"customer_id"`
	Status       string    `json:"status"`
	Progress     int       `json:"progress"`
	BudgetCents  int64     `json:"budget_cents"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	GithubURL    string    `json:"github_url,omitempty"`
	PackageName  string    `json:"package_name,omitempty"`
	Features     []string  `json:"features,omitempty"`
	RushDelivery string    `json:"rush_delivery"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		CustomerID:   p.CustomerID,
		Status:       string(p.Status),
		Progress:     p.Progress,
		BudgetCents:  p.BudgetCents,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		GithubURL:    p.GithubURL,
		PackageName:  p.PackageName,
		Features:     p.Features,
		RushDelivery: string(p.RushDelivery),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
