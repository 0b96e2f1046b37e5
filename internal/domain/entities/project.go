package entities

import (
	"fmt"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectStatusPending, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusOnHold:
		return ProjectStatus(s), nil
	}
	return "", fmt.Errorf("unknown project status %q", s)
}

// Project tracks delivery of an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// BudgetCents mirrors the invoice amount at creation time and is not
// re-synced when the invoice is corrected afterwards.
// Invariant: Progress is clamped to 0..100, and Progress == 100 implies
// Status == completed.

type Project struct {
	ID           string        `json:"id"`
	QuoteID      string        `json:"quote_id"`
	CustomerID   string        `json:"customer_id"`
	Status       ProjectStatus `json:"status"`
	Progress     int           `json:"progress"`
	BudgetCents  int64         `json:"budget_cents"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	GithubURL    string        `json:"github_url,omitempty"`
	PackageName  string        `json:"package_name,omitempty"`
	Features     []string      `json:"features,omitempty"`
	RushDelivery RushDelivery  `json:"rush_delivery"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ClampProgress normalizes an arbitrary progress value into 0..100.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
