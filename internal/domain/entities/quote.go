package entities

import (
	"fmt"
	"time"
)

// QuoteStatus is the closed set of quote lifecycle states.
//
// State machine:
//   - pending -> under_review -> {quoted | approved | cancelled}
//   - quoted -> cancelled
//   - approved -> accepted -> in_progress -> completed (driven by project
//     progress, not by the review state machine)
//   - cancelled is terminal
//
// Unknown statuses are rejected at the boundary by ParseQuoteStatus; nothing
// downstream defaults silently.

type QuoteStatus string

const (
	QuoteStatusPending     QuoteStatus = "pending"
	QuoteStatusUnderReview QuoteStatus = "under_review"
	QuoteStatusQuoted      QuoteStatus = "quoted"
	QuoteStatusApproved    QuoteStatus = "approved"
	QuoteStatusAccepted    QuoteStatus = "accepted"
	QuoteStatusInProgress  QuoteStatus = "in_progress"
	QuoteStatusCompleted   QuoteStatus = "completed"
	QuoteStatusCancelled   QuoteStatus = "cancelled"
)

func ParseQuoteStatus(s string) (QuoteStatus, error) {
	switch QuoteStatus(s) {
	case QuoteStatusPending, QuoteStatusUnderReview, QuoteStatusQuoted,
		QuoteStatusApproved, QuoteStatusAccepted, QuoteStatusInProgress,
		QuoteStatusCompleted, QuoteStatusCancelled:
		return QuoteStatus(s), nil
	}
	return "", fmt.Errorf("unknown quote status %q", s)
}

// IsTerminal reports whether no further transition is allowed from s.
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusCancelled || s == QuoteStatusCompleted
}

// IsCancellable reports whether cancel() may be applied. Cancelling an
// approved quote is disallowed: the invoice/project it spawned are not
// reversed, so the transition is rejected instead.
func (s QuoteStatus) IsCancellable() bool {
	return s == QuoteStatusPending || s == QuoteStatusUnderReview || s == QuoteStatusQuoted
}

type QuotePriority string

const (
	QuotePriorityLow    QuotePriority = "low"
	QuotePriorityMedium QuotePriority = "medium"
	QuotePriorityHigh   QuotePriority = "high"
	QuotePriorityUrgent QuotePriority = "urgent"
)

func ParseQuotePriority(s string) (QuotePriority, error) {
	if s == "" {
		return QuotePriorityMedium, nil
	}
	switch QuotePriority(s) {
	case QuotePriorityLow, QuotePriorityMedium, QuotePriorityHigh, QuotePriorityUrgent:
		return QuotePriority(s), nil
	}
	return "", fmt.Errorf("unknown quote priority %q", s)
}

type RushDelivery string

const (
	RushDeliveryStandard RushDelivery = "standard"
	RushDeliveryPriority RushDelivery = "priority"
	RushDeliveryExpress  RushDelivery = "express"
)

func ParseRushDelivery(s string) (RushDelivery, error) {
	if s == "" {
		return RushDeliveryStandard, nil
	}
	switch RushDelivery(s) {
	case RushDeliveryStandard, RushDeliveryPriority, RushDeliveryExpress:
		return RushDelivery(s), nil
	}
	return "", fmt.Errorf("unknown rush delivery %q", s)
}

// PackageSelection is the optional service package picked by the customer.
type PackageSelection struct {
	Name     string   `json:"name"`
	Features []string `json:"features,omitempty"`
}

// Quote is a customer's priced request for work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Monetary representation: EstimatedCostCents holds currency minor units.
// Invariant: EstimatedCostCents >= 0.

type Quote struct {
	ID                 string            `json:"id"`
	QuoteNumber        string            `json:"quote_number"`
	CustomerID         string            `json:"customer_id"`
	CustomerName       string            `json:"customer_name"`
	CustomerEmail      string            `json:"customer_email"`
	Description        string            `json:"description"`
	EstimatedCostCents int64             `json:"estimated_cost_cents"`
	Status             QuoteStatus       `json:"status"`
	Priority           QuotePriority     `json:"priority"`
	RushDelivery       RushDelivery      `json:"rush_delivery"`
	Timeline           string            `json:"timeline,omitempty"`
	SelectedPackage    *PackageSelection `json:"selected_package,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// ServiceName is the label revenue is attributed to: the selected package
// when one exists, otherwise the free-form description.
func (q Quote) ServiceName() string {
	if q.SelectedPackage != nil && q.SelectedPackage.Name != "" {
		return q.SelectedPackage.Name
	}
	return q.Description
}
