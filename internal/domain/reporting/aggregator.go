// Package reporting folds the quote/invoice collections into the dashboard
// summary. It is pure: no I/O, no clocks other than the asOf argument, and
// every per-invoice figure comes from the billing ledger.
package reporting

import (
	"sort"
	"time"

	"freelance_hub/internal/domain/billing"
	"freelance_hub/internal/domain/entities"
)

// DefaultTopServices bounds the service-revenue mix returned to dashboards.
const DefaultTopServices = 5

type PipelineBucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type ServiceRevenue struct {
	Name         string `json:"name"`
	RevenueCents int64  `json:"revenue_cents"`
}

type Summary struct {
	TotalRevenueCents     int64            `json:"total_revenue_cents"`
	MonthlyRevenueCents   int64            `json:"monthly_revenue_cents"`
	TotalPaidRevenueCents int64            `json:"total_paid_revenue_cents"`
	OwedRevenueCents      int64            `json:"owed_revenue_cents"`
	QuotePipeline         []PipelineBucket `json:"quote_pipeline"`
	TopServices           []ServiceRevenue `json:"top_services"`
}

// Summarize computes the revenue summary as of the given instant.
//
// The read is a snapshot: the collections may be momentarily inconsistent
// (an invoice whose project has not committed yet) and that is fine — the
// fold never assumes cross-entity integrity.
func Summarize(asOf time.Time, quotes []entities.Quote, invoices []entities.Invoice, topN int) Summary {
	if topN <= 0 {
		topN = DefaultTopServices
	}
	monthAgo := asOf.Add(-30 * 24 * time.Hour)

	var s Summary
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusCompleted {
			continue
		}
		s.TotalRevenueCents += q.EstimatedCostCents
		if q.UpdatedAt.After(monthAgo) && !q.UpdatedAt.After(asOf) {
			s.MonthlyRevenueCents += q.EstimatedCostCents
		}
	}

	for _, inv := range invoices {
		if inv.Status == entities.InvoiceStatusCancelled {
			continue
		}
		s.TotalPaidRevenueCents += billing.PaidContribution(inv)
		s.OwedRevenueCents += billing.Ledger(inv).RemainingDueCents
	}

	s.QuotePipeline = pipeline(quotes)
	s.TopServices = topServices(invoices, topN)
	return s
}

// pipeline groups active quotes into the four dashboard stages. Cancelled
// quotes are not part of the active total.
func pipeline(quotes []entities.Quote) []PipelineBucket {
	buckets := []PipelineBucket{
		{Label: "pending"},
		{Label: "quoted"},
		{Label: "in_progress"},
		{Label: "completed"},
	}

	total := 0
	for _, q := range quotes {
		idx := -1
		switch q.Status {
		case entities.QuoteStatusPending, entities.QuoteStatusUnderReview:
			idx = 0
		case entities.QuoteStatusQuoted, entities.QuoteStatusApproved:
			idx = 1
		case entities.QuoteStatusAccepted, entities.QuoteStatusInProgress:
			idx = 2
		case entities.QuoteStatusCompleted:
			idx = 3
		}
		if idx >= 0 {
			buckets[idx].Count++
			total++
		}
	}

	if total > 0 {
		for i := range buckets {
			buckets[i].Percent = float64(buckets[i].Count) / float64(total) * 100
		}
	}
	return buckets
}

// topServices attributes line-item revenue to service names. Deposit lines
// restate part of the service line, so they are skipped.
func topServices(invoices []entities.Invoice, topN int) []ServiceRevenue {
	byName := map[string]int64{}
	for _, inv := range invoices {
		if inv.Status == entities.InvoiceStatusCancelled {
			continue
		}
		for _, li := range inv.LineItems {
			if li.Kind == entities.LineItemKindDeposit {
				continue
			}
			byName[li.Description] += li.TotalCents
		}
	}

	out := make([]ServiceRevenue, 0, len(byName))
	for name, cents := range byName {
		out = append(out, ServiceRevenue{Name: name, RevenueCents: cents})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RevenueCents != out[j].RevenueCents {
			return out[i].RevenueCents > out[j].RevenueCents
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// OwedBalance is the per-customer outstanding position.
type OwedBalance struct {
	CustomerID        string `json:"customer_id"`
	DepositDueCents   int64  `json:"deposit_due_cents"`
	RemainingDueCents int64  `json:"remaining_due_cents"`
	OpenInvoices      int    `json:"open_invoices"`
}

// CustomerOwed folds one customer's invoices through the ledger.
func CustomerOwed(customerID string, invoices []entities.Invoice) OwedBalance {
	b := OwedBalance{CustomerID: customerID}
	for _, inv := range invoices {
		if inv.Status == entities.InvoiceStatusCancelled {
			continue
		}
		l := billing.Ledger(inv)
		b.DepositDueCents += l.DepositDueCents
		b.RemainingDueCents += l.RemainingDueCents
		if !l.IsFullyPaid {
			b.OpenInvoices++
		}
	}
	return b
}
