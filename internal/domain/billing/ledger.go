// Package billing holds the deposit ledger: the only place in the codebase
// allowed to derive deposit/remaining figures from an invoice. Callers that
// need paid or owed amounts go through Ledger; nobody recomputes the split.
package billing

import (
	"math"

	"freelance_hub/internal/domain/entities"
)

// DepositFraction is the upfront share of an invoice required before project
// work begins.
const DepositFraction = 0.20

// Summary is the derived payment state of a single invoice. All amounts are
// currency minor units.
type Summary struct {
	DepositDueCents   int64 `json:"deposit_due_cents"`
	RemainingDueCents int64 `json:"remaining_due_cents"`
	IsFullyPaid       bool  `json:"is_fully_paid"`
	IsDepositOnlyPaid bool  `json:"is_deposit_only_paid"`
}

// DepositSplit computes the deposit/remaining split for a total amount.
// Rounding is half-away-from-zero on minor units, and the two parts always
// sum back to the total.
func DepositSplit(amountCents int64) (depositCents, remainingCents int64) {
	depositCents = int64(math.Round(float64(amountCents) * DepositFraction))
	return depositCents, amountCents - depositCents
}

// Ledger derives the payment summary for an invoice.
//
//   - a paid invoice owes nothing, regardless of the deposit flag
//   - a deposit-paid invoice owes the remainder
//   - otherwise the full amount is owed and the deposit is due up front
func Ledger(inv entities.Invoice) Summary {
	deposit := effectiveDeposit(inv)

	s := Summary{
		IsFullyPaid:       inv.Status == entities.InvoiceStatusPaid,
		IsDepositOnlyPaid: inv.DepositPaid && inv.Status != entities.InvoiceStatusPaid,
	}

	if !inv.DepositPaid {
		s.DepositDueCents = deposit
	}

	switch {
	case s.IsFullyPaid:
		s.RemainingDueCents = 0
	case inv.DepositPaid:
		s.RemainingDueCents = inv.AmountCents - deposit
	default:
		s.RemainingDueCents = inv.AmountCents
	}
	return s
}

// PaidContribution is the amount an invoice contributes to realized revenue:
// the full amount when paid, the deposit when only the deposit landed,
// nothing otherwise.
func PaidContribution(inv entities.Invoice) int64 {
	switch {
	case inv.Status == entities.InvoiceStatusPaid:
		return inv.AmountCents
	case inv.DepositPaid:
		return effectiveDeposit(inv)
	default:
		return 0
	}
}

// effectiveDeposit applies the default 20% policy when the invoice predates
// explicit deposit terms, and clamps persisted values into [0, amount] so a
// stale stored figure can never owe more than the invoice total.
func effectiveDeposit(inv entities.Invoice) int64 {
	d := inv.DepositAmountCents
	if d == 0 && inv.DepositRequired {
		d, _ = DepositSplit(inv.AmountCents)
	}
	if d < 0 {
		return 0
	}
	if d > inv.AmountCents {
		return inv.AmountCents
	}
	return d
}
