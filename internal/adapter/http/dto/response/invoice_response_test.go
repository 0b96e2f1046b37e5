package response

import (
	"testing"

	"freelance_hub/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	t.Run("ledger figures derived for open invoice", func(t *testing.T) {
		inv := entities.Invoice{
			ID:                 "inv-1",
			QuoteID:            "q-1",
			AmountCents:        50_000_00,
			DepositRequired:    true,
			DepositAmountCents: 10_000_00,
			Status:             entities.InvoiceStatusPending,
			LineItems: []entities.LineItem{
				{Kind: entities.LineItemKindService, Description: "Pro", Quantity: 1, RateCents: 50_000_00, TotalCents: 50_000_00},
				{Kind: entities.LineItemKindDeposit, Description: "Deposit required (20%)", Quantity: 1, RateCents: 10_000_00, TotalCents: 10_000_00},
			},
		}

		resp := FromInvoice(inv)
		if resp.DepositDueCents != 10_000_00 {
			t.Fatalf("expected deposit due 1000000, got %d", resp.DepositDueCents)
		}
		if resp.RemainingDueCents != 50_000_00 {
			t.Fatalf("expected full amount due before the deposit lands, got %d", resp.RemainingDueCents)
		}
		if resp.FullyPaid {
			t.Fatalf("expected open invoice")
		}
		if len(resp.LineItems) != 2 {
			t.Fatalf("expected two line items, got %d", len(resp.LineItems))
		}
	})

	t.Run("paid invoice owes nothing", func(t *testing.T) {
		inv := entities.Invoice{
			ID:                 "inv-1",
			AmountCents:        50_000_00,
			DepositRequired:    true,
			DepositAmountCents: 10_000_00,
			DepositPaid:        true,
			Status:             entities.InvoiceStatusPaid,
		}

		resp := FromInvoice(inv)
		if resp.DepositDueCents != 0 || resp.RemainingDueCents != 0 {
			t.Fatalf("expected nothing due, got deposit=%d remaining=%d", resp.DepositDueCents, resp.RemainingDueCents)
		}
		if !resp.FullyPaid {
			t.Fatalf("expected fully paid")
		}
	})
}
