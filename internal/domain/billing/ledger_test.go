package billing

import (
	"testing"

	"freelance_hub/internal/domain/entities"
)

func TestDepositSplit(t *testing.T) {
	cases := []struct {
		name      string
		amount    int64
		deposit   int64
		remaining int64
	}{
		{name: "even split", amount: 100000, deposit: 20000, remaining: 80000},
		{name: "rounds half up", amount: 1013, deposit: 203, remaining: 810},
		{name: "small amount", amount: 1, deposit: 0, remaining: 1},
		{name: "zero", amount: 0, deposit: 0, remaining: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, r := DepositSplit(tc.amount)
			if d != tc.deposit || r != tc.remaining {
				t.Fatalf("DepositSplit(%d) = (%d, %d), want (%d, %d)", tc.amount, d, r, tc.deposit, tc.remaining)
			}
			if d+r != tc.amount {
				t.Fatalf("split does not sum back to total: %d + %d != %d", d, r, tc.amount)
			}
		})
	}
}

func TestLedger(t *testing.T) {
	t.Run("deposit paid on pending invoice", func(t *testing.T) {
		inv := entities.Invoice{
			AmountCents:        50000,
			DepositRequired:    true,
			DepositAmountCents: 10000,
			DepositPaid:        true,
			Status:             entities.InvoiceStatusPending,
		}

		s := Ledger(inv)
		if s.DepositDueCents != 0 {
			t.Fatalf("expected no deposit due, got %d", s.DepositDueCents)
		}
		if s.RemainingDueCents != 40000 {
			t.Fatalf("expected remaining 40000, got %d", s.RemainingDueCents)
		}
		if !s.IsDepositOnlyPaid || s.IsFullyPaid {
			t.Fatalf("unexpected flags: %+v", s)
		}
	})

	t.Run("nothing paid", func(t *testing.T) {
		inv := entities.Invoice{
			AmountCents:        100000,
			DepositRequired:    true,
			DepositAmountCents: 20000,
			Status:             entities.InvoiceStatusPending,
		}

		s := Ledger(inv)
		if s.DepositDueCents != 20000 {
			t.Fatalf("expected deposit due 20000, got %d", s.DepositDueCents)
		}
		if s.RemainingDueCents != 100000 {
			t.Fatalf("expected full amount due, got %d", s.RemainingDueCents)
		}
		if s.IsFullyPaid || s.IsDepositOnlyPaid {
			t.Fatalf("unexpected flags: %+v", s)
		}
	})

	t.Run("paid owes nothing regardless of deposit flag", func(t *testing.T) {
		for _, depositPaid := range []bool{true, false} {
			inv := entities.Invoice{
				AmountCents:        100000,
				DepositRequired:    true,
				DepositAmountCents: 20000,
				DepositPaid:        depositPaid,
				Status:             entities.InvoiceStatusPaid,
			}

			s := Ledger(inv)
			if s.RemainingDueCents != 0 {
				t.Fatalf("paid invoice owes %d", s.RemainingDueCents)
			}
			if !s.IsFullyPaid || s.IsDepositOnlyPaid {
				t.Fatalf("unexpected flags: %+v", s)
			}
		}
	})

	t.Run("default policy when deposit unset", func(t *testing.T) {
		inv := entities.Invoice{
			AmountCents:     100000,
			DepositRequired: true,
			Status:          entities.InvoiceStatusPending,
		}

		s := Ledger(inv)
		if s.DepositDueCents != 20000 {
			t.Fatalf("expected default 20%% deposit 20000, got %d", s.DepositDueCents)
		}
	})

	t.Run("stored deposit above total is clamped", func(t *testing.T) {
		inv := entities.Invoice{
			AmountCents:        1000,
			DepositRequired:    true,
			DepositAmountCents: 5000,
			DepositPaid:        true,
			Status:             entities.InvoiceStatusPending,
		}

		s := Ledger(inv)
		if s.RemainingDueCents != 0 {
			t.Fatalf("expected clamped remaining 0, got %d", s.RemainingDueCents)
		}
	})
}

func TestPaidContribution(t *testing.T) {
	paid := entities.Invoice{AmountCents: 100000, DepositAmountCents: 20000, DepositPaid: true, Status: entities.InvoiceStatusPaid}
	depositOnly := entities.Invoice{AmountCents: 100000, DepositAmountCents: 20000, DepositPaid: true, Status: entities.InvoiceStatusPending}
	unpaid := entities.Invoice{AmountCents: 100000, DepositAmountCents: 20000, Status: entities.InvoiceStatusPending}

	if got := PaidContribution(paid); got != 100000 {
		t.Fatalf("paid invoice contributes %d, want 100000", got)
	}
	if got := PaidContribution(depositOnly); got != 20000 {
		t.Fatalf("deposit-only invoice contributes %d, want 20000", got)
	}
	if got := PaidContribution(unpaid); got != 0 {
		t.Fatalf("unpaid invoice contributes %d, want 0", got)
	}
}
