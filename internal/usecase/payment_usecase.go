package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"freelance_hub/internal/domain/billing"
	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase/interfaces"
)

// PaymentPhase selects which half of the two-phase billing model a payment
// settles.
type PaymentPhase string

const (
	PaymentPhaseDeposit PaymentPhase = "deposit"
	PaymentPhaseFinal   PaymentPhase = "final"
)

func ParsePaymentPhase(s string) (PaymentPhase, error) {
	switch PaymentPhase(s) {
	case PaymentPhaseDeposit, PaymentPhaseFinal:
		return PaymentPhase(s), nil
	}
	return "", fmt.Errorf("unknown payment phase %q", s)
}

// PaymentResult carries the provider outcome alongside the updated invoice.
type PaymentResult struct {
	Invoice           entities.Invoice
	ProviderPaymentID string
	ProviderStatus    string
	ProviderResponse  json.RawMessage
}

// IPaymentUseCase reacts to payment events and drives gateway charges.
//
//   - RecordDepositPaid / RecordFullyPaid: apply an externally settled
//     payment to the invoice (webhook/staff confirmation path)
//   - PayPhase: charge the phase through the payment gateway, then record it
//   - UpdateInvoiceAmount: staff amount correction while nothing is paid

type IPaymentUseCase interface {
	GetInvoice(ctx context.Context, id string) (entities.Invoice, billing.Summary, error)
	RecordDepositPaid(ctx context.Context, invoiceID string) (entities.Invoice, error)
	RecordFullyPaid(ctx context.Context, invoiceID string) (entities.Invoice, error)
	PayPhase(ctx context.Context, invoiceID string, phase PaymentPhase, payload json.RawMessage) (PaymentResult, error)
	UpdateInvoiceAmount(ctx context.Context, invoiceID string, amountCents int64) (entities.Invoice, error)
}

type PaymentUseCase struct {
	invoices   interfaces.IInvoiceRepository
	gateway    interfaces.IPaymentGateway
	dispatcher interfaces.INotificationDispatcher
	now        func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(invoices interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, dispatcher interfaces.INotificationDispatcher) *PaymentUseCase {
	return &PaymentUseCase{invoices: invoices, gateway: gateway, dispatcher: dispatcher, now: time.Now}
}

func (u *PaymentUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, billing.Summary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, billing.Summary{}, validationError("invoice id is required")
	}
	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, billing.Summary{}, persistenceError(err)
	}
	if inv.ID == "" {
		return entities.Invoice{}, billing.Summary{}, ErrInvoiceNotFound
	}
	return inv, billing.Ledger(inv), nil
}

func (u *PaymentUseCase) RecordDepositPaid(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, validationError("invoice id is required")
	}

	updated, err := u.invoices.MarkDepositPaid(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, persistenceError(err)
	}
	if updated.ID == "" {
		existing, gerr := u.invoices.GetByID(ctx, invoiceID)
		if gerr != nil {
			return entities.Invoice{}, persistenceError(gerr)
		}
		if existing.ID == "" {
			return entities.Invoice{}, ErrInvoiceNotFound
		}
		if existing.DepositPaid {
			return entities.Invoice{}, transitionError("deposit already paid for invoice %s", invoiceID)
		}
		return entities.Invoice{}, transitionError("invoice %s is %s and cannot receive a deposit", invoiceID, existing.Status)
	}
	log.Printf("[payment][usecase] deposit recorded invoice_id=%s deposit_cents=%d", updated.ID, updated.DepositAmountCents)

	notify(u.dispatcher, updated.CustomerID, interfaces.NotificationPaymentReceived, map[string]interface{}{
		"invoice_id":      updated.ID,
		"phase":           string(PaymentPhaseDeposit),
		"amount_cents":    updated.DepositAmountCents,
		"remaining_cents": billing.Ledger(updated).RemainingDueCents,
	})
	return updated, nil
}

func (u *PaymentUseCase) RecordFullyPaid(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, validationError("invoice id is required")
	}

	updated, err := u.invoices.MarkPaid(ctx, invoiceID, u.now().UTC())
	if err != nil {
		return entities.Invoice{}, persistenceError(err)
	}
	if updated.ID == "" {
		existing, gerr := u.invoices.GetByID(ctx, invoiceID)
		if gerr != nil {
			return entities.Invoice{}, persistenceError(gerr)
		}
		if existing.ID == "" {
			return entities.Invoice{}, ErrInvoiceNotFound
		}
		return entities.Invoice{}, transitionError("invoice %s is %s and cannot be settled", invoiceID, existing.Status)
	}
	log.Printf("[payment][usecase] invoice settled invoice_id=%s amount_cents=%d", updated.ID, updated.AmountCents)

	notify(u.dispatcher, updated.CustomerID, interfaces.NotificationPaymentReceived, map[string]interface{}{
		"invoice_id":   updated.ID,
		"phase":        string(PaymentPhaseFinal),
		"amount_cents": updated.AmountCents,
	})
	return updated, nil
}

func (u *PaymentUseCase) PayPhase(ctx context.Context, invoiceID string, phase PaymentPhase, payload json.RawMessage) (PaymentResult, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return PaymentResult{}, validationError("invoice id is required")
	}
	if u.gateway == nil {
		return PaymentResult{}, errors.New("payment gateway not configured")
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return PaymentResult{}, persistenceError(err)
	}
	if inv.ID == "" {
		return PaymentResult{}, ErrInvoiceNotFound
	}

	ledger := billing.Ledger(inv)
	var chargeCents int64
	switch phase {
	case PaymentPhaseDeposit:
		chargeCents = ledger.DepositDueCents
	case PaymentPhaseFinal:
		chargeCents = ledger.RemainingDueCents
	default:
		return PaymentResult{}, validationError("unknown payment phase %q", phase)
	}
	if chargeCents == 0 {
		return PaymentResult{}, transitionError("nothing due for phase %s on invoice %s", phase, invoiceID)
	}

	enriched, err := enrichGatewayPayload(payload, inv, phase, chargeCents)
	if err != nil {
		return PaymentResult{}, validationError("invalid gateway payload: %v", err)
	}

	log.Printf("[payment][usecase] gateway charge start invoice_id=%s phase=%s amount_cents=%d", inv.ID, phase, chargeCents)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway charge failed invoice_id=%s phase=%s err=%v", inv.ID, phase, err)
		return PaymentResult{}, mapGatewayError(err)
	}
	if providerStatus != "approved" {
		log.Printf("[payment][usecase] gateway declined invoice_id=%s phase=%s provider_status=%s", inv.ID, phase, providerStatus)
		return PaymentResult{}, fmt.Errorf("%w: provider status %s", ErrPaymentDeclined, providerStatus)
	}

	var updated entities.Invoice
	if phase == PaymentPhaseDeposit {
		updated, err = u.RecordDepositPaid(ctx, invoiceID)
	} else {
		updated, err = u.RecordFullyPaid(ctx, invoiceID)
	}
	if err != nil {
		// The charge went through but the record did not; surface loudly so
		// staff reconcile against the provider payment id.
		log.Printf("[payment][usecase] charge recorded at provider but not locally invoice_id=%s provider_payment_id=%s err=%v", invoiceID, providerID, err)
		return PaymentResult{}, err
	}

	return PaymentResult{
		Invoice:           updated,
		ProviderPaymentID: providerID,
		ProviderStatus:    providerStatus,
		ProviderResponse:  providerResp,
	}, nil
}

func (u *PaymentUseCase) UpdateInvoiceAmount(ctx context.Context, invoiceID string, amountCents int64) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, validationError("invoice id is required")
	}
	if amountCents <= 0 {
		return entities.Invoice{}, validationError("amount must be positive")
	}

	deposit, _ := billing.DepositSplit(amountCents)
	updated, err := u.invoices.UpdateAmount(ctx, invoiceID, amountCents, deposit)
	if err != nil {
		return entities.Invoice{}, persistenceError(err)
	}
	if updated.ID == "" {
		existing, gerr := u.invoices.GetByID(ctx, invoiceID)
		if gerr != nil {
			return entities.Invoice{}, persistenceError(gerr)
		}
		if existing.ID == "" {
			return entities.Invoice{}, ErrInvoiceNotFound
		}
		return entities.Invoice{}, transitionError("invoice %s can no longer be corrected", invoiceID)
	}
	log.Printf("[payment][usecase] amount corrected invoice_id=%s amount_cents=%d deposit_cents=%d", updated.ID, updated.AmountCents, updated.DepositAmountCents)
	return updated, nil
}

// enrichGatewayPayload fills the linkage fields the provider needs to
// reconcile the charge. The charge amount always comes from the ledger, never
// from the caller.
func enrichGatewayPayload(payload json.RawMessage, inv entities.Invoice, phase PaymentPhase, chargeCents int64) (json.RawMessage, error) {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	var m map[string]interface{}
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, err
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = inv.ID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Invoice %s (%s)", inv.ID, phase)
	}
	m["transaction_amount"] = float64(chargeCents) / 100
	return json.Marshal(m)
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
