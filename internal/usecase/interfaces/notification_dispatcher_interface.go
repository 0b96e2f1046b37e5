package interfaces

import "context"

// Notification kinds published to customers.
const (
	NotificationDepositRequired    = "deposit_required"
	NotificationQuoteStatusChanged = "quote_status_changed"
	NotificationInvoiceCreated     = "invoice_created"
	NotificationPaymentReceived    = "payment_received"
)

// INotificationDispatcher is the fire-and-forget customer side channel.
//
// Implementations must never block the workflow: callers bound Notify with a
// short timeout, log failures and move on. A returned error is informational.
type INotificationDispatcher interface {
	Notify(ctx context.Context, customerID, kind string, payload map[string]interface{}) error
}
