package usecase

import (
	"context"
	"log"
	"time"

	"freelance_hub/internal/usecase/interfaces"
)

// notifyTimeout bounds each fire-and-forget dispatch so a slow broker can
// never hold up a staff action.
const notifyTimeout = 5 * time.Second

// notify dispatches a customer notification, best-effort. Failures are
// logged and swallowed; a detached context is used so the dispatch survives
// cancellation of the request that triggered it.
func notify(d interfaces.INotificationDispatcher, customerID, kind string, payload map[string]interface{}) {
	if d == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if err := d.Notify(ctx, customerID, kind, payload); err != nil {
		log.Printf("[notify][usecase] dispatch failed customer_id=%s kind=%s err=%v", customerID, kind, err)
	}
}
