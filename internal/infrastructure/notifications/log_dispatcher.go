package notifications

import (
	"context"
	"log"

	"freelance_hub/internal/usecase/interfaces"
)

// LogDispatcher writes notifications to the service log. It backs the
// workflow when no NATS server is configured, typically in local runs.
type LogDispatcher struct{}

var _ interfaces.INotificationDispatcher = LogDispatcher{}

func NewLogDispatcher() LogDispatcher {
	return LogDispatcher{}
}

func (LogDispatcher) Notify(_ context.Context, customerID, kind string, payload map[string]interface{}) error {
	log.Printf("[notify][log] customer_id=%s kind=%s payload=%v", customerID, kind, payload)
	return nil
}
