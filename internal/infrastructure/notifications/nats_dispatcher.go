package notifications

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"freelance_hub/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
)

const subjectPrefix = "notifications.billing."

type event struct {
	CustomerID string                 `json:"customer_id"`
	Kind       string                 `json:"kind"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	EmittedAt  string                 `json:"emitted_at"`
}

// NATSDispatcher publishes customer notifications on NATS subjects of the
// form "notifications.billing.<kind>". Delivery is at-most-once and the
// workflow never waits on it.
type NATSDispatcher struct {
	conn *nats.Conn
}

var _ interfaces.INotificationDispatcher = (*NATSDispatcher)(nil)

func NewNATSDispatcher(serverURL string) (*NATSDispatcher, error) {
	conn, err := nats.Connect(serverURL,
		nats.Name("freelance-hub-notifications"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}
	log.Printf("[notify][nats] connected url=%s", serverURL)
	return &NATSDispatcher{conn: conn}, nil
}

func (d *NATSDispatcher) Notify(ctx context.Context, customerID, kind string, payload map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event{
		CustomerID: customerID,
		Kind:       kind,
		Payload:    payload,
		EmittedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	return d.conn.Publish(subjectPrefix+kind, data)
}

func (d *NATSDispatcher) Close() {
	if d.conn != nil {
		d.conn.Drain()
	}
}
