package order

import (
	"time"

	"github.com/google/uuid"
)

// Integration event names as written to the outbox.
const (
	EventTypeOrderStarted       = "ordering.order_started"
	EventTypeOrderStatusChanged = "ordering.order_status_changed"
)

// StartedEvent signals that an order has been accepted for a buyer.
// Consumers use it to clear the buyer's basket; the outbox guarantees
// it is never observed without the order itself.
type StartedEvent struct {
	OrderID   uuid.UUID `json:"order_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusChangedEvent is emitted on every lifecycle transition.
type StatusChangedEvent struct {
	OrderID   uuid.UUID `json:"order_id"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
