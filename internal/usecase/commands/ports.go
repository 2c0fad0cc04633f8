package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Command types double as the dedup scope: the same request id may be
// reused across different command kinds without colliding.
const (
	CommandTypeCreateOrder = "create_order"
	CommandTypeSetPaid     = "set_paid"
	CommandTypeCancelOrder = "cancel_order"
	CommandTypeShipOrder   = "ship_order"
)

type CreateOrderCommand struct {
	BuyerID   uuid.UUID
	BuyerName string

	Street  string
	City    string
	State   string
	Country string
	ZipCode string

	CardTypeID int
	// CardNumber arrives pre-masked from the transport boundary; the
	// raw number never crosses into the use case layer.
	CardNumber     string
	CardHolder     string
	CardExpiration time.Time

	Items []CreateOrderItem
}

type CreateOrderItem struct {
	ProductID      uuid.UUID
	ProductName    string
	UnitPriceCents int64
	DiscountCents  int64
	PictureURL     string
	Units          int
}

type SetPaidCommand struct {
	OrderID uuid.UUID
}

type CancelOrderCommand struct {
	OrderID uuid.UUID
}

type ShipOrderCommand struct {
	OrderID uuid.UUID
}

// OrderTelemetry receives business signals after a command's
// transaction commits. Implementations must not fail the command;
// emission problems are theirs to log.
type OrderTelemetry interface {
	OrderPlaced(ctx context.Context, orderID, buyerID uuid.UUID, buyerName string, totalCents int64, itemCount int)
	OrderStatusChanged(ctx context.Context, orderID uuid.UUID, from, to string)
}
