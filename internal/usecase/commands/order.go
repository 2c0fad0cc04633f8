package commands

import (
	"context"

	"ordering-service/internal/pkg/clock"
	"ordering-service/internal/pkg/config"
	"ordering-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// OrderCommands is the write-side API of the ordering pipeline. Every
// operation takes a client request id and is safe to call repeatedly
// with the same one.
type OrderCommands interface {
	CreateOrder(ctx context.Context, requestID uuid.UUID, cmd CreateOrderCommand) (*Result, error)
	SetPaid(ctx context.Context, requestID uuid.UUID, cmd SetPaidCommand) (*Result, error)
	CancelOrder(ctx context.Context, requestID uuid.UUID, cmd CancelOrderCommand) (*Result, error)
	ShipOrder(ctx context.Context, requestID uuid.UUID, cmd ShipOrderCommand) (*Result, error)
}

type orderCommandsImpl struct {
	createOrder *IdentifiedHandler[CreateOrderCommand]
	setPaid     *IdentifiedHandler[SetPaidCommand]
	cancelOrder *IdentifiedHandler[CancelOrderCommand]
	shipOrder   *IdentifiedHandler[ShipOrderCommand]
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	telemetry OrderTelemetry,
	clk clock.Clock,
	paymentCfg config.PaymentConfig,
) OrderCommands {
	return &orderCommandsImpl{
		createOrder: WithDeduplication(NewCreateOrderHandler(telemetry, clk), uow),
		setPaid:     WithDeduplication(NewSetPaidHandler(telemetry, clk, paymentCfg.ValidationDelay), uow),
		cancelOrder: WithDeduplication(NewCancelOrderHandler(telemetry, clk), uow),
		shipOrder:   WithDeduplication(NewShipOrderHandler(telemetry, clk), uow),
	}
}

func (c *orderCommandsImpl) CreateOrder(ctx context.Context, requestID uuid.UUID, cmd CreateOrderCommand) (*Result, error) {
	return c.createOrder.Execute(ctx, NewIdentified(requestID, cmd))
}

func (c *orderCommandsImpl) SetPaid(ctx context.Context, requestID uuid.UUID, cmd SetPaidCommand) (*Result, error) {
	return c.setPaid.Execute(ctx, NewIdentified(requestID, cmd))
}

func (c *orderCommandsImpl) CancelOrder(ctx context.Context, requestID uuid.UUID, cmd CancelOrderCommand) (*Result, error) {
	return c.cancelOrder.Execute(ctx, NewIdentified(requestID, cmd))
}

func (c *orderCommandsImpl) ShipOrder(ctx context.Context, requestID uuid.UUID, cmd ShipOrderCommand) (*Result, error) {
	return c.shipOrder.Execute(ctx, NewIdentified(requestID, cmd))
}
