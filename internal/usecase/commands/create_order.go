package commands

import (
	"context"
	"encoding/json"

	"ordering-service/internal/domain/order"
	"ordering-service/internal/pkg/clock"
	"ordering-service/internal/pkg/errs"
	"ordering-service/internal/usecase/shared"
)

type createOrderHandler struct {
	telemetry OrderTelemetry
	clock     clock.Clock
}

func NewCreateOrderHandler(telemetry OrderTelemetry, clk clock.Clock) TxHandler[CreateOrderCommand] {
	return &createOrderHandler{telemetry: telemetry, clock: clk}
}

func (h *createOrderHandler) CommandType() string {
	return CommandTypeCreateOrder
}

func (h *createOrderHandler) Handle(ctx context.Context, tx shared.Tx, cmd CreateOrderCommand) (*Outcome, error) {
	now := h.clock.Now()

	entity, err := h.buildOrder(cmd)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOrderData)
	}

	if err := tx.Orders().Create(ctx, entity); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(order.StartedEvent{
		OrderID:   entity.ID(),
		BuyerID:   entity.BuyerID(),
		Timestamp: now,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode order started event")
	}
	if err := tx.Outbox().Enqueue(ctx, entity.ID(), order.EventTypeOrderStarted, payload); err != nil {
		return nil, err
	}

	orderID := entity.ID()
	buyerID := entity.BuyerID()
	totalCents := entity.Total().Cents()
	itemCount := entity.ItemCount()

	return &Outcome{
		OrderID: orderID,
		PostCommit: func(ctx context.Context) {
			h.telemetry.OrderPlaced(ctx, orderID, buyerID, cmd.BuyerName, totalCents, itemCount)
		},
	}, nil
}

func (h *createOrderHandler) buildOrder(cmd CreateOrderCommand) (*order.Order, error) {
	now := h.clock.Now()

	address, err := order.NewAddress(cmd.Street, cmd.City, cmd.State, cmd.Country, cmd.ZipCode)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPaymentMethod(cmd.CardTypeID, cmd.CardNumber, cmd.CardHolder, cmd.CardExpiration, now)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		item, err := order.NewItem(
			it.ProductID, it.ProductName,
			order.Money(it.UnitPriceCents), order.Money(it.DiscountCents),
			it.PictureURL, it.Units,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(cmd.BuyerID, address, payment, items, now)
}
