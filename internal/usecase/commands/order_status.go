package commands

import (
	"context"
	"encoding/json"
	"time"

	"ordering-service/internal/domain/order"
	"ordering-service/internal/infra"
	"ordering-service/internal/pkg/clock"
	"ordering-service/internal/pkg/errs"
	"ordering-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// statusTransition loads the aggregate, applies one transition method
// and persists the result with the status-changed event. A transition
// that leaves the status untouched (the domain's idempotent no-ops)
// writes nothing and emits nothing.
type statusTransition struct {
	telemetry OrderTelemetry
	clock     clock.Clock
}

func (s *statusTransition) apply(
	ctx context.Context,
	tx shared.Tx,
	orderID uuid.UUID,
	transition func(*order.Order) error,
) (*Outcome, error) {
	entity, err := tx.Orders().FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, err
	}

	from := entity.Status()
	if err := transition(entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainRuleViolation)
	}
	to := entity.Status()

	if from == to {
		return &Outcome{OrderID: entity.ID()}, nil
	}

	if err := tx.Orders().Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrPersistenceConflict)
		}
		return nil, err
	}

	payload, err := json.Marshal(order.StatusChangedEvent{
		OrderID:   entity.ID(),
		Status:    to,
		Timestamp: s.clock.Now(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode status changed event")
	}
	if err := tx.Outbox().Enqueue(ctx, entity.ID(), order.EventTypeOrderStatusChanged, payload); err != nil {
		return nil, err
	}

	resolvedID := entity.ID()
	return &Outcome{
		OrderID: resolvedID,
		PostCommit: func(ctx context.Context) {
			s.telemetry.OrderStatusChanged(ctx, resolvedID, from.String(), to.String())
		},
	}, nil
}

type setPaidHandler struct {
	statusTransition
	validationDelay time.Duration
}

// NewSetPaidHandler builds the payment confirmation handler. The delay
// stands in for the acquirer round trip; it runs inside the dedup
// claim, so a concurrent retry waits on the claim rather than paying
// twice.
func NewSetPaidHandler(telemetry OrderTelemetry, clk clock.Clock, validationDelay time.Duration) TxHandler[SetPaidCommand] {
	return &setPaidHandler{
		statusTransition: statusTransition{telemetry: telemetry, clock: clk},
		validationDelay:  validationDelay,
	}
}

func (h *setPaidHandler) CommandType() string {
	return CommandTypeSetPaid
}

func (h *setPaidHandler) Handle(ctx context.Context, tx shared.Tx, cmd SetPaidCommand) (*Outcome, error) {
	if h.validationDelay > 0 {
		timer := time.NewTimer(h.validationDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, errs.Mark(ctx.Err(), errs.ErrCancelled)
		case <-timer.C:
		}
	}

	return h.apply(ctx, tx, cmd.OrderID, (*order.Order).SetPaid)
}

type cancelOrderHandler struct {
	statusTransition
}

func NewCancelOrderHandler(telemetry OrderTelemetry, clk clock.Clock) TxHandler[CancelOrderCommand] {
	return &cancelOrderHandler{statusTransition{telemetry: telemetry, clock: clk}}
}

func (h *cancelOrderHandler) CommandType() string {
	return CommandTypeCancelOrder
}

func (h *cancelOrderHandler) Handle(ctx context.Context, tx shared.Tx, cmd CancelOrderCommand) (*Outcome, error) {
	return h.apply(ctx, tx, cmd.OrderID, (*order.Order).Cancel)
}

type shipOrderHandler struct {
	statusTransition
}

func NewShipOrderHandler(telemetry OrderTelemetry, clk clock.Clock) TxHandler[ShipOrderCommand] {
	return &shipOrderHandler{statusTransition{telemetry: telemetry, clock: clk}}
}

func (h *shipOrderHandler) CommandType() string {
	return CommandTypeShipOrder
}

func (h *shipOrderHandler) Handle(ctx context.Context, tx shared.Tx, cmd ShipOrderCommand) (*Outcome, error) {
	return h.apply(ctx, tx, cmd.OrderID, (*order.Order).Ship)
}
