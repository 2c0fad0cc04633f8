package telemetry

import (
	"context"
	"log/slog"

	"ordering-service/internal/pkg/mask"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "ordering-service"

// OrderMetrics is the business instrument set of the ordering pipeline.
// Buyer-identifying attribute values are masked before they are
// attached; raw identifiers never leave the process through telemetry.
type OrderMetrics struct {
	ordersPlaced      metric.Int64Counter
	ordersActive      metric.Int64UpDownCounter
	orderValue        metric.Float64Histogram
	orderRevenue      metric.Float64Counter
	ordersByUser      metric.Int64Counter
	statusTransitions metric.Int64Counter
}

func NewOrderMetrics() (*OrderMetrics, error) {
	meter := otel.Meter(meterName)

	ordersPlaced, err := meter.Int64Counter("orders_placed_total",
		metric.WithDescription("Orders accepted by the pipeline"))
	if err != nil {
		return nil, err
	}

	ordersActive, err := meter.Int64UpDownCounter("orders_active",
		metric.WithDescription("Orders placed and not yet paid or cancelled"))
	if err != nil {
		return nil, err
	}

	orderValue, err := meter.Float64Histogram("order_value",
		metric.WithDescription("Order total in the major currency unit"),
		metric.WithExplicitBucketBoundaries(10, 25, 50, 100, 250, 500, 1000, 2500))
	if err != nil {
		return nil, err
	}

	orderRevenue, err := meter.Float64Counter("order_revenue_total",
		metric.WithDescription("Cumulative value of accepted orders"))
	if err != nil {
		return nil, err
	}

	ordersByUser, err := meter.Int64Counter("orders_by_user_total",
		metric.WithDescription("Orders accepted per buyer, buyer attributes masked"))
	if err != nil {
		return nil, err
	}

	statusTransitions, err := meter.Int64Counter("order_status_transitions_total",
		metric.WithDescription("Order lifecycle transitions by source and target status"))
	if err != nil {
		return nil, err
	}

	return &OrderMetrics{
		ordersPlaced:      ordersPlaced,
		ordersActive:      ordersActive,
		orderValue:        orderValue,
		orderRevenue:      orderRevenue,
		ordersByUser:      ordersByUser,
		statusTransitions: statusTransitions,
	}, nil
}

func (m *OrderMetrics) OrderPlaced(ctx context.Context, orderID, buyerID uuid.UUID, buyerName string, totalCents int64, itemCount int) {
	value := float64(totalCents) / 100

	m.ordersPlaced.Add(ctx, 1)
	m.ordersActive.Add(ctx, 1)
	m.orderValue.Record(ctx, value)
	m.orderRevenue.Add(ctx, value)
	m.ordersByUser.Add(ctx, 1, metric.WithAttributes(
		attribute.String("buyer_id", mask.UUID(buyerID.String())),
		attribute.String("buyer_name", mask.Value(buyerName)),
	))

	slog.Info("order placed",
		"order_id", orderID,
		"buyer_id", mask.UUID(buyerID.String()),
		"buyer_name", mask.Value(buyerName),
		"total_cents", totalCents,
		"item_count", itemCount)
}

func (m *OrderMetrics) OrderStatusChanged(ctx context.Context, orderID uuid.UUID, from, to string) {
	m.statusTransitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))

	// Payment confirmation or cancellation ends the active phase; ship
	// only follows paid, so each order decrements exactly once.
	if to == "paid" || to == "cancelled" {
		m.ordersActive.Add(ctx, -1)
	}

	slog.Info("order status changed",
		"order_id", orderID,
		"from", from,
		"to", to)
}
