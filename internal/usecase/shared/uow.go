package shared

import (
	"context"
	"time"

	"ordering-service/internal/domain/order"
	"ordering-service/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

// Tx exposes the repositories bound to one open transaction. The
// deduplication record, the aggregate write and the outbox event all
// commit or roll back together.
type Tx interface {
	Orders() OrderRepository
	Requests() RequestRepository
	Outbox() OutboxRepository
	DB() db.DBTX
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	// Update persists the aggregate guarded by its version; a stale
	// version surfaces as a CONFLICT repository error.
	Update(ctx context.Context, o *order.Order) error
}

// RequestRecord is the durable proof that a (command kind, request id)
// pair has been processed, with its outcome.
type RequestRecord struct {
	CommandType string
	RequestID   uuid.UUID
	Succeeded   bool
	OrderID     *uuid.UUID
	CreatedAt   time.Time
}

type RequestRepository interface {
	// TryInsert claims the key; it reports false when another attempt
	// already holds it.
	TryInsert(ctx context.Context, commandType string, requestID uuid.UUID) (bool, error)
	Find(ctx context.Context, commandType string, requestID uuid.UUID) (*RequestRecord, error)
	MarkSucceeded(ctx context.Context, commandType string, requestID, orderID uuid.UUID) error
}

type IntegrationEvent struct {
	ID          uuid.UUID
	AggregateID uuid.UUID
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, aggregateID uuid.UUID, eventType string, payload []byte) error
	ClaimPending(ctx context.Context, limit int) ([]IntegrationEvent, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}
