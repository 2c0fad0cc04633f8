package queries

import (
	"context"
	"time"

	"ordering-service/internal/infra/db"
	"ordering-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OrderView struct {
	ID         uuid.UUID       `json:"id"`
	BuyerID    uuid.UUID       `json:"buyer_id"`
	Status     string          `json:"status"`
	Street     string          `json:"street"`
	City       string          `json:"city"`
	State      string          `json:"state"`
	Country    string          `json:"country"`
	ZipCode    string          `json:"zip_code"`
	CardNumber string          `json:"card_number"`
	CardHolder string          `json:"card_holder"`
	TotalCents int64           `json:"total_cents"`
	OrderDate  time.Time       `json:"order_date"`
	Items      []OrderItemView `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type OrderItemView struct {
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	DiscountCents  int64     `json:"discount_cents"`
	PictureURL     string    `json:"picture_url"`
	Units          int       `json:"units"`
}

type OrderListItem struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	ItemCount  int       `json:"item_count"`
	OrderDate  time.Time `json:"order_date"`
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]*OrderListItem, error)
}

type OrderViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByBuyerID(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

// OrderViewRepoFactory binds a read store to one transaction.
type OrderViewRepoFactory func(dbtx db.DBTX) OrderViewRepo

type orderQueriesImpl struct {
	uow     shared.UnitOfWork
	repoFor OrderViewRepoFactory
}

func NewOrderQueries(uow shared.UnitOfWork, repoFor OrderViewRepoFactory) OrderQueries {
	return &orderQueriesImpl{uow: uow, repoFor: repoFor}
}

// GetByID reads the order header and its items inside one read-only
// transaction so the two stay consistent with each other.
func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	var view *OrderView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		v, err := q.repoFor(dbtx).FindByID(ctx, id)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]*OrderListItem, error) {
	if limit <= 0 {
		limit = 50
	}

	var items []*OrderListItem
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, err := q.repoFor(dbtx).FindByBuyerID(ctx, buyerID, int32(limit))
		if err != nil {
			return err
		}
		items = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
