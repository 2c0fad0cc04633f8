package readstore

import (
	"context"
	"errors"

	"ordering-service/internal/infra"
	"ordering-service/internal/infra/db"
	"ordering-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var view queries.OrderView

	err := r.db.QueryRow(ctx, `
		SELECT o.id, o.buyer_id, o.status,
		       o.street, o.city, o.state, o.country, o.zip_code,
		       o.card_number, o.card_holder,
		       COALESCE(SUM((i.unit_price - i.discount) * i.units), 0) AS total_cents,
		       o.order_date, o.created_at, o.updated_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.id = $1
		GROUP BY o.id
	`, id).Scan(
		&view.ID, &view.BuyerID, &view.Status,
		&view.Street, &view.City, &view.State, &view.Country, &view.ZipCode,
		&view.CardNumber, &view.CardHolder,
		&view.TotalCents,
		&view.OrderDate, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find order by ID", err)
	}

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = items

	return &view, nil
}

func (r *OrderReadStore) findItems(ctx context.Context, orderID uuid.UUID) ([]queries.OrderItemView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id, product_name, unit_price, discount, picture_url, units
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find order items", err)
	}
	defer rows.Close()

	var items []queries.OrderItemView
	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(
			&item.ProductID, &item.ProductName,
			&item.UnitPriceCents, &item.DiscountCents,
			&item.PictureURL, &item.Units,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan order item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read order items", err)
	}

	return items, nil
}

func (r *OrderReadStore) FindByBuyerID(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.id, o.status,
		       COALESCE(SUM((i.unit_price - i.discount) * i.units), 0) AS total_cents,
		       COUNT(i.id) AS item_count,
		       o.order_date
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.buyer_id = $1
		GROUP BY o.id
		ORDER BY o.order_date DESC, o.id DESC
		LIMIT $2
	`, buyerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find orders by buyer", err)
	}
	defer rows.Close()

	var result []*queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(&item.ID, &item.Status, &item.TotalCents, &item.ItemCount, &item.OrderDate); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan order list item", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read order list", err)
	}

	return result, nil
}
