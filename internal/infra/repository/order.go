package repository

import (
	"context"
	"errors"
	"time"

	"ordering-service/internal/domain/order"
	"ordering-service/internal/infra"
	"ordering-service/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	addr := o.Address()
	pay := o.Payment()

	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (
			id, buyer_id, status,
			street, city, state, country, zip_code,
			card_type_id, card_number, card_holder, card_expiration,
			order_date, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 1)
	`,
		o.ID(), o.BuyerID(), o.Status().String(),
		addr.Street(), addr.City(), addr.State(), addr.Country(), addr.ZipCode(),
		pay.CardTypeID(), pay.MaskedCardNumber(), pay.HolderName(), pay.Expiration(),
		o.OrderDate(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "order already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert order", err)
	}

	for _, item := range o.Items() {
		_, err = r.db.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, product_name, unit_price, discount, picture_url, units)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			uuid.New(), o.ID(), item.ProductID(), item.ProductName(),
			item.UnitPrice().Cents(), item.Discount().Cents(), item.PictureURL(), item.Units(),
		)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert order item", err)
		}
	}

	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var (
		orderID, buyerID                      uuid.UUID
		status                                string
		street, city, state, country, zipCode string
		cardTypeID                            int
		cardNumber, cardHolder                string
		cardExpiration, orderDate             time.Time
		version                               int32
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, buyer_id, status,
		       street, city, state, country, zip_code,
		       card_type_id, card_number, card_holder, card_expiration,
		       order_date, version
		FROM orders
		WHERE id = $1
	`, id).Scan(
		&orderID, &buyerID, &status,
		&street, &city, &state, &country, &zipCode,
		&cardTypeID, &cardNumber, &cardHolder, &cardExpiration,
		&orderDate, &version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query order", err)
	}

	items, err := r.findItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return order.Reconstruct(
		orderID, buyerID,
		order.Status(status),
		order.ReconstructAddress(street, city, state, country, zipCode),
		order.ReconstructPaymentMethod(cardTypeID, cardNumber, cardHolder, cardExpiration),
		items,
		orderDate,
		version,
	), nil
}

func (r *OrderRepository) findItems(ctx context.Context, orderID uuid.UUID) ([]order.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id, product_name, unit_price, discount, picture_url, units
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query order items", err)
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var (
			productID           uuid.UUID
			productName         string
			unitPrice, discount int64
			pictureURL          string
			units               int
		)
		if err := rows.Scan(&productID, &productName, &unitPrice, &discount, &pictureURL, &units); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan order item", err)
		}
		items = append(items, order.ReconstructItem(
			productID, productName,
			order.Money(unitPrice), order.Money(discount),
			pictureURL, units,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read order items", err)
	}

	return items, nil
}

// Update writes the aggregate's mutable state guarded by its version.
// A concurrent writer bumps the version first and this update matches
// zero rows, which reports a conflict instead of silently overwriting.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1, version = version + 1, updated_at = now()
		WHERE id = $2 AND version = $3
	`, o.Status().String(), o.ID(), o.Version())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "order was modified concurrently", nil)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
