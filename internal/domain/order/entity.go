package order

import (
	"time"

	"ordering-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoItems          = errs.New("order requires at least one item")
	ErrValidationNotDue = errs.New("only a submitted order can await validation")
	ErrStockNotDue      = errs.New("only an order awaiting validation can confirm stock")
	ErrPaymentRefused   = errs.New("order cannot be paid in its current state")
	ErrCancelRefused    = errs.New("a paid or shipped order cannot be cancelled")
	ErrShipRefused      = errs.New("only a paid order can be shipped")
)

// Order is the aggregate root of the ordering domain. All fields are
// unexported: state changes only through the transition methods, which
// is the enforcement boundary for every invariant.
type Order struct {
	id        uuid.UUID
	buyerID   uuid.UUID
	status    Status
	address   Address
	payment   PaymentMethod
	items     []Item
	orderDate time.Time
	version   int32
}

// NewOrder builds a Submitted order. Address, payment and items must
// already have passed their own constructors; NewOrder only enforces
// the aggregate-level guard that at least one item exists.
func NewOrder(buyerID uuid.UUID, address Address, payment PaymentMethod, items []Item, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	return &Order{
		id:        uuid.New(),
		buyerID:   buyerID,
		status:    StatusSubmitted,
		address:   address,
		payment:   payment,
		items:     append([]Item(nil), items...),
		orderDate: now,
	}, nil
}

// Reconstruct rehydrates a stored aggregate without re-running the
// creation guards.
func Reconstruct(
	id, buyerID uuid.UUID,
	status Status,
	address Address,
	payment PaymentMethod,
	items []Item,
	orderDate time.Time,
	version int32,
) *Order {
	return &Order{
		id:        id,
		buyerID:   buyerID,
		status:    status,
		address:   address,
		payment:   payment,
		items:     items,
		orderDate: orderDate,
		version:   version,
	}
}

// SetAwaitingValidation marks the order as waiting for stock
// validation. Legal only from Submitted.
func (o *Order) SetAwaitingValidation() error {
	if o.status != StatusSubmitted {
		return ErrValidationNotDue
	}
	o.status = StatusAwaitingValidation
	return nil
}

// SetStockConfirmed records that every line item is in stock. Legal
// only from AwaitingValidation.
func (o *Order) SetStockConfirmed() error {
	if o.status != StatusAwaitingValidation {
		return ErrStockNotDue
	}
	o.status = StatusStockConfirmed
	return nil
}

// SetPaid transitions to Paid from any non-terminal pre-payment state.
// Reapplying to an order already Paid is a no-op: the domain stays
// idempotent even if a duplicate slips past the deduplication layer.
func (o *Order) SetPaid() error {
	switch o.status {
	case StatusPaid:
		return nil
	case StatusSubmitted, StatusAwaitingValidation, StatusStockConfirmed:
		o.status = StatusPaid
		return nil
	default:
		return ErrPaymentRefused
	}
}

// Cancel moves the order to Cancelled. Refused once the order is Paid
// or Shipped. Cancelling an already cancelled order is a no-op.
func (o *Order) Cancel() error {
	switch o.status {
	case StatusCancelled:
		return nil
	case StatusPaid, StatusShipped:
		return ErrCancelRefused
	default:
		o.status = StatusCancelled
		return nil
	}
}

// Ship moves the order to Shipped. Legal only from Paid.
func (o *Order) Ship() error {
	if o.status != StatusPaid {
		return ErrShipRefused
	}
	o.status = StatusShipped
	return nil
}

// Total is always recomputed from the line items; it is never stored.
func (o *Order) Total() Money {
	var total Money
	for _, it := range o.items {
		total += it.Total()
	}
	return total
}

func (o *Order) ItemCount() int {
	count := 0
	for _, it := range o.items {
		count += it.Units()
	}
	return count
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) BuyerID() uuid.UUID     { return o.buyerID }
func (o *Order) Status() Status         { return o.status }
func (o *Order) Address() Address       { return o.address }
func (o *Order) Payment() PaymentMethod { return o.payment }
func (o *Order) OrderDate() time.Time   { return o.orderDate }
func (o *Order) Version() int32         { return o.version }

func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}
