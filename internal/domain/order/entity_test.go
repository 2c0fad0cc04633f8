//go:build unit

package order_test

import (
	"testing"

	"ordering-service/internal/domain/order"
	"ordering-service/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(order.Order{}, order.Address{}, order.PaymentMethod{}, order.Item{}),
}

type testCase struct {
	name   string
	mutate func(*builder.OrderBuilder)
	errIs  error
}

func TestNewOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, order.StatusSubmitted, actual.Status())
		assert.False(t, actual.OrderDate().IsZero())
		assert.Len(t, actual.Items(), 2)
		assert.Equal(t, 3, actual.ItemCount())
	})

	t.Run("total is recomputed from line items", func(t *testing.T) {
		// 2 x 10.00 + 1 x 5.00 = 25.00
		actual, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, order.Money(2500), actual.Total())
		assert.Equal(t, 25.00, actual.Total().Dollars())
	})

	t.Run("discount reduces total per unit", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items[0].DiscountCent = 250
		}).BuildDomain()
		require.NoError(t, err)
		// 2 x (10.00 - 2.50) + 1 x 5.00 = 20.00
		assert.Equal(t, order.Money(2000), actual.Total())
	})

	t.Run("creation guards", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no items",
				mutate: func(b *builder.OrderBuilder) { b.Items = nil },
				errIs:  order.ErrNoItems,
			},
			{
				name:   "zero units",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].Units = 0 },
				errIs:  order.ErrInvalidUnits,
			},
			{
				name:   "negative units",
				mutate: func(b *builder.OrderBuilder) { b.Items[1].Units = -1 },
				errIs:  order.ErrInvalidUnits,
			},
			{
				name:   "discount above unit price",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].DiscountCent = 1001 },
				errIs:  order.ErrDiscountExceedsPrice,
			},
			{
				name:   "discount equal to unit price is allowed",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].DiscountCent = 1000 },
			},
			{
				name:   "negative discount",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].DiscountCent = -1 },
				errIs:  order.ErrNegativeDiscount,
			},
			{
				name:   "negative unit price",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].UnitPriceCent = -100 },
				errIs:  order.ErrNegativeUnitPrice,
			},
			{
				name:   "empty product name",
				mutate: func(b *builder.OrderBuilder) { b.Items[0].ProductName = "  " },
				errIs:  order.ErrEmptyProductName,
			},
			{
				name:   "missing street",
				mutate: func(b *builder.OrderBuilder) { b.Street = "" },
				errIs:  order.ErrIncompleteAddress,
			},
			{
				name:   "missing country",
				mutate: func(b *builder.OrderBuilder) { b.Country = " " },
				errIs:  order.ErrIncompleteAddress,
			},
			{
				name:   "missing card holder",
				mutate: func(b *builder.OrderBuilder) { b.CardHolder = "" },
				errIs:  order.ErrIncompletePayment,
			},
			{
				name:   "missing card number",
				mutate: func(b *builder.OrderBuilder) { b.CardNumber = "" },
				errIs:  order.ErrIncompletePayment,
			},
			{
				name:   "expired card",
				mutate: func(b *builder.OrderBuilder) { b.CardExpiration = b.Now.AddDate(0, -1, 0) },
				errIs:  order.ErrPaymentExpired,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		o1, err1 := builder.NewOrderBuilder().BuildDomain()
		o2, err2 := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, o1.ID(), o2.ID())
	})

	t.Run("reconstruct restores an equal aggregate", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		restored := order.Reconstruct(
			o.ID(), o.BuyerID(), o.Status(),
			o.Address(), o.Payment(), o.Items(),
			o.OrderDate(), o.Version(),
		)

		if diff := cmp.Diff(o, restored, cmpOpts...); diff != "" {
			t.Errorf("Order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("items accessor returns a copy", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		items := o.Items()
		items[0] = order.Item{}
		assert.Equal(t, order.Money(2500), o.Total())
	})
}

func TestTransitions(t *testing.T) {
	t.Run("happy path submitted to shipped", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.SetAwaitingValidation())
		assert.Equal(t, order.StatusAwaitingValidation, o.Status())

		require.NoError(t, o.SetStockConfirmed())
		assert.Equal(t, order.StatusStockConfirmed, o.Status())

		require.NoError(t, o.SetPaid())
		assert.Equal(t, order.StatusPaid, o.Status())

		require.NoError(t, o.Ship())
		assert.Equal(t, order.StatusShipped, o.Status())
	})

	t.Run("set paid is legal from any pre-payment state", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusSubmitted,
			order.StatusAwaitingValidation,
			order.StatusStockConfirmed,
		} {
			o := newOrderIn(t, status)
			require.NoError(t, o.SetPaid())
			assert.Equal(t, order.StatusPaid, o.Status())
		}
	})

	t.Run("set paid twice is a no-op", func(t *testing.T) {
		o := newOrderIn(t, order.StatusPaid)
		require.NoError(t, o.SetPaid())
		assert.Equal(t, order.StatusPaid, o.Status())
	})

	t.Run("set paid refused on cancelled order", func(t *testing.T) {
		o := newOrderIn(t, order.StatusCancelled)
		assert.ErrorIs(t, o.SetPaid(), order.ErrPaymentRefused)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("set paid refused on shipped order", func(t *testing.T) {
		o := newOrderIn(t, order.StatusShipped)
		assert.ErrorIs(t, o.SetPaid(), order.ErrPaymentRefused)
	})

	t.Run("cancel is legal before payment", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusSubmitted,
			order.StatusAwaitingValidation,
			order.StatusStockConfirmed,
		} {
			o := newOrderIn(t, status)
			require.NoError(t, o.Cancel())
			assert.Equal(t, order.StatusCancelled, o.Status())
		}
	})

	t.Run("cancel refused on paid order", func(t *testing.T) {
		o := newOrderIn(t, order.StatusPaid)
		assert.ErrorIs(t, o.Cancel(), order.ErrCancelRefused)
		assert.Equal(t, order.StatusPaid, o.Status())
	})

	t.Run("cancel refused on shipped order", func(t *testing.T) {
		o := newOrderIn(t, order.StatusShipped)
		assert.ErrorIs(t, o.Cancel(), order.ErrCancelRefused)
	})

	t.Run("cancel twice is a no-op", func(t *testing.T) {
		o := newOrderIn(t, order.StatusCancelled)
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("ship refused unless paid", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusSubmitted,
			order.StatusAwaitingValidation,
			order.StatusStockConfirmed,
			order.StatusShipped,
			order.StatusCancelled,
		} {
			o := newOrderIn(t, status)
			assert.ErrorIs(t, o.Ship(), order.ErrShipRefused, "status %s", status)
		}
	})

	t.Run("awaiting validation only from submitted", func(t *testing.T) {
		o := newOrderIn(t, order.StatusPaid)
		assert.ErrorIs(t, o.SetAwaitingValidation(), order.ErrValidationNotDue)
	})

	t.Run("stock confirmed only from awaiting validation", func(t *testing.T) {
		o := newOrder(t)
		assert.ErrorIs(t, o.SetStockConfirmed(), order.ErrStockNotDue)
	})
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := builder.NewOrderBuilder().BuildDomain()
	require.NoError(t, err)
	return o
}

// newOrderIn walks a fresh order to the wanted status through the
// aggregate's own transitions.
func newOrderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newOrder(t)

	switch status {
	case order.StatusSubmitted:
	case order.StatusAwaitingValidation:
		require.NoError(t, o.SetAwaitingValidation())
	case order.StatusStockConfirmed:
		require.NoError(t, o.SetAwaitingValidation())
		require.NoError(t, o.SetStockConfirmed())
	case order.StatusPaid:
		require.NoError(t, o.SetPaid())
	case order.StatusShipped:
		require.NoError(t, o.SetPaid())
		require.NoError(t, o.Ship())
	case order.StatusCancelled:
		require.NoError(t, o.Cancel())
	}

	require.Equal(t, status, o.Status())
	return o
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewOrderBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
