package builder

import (
	"time"

	"ordering-service/internal/domain/order"
	"ordering-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type ItemSpec struct {
	ProductID     uuid.UUID
	ProductName   string
	UnitPriceCent int64
	DiscountCent  int64
	PictureURL    string
	Units         int
}

// OrderBuilder assembles a valid create-order input and lets tests
// mutate single fields to probe each guard.
type OrderBuilder struct {
	BuyerID        uuid.UUID
	Street         string
	City           string
	State          string
	Country        string
	ZipCode        string
	CardTypeID     int
	CardNumber     string
	CardHolder     string
	CardExpiration time.Time
	Items          []ItemSpec
	Now            time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &OrderBuilder{
		BuyerID:        uuid.New(),
		Street:         "15 Market St",
		City:           "Seattle",
		State:          "WA",
		Country:        "USA",
		ZipCode:        "98052",
		CardTypeID:     1,
		CardNumber:     "401288******1881",
		CardHolder:     "Ada Lovelace",
		CardExpiration: now.AddDate(2, 0, 0),
		Items: []ItemSpec{
			{ProductID: uuid.New(), ProductName: "Cup", UnitPriceCent: 1000, Units: 2},
			{ProductID: uuid.New(), ProductName: "Mug", UnitPriceCent: 500, Units: 1},
		},
		Now: now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	address, err := order.NewAddress(b.Street, b.City, b.State, b.Country, b.ZipCode)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPaymentMethod(b.CardTypeID, b.CardNumber, b.CardHolder, b.CardExpiration, b.Now)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(b.Items))
	for _, spec := range b.Items {
		item, err := order.NewItem(
			spec.ProductID,
			spec.ProductName,
			order.Money(spec.UnitPriceCent),
			order.Money(spec.DiscountCent),
			spec.PictureURL,
			spec.Units,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(b.BuyerID, address, payment, items, b.Now)
}

func (b *OrderBuilder) BuildCommand() commands.CreateOrderCommand {
	items := make([]commands.CreateOrderItem, 0, len(b.Items))
	for _, spec := range b.Items {
		items = append(items, commands.CreateOrderItem{
			ProductID:      spec.ProductID,
			ProductName:    spec.ProductName,
			UnitPriceCents: spec.UnitPriceCent,
			DiscountCents:  spec.DiscountCent,
			PictureURL:     spec.PictureURL,
			Units:          spec.Units,
		})
	}

	return commands.CreateOrderCommand{
		BuyerID:        b.BuyerID,
		BuyerName:      "ada",
		Street:         b.Street,
		City:           b.City,
		State:          b.State,
		Country:        b.Country,
		ZipCode:        b.ZipCode,
		CardTypeID:     b.CardTypeID,
		CardNumber:     b.CardNumber,
		CardHolder:     b.CardHolder,
		CardExpiration: b.CardExpiration,
		Items:          items,
	}
}
