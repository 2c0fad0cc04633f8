package request

import (
	"time"

	"ordering-service/internal/pkg/mask"
	"ordering-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Country string `json:"country" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`

	CardTypeID     int       `json:"card_type_id" binding:"required"`
	CardNumber     string    `json:"card_number" binding:"required"`
	CardHolder     string    `json:"card_holder" binding:"required"`
	CardExpiration time.Time `json:"card_expiration" binding:"required"`

	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ProductID      uuid.UUID `json:"product_id" binding:"required"`
	ProductName    string    `json:"product_name" binding:"required"`
	UnitPriceCents int64     `json:"unit_price_cents" binding:"min=0"`
	DiscountCents  int64     `json:"discount_cents" binding:"min=0"`
	PictureURL     string    `json:"picture_url,omitempty"`
	Units          int       `json:"units" binding:"required,min=1"`
}

// ToCommand masks the card number before it leaves the transport
// layer; nothing downstream ever sees the full PAN.
func (r CreateOrderRequest) ToCommand(buyerID uuid.UUID, buyerName string) commands.CreateOrderCommand {
	items := make([]commands.CreateOrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.CreateOrderItem{
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			UnitPriceCents: it.UnitPriceCents,
			DiscountCents:  it.DiscountCents,
			PictureURL:     it.PictureURL,
			Units:          it.Units,
		})
	}

	return commands.CreateOrderCommand{
		BuyerID:        buyerID,
		BuyerName:      buyerName,
		Street:         r.Street,
		City:           r.City,
		State:          r.State,
		Country:        r.Country,
		ZipCode:        r.ZipCode,
		CardTypeID:     r.CardTypeID,
		CardNumber:     mask.Value(r.CardNumber),
		CardHolder:     r.CardHolder,
		CardExpiration: r.CardExpiration,
		Items:          items,
	}
}
