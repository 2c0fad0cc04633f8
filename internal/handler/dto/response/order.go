package response

import (
	"time"

	"ordering-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	BuyerID    uuid.UUID           `json:"buyerId"`
	Status     string              `json:"status"`
	Street     string              `json:"street"`
	City       string              `json:"city"`
	State      string              `json:"state"`
	Country    string              `json:"country"`
	ZipCode    string              `json:"zipCode"`
	CardNumber string              `json:"cardNumber"`
	CardHolder string              `json:"cardHolder"`
	TotalCents int64               `json:"totalCents"`
	OrderDate  time.Time           `json:"orderDate"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

type OrderItemResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	DiscountCents  int64     `json:"discountCents"`
	PictureURL     string    `json:"pictureUrl"`
	Units          int       `json:"units"`
}

type OrderListResponse struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	ItemCount  int       `json:"itemCount"`
	OrderDate  time.Time `json:"orderDate"`
}

// CommandAcceptedResponse acknowledges a write command. Duplicate is
// true when the request id was already processed and the stored
// outcome was returned.
type CommandAcceptedResponse struct {
	OrderID   uuid.UUID `json:"orderId"`
	Duplicate bool      `json:"duplicate"`
}

func FromOrderView(rm *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromOrderListItem(rm *queries.OrderListItem) (*OrderListResponse, error) {
	var resp OrderListResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}
