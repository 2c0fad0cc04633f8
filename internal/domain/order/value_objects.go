package order

import (
	"strings"
	"time"

	"ordering-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrIncompleteAddress    = errs.New("address fields must all be set")
	ErrIncompletePayment    = errs.New("payment method fields must all be set")
	ErrPaymentExpired       = errs.New("payment method is expired")
	ErrEmptyProductName     = errs.New("product name is required")
	ErrNegativeUnitPrice    = errs.New("unit price cannot be negative")
	ErrNegativeDiscount     = errs.New("discount cannot be negative")
	ErrDiscountExceedsPrice = errs.New("discount cannot exceed unit price")
	ErrInvalidUnits         = errs.New("units must be greater than zero")
)

// Money is an amount in cents.
type Money int64

func (m Money) Cents() int64 { return int64(m) }

// Dollars converts to the major currency unit for telemetry and
// display. Domain arithmetic stays in cents.
func (m Money) Dollars() float64 { return float64(m) / 100 }

// Address is immutable once constructed.
type Address struct {
	street  string
	city    string
	state   string
	country string
	zipCode string
}

func NewAddress(street, city, state, country, zipCode string) (Address, error) {
	for _, f := range []string{street, city, state, country, zipCode} {
		if strings.TrimSpace(f) == "" {
			return Address{}, ErrIncompleteAddress
		}
	}
	return Address{
		street:  street,
		city:    city,
		state:   state,
		country: country,
		zipCode: zipCode,
	}, nil
}

// ReconstructAddress rehydrates a stored address without re-running
// creation guards.
func ReconstructAddress(street, city, state, country, zipCode string) Address {
	return Address{street: street, city: city, state: state, country: country, zipCode: zipCode}
}

func (a Address) Street() string  { return a.street }
func (a Address) City() string    { return a.city }
func (a Address) State() string   { return a.state }
func (a Address) Country() string { return a.country }
func (a Address) ZipCode() string { return a.zipCode }

// PaymentMethod holds the card details of an order. The card number is
// already masked by the transport boundary; the clear form never
// reaches this type.
type PaymentMethod struct {
	cardTypeID       int
	maskedCardNumber string
	holderName       string
	expiration       time.Time
}

func NewPaymentMethod(cardTypeID int, maskedCardNumber, holderName string, expiration, now time.Time) (PaymentMethod, error) {
	if strings.TrimSpace(maskedCardNumber) == "" || strings.TrimSpace(holderName) == "" {
		return PaymentMethod{}, ErrIncompletePayment
	}
	if !expiration.After(now) {
		return PaymentMethod{}, ErrPaymentExpired
	}
	return PaymentMethod{
		cardTypeID:       cardTypeID,
		maskedCardNumber: maskedCardNumber,
		holderName:       holderName,
		expiration:       expiration,
	}, nil
}

func ReconstructPaymentMethod(cardTypeID int, maskedCardNumber, holderName string, expiration time.Time) PaymentMethod {
	return PaymentMethod{
		cardTypeID:       cardTypeID,
		maskedCardNumber: maskedCardNumber,
		holderName:       holderName,
		expiration:       expiration,
	}
}

func (p PaymentMethod) CardTypeID() int          { return p.cardTypeID }
func (p PaymentMethod) MaskedCardNumber() string { return p.maskedCardNumber }
func (p PaymentMethod) HolderName() string       { return p.holderName }
func (p PaymentMethod) Expiration() time.Time    { return p.expiration }

// Item is a single order line.
type Item struct {
	productID   uuid.UUID
	productName string
	unitPrice   Money
	discount    Money
	pictureURL  string
	units       int
}

func NewItem(productID uuid.UUID, productName string, unitPrice, discount Money, pictureURL string, units int) (Item, error) {
	if strings.TrimSpace(productName) == "" {
		return Item{}, ErrEmptyProductName
	}
	if unitPrice < 0 {
		return Item{}, ErrNegativeUnitPrice
	}
	if discount < 0 {
		return Item{}, ErrNegativeDiscount
	}
	if discount > unitPrice {
		return Item{}, ErrDiscountExceedsPrice
	}
	if units <= 0 {
		return Item{}, ErrInvalidUnits
	}
	return Item{
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		discount:    discount,
		pictureURL:  pictureURL,
		units:       units,
	}, nil
}

func ReconstructItem(productID uuid.UUID, productName string, unitPrice, discount Money, pictureURL string, units int) Item {
	return Item{
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		discount:    discount,
		pictureURL:  pictureURL,
		units:       units,
	}
}

func (i Item) ProductID() uuid.UUID { return i.productID }
func (i Item) ProductName() string  { return i.productName }
func (i Item) UnitPrice() Money     { return i.unitPrice }
func (i Item) Discount() Money      { return i.discount }
func (i Item) PictureURL() string   { return i.pictureURL }
func (i Item) Units() int           { return i.units }

// Total is (unitPrice - discount) * units.
func (i Item) Total() Money {
	return (i.unitPrice - i.discount) * Money(i.units)
}
