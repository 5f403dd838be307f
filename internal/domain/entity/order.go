// Package entity defines the core business entities of the product catalog.
package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/error"
)

// Order is an immutable purchase snapshot: one referenced product, a fixed
// quantity and a total computed once at construction. Later price changes
// on the referenced product never reprice the order.
type Order struct {
	id          uuid.UUID
	name        string
	description string
	product     Sellable
	quantity    int
	totalPrice  decimal.Decimal
}

// NewOrder validates and creates an Order. The product is referenced, not
// owned; the quantity must be strictly positive.
func NewOrder(name, description string, product Sellable, quantity int) (*Order, error) {
	if product == nil {
		return nil, domainerror.NewTypeMismatchError(
			domainerror.ErrCodeOrderProductMissing, "Product", "nil")
	}
	if quantity <= 0 {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeOrderQuantity, "quantity",
			"количество в заказе должно быть положительным")
	}

	o := &Order{
		id:          uuid.New(),
		name:        name,
		description: description,
		product:     product,
		quantity:    quantity,
		totalPrice:  product.Price().Mul(decimal.NewFromInt(int64(quantity))),
	}
	notifyCreated("Order", name, description, product.Name(), quantity)
	return o, nil
}

// ID returns the order's identity.
func (o *Order) ID() uuid.UUID { return o.id }

// Name returns the order name.
func (o *Order) Name() string { return o.name }

// Description returns the order description.
func (o *Order) Description() string { return o.description }

// Product returns the referenced product.
func (o *Order) Product() Sellable { return o.product }

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int { return o.quantity }

// TotalPrice returns the total frozen at construction.
func (o *Order) TotalPrice() decimal.Decimal { return o.totalPrice }

// String renders the display form.
func (o *Order) String() string {
	return fmt.Sprintf("%s, %d шт. на сумму %s руб.", o.name, o.quantity, o.totalPrice)
}
