// Package entity defines the core business entities of the product catalog.
package entity

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/error"
)

// descriptionLimit is the rune budget of the long display form before the
// description is cut with an ellipsis.
const descriptionLimit = 20

// requiredProductFields are the keys a product payload must carry for
// NewProductFromData.
var requiredProductFields = []string{"name", "description", "price", "quantity"}

// Product is a sellable catalog item. The price is guarded: after
// construction it changes only through SetPrice.
type Product struct {
	id          uuid.UUID
	name        string
	description string
	price       decimal.Decimal
	quantity    int
	kind        Kind
}

// NewProduct validates and creates a base Product. The name is stored
// trimmed and the quantity must be strictly positive.
func NewProduct(name, description string, price decimal.Decimal, quantity int) (*Product, error) {
	p, err := newProduct(name, description, price, quantity, KindProduct)
	if err != nil {
		return nil, err
	}
	notifyCreated("Product", name, description, price, quantity)
	return p, nil
}

func newProduct(name, description string, price decimal.Decimal, quantity int, kind Kind) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeProductNameEmpty, "name",
			"название товара должно быть непустой строкой")
	}
	if price.IsNegative() {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeProductPriceNegative, "price",
			"цена не может быть отрицательной")
	}
	if quantity <= 0 {
		return nil, domainerror.NewZeroQuantityError()
	}

	return &Product{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		description: description,
		price:       price,
		quantity:    quantity,
		kind:        kind,
	}, nil
}

// ID returns the product's immutable identity.
func (p *Product) ID() uuid.UUID { return p.id }

// Name returns the trimmed product name.
func (p *Product) Name() string { return p.name }

// Description returns the product description.
func (p *Product) Description() string { return p.description }

// Price returns the current price.
func (p *Product) Price() decimal.Decimal { return p.price }

// Quantity returns the stock quantity.
func (p *Product) Quantity() int { return p.quantity }

// Kind returns the variant discriminant.
func (p *Product) Kind() Kind { return p.kind }

// SetPrice applies the guarded price-mutation protocol. A non-positive
// price is rejected without error. A reduction requires an affirmative
// answer from confirm; a nil or declining collaborator leaves the price
// unchanged. The return value reports whether the stored price changed.
func (p *Product) SetPrice(newPrice decimal.Decimal, confirm ConfirmFunc) bool {
	if !newPrice.IsPositive() {
		slog.Warn("Цена не должна быть нулевая или отрицательная",
			"product", p.name, "price", newPrice)
		return false
	}
	if newPrice.LessThan(p.price) {
		prompt := fmt.Sprintf("Вы уверены, что хотите снизить цену с %s до %s? (y/n): ",
			p.price, newPrice)
		if confirm == nil || !confirm(prompt) {
			slog.Info("Изменение цены отменено", "product", p.name)
			return false
		}
	}
	p.price = newPrice
	return true
}

// Add combines two products into the scalar price_a*qty_a + price_b*qty_b.
// It is defined only between identical concrete variants: sharing the
// Sellable contract is not enough.
func (p *Product) Add(other Sellable) (decimal.Decimal, error) {
	if other == nil {
		return decimal.Zero, domainerror.NewTypeMismatchError(
			domainerror.ErrCodeProductTypeMismatch, string(p.kind), "nil")
	}
	if other.Kind() != p.kind {
		return decimal.Zero, domainerror.NewTypeMismatchError(
			domainerror.ErrCodeProductTypeMismatch, string(p.kind), string(other.Kind()))
	}
	return p.stockValue().Add(stockValue(other)), nil
}

func (p *Product) stockValue() decimal.Decimal {
	return p.price.Mul(decimal.NewFromInt(int64(p.quantity)))
}

func stockValue(s Sellable) decimal.Decimal {
	return s.Price().Mul(decimal.NewFromInt(int64(s.Quantity())))
}

// String renders the short display form.
func (p *Product) String() string {
	return fmt.Sprintf("%s, %s руб. Остаток: %d шт.", p.name, p.price, p.quantity)
}

// Detailed renders the long display form, with the description truncated
// to 20 runes.
func (p *Product) Detailed() string {
	return fmt.Sprintf("%s, %s, %s руб. Остаток: %d шт.",
		p.name, truncate(p.description, descriptionLimit), p.price, p.quantity)
}

// GoString renders the constructor-call debug form.
func (p *Product) GoString() string {
	return fmt.Sprintf("Product(name='%s', description='%s', price=%s, quantity=%d)",
		p.name, p.description, p.price, p.quantity)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// NewProductFromData builds a Product from a decoded payload with all four
// required fields. When existing contains a product with the exact same
// name, the payload merges into the first match: quantities are added and
// the higher price wins. The mutated existing product is returned and no
// second entity enters the catalog. Otherwise the new product is returned
// and the caller is responsible for appending it anywhere.
func NewProductFromData(data map[string]any, existing []*Product) (*Product, error) {
	for _, field := range requiredProductFields {
		if _, ok := data[field]; !ok {
			return nil, domainerror.NewValidationError(
				domainerror.ErrCodeProductFieldsMissing, field,
				"отсутствуют обязательные поля в данных продукта")
		}
	}

	name, ok := data["name"].(string)
	if !ok {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeProductFieldType, "name",
			"название товара должно быть строкой")
	}
	description, ok := data["description"].(string)
	if !ok {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeProductFieldType, "description",
			"описание должно быть строкой")
	}
	price, err := payloadPrice(data["price"])
	if err != nil {
		return nil, err
	}
	quantity, err := payloadQuantity(data["quantity"])
	if err != nil {
		return nil, err
	}

	product, err := NewProduct(name, description, price, quantity)
	if err != nil {
		return nil, err
	}

	for _, candidate := range existing {
		if candidate == nil || candidate.name != product.name {
			continue
		}
		candidate.quantity += product.quantity
		if candidate.price.LessThan(product.price) {
			candidate.price = product.price
		}
		return candidate, nil
	}
	return product, nil
}

func payloadPrice(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	default:
		return decimal.Zero, domainerror.NewValidationError(
			domainerror.ErrCodeProductFieldType, "price",
			"цена должна быть числом")
	}
}

func payloadQuantity(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, domainerror.NewValidationError(
				domainerror.ErrCodeProductFieldType, "quantity",
				"количество должно быть целым числом")
		}
		return int(n), nil
	default:
		return 0, domainerror.NewValidationError(
			domainerror.ErrCodeProductFieldType, "quantity",
			"количество должно быть целым числом")
	}
}
