// Package entity defines the core business entities of the product catalog.
package entity

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/error"
)

// AddOutcome reports how AddProduct finished. Rejections are non-fatal:
// the call completes normally and the outcome is the only direct signal.
type AddOutcome int

const (
	AddAccepted AddOutcome = iota
	AddRejectedType
	AddRejectedDuplicate
	AddRejectedZeroQuantity
)

// String implements fmt.Stringer for diagnostics.
func (o AddOutcome) String() string {
	switch o {
	case AddAccepted:
		return "accepted"
	case AddRejectedType:
		return "rejected_type"
	case AddRejectedDuplicate:
		return "rejected_duplicate"
	case AddRejectedZeroQuantity:
		return "rejected_zero_quantity"
	default:
		return "unknown"
	}
}

// Category is an owned, countable group of products with an active/removed
// lifecycle. It holds its own copy of the product sequence and keeps the
// shared counters in step with every mutation.
type Category struct {
	id          uuid.UUID
	name        string
	description string
	products    []Sellable
	isActive    bool
	counters    *Counters
}

// NewCategory validates and creates a Category. The products slice is
// copied so the caller's slice stays decoupled. Construction registers one
// category and len(products) products with the shared counters.
func NewCategory(counters *Counters, name, description string, products []Sellable) (*Category, error) {
	if counters == nil {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeCategoryCountersMissing, "counters",
			"категории необходим общий счетчик")
	}
	if strings.TrimSpace(name) == "" {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeCategoryNameEmpty, "name",
			"название категории должно быть непустой строкой")
	}
	if strings.TrimSpace(description) == "" {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeCategoryDescriptionEmpty, "description",
			"описание категории должно быть непустой строкой")
	}
	for i, p := range products {
		if p == nil {
			return nil, domainerror.NewTypeMismatchError(
				domainerror.ErrCodeCategoryNilProduct,
				"Product", fmt.Sprintf("nil на позиции %d", i))
		}
	}

	c := &Category{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		products:    slices.Clone(products),
		isActive:    true,
		counters:    counters,
	}
	counters.registerCategory(len(c.products))
	notifyCreated("Category", name, description, len(c.products))
	return c, nil
}

// ID returns the category's identity.
func (c *Category) ID() uuid.UUID { return c.id }

// Name returns the trimmed category name.
func (c *Category) Name() string { return c.name }

// Description returns the trimmed category description.
func (c *Category) Description() string { return c.description }

// IsActive reports whether the category has not been removed.
func (c *Category) IsActive() bool { return c.isActive }

// Products returns a copy of the owned product sequence in stored order.
func (c *Category) Products() []Sellable {
	return slices.Clone(c.products)
}

// ProductCount returns the number of owned products.
func (c *Category) ProductCount() int { return len(c.products) }

// TotalQuantity sums the stock quantity over every owned product.
func (c *Category) TotalQuantity() int {
	total := 0
	for _, p := range c.products {
		total += p.Quantity()
	}
	return total
}

// AddProduct appends p to the owned collection. Violations are caught and
// reported, never propagated: the returned outcome is the only direct
// failure signal, and a terminal diagnostic is emitted on every path.
// Duplicate detection is identity-based; a distinct product with equal
// fields is not a duplicate.
func (c *Category) AddProduct(p Sellable) AddOutcome {
	defer slog.Info("Обработка добавления товара завершена", "category", c.name)

	if p == nil {
		slog.Warn("Ошибка типа: можно добавлять только объекты Product", "category", c.name)
		return AddRejectedType
	}
	if p.Quantity() <= 0 {
		slog.Warn("Товар с нулевым количеством не может быть добавлен",
			"category", c.name, "product", p.Name())
		return AddRejectedZeroQuantity
	}
	for _, owned := range c.products {
		if owned.ID() == p.ID() {
			slog.Warn("Товар уже есть в категории",
				"category", c.name, "product", p.Name())
			return AddRejectedDuplicate
		}
	}

	c.products = append(c.products, p)
	c.counters.registerProduct()
	slog.Info("Товар успешно добавлен", "category", c.name, "product", p.Name())
	return AddAccepted
}

// Remove deactivates the category: the shared counters drop by the current
// totals and the owned sequence is cleared. Removing an inactive category
// is a StateError. The guard consults only the active flag.
func (c *Category) Remove() error {
	if !c.isActive {
		return domainerror.NewStateError(
			domainerror.ErrCodeCategoryRemoved, "категория уже удалена")
	}

	c.counters.unregisterCategory(len(c.products))
	c.products = nil
	c.isActive = false
	return nil
}

// AveragePrice is the mean price over the owned products. An empty
// category yields exactly zero; division by zero is a defined result here,
// not a failure.
func (c *Category) AveragePrice() decimal.Decimal {
	if len(c.products) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range c.products {
		sum = sum.Add(p.Price())
	}
	return sum.Div(decimal.NewFromInt(int64(len(c.products))))
}

// Iterator returns a fresh cursor over the owned sequence. No snapshot is
// taken; mutating the category while iterating is undefined.
func (c *Category) Iterator() *CategoryIterator {
	return &CategoryIterator{category: c}
}

// String renders the display form with the summed stock quantity.
func (c *Category) String() string {
	return fmt.Sprintf("%s, количество продуктов: %d шт.", c.name, c.TotalQuantity())
}

// GoString renders the constructor-call debug form.
func (c *Category) GoString() string {
	return fmt.Sprintf("Category(name='%s', description='%s', products_count=%d)",
		c.name, c.description, len(c.products))
}
