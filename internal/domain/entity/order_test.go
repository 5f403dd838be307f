package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/error"
)

func TestNewOrder(t *testing.T) {
	p := mustProduct(t, "Test Product", "Description", 100.0, 5)

	o, err := NewOrder("Test Order", "Order Description", p, 2)
	require.NoError(t, err)

	assert.Equal(t, "Test Order", o.Name())
	assert.Equal(t, "Order Description", o.Description())
	assert.Same(t, p, o.Product().(*Product))
	assert.Equal(t, 2, o.Quantity())
	assert.True(t, o.TotalPrice().Equal(decimal.NewFromInt(200)))
}

func TestOrderTotalIsSnapshot(t *testing.T) {
	p := mustProduct(t, "Test", "Desc", 100.0, 5)
	o, err := NewOrder("Test", "Desc", p, 2)
	require.NoError(t, err)

	require.True(t, p.SetPrice(decimal.NewFromInt(300), nil))

	assert.True(t, o.TotalPrice().Equal(decimal.NewFromInt(200)),
		"the total is frozen at construction and never recomputed")
}

func TestNewOrderNilProduct(t *testing.T) {
	_, err := NewOrder("Test", "Desc", nil, 1)

	var mismatchErr *domainerror.TypeMismatchError
	require.ErrorAs(t, err, &mismatchErr)
}

func TestNewOrderQuantityValidation(t *testing.T) {
	p := mustProduct(t, "Test", "Desc", 100.0, 5)

	for _, quantity := range []int{0, -1} {
		_, err := NewOrder("Test", "Desc", p, quantity)

		var validationErr *domainerror.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, domainerror.ErrCodeOrderQuantity, validationErr.Code)
	}
}

func TestOrderString(t *testing.T) {
	p := mustProduct(t, "Test", "Desc", 100.0, 5)
	o, err := NewOrder("Test Order", "Desc", p, 2)
	require.NoError(t, err)

	s := o.String()
	assert.Contains(t, s, "Test Order")
	assert.Contains(t, s, "2 шт.")
	assert.Contains(t, s, "200")
}
