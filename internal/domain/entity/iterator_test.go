package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorYieldsStoredOrder(t *testing.T) {
	p1 := mustProduct(t, "P1", "D1", 100.0, 1)
	p2 := mustProduct(t, "P2", "D2", 200.0, 2)
	c := mustCategory(t, NewCounters(), "Test", "Desc", []Sellable{p1, p2})

	it := c.Iterator()

	first, ok := it.Next()
	require.True(t, ok)
	assert.Same(t, p1, first)

	second, ok := it.Next()
	require.True(t, ok)
	assert.Same(t, p2, second)

	_, ok = it.Next()
	assert.False(t, ok, "the iterator is exhausted after the last product")

	_, ok = it.Next()
	assert.False(t, ok, "an exhausted iterator never restarts")
}

func TestIteratorEmptyCategory(t *testing.T) {
	c := mustCategory(t, NewCounters(), "Empty", "Desc", nil)

	_, ok := c.Iterator().Next()
	assert.False(t, ok)
}

func TestIteratorsAreIndependent(t *testing.T) {
	p1 := mustProduct(t, "P1", "D1", 100.0, 1)
	c := mustCategory(t, NewCounters(), "Test", "Desc", []Sellable{p1})

	first := c.Iterator()
	_, ok := first.Next()
	require.True(t, ok)
	_, ok = first.Next()
	require.False(t, ok)

	fresh, ok := c.Iterator().Next()
	require.True(t, ok)
	assert.Same(t, p1, fresh)
}
