// Package entity defines the core business entities of the product catalog.
package entity

// CategoryIterator walks a category's products in stored order. It is a
// lazy, finite cursor and is not restartable; obtain a fresh iterator from
// Category.Iterator to walk again.
type CategoryIterator struct {
	category *Category
	cursor   int
}

// Next yields the next product. ok is false once the sequence is
// exhausted and stays false on every later call.
func (it *CategoryIterator) Next() (Sellable, bool) {
	if it.category == nil || it.cursor >= len(it.category.products) {
		return nil, false
	}
	p := it.category.products[it.cursor]
	it.cursor++
	return p, true
}
