// Package entity defines the core business entities of the product catalog.
package entity

// Counters is the process-wide tally of live categories and the products
// they own. One handle is shared by every Category instance; it is mutated
// only by category construction, AddProduct and Remove. Access is
// single-writer: the type is not safe for concurrent use.
type Counters struct {
	categories int
	products   int
}

// NewCounters creates a zeroed counters handle.
func NewCounters() *Counters {
	return &Counters{}
}

// CategoryCount reports the number of active categories registered with
// this handle.
func (c *Counters) CategoryCount() int { return c.categories }

// ProductCount reports the number of products owned by active categories.
func (c *Counters) ProductCount() int { return c.products }

// Reset zeroes both tallies. Supported for test isolation.
func (c *Counters) Reset() {
	c.categories = 0
	c.products = 0
}

func (c *Counters) registerCategory(products int) {
	c.categories++
	c.products += products
}

func (c *Counters) registerProduct() {
	c.products++
}

func (c *Counters) unregisterCategory(products int) {
	c.categories--
	c.products -= products
}
