package cart

import (
	"sync"

	"github.com/lynnadornets/adornets-backend/internal/catalog"
)

// Line is one product-and-quantity pair in a cart.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (l Line) Subtotal() int {
	return l.Product.Price * l.Quantity
}

// Cart holds the line items for one browsing session. Lines keep insertion
// order; a product appears at most once and every quantity is >= 1. All
// operations are total: unknown product identifiers are ignored on remove
// and update.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem merges quantity into an existing line for the product or appends a
// new line. Quantities below 1 are clamped to 1.
func (c *Cart) AddItem(product catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: quantity})
}

// RemoveItem deletes the line for the product if present.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

// SetQuantity replaces the line's quantity in place. A quantity of zero or
// below removes the line. Absent products are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a snapshot of the current line items in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalPrice sums price x quantity over all lines. Empty carts total zero.
func (c *Cart) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, line := range c.lines {
		total += line.Product.Price * line.Quantity
	}
	return total
}

// TotalItems sums the quantities over all lines. Empty carts total zero.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

func (c *Cart) removeLocked(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}
