package cart

import (
	"github.com/Hitesh-malik/e-commer-with-ai/internal/entity"
)

// Line is one product entry in the cart. The serialized form matches the
// shape persisted under the cart storage key.
type Line struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Qty      int     `json:"qty"`
	Category string  `json:"category"`
}

type Totals struct {
	TotalItems  int     `json:"totalItems"`
	TotalAmount float64 `json:"totalAmount"`
}

// Cart owns the canonical line list. Lines keep insertion order and hold
// exactly one entry per product id, always with qty >= 1. Totals are
// recomputed from the lines on every call, never stored.
//
// Cart is not safe for concurrent use; callers serialize mutations
// through a single owner.
type Cart struct {
	lines []Line
}

// New builds a cart from previously persisted lines. Restored input is
// sanitized against the invariants: duplicate ids collapse into the
// first occurrence and non-positive quantities are dropped.
func New(lines []Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Qty <= 0 {
			continue
		}
		if i := c.index(l.ID); i >= 0 {
			c.lines[i].Qty += l.Qty
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// Add increments the quantity of an existing line for the product's id,
// or appends a new normalized line with qty 1. It always succeeds:
// missing titles fall back to "Untitled" and malformed prices are
// already coerced to 0 at the entity boundary.
func (c *Cart) Add(p entity.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Qty++
		return
	}
	c.lines = append(c.lines, Line{
		ID:       p.ID,
		Title:    p.DisplayTitle(),
		Price:    float64(p.Price),
		Image:    p.Image,
		Qty:      1,
		Category: p.Category,
	})
}

// Remove deletes the line with the given id. Absent id is a no-op.
func (c *Cart) Remove(id int64) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// SetQuantity sets a line's quantity. A quantity <= 0 removes the line;
// zero is never stored. Absent id is a no-op.
func (c *Cart) SetQuantity(id int64, qty int) {
	i := c.index(id)
	if i < 0 {
		return
	}
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Qty = qty
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the line list in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

// Totals derives the aggregate counters fresh from the current lines.
func (c *Cart) Totals() Totals {
	var t Totals
	for _, l := range c.lines {
		t.TotalItems += l.Qty
		t.TotalAmount += float64(l.Qty) * l.Price
	}
	return t
}

func (c *Cart) index(id int64) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}
