package booking

import (
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/types"
	"github.com/google/uuid"
)

// Cart is a visitor's pending rental selection. It lives in Redis keyed by
// an opaque cart token and holds no prices; totals are derived at read time
// so price edits take effect immediately.
type Cart struct {
	Items     []types.LineItem `json:"items"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []types.LineItem{}}
}

// Add merges the quantity into an existing line or appends a new one.
// Quantities below one are treated as one.
func (c *Cart) Add(itemID uuid.UUID, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items[i].Qty += qty
			return
		}
	}
	c.Items = append(c.Items, types.LineItem{ItemID: itemID, Qty: qty})
}

// SetQuantity replaces the quantity on an existing line, clamping to a
// minimum of one. Returns false when the item is not in the cart.
func (c *Cart) SetQuantity(itemID uuid.UUID, qty int) bool {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items[i].Qty = qty
			return true
		}
	}
	return false
}

// Remove drops the line for the item. Returns false when the item is not
// in the cart.
func (c *Cart) Remove(itemID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []types.LineItem{}
}

// Count returns the total quantity across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, line := range c.Items {
		total += line.Qty
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
