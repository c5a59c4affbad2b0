package domain

import (
	"slices"

	"github.com/google/uuid"
)

// CartItem references a catalog product by ID. Prices are resolved
// against the catalog at checkout time, not captured on add.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// Cart is an ordered sequence of line items, one per distinct product.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of the product into the cart. Adding a
// product already present merges quantities: the old line is removed
// and the merged line appended, so repeated adds move the line to the
// end. Quantities are validated against the product's current stock,
// not against what other carts may hold.
func (c *Cart) Add(p Product, quantity int) error {
	if quantity <= 0 {
		return InvalidOperationf("Quantity must be positive")
	}
	if quantity > p.AvailableStock {
		return InvalidOperationf("Requested quantity exceeds available stock")
	}

	for i, item := range c.items {
		if item.ProductID != p.ProductID {
			continue
		}
		merged := item.Quantity + quantity
		if merged > p.AvailableStock {
			return InvalidOperationf("Total quantity in cart exceeds available stock")
		}
		c.items = slices.Delete(c.items, i, i+1)
		c.items = append(c.items, CartItem{ProductID: p.ProductID, Quantity: merged})
		return nil
	}

	c.items = append(c.items, CartItem{ProductID: p.ProductID, Quantity: quantity})
	return nil
}

// Items returns a copy of the line items in cart order.
func (c *Cart) Items() []CartItem {
	return slices.Clone(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = nil
}
