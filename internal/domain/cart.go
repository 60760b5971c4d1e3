package domain

import "fmt"

// A menu item placed in a cart, snapshotted at add time so later catalog
// edits do not change an in-flight cart.
type CartItem struct {
	ItemID        string
	Name          string
	UnitPricePKR  int
	Quantity      int
	SelectedDrink string
}

// Cart aggregate holding a customer's pending order lines.
// Carts are session state: they live in a cache with a TTL, not in the database.
type Cart struct {
	CartID string
	Items  []CartItem
}

// Add puts an item in the cart. Adding an item that is already present
// merges into the existing line by increasing its quantity; the original
// line's drink selection is kept.
func (c *Cart) Add(item MenuItem, quantity int, selectedDrink string) error {
	if quantity < 1 {
		return fmt.Errorf("add to cart: quantity must be at least 1, got %d", quantity)
	}

	for i := range c.Items {
		if c.Items[i].ItemID == item.ItemID {
			c.Items[i].Quantity += quantity
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{
		ItemID:        item.ItemID,
		Name:          item.Name,
		UnitPricePKR:  item.PricePKR,
		Quantity:      quantity,
		SelectedDrink: selectedDrink,
	})
	return nil
}

// UpdateQuantity sets the quantity of an existing line, clamped to a floor of 1.
// Removing a line entirely goes through Remove, not a zero quantity.
func (c *Cart) UpdateQuantity(itemID string, quantity int) error {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			if quantity < 1 {
				quantity = 1
			}
			c.Items[i].Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("update cart quantity: item %q is not in the cart", itemID)
}

// Remove deletes a line from the cart. Removing an absent item is a no-op.
func (c *Cart) Remove(itemID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ItemID != itemID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// TotalPKR returns the cart total in whole rupees.
func (c *Cart) TotalPKR() int {
	total := 0
	for _, it := range c.Items {
		total += it.UnitPricePKR * it.Quantity
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool { return len(c.Items) == 0 }

// Clear removes all lines from the cart.
func (c *Cart) Clear() { c.Items = nil }
