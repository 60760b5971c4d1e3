package domain

// A single orderable item from the menu catalog.
// Prices are whole Pakistani rupees; there are no fractional amounts on the menu.
type MenuItem struct {
	ItemID          string
	Name            string
	Description     string
	FullDescription string
	PricePKR        int
	DrinkOptions    []string
}

// A named menu section with its items in display order.
type MenuCategory struct {
	Category string
	Items    []MenuItem
}
