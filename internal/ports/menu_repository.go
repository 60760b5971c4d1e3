package ports

import (
	"context"

	"kings-crust-service/internal/domain"
)

// Port: a boundary for reading the menu catalog.
type MenuRepository interface {
	// Retrieve the full menu grouped into categories, in display order.
	ListMenu(ctx context.Context) ([]domain.MenuCategory, error)
	// Retrieve one menu item by id. Returns ErrNotFound when it does not exist.
	GetMenuItem(ctx context.Context, itemID string) (domain.MenuItem, error)
}
