package ports

import (
	"context"

	"kings-crust-service/internal/domain"
)

// Port: session storage for pending carts. Carts expire if untouched;
// durability is not expected of implementations.
type CartStore interface {
	// Retrieve a cart by id. Returns ErrNotFound when it does not exist or has expired.
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	// Store a cart, resetting its expiry.
	PutCart(ctx context.Context, cart *domain.Cart) error
	// Delete a cart. Deleting an absent cart is not an error.
	DeleteCart(ctx context.Context, cartID string) error
}
