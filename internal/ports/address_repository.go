package ports

import (
	"context"

	"kings-crust-service/internal/domain"
)

// Port: a boundary for saved delivery addresses.
type AddressRepository interface {
	// Retrieve all saved addresses, oldest first.
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	// Retrieve one address by id. Returns ErrNotFound when it does not exist.
	GetAddress(ctx context.Context, addressID string) (domain.Address, error)
	// Persist a new address.
	CreateAddress(ctx context.Context, addr domain.Address) error
	// Replace an existing address. Returns ErrNotFound when it does not exist.
	UpdateAddress(ctx context.Context, addr domain.Address) error
	// Delete an address by id. Returns ErrNotFound when it does not exist.
	DeleteAddress(ctx context.Context, addressID string) error
}
