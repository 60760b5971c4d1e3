package ports

import (
	"context"

	"kings-crust-service/internal/domain"
)

// Port: a boundary for placed orders.
type OrderRepository interface {
	// Persist a newly placed order.
	CreateOrder(ctx context.Context, order domain.Order) error
	// Retrieve one order by id. Returns ErrNotFound when it does not exist.
	GetOrder(ctx context.Context, orderID string) (domain.Order, error)
	// Retrieve order history, most recent first.
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
