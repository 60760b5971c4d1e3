package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kings-crust-service/internal/domain"
	"kings-crust-service/internal/ports"

	"github.com/google/uuid"
)

var (
	ErrCartEmpty             = errors.New("cart is empty")
	ErrBranchClosed          = errors.New("branch is closed")
	ErrOutsideDeliveryRadius = errors.New("address is outside the delivery radius")
)

type PlaceOrderRequest struct {
	CartID    string
	AddressID string
	BranchID  string
	PlacedAt  time.Time
}

type CheckoutDeps struct {
	Carts     ports.CartStore
	Addresses ports.AddressRepository
	Branches  ports.BranchRepository
	Orders    ports.OrderRepository
}

// PlaceOrder turns a pending cart into a placed order.
//
// The cart must be non-empty, the branch must be open at the moment of
// placement, and the delivery address must lie within the branch's delivery
// radius. The schedule evaluator fails closed, so an order against a branch
// with malformed hours is rejected the same way as one placed after hours.
// On success the order is persisted with a snapshot of the cart lines and
// the cart is deleted. No payment or dispatch call is made; delivery
// tracking is simulated from the placement timestamp.
func PlaceOrder(ctx context.Context, req PlaceOrderRequest, deps CheckoutDeps) (domain.Order, error) {
	cart, err := deps.Carts.GetCart(ctx, req.CartID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("place order: get cart %q: %w", req.CartID, err)
	}
	if cart.Empty() {
		return domain.Order{}, fmt.Errorf("place order: cart %q: %w", req.CartID, ErrCartEmpty)
	}

	addr, err := deps.Addresses.GetAddress(ctx, req.AddressID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("place order: get address %q: %w", req.AddressID, err)
	}

	branch, err := deps.Branches.GetBranch(ctx, req.BranchID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("place order: get branch %q: %w", req.BranchID, err)
	}

	if status := EvaluateOpen(branch.Hours, req.PlacedAt); !status.IsOpen {
		return domain.Order{}, fmt.Errorf("place order: branch %q: %w", branch.BranchID, ErrBranchClosed)
	}

	if dist := domain.DistanceKm(addr.Location, branch.Location); dist > DeliveryRadiusKm {
		return domain.Order{}, fmt.Errorf(
			"place order: address %q is %.1f km from branch %q: %w",
			addr.AddressID, dist, branch.BranchID, ErrOutsideDeliveryRadius,
		)
	}

	order := domain.Order{
		OrderID:  uuid.NewString(),
		BranchID: branch.BranchID,
		Items:    append([]domain.CartItem(nil), cart.Items...),
		TotalPKR: cart.TotalPKR(),
		Address:  addr,
		PlacedAt: req.PlacedAt,
	}

	if err := deps.Orders.CreateOrder(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("place order: persist order %q: %w", order.OrderID, err)
	}

	// The cart is spent. A failed delete leaves a stale cart behind, which
	// the store's TTL cleans up; the order itself is already durable.
	if err := deps.Carts.DeleteCart(ctx, req.CartID); err != nil {
		return order, fmt.Errorf("place order: clear cart %q: %w", req.CartID, err)
	}

	return order, nil
}
