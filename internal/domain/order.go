package domain

import "time"

type OrderStatus string

const (
	OrderStatusPreparing OrderStatus = "Preparing Food"
	OrderStatusOnTheWay  OrderStatus = "On The Way"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// Simulated delivery progression: orders advance through the status
// timeline on elapsed time alone. There is no real kitchen or courier feed.
const (
	onTheWayAfter  = 15 * time.Minute
	deliveredAfter = 45 * time.Minute
)

// A placed order: an immutable snapshot of the cart, the total charged,
// and the delivery address at checkout time.
type Order struct {
	OrderID  string
	BranchID string
	Items    []CartItem
	TotalPKR int
	Address  Address
	PlacedAt time.Time
}

// StatusAt derives the order's mock tracking status from time elapsed
// since placement.
func (o *Order) StatusAt(now time.Time) OrderStatus {
	elapsed := now.Sub(o.PlacedAt)
	switch {
	case elapsed >= deliveredAfter:
		return OrderStatusDelivered
	case elapsed >= onTheWayAfter:
		return OrderStatusOnTheWay
	default:
		return OrderStatusPreparing
	}
}
