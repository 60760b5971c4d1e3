package dto

import "time"

type PlaceOrderRequest struct {
	CartID    string `json:"cart_id"`
	AddressID string `json:"address_id"`
	BranchID  string `json:"branch_id"`
}

type OrderResponse struct {
	OrderID  string             `json:"order_id"`
	BranchID string             `json:"branch_id"`
	Items    []CartItemResponse `json:"items"`
	TotalPKR int                `json:"total_pkr"`
	Address  AddressResponse    `json:"address"`
	PlacedAt time.Time          `json:"placed_at"`
	Status   string             `json:"status"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
