package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"kings-crust-service/internal/api/dto"
	"kings-crust-service/internal/domain"
	"kings-crust-service/internal/ports"
	"kings-crust-service/internal/services"
)

// OrderHandler exposes checkout and mock order tracking.
type OrderHandler struct {
	Deps services.CheckoutDeps
	Now  func() time.Time
}

func (h *OrderHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Place runs checkout: cart, address and branch lookups plus the open-state
// and delivery-radius gates all live in services.PlaceOrder; this handler
// only validates the request shape and maps domain failures to status codes.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CartID == "" || req.AddressID == "" || req.BranchID == "" {
		writeError(w, r, http.StatusBadRequest, "cart_id, address_id and branch_id are required")
		return
	}

	placedAt := h.now()
	order, err := services.PlaceOrder(r.Context(), services.PlaceOrderRequest{
		CartID:    req.CartID,
		AddressID: req.AddressID,
		BranchID:  req.BranchID,
		PlacedAt:  placedAt,
	}, h.Deps)

	switch {
	case err == nil:
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "cart, address or branch not found")
		return
	case errors.Is(err, services.ErrCartEmpty):
		writeError(w, r, http.StatusConflict, "cart is empty")
		return
	case errors.Is(err, services.ErrBranchClosed):
		writeError(w, r, http.StatusConflict, "branch is closed")
		return
	case errors.Is(err, services.ErrOutsideDeliveryRadius):
		writeError(w, r, http.StatusConflict, "address is outside the delivery radius")
		return
	default:
		log.Printf("place order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toOrderResponse(order, placedAt))
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.Deps.Orders.GetOrder(r.Context(), r.PathValue("orderID"))
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		log.Printf("get order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toOrderResponse(order, h.now()))
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Deps.Orders.ListOrders(r.Context())
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	now := h.now()
	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, toOrderResponse(o, now))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toOrderResponse(o domain.Order, now time.Time) dto.OrderResponse {
	items := make([]dto.CartItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.CartItemResponse{
			ItemID:        it.ItemID,
			Name:          it.Name,
			UnitPricePKR:  it.UnitPricePKR,
			Quantity:      it.Quantity,
			SelectedDrink: it.SelectedDrink,
		})
	}

	return dto.OrderResponse{
		OrderID:  o.OrderID,
		BranchID: o.BranchID,
		Items:    items,
		TotalPKR: o.TotalPKR,
		Address:  toAddressResponse(o.Address),
		PlacedAt: o.PlacedAt,
		Status:   string(o.StatusAt(now)),
	}
}
