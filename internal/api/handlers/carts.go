package handlers

import (
	"errors"
	"log"
	"net/http"

	"kings-crust-service/internal/api/dto"
	"kings-crust-service/internal/domain"
	"kings-crust-service/internal/ports"

	"github.com/google/uuid"
)

// CartHandler exposes cart session endpoints. Cart lines snapshot the menu
// item at add time, so the menu repository is consulted only when adding.
type CartHandler struct {
	Store ports.CartStore
	Menu  ports.MenuRepository
}

func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	cart := &domain.Cart{CartID: uuid.NewString()}

	if err := h.Store.PutCart(r.Context(), cart); err != nil {
		log.Printf("create cart failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toCartResponse(cart))
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.loadCart(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, toCartResponse(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ItemID == "" {
		writeError(w, r, http.StatusBadRequest, "item_id is required")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		writeError(w, r, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	cart, ok := h.loadCart(w, r)
	if !ok {
		return
	}

	item, err := h.Menu.GetMenuItem(r.Context(), req.ItemID)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "menu item not found")
		return
	}
	if err != nil {
		log.Printf("add cart item failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := cart.Add(item, quantity, req.SelectedDrink); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.saveAndRespond(w, r, cart)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCartItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cart, ok := h.loadCart(w, r)
	if !ok {
		return
	}

	if err := cart.UpdateQuantity(r.PathValue("itemID"), req.Quantity); err != nil {
		writeError(w, r, http.StatusNotFound, "item is not in the cart")
		return
	}

	h.saveAndRespond(w, r, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.loadCart(w, r)
	if !ok {
		return
	}

	cart.Remove(r.PathValue("itemID"))

	h.saveAndRespond(w, r, cart)
}

func (h *CartHandler) loadCart(w http.ResponseWriter, r *http.Request) (*domain.Cart, bool) {
	cart, err := h.Store.GetCart(r.Context(), r.PathValue("cartID"))
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "cart not found")
		return nil, false
	}
	if err != nil {
		log.Printf("load cart failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return cart, true
}

func (h *CartHandler) saveAndRespond(w http.ResponseWriter, r *http.Request, cart *domain.Cart) {
	if err := h.Store.PutCart(r.Context(), cart); err != nil {
		log.Printf("save cart failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, r, http.StatusOK, toCartResponse(cart))
}

func toCartResponse(cart *domain.Cart) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, dto.CartItemResponse{
			ItemID:        it.ItemID,
			Name:          it.Name,
			UnitPricePKR:  it.UnitPricePKR,
			Quantity:      it.Quantity,
			SelectedDrink: it.SelectedDrink,
		})
	}

	return dto.CartResponse{
		CartID:   cart.CartID,
		Items:    items,
		TotalPKR: cart.TotalPKR(),
	}
}
