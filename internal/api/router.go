package api

import (
	"net/http"
	"time"

	"kings-crust-service/internal/api/handlers"
	"kings-crust-service/internal/ports"
	"kings-crust-service/internal/services"
)

// Deps holds the adapters the API is wired with.
type Deps struct {
	Branches  ports.BranchRepository
	Menu      ports.MenuRepository
	Addresses ports.AddressRepository
	Orders    ports.OrderRepository
	Carts     ports.CartStore
	// Now is the clock used for open-state evaluation and order placement.
	// Nil means time.Now; tests inject a fixed clock.
	Now func() time.Time
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	branchHandler := &handlers.BranchHandler{Repo: deps.Branches, Now: deps.Now}
	menuHandler := &handlers.MenuHandler{Repo: deps.Menu}
	cartHandler := &handlers.CartHandler{Store: deps.Carts, Menu: deps.Menu}
	addressHandler := &handlers.AddressHandler{Repo: deps.Addresses}
	orderHandler := &handlers.OrderHandler{
		Deps: services.CheckoutDeps{
			Carts:     deps.Carts,
			Addresses: deps.Addresses,
			Branches:  deps.Branches,
			Orders:    deps.Orders,
		},
		Now: deps.Now,
	}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("GET /branches", branchHandler.List)
	mux.HandleFunc("GET /branches/nearest", branchHandler.Nearest)

	mux.HandleFunc("GET /menu", menuHandler.List)
	mux.HandleFunc("GET /menu/items/{itemID}", menuHandler.GetItem)

	mux.HandleFunc("POST /carts", cartHandler.Create)
	mux.HandleFunc("GET /carts/{cartID}", cartHandler.Get)
	mux.HandleFunc("POST /carts/{cartID}/items", cartHandler.AddItem)
	mux.HandleFunc("PATCH /carts/{cartID}/items/{itemID}", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /carts/{cartID}/items/{itemID}", cartHandler.RemoveItem)

	mux.HandleFunc("GET /addresses", addressHandler.List)
	mux.HandleFunc("POST /addresses", addressHandler.Create)
	mux.HandleFunc("PUT /addresses/{addressID}", addressHandler.Update)
	mux.HandleFunc("DELETE /addresses/{addressID}", addressHandler.Delete)

	mux.HandleFunc("POST /orders", orderHandler.Place)
	mux.HandleFunc("GET /orders", orderHandler.List)
	mux.HandleFunc("GET /orders/{orderID}", orderHandler.Get)

	return loggingMiddleware(mux)
}
