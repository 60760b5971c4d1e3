package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kings-crust-service/internal/adapters/cache"
	"kings-crust-service/internal/api/dto"
	"kings-crust-service/internal/domain"
	"kings-crust-service/internal/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type stubBranchRepo struct{ branches []domain.Branch }

func (s *stubBranchRepo) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	return s.branches, nil
}

func (s *stubBranchRepo) GetBranch(ctx context.Context, id string) (domain.Branch, error) {
	for _, b := range s.branches {
		if b.BranchID == id {
			return b, nil
		}
	}
	return domain.Branch{}, ports.ErrNotFound
}

type stubMenuRepo struct{ items map[string]domain.MenuItem }

func (s *stubMenuRepo) ListMenu(ctx context.Context) ([]domain.MenuCategory, error) {
	items := make([]domain.MenuItem, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	return []domain.MenuCategory{{Category: "Zalmi Meal", Items: items}}, nil
}

func (s *stubMenuRepo) GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error) {
	it, ok := s.items[id]
	if !ok {
		return domain.MenuItem{}, ports.ErrNotFound
	}
	return it, nil
}

type stubAddressRepo struct{ addrs map[string]domain.Address }

func (s *stubAddressRepo) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	out := make([]domain.Address, 0, len(s.addrs))
	for _, a := range s.addrs {
		out = append(out, a)
	}
	return out, nil
}

func (s *stubAddressRepo) GetAddress(ctx context.Context, id string) (domain.Address, error) {
	a, ok := s.addrs[id]
	if !ok {
		return domain.Address{}, ports.ErrNotFound
	}
	return a, nil
}

func (s *stubAddressRepo) CreateAddress(ctx context.Context, a domain.Address) error {
	s.addrs[a.AddressID] = a
	return nil
}

func (s *stubAddressRepo) UpdateAddress(ctx context.Context, a domain.Address) error {
	if _, ok := s.addrs[a.AddressID]; !ok {
		return ports.ErrNotFound
	}
	s.addrs[a.AddressID] = a
	return nil
}

func (s *stubAddressRepo) DeleteAddress(ctx context.Context, id string) error {
	if _, ok := s.addrs[id]; !ok {
		return ports.ErrNotFound
	}
	delete(s.addrs, id)
	return nil
}

type stubOrderRepo struct{ orders map[string]domain.Order }

func (s *stubOrderRepo) CreateOrder(ctx context.Context, o domain.Order) error {
	s.orders[o.OrderID] = o
	return nil
}

func (s *stubOrderRepo) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, ports.ErrNotFound
	}
	return o, nil
}

func (s *stubOrderRepo) ListOrders(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

// newTestRouter wires the router against stub repositories, a miniredis-backed
// cart store and a fixed clock (Wednesday evening, inside opening hours).
func newTestRouter(t *testing.T, now time.Time) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	branches := &stubBranchRepo{branches: []domain.Branch{{
		BranchID: "2",
		Name:     "Daska Branch",
		Address:  "Sambrial Road, Main Muzaffar Center, Daska, Pakistan",
		Location: domain.Coordinates{Lat: 32.3299887, Lon: 74.323584},
		Services: []string{"DELIVERY", "DINE IN", "PICK-UP"},
		Hours: domain.WeeklyHours{
			{Days: "Monday - Thursday", Hours: "03:00PM - 01:30AM"},
			{Days: "Friday", Hours: "03:30PM - 01:30AM"},
			{Days: "Saturday - Sunday", Hours: "03:00PM - 01:30AM"},
		},
	}}}

	menu := &stubMenuRepo{items: map[string]domain.MenuItem{
		"zalmi1": {ItemID: "zalmi1", Name: "Zalmi Meal Deal", PricePKR: 2500, DrinkOptions: []string{"Cola Next"}},
	}}

	addresses := &stubAddressRepo{addrs: map[string]domain.Address{
		"addr-1": {
			AddressID:   "addr-1",
			Label:       "Home",
			FullAddress: "College Road, Daska",
			Location:    domain.Coordinates{Lat: 32.325, Lon: 74.35},
		},
	}}

	return NewRouter(Deps{
		Branches:  branches,
		Menu:      menu,
		Addresses: addresses,
		Orders:    &stubOrderRepo{orders: map[string]domain.Order{}},
		Carts:     cache.NewRedisCartStore(client),
		Now:       func() time.Time { return now },
	})
}

// Wednesday 8 PM: inside the Monday-Thursday window.
var openEvening = time.Date(2026, 1, 7, 20, 0, 0, 0, time.UTC)

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestListBranchesWithUserLocation(t *testing.T) {
	router := newTestRouter(t, openEvening)

	rec := doJSON(t, router, http.MethodGet, "/branches?lat=32.33&lon=74.32", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.ListBranchesResponse
	decodeInto(t, rec, &res)

	if res.DeliveryRadiusKm != 10 {
		t.Errorf("delivery radius = %v, want 10", res.DeliveryRadiusKm)
	}
	if len(res.Branches) != 1 {
		t.Fatalf("expected 1 branch, got %d", len(res.Branches))
	}

	b := res.Branches[0]
	if !b.IsOpen || b.Status != "Open Now" {
		t.Errorf("branch status = %+v, want open", b)
	}
	if b.DistanceKm == nil || *b.DistanceKm > 1 {
		t.Errorf("distance = %v, want under 1 km", b.DistanceKm)
	}
	if b.WithinDeliveryRadius == nil || !*b.WithinDeliveryRadius {
		t.Errorf("within_delivery_radius = %v, want true", b.WithinDeliveryRadius)
	}
}

func TestListBranchesLatWithoutLon(t *testing.T) {
	router := newTestRouter(t, openEvening)

	rec := doJSON(t, router, http.MethodGet, "/branches?lat=32.33", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestNearestBranchWithoutLocation(t *testing.T) {
	// Wednesday morning: before opening.
	router := newTestRouter(t, time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC))

	rec := doJSON(t, router, http.MethodGet, "/branches/nearest", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.NearestBranchResponse
	decodeInto(t, rec, &res)

	if res.Branch.IsOpen || res.Branch.Status != "Closed" {
		t.Errorf("branch = %+v, want closed in the morning", res.Branch)
	}
	if res.Branch.DistanceKm != nil {
		t.Errorf("distance = %v, want null without location", *res.Branch.DistanceKm)
	}
}

func TestCartLifecycle(t *testing.T) {
	router := newTestRouter(t, openEvening)

	rec := doJSON(t, router, http.MethodPost, "/carts", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create cart status = %d: %s", rec.Code, rec.Body.String())
	}
	var cart dto.CartResponse
	decodeInto(t, rec, &cart)
	if cart.CartID == "" {
		t.Fatal("cart id should be assigned")
	}

	rec = doJSON(t, router, http.MethodPost, "/carts/"+cart.CartID+"/items",
		dto.AddCartItemRequest{ItemID: "zalmi1", Quantity: 2, SelectedDrink: "Cola Next"})
	if rec.Code != http.StatusOK {
		t.Fatalf("add item status = %d: %s", rec.Code, rec.Body.String())
	}
	decodeInto(t, rec, &cart)
	if cart.TotalPKR != 5000 {
		t.Errorf("total = %d, want 5000", cart.TotalPKR)
	}

	// adding again merges into the existing line
	rec = doJSON(t, router, http.MethodPost, "/carts/"+cart.CartID+"/items",
		dto.AddCartItemRequest{ItemID: "zalmi1"})
	decodeInto(t, rec, &cart)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("unexpected items after merge: %+v", cart.Items)
	}

	rec = doJSON(t, router, http.MethodPatch, "/carts/"+cart.CartID+"/items/zalmi1",
		dto.UpdateCartItemRequest{Quantity: 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("update item status = %d: %s", rec.Code, rec.Body.String())
	}
	decodeInto(t, rec, &cart)
	if cart.Items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1", cart.Items[0].Quantity)
	}

	rec = doJSON(t, router, http.MethodDelete, "/carts/"+cart.CartID+"/items/zalmi1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove item status = %d: %s", rec.Code, rec.Body.String())
	}
	decodeInto(t, rec, &cart)
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart, got %+v", cart.Items)
	}

	rec = doJSON(t, router, http.MethodPost, "/carts/missing/items",
		dto.AddCartItemRequest{ItemID: "zalmi1"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown cart status = %d, want 404", rec.Code)
	}
}

func TestPlaceOrderEndToEnd(t *testing.T) {
	router := newTestRouter(t, openEvening)

	var cart dto.CartResponse
	decodeInto(t, doJSON(t, router, http.MethodPost, "/carts", nil), &cart)
	doJSON(t, router, http.MethodPost, "/carts/"+cart.CartID+"/items",
		dto.AddCartItemRequest{ItemID: "zalmi1", Quantity: 2})

	rec := doJSON(t, router, http.MethodPost, "/orders",
		dto.PlaceOrderRequest{CartID: cart.CartID, AddressID: "addr-1", BranchID: "2"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("place order status = %d: %s", rec.Code, rec.Body.String())
	}

	var order dto.OrderResponse
	decodeInto(t, rec, &order)
	if order.TotalPKR != 5000 {
		t.Errorf("total = %d, want 5000", order.TotalPKR)
	}
	if order.Status != "Preparing Food" {
		t.Errorf("status = %q, want Preparing Food", order.Status)
	}
	if order.Address.AddressID != "addr-1" {
		t.Errorf("address = %q, want addr-1", order.Address.AddressID)
	}

	// the cart is spent after checkout
	if rec := doJSON(t, router, http.MethodGet, "/carts/"+cart.CartID, nil); rec.Code != http.StatusNotFound {
		t.Errorf("cart after checkout status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/orders/"+order.OrderID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get order status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPlaceOrderClosedBranch(t *testing.T) {
	// Wednesday 10 AM: branch opens at 3 PM.
	router := newTestRouter(t, time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC))

	var cart dto.CartResponse
	decodeInto(t, doJSON(t, router, http.MethodPost, "/carts", nil), &cart)
	doJSON(t, router, http.MethodPost, "/carts/"+cart.CartID+"/items",
		dto.AddCartItemRequest{ItemID: "zalmi1"})

	rec := doJSON(t, router, http.MethodPost, "/orders",
		dto.PlaceOrderRequest{CartID: cart.CartID, AddressID: "addr-1", BranchID: "2"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
}
