package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kings-crust-service/internal/domain"
	"kings-crust-service/internal/platform/obs"
	"kings-crust-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// Carts are abandoned far more often than they are checked out;
// the TTL keeps the keyspace from accumulating stale sessions.
const cartTTL = 24 * time.Hour

// RedisCartStore is a redis-backed implementation of the CartStore port.
// Carts are JSON documents under a "cart:" key with a sliding expiry.
type RedisCartStore struct {
	Client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{Client: client}
}

type cartLineDoc struct {
	ItemID        string `json:"item_id"`
	Name          string `json:"name"`
	UnitPricePKR  int    `json:"unit_price_pkr"`
	Quantity      int    `json:"quantity"`
	SelectedDrink string `json:"selected_drink,omitempty"`
}

type cartDoc struct {
	CartID string        `json:"cart_id"`
	Items  []cartLineDoc `json:"items"`
}

func cartKey(cartID string) string { return "cart:" + cartID }

func (s *RedisCartStore) GetCart(ctx context.Context, cartID string) (_ *domain.Cart, err error) {
	defer obs.Time(ctx, "carts.Get")(&err)

	if s.Client == nil {
		return nil, errors.New("cart store: client is nil")
	}
	if cartID == "" {
		return nil, errors.New("get cart: cartID must not be empty")
	}

	raw, err := s.Client.Get(ctx, cartKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("get cart %q: %w", cartID, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cart %q: %w", cartID, err)
	}

	var doc cartDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("get cart %q: decode: %w", cartID, err)
	}

	cart := &domain.Cart{CartID: doc.CartID}
	for _, line := range doc.Items {
		cart.Items = append(cart.Items, domain.CartItem{
			ItemID:        line.ItemID,
			Name:          line.Name,
			UnitPricePKR:  line.UnitPricePKR,
			Quantity:      line.Quantity,
			SelectedDrink: line.SelectedDrink,
		})
	}

	return cart, nil
}

func (s *RedisCartStore) PutCart(ctx context.Context, cart *domain.Cart) (err error) {
	defer obs.Time(ctx, "carts.Put")(&err)

	if s.Client == nil {
		return errors.New("cart store: client is nil")
	}
	if cart == nil || cart.CartID == "" {
		return errors.New("put cart: cart with a non-empty id is required")
	}

	doc := cartDoc{CartID: cart.CartID}
	for _, line := range cart.Items {
		doc.Items = append(doc.Items, cartLineDoc{
			ItemID:        line.ItemID,
			Name:          line.Name,
			UnitPricePKR:  line.UnitPricePKR,
			Quantity:      line.Quantity,
			SelectedDrink: line.SelectedDrink,
		})
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("put cart %q: encode: %w", cart.CartID, err)
	}

	if err := s.Client.Set(ctx, cartKey(cart.CartID), raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("put cart %q: %w", cart.CartID, err)
	}

	return nil
}

func (s *RedisCartStore) DeleteCart(ctx context.Context, cartID string) (err error) {
	defer obs.Time(ctx, "carts.Delete")(&err)

	if s.Client == nil {
		return errors.New("cart store: client is nil")
	}
	if cartID == "" {
		return errors.New("delete cart: cartID must not be empty")
	}

	if err := s.Client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("delete cart %q: %w", cartID, err)
	}

	return nil
}
