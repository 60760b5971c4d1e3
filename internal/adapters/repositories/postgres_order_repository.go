package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"kings-crust-service/internal/domain"
	"kings-crust-service/internal/platform/obs"
	"kings-crust-service/internal/ports"
)

// Postgres-backed implementation of the OrderRepository port.
// The cart snapshot and delivery address are stored as JSONB documents:
// they are immutable once the order is placed, so there is nothing to
// normalize or join against.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

type orderItemDoc struct {
	ItemID        string `json:"item_id"`
	Name          string `json:"name"`
	UnitPricePKR  int    `json:"unit_price_pkr"`
	Quantity      int    `json:"quantity"`
	SelectedDrink string `json:"selected_drink,omitempty"`
}

type addressDoc struct {
	AddressID   string  `json:"address_id"`
	Label       string  `json:"label"`
	FullAddress string  `json:"full_address"`
	Details     string  `json:"details,omitempty"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

func (r *PostgresOrderRepository) CreateOrder(ctx context.Context, order domain.Order) (err error) {
	defer obs.Time(ctx, "orders.Create")(&err)

	if r.DB == nil {
		return errors.New("order repository: DB is nil")
	}

	items := make([]orderItemDoc, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, orderItemDoc{
			ItemID:        it.ItemID,
			Name:          it.Name,
			UnitPricePKR:  it.UnitPricePKR,
			Quantity:      it.Quantity,
			SelectedDrink: it.SelectedDrink,
		})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("create order %q: encode items: %w", order.OrderID, err)
	}

	addrJSON, err := json.Marshal(addressDoc{
		AddressID:   order.Address.AddressID,
		Label:       order.Address.Label,
		FullAddress: order.Address.FullAddress,
		Details:     order.Address.Details,
		Lat:         order.Address.Location.Lat,
		Lon:         order.Address.Location.Lon,
	})
	if err != nil {
		return fmt.Errorf("create order %q: encode address: %w", order.OrderID, err)
	}

	query := `
	INSERT INTO orders (
		order_id,
		branch_id,
		items,
		total_pkr,
		address,
		placed_at
	)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = r.DB.ExecContext(ctx, query,
		order.OrderID, order.BranchID, itemsJSON, order.TotalPKR, addrJSON, order.PlacedAt)
	if err != nil {
		return fmt.Errorf("create order %q: %w", order.OrderID, err)
	}

	return nil
}

func (r *PostgresOrderRepository) GetOrder(ctx context.Context, orderID string) (_ domain.Order, err error) {
	defer obs.Time(ctx, "orders.Get")(&err)

	if r.DB == nil {
		return domain.Order{}, errors.New("order repository: DB is nil")
	}

	query := `
	SELECT
		order_id,
		branch_id,
		items,
		total_pkr,
		address,
		placed_at
	FROM orders
	WHERE order_id = $1;
	`
	row := r.DB.QueryRowContext(ctx, query, orderID)

	order, err := scanOrder(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("get order %q: %w", orderID, ports.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %q: %w", orderID, err)
	}

	return order, nil
}

func (r *PostgresOrderRepository) ListOrders(ctx context.Context) (_ []domain.Order, err error) {
	defer obs.Time(ctx, "orders.List")(&err)

	if r.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `
	SELECT
		order_id,
		branch_id,
		items,
		total_pkr,
		address,
		placed_at
	FROM orders
	ORDER BY placed_at DESC, order_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, 16)
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

func scanOrder(scan func(dest ...any) error) (domain.Order, error) {
	var (
		order     domain.Order
		itemsJSON []byte
		addrJSON  []byte
	)

	err := scan(&order.OrderID, &order.BranchID, &itemsJSON, &order.TotalPKR, &addrJSON, &order.PlacedAt)
	if err != nil {
		return domain.Order{}, err
	}

	var items []orderItemDoc
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return domain.Order{}, fmt.Errorf("decode items column: %w", err)
	}
	for _, it := range items {
		order.Items = append(order.Items, domain.CartItem{
			ItemID:        it.ItemID,
			Name:          it.Name,
			UnitPricePKR:  it.UnitPricePKR,
			Quantity:      it.Quantity,
			SelectedDrink: it.SelectedDrink,
		})
	}

	var addr addressDoc
	if err := json.Unmarshal(addrJSON, &addr); err != nil {
		return domain.Order{}, fmt.Errorf("decode address column: %w", err)
	}
	order.Address = domain.Address{
		AddressID:   addr.AddressID,
		Label:       addr.Label,
		FullAddress: addr.FullAddress,
		Details:     addr.Details,
		Location:    domain.Coordinates{Lat: addr.Lat, Lon: addr.Lon},
	}

	return order, nil
}
