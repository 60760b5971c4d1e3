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

// Postgres-backed implementation of the MenuRepository port.
type PostgresMenuRepository struct{ DB *sql.DB }

func NewPostgresMenuRepository(db *sql.DB) *PostgresMenuRepository {
	return &PostgresMenuRepository{DB: db}
}

// ListMenu returns the catalog grouped into categories in display order.
func (r *PostgresMenuRepository) ListMenu(ctx context.Context) (_ []domain.MenuCategory, err error) {
	defer obs.Time(ctx, "menu.List")(&err)

	if r.DB == nil {
		return nil, errors.New("menu repository: DB is nil")
	}

	query := `
	SELECT
		item_id,
		category,
		name,
		description,
		full_description,
		price_pkr,
		drink_options
	FROM menu_items
	ORDER BY category_position, item_position, item_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list menu: query menu_items table: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.MenuCategory, 0, 8)
	for rows.Next() {
		var (
			item      domain.MenuItem
			category  string
			drinkJSON []byte
		)
		err := rows.Scan(
			&item.ItemID,
			&category,
			&item.Name,
			&item.Description,
			&item.FullDescription,
			&item.PricePKR,
			&drinkJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("list menu: scan row: %w", err)
		}
		if err := json.Unmarshal(drinkJSON, &item.DrinkOptions); err != nil {
			return nil, fmt.Errorf("list menu: decode drink_options column: %w", err)
		}

		// Rows arrive sorted by category, so a category change starts a new group.
		if len(categories) == 0 || categories[len(categories)-1].Category != category {
			categories = append(categories, domain.MenuCategory{Category: category})
		}
		last := len(categories) - 1
		categories[last].Items = append(categories[last].Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list menu: row iteration: %w", err)
	}

	return categories, nil
}

func (r *PostgresMenuRepository) GetMenuItem(ctx context.Context, itemID string) (_ domain.MenuItem, err error) {
	defer obs.Time(ctx, "menu.GetItem")(&err)

	if r.DB == nil {
		return domain.MenuItem{}, errors.New("menu repository: DB is nil")
	}

	query := `
	SELECT
		item_id,
		name,
		description,
		full_description,
		price_pkr,
		drink_options
	FROM menu_items
	WHERE item_id = $1;
	`

	var (
		item      domain.MenuItem
		drinkJSON []byte
	)
	err = r.DB.QueryRowContext(ctx, query, itemID).Scan(
		&item.ItemID,
		&item.Name,
		&item.Description,
		&item.FullDescription,
		&item.PricePKR,
		&drinkJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MenuItem{}, fmt.Errorf("get menu item %q: %w", itemID, ports.ErrNotFound)
	}
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("get menu item %q: scan row: %w", itemID, err)
	}

	if err := json.Unmarshal(drinkJSON, &item.DrinkOptions); err != nil {
		return domain.MenuItem{}, fmt.Errorf("get menu item %q: decode drink_options column: %w", itemID, err)
	}

	return item, nil
}
