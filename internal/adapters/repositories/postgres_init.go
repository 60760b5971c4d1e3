package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"kings-crust-service/internal/domain"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createBranchesQuery := `
	CREATE TABLE IF NOT EXISTS branches (
		branch_id TEXT PRIMARY KEY,
		position INTEGER NOT NULL DEFAULT 0,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		services JSONB NOT NULL DEFAULT '[]',
		hours JSONB NOT NULL DEFAULT '[]'
	);
	`

	createMenuItemsQuery := `
	CREATE TABLE IF NOT EXISTS menu_items (
		item_id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		category_position INTEGER NOT NULL DEFAULT 0,
		item_position INTEGER NOT NULL DEFAULT 0,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		full_description TEXT NOT NULL,
		price_pkr INTEGER NOT NULL,
		drink_options JSONB NOT NULL DEFAULT '[]'
	);
	`

	createAddressesQuery := `
	CREATE TABLE IF NOT EXISTS addresses (
		address_id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		full_address TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		branch_id TEXT NOT NULL,
		items JSONB NOT NULL,
		total_pkr INTEGER NOT NULL,
		address JSONB NOT NULL,
		placed_at TIMESTAMPTZ NOT NULL
	);
	`

	createOrderIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_placed_at
	ON orders(placed_at DESC);
	`

	statements := []string{
		createBranchesQuery,
		createMenuItemsQuery,
		createAddressesQuery,
		createOrdersQuery,
		createOrderIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type BranchSeed struct {
	BranchID string             `json:"branch_id"`
	Name     string             `json:"name"`
	Address  string             `json:"address"`
	Lat      float64            `json:"lat"`
	Lon      float64            `json:"lon"`
	Services []string           `json:"services"`
	Hours    domain.WeeklyHours `json:"hours"`
}

// Populate the branches table from a JSON file.
func SeedBranchesFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed branches: read %q: %w", jsonPath, err)
	}

	var data []BranchSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed branches: parse json: %w", err)
	}

	for i, b := range data {
		if strings.TrimSpace(b.BranchID) == "" {
			return fmt.Errorf("seed branches: item at index %d: branch_id cannot be empty", i+1)
		}
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("seed branches: branch %q: name cannot be empty", b.BranchID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed branches: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO branches (
		branch_id,
		position,
		name,
		address,
		lat,
		lon,
		services,
		hours
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (branch_id) DO UPDATE SET
		position = EXCLUDED.position,
		name = EXCLUDED.name,
		address = EXCLUDED.address,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		services = EXCLUDED.services,
		hours = EXCLUDED.hours;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed branches: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range data {
		servicesJSON, err := json.Marshal(b.Services)
		if err != nil {
			return fmt.Errorf("seed branches: branch %q: encode services: %w", b.BranchID, err)
		}
		hoursJSON, err := json.Marshal(b.Hours)
		if err != nil {
			return fmt.Errorf("seed branches: branch %q: encode hours: %w", b.BranchID, err)
		}

		if _, err := stmt.Exec(b.BranchID, i, b.Name, b.Address, b.Lat, b.Lon, servicesJSON, hoursJSON); err != nil {
			return fmt.Errorf("seed branches: insert branch_id=%q: %w", b.BranchID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed branches: commit tx: %w", err)
	}

	return nil
}

type MenuSeedItem struct {
	ItemID          string   `json:"item_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	PricePKR        int      `json:"price_pkr"`
	DrinkOptions    []string `json:"drink_options"`
}

type MenuSeedCategory struct {
	Category string         `json:"category"`
	Items    []MenuSeedItem `json:"items"`
}

// Populate the menu_items table from a JSON file of categories.
func SeedMenuFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed menu: read %q: %w", jsonPath, err)
	}

	var data []MenuSeedCategory
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed menu: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed menu: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO menu_items (
		item_id,
		category,
		category_position,
		item_position,
		name,
		description,
		full_description,
		price_pkr,
		drink_options
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (item_id) DO UPDATE SET
		category = EXCLUDED.category,
		category_position = EXCLUDED.category_position,
		item_position = EXCLUDED.item_position,
		name = EXCLUDED.name,
		description = EXCLUDED.description,
		full_description = EXCLUDED.full_description,
		price_pkr = EXCLUDED.price_pkr,
		drink_options = EXCLUDED.drink_options;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed menu: prepare insert: %w", err)
	}
	defer stmt.Close()

	for ci, cat := range data {
		if strings.TrimSpace(cat.Category) == "" {
			return fmt.Errorf("seed menu: category at index %d: name cannot be empty", ci+1)
		}

		for ii, item := range cat.Items {
			if strings.TrimSpace(item.ItemID) == "" {
				return fmt.Errorf("seed menu: category %q item at index %d: item_id cannot be empty", cat.Category, ii+1)
			}
			if item.PricePKR <= 0 {
				return fmt.Errorf("seed menu: item %q: invalid price %d", item.ItemID, item.PricePKR)
			}

			drinkJSON, err := json.Marshal(item.DrinkOptions)
			if err != nil {
				return fmt.Errorf("seed menu: item %q: encode drink_options: %w", item.ItemID, err)
			}

			_, err = stmt.Exec(
				item.ItemID,
				cat.Category,
				ci,
				ii,
				item.Name,
				item.Description,
				item.FullDescription,
				item.PricePKR,
				drinkJSON,
			)
			if err != nil {
				return fmt.Errorf("seed menu: insert item_id=%q: %w", item.ItemID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed menu: commit tx: %w", err)
	}

	return nil
}
