package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kings-crust-service/internal/domain"
	"kings-crust-service/internal/platform/obs"
	"kings-crust-service/internal/ports"
)

// Postgres-backed implementation of the AddressRepository port.
type PostgresAddressRepository struct{ DB *sql.DB }

func NewPostgresAddressRepository(db *sql.DB) *PostgresAddressRepository {
	return &PostgresAddressRepository{DB: db}
}

func (r *PostgresAddressRepository) ListAddresses(ctx context.Context) (_ []domain.Address, err error) {
	defer obs.Time(ctx, "addresses.List")(&err)

	if r.DB == nil {
		return nil, errors.New("address repository: DB is nil")
	}

	query := `
	SELECT
		address_id,
		label,
		full_address,
		details,
		lat,
		lon
	FROM addresses
	ORDER BY created_at, address_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list addresses: query addresses table: %w", err)
	}
	defer rows.Close()

	addresses := make([]domain.Address, 0, 8)
	for rows.Next() {
		var a domain.Address
		err := rows.Scan(&a.AddressID, &a.Label, &a.FullAddress, &a.Details, &a.Location.Lat, &a.Location.Lon)
		if err != nil {
			return nil, fmt.Errorf("list addresses: scan row: %w", err)
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list addresses: row iteration: %w", err)
	}

	return addresses, nil
}

func (r *PostgresAddressRepository) GetAddress(ctx context.Context, addressID string) (_ domain.Address, err error) {
	defer obs.Time(ctx, "addresses.Get")(&err)

	if r.DB == nil {
		return domain.Address{}, errors.New("address repository: DB is nil")
	}

	query := `
	SELECT
		address_id,
		label,
		full_address,
		details,
		lat,
		lon
	FROM addresses
	WHERE address_id = $1;
	`

	var a domain.Address
	err = r.DB.QueryRowContext(ctx, query, addressID).
		Scan(&a.AddressID, &a.Label, &a.FullAddress, &a.Details, &a.Location.Lat, &a.Location.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Address{}, fmt.Errorf("get address %q: %w", addressID, ports.ErrNotFound)
	}
	if err != nil {
		return domain.Address{}, fmt.Errorf("get address %q: scan row: %w", addressID, err)
	}

	return a, nil
}

func (r *PostgresAddressRepository) CreateAddress(ctx context.Context, addr domain.Address) (err error) {
	defer obs.Time(ctx, "addresses.Create")(&err)

	if r.DB == nil {
		return errors.New("address repository: DB is nil")
	}

	query := `
	INSERT INTO addresses (
		address_id,
		label,
		full_address,
		details,
		lat,
		lon
	)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = r.DB.ExecContext(ctx, query,
		addr.AddressID, addr.Label, addr.FullAddress, addr.Details, addr.Location.Lat, addr.Location.Lon)
	if err != nil {
		return fmt.Errorf("create address %q: %w", addr.AddressID, err)
	}

	return nil
}

func (r *PostgresAddressRepository) UpdateAddress(ctx context.Context, addr domain.Address) (err error) {
	defer obs.Time(ctx, "addresses.Update")(&err)

	if r.DB == nil {
		return errors.New("address repository: DB is nil")
	}

	query := `
	UPDATE addresses
	SET label = $2,
		full_address = $3,
		details = $4,
		lat = $5,
		lon = $6
	WHERE address_id = $1;
	`
	res, err := r.DB.ExecContext(ctx, query,
		addr.AddressID, addr.Label, addr.FullAddress, addr.Details, addr.Location.Lat, addr.Location.Lon)
	if err != nil {
		return fmt.Errorf("update address %q: %w", addr.AddressID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update address %q: rows affected: %w", addr.AddressID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update address %q: %w", addr.AddressID, ports.ErrNotFound)
	}

	return nil
}

func (r *PostgresAddressRepository) DeleteAddress(ctx context.Context, addressID string) (err error) {
	defer obs.Time(ctx, "addresses.Delete")(&err)

	if r.DB == nil {
		return errors.New("address repository: DB is nil")
	}

	res, err := r.DB.ExecContext(ctx, `DELETE FROM addresses WHERE address_id = $1;`, addressID)
	if err != nil {
		return fmt.Errorf("delete address %q: %w", addressID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete address %q: rows affected: %w", addressID, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete address %q: %w", addressID, ports.ErrNotFound)
	}

	return nil
}
