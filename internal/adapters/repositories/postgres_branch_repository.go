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

// Postgres-backed implementation of the BranchRepository port.
// Weekly hours and service tags are stored as JSONB; the hours column is a
// JSON array so schedule entry order survives storage (first-match-wins
// resolution depends on it).
type PostgresBranchRepository struct{ DB *sql.DB }

func NewPostgresBranchRepository(db *sql.DB) *PostgresBranchRepository {
	return &PostgresBranchRepository{DB: db}
}

func (r *PostgresBranchRepository) ListBranches(ctx context.Context) (_ []domain.Branch, err error) {
	defer obs.Time(ctx, "branches.List")(&err)

	if r.DB == nil {
		return nil, errors.New("branch repository: DB is nil")
	}

	query := `
	SELECT
		branch_id,
		name,
		address,
		lat,
		lon,
		services,
		hours
	FROM branches
	ORDER BY position, branch_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list branches: query branches table: %w", err)
	}
	defer rows.Close()

	branches := make([]domain.Branch, 0, 8)
	for rows.Next() {
		b, err := scanBranch(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list branches: %w", err)
		}
		branches = append(branches, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list branches: row iteration: %w", err)
	}

	return branches, nil
}

func (r *PostgresBranchRepository) GetBranch(ctx context.Context, branchID string) (_ domain.Branch, err error) {
	defer obs.Time(ctx, "branches.Get")(&err)

	if r.DB == nil {
		return domain.Branch{}, errors.New("branch repository: DB is nil")
	}

	query := `
	SELECT
		branch_id,
		name,
		address,
		lat,
		lon,
		services,
		hours
	FROM branches
	WHERE branch_id = $1;
	`
	row := r.DB.QueryRowContext(ctx, query, branchID)

	b, err := scanBranch(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Branch{}, fmt.Errorf("get branch %q: %w", branchID, ports.ErrNotFound)
	}
	if err != nil {
		return domain.Branch{}, fmt.Errorf("get branch %q: %w", branchID, err)
	}

	return b, nil
}

func scanBranch(scan func(dest ...any) error) (domain.Branch, error) {
	var (
		b            domain.Branch
		servicesJSON []byte
		hoursJSON    []byte
	)

	err := scan(&b.BranchID, &b.Name, &b.Address, &b.Location.Lat, &b.Location.Lon, &servicesJSON, &hoursJSON)
	if err != nil {
		return domain.Branch{}, err
	}

	if err := json.Unmarshal(servicesJSON, &b.Services); err != nil {
		return domain.Branch{}, fmt.Errorf("decode services column: %w", err)
	}
	if err := json.Unmarshal(hoursJSON, &b.Hours); err != nil {
		return domain.Branch{}, fmt.Errorf("decode hours column: %w", err)
	}

	return b, nil
}
