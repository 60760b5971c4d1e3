package ports

import (
	"context"

	"kings-crust-service/internal/domain"
)

// Port: a boundary for retrieving Branch records from a data source.
type BranchRepository interface {
	// Retrieve all branches in listing order.
	ListBranches(ctx context.Context) ([]domain.Branch, error)
	// Retrieve one branch by id. Returns ErrNotFound when it does not exist.
	GetBranch(ctx context.Context, branchID string) (domain.Branch, error)
}
