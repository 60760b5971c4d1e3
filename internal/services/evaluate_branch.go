package services

import (
	"time"

	"kings-crust-service/internal/domain"
)

// Radius around a branch inside which delivery orders are accepted.
const DeliveryRadiusKm = 10.0

// Evaluation is what the branch locator shows for one branch: whether it is
// open right now and, when the caller's location is known, how far away it is.
type Evaluation struct {
	IsOpen     bool
	Status     string
	DistanceKm *float64
}

// WithinDeliveryRadius reports whether the evaluated distance falls inside
// the delivery radius. Unknown when the user location is unknown.
func (e Evaluation) WithinDeliveryRadius() *bool {
	if e.DistanceKm == nil {
		return nil
	}
	within := *e.DistanceKm <= DeliveryRadiusKm
	return &within
}

// EvaluateBranch computes the open/closed state of a branch at the given
// moment and its distance from the user. A nil user coordinate yields a nil
// distance, not an error.
func EvaluateBranch(branch domain.Branch, user *domain.Coordinates, now time.Time) Evaluation {
	open := EvaluateOpen(branch.Hours, now)
	loc := branch.Location

	return Evaluation{
		IsOpen:     open.IsOpen,
		Status:     open.Status,
		DistanceKm: domain.DistanceBetween(user, &loc),
	}
}

// NearestBranch evaluates all branches and returns the one closest to the
// user. Without a user location, distances are unknowable and the first
// branch in listing order is returned. ok is false when the list is empty.
func NearestBranch(branches []domain.Branch, user *domain.Coordinates, now time.Time) (domain.Branch, Evaluation, bool) {
	if len(branches) == 0 {
		return domain.Branch{}, Evaluation{}, false
	}

	best := 0
	bestEval := EvaluateBranch(branches[0], user, now)

	for i := 1; i < len(branches); i++ {
		eval := EvaluateBranch(branches[i], user, now)
		if eval.DistanceKm != nil && bestEval.DistanceKm != nil &&
			*eval.DistanceKm < *bestEval.DistanceKm {
			best = i
			bestEval = eval
		}
	}

	return branches[best], bestEval, true
}
