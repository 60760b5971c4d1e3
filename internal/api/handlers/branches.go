package handlers

import (
	"log"
	"math"
	"net/http"
	"time"

	"kings-crust-service/internal/api/dto"
	"kings-crust-service/internal/domain"
	"kings-crust-service/internal/ports"
	"kings-crust-service/internal/services"
)

// BranchHandler exposes the branch locator: the branch list and the
// nearest-branch card, both evaluated for open-state and distance at
// request time.
type BranchHandler struct {
	Repo ports.BranchRepository
	Now  func() time.Time
}

func (h *BranchHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	user, err := userLocation(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	branches, err := h.Repo.ListBranches(r.Context())
	if err != nil {
		log.Printf("list branches failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	now := h.now()
	res := dto.ListBranchesResponse{
		DeliveryRadiusKm: services.DeliveryRadiusKm,
		Branches:         make([]dto.BranchResponse, 0, len(branches)),
	}
	for _, b := range branches {
		eval := services.EvaluateBranch(b, user, now)
		res.Branches = append(res.Branches, toBranchResponse(b, eval))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *BranchHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	user, err := userLocation(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	branches, err := h.Repo.ListBranches(r.Context())
	if err != nil {
		log.Printf("nearest branch failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	branch, eval, ok := services.NearestBranch(branches, user, h.now())
	if !ok {
		writeError(w, r, http.StatusNotFound, "no branches configured")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NearestBranchResponse{
		Branch: toBranchResponse(branch, eval),
	})
}

func toBranchResponse(b domain.Branch, eval services.Evaluation) dto.BranchResponse {
	hours := make([]dto.HoursEntryResponse, 0, len(b.Hours))
	for _, e := range b.Hours {
		hours = append(hours, dto.HoursEntryResponse{Days: e.Days, Hours: e.Hours})
	}

	return dto.BranchResponse{
		BranchID:             b.BranchID,
		Name:                 b.Name,
		Address:              b.Address,
		Lat:                  b.Location.Lat,
		Lon:                  b.Location.Lon,
		Services:             b.Services,
		Hours:                hours,
		IsOpen:               eval.IsOpen,
		Status:               eval.Status,
		DistanceKm:           roundKm(eval.DistanceKm),
		WithinDeliveryRadius: eval.WithinDeliveryRadius(),
	}
}

// Distances are displayed to one decimal place ("3.2 KM away from you").
func roundKm(km *float64) *float64 {
	if km == nil {
		return nil
	}
	rounded := math.Round(*km*10) / 10
	return &rounded
}
