package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"kings-crust-service/internal/api/dto"
	"kings-crust-service/internal/domain"
	"kings-crust-service/internal/ports"

	"github.com/google/uuid"
)

// AddressHandler exposes saved delivery address CRUD.
type AddressHandler struct {
	Repo ports.AddressRepository
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	addrs, err := h.Repo.ListAddresses(r.Context())
	if err != nil {
		log.Printf("list addresses failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListAddressesResponse{
		Addresses: make([]dto.AddressResponse, 0, len(addrs)),
	}
	for _, a := range addrs {
		res.Addresses = append(res.Addresses, toAddressResponse(a))
	}
	if def := domain.DefaultAddress(addrs); def != nil {
		res.DefaultAddressID = &def.AddressID
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	addr, ok := decodeAddress(w, r)
	if !ok {
		return
	}
	addr.AddressID = uuid.NewString()

	if err := h.Repo.CreateAddress(r.Context(), addr); err != nil {
		log.Printf("create address failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toAddressResponse(addr))
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	addr, ok := decodeAddress(w, r)
	if !ok {
		return
	}
	addr.AddressID = r.PathValue("addressID")

	err := h.Repo.UpdateAddress(r.Context(), addr)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "address not found")
		return
	}
	if err != nil {
		log.Printf("update address failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toAddressResponse(addr))
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Repo.DeleteAddress(r.Context(), r.PathValue("addressID"))
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "address not found")
		return
	}
	if err != nil {
		log.Printf("delete address failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeAddress(w http.ResponseWriter, r *http.Request) (domain.Address, bool) {
	var req dto.SaveAddressRequest
	if !decodeBody(w, r, &req) {
		return domain.Address{}, false
	}

	if strings.TrimSpace(req.Label) == "" {
		writeError(w, r, http.StatusBadRequest, "label is required")
		return domain.Address{}, false
	}
	if strings.TrimSpace(req.FullAddress) == "" {
		writeError(w, r, http.StatusBadRequest, "full_address is required")
		return domain.Address{}, false
	}
	if req.Lat == nil || req.Lon == nil {
		writeError(w, r, http.StatusBadRequest, "lat and lon are required")
		return domain.Address{}, false
	}

	return domain.Address{
		Label:       strings.TrimSpace(req.Label),
		FullAddress: strings.TrimSpace(req.FullAddress),
		Details:     strings.TrimSpace(req.Details),
		Location:    domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon},
	}, true
}

func toAddressResponse(a domain.Address) dto.AddressResponse {
	return dto.AddressResponse{
		AddressID:   a.AddressID,
		Label:       a.Label,
		FullAddress: a.FullAddress,
		Details:     a.Details,
		Lat:         a.Location.Lat,
		Lon:         a.Location.Lon,
	}
}
