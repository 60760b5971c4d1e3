package handlers

import (
	"errors"
	"log"
	"net/http"

	"kings-crust-service/internal/api/dto"
	"kings-crust-service/internal/domain"
	"kings-crust-service/internal/ports"
)

// MenuHandler exposes read-only menu catalog endpoints.
type MenuHandler struct {
	Repo ports.MenuRepository
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Repo.ListMenu(r.Context())
	if err != nil {
		log.Printf("list menu failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListMenuResponse{
		Categories: make([]dto.MenuCategoryResponse, 0, len(categories)),
	}
	for _, cat := range categories {
		items := make([]dto.MenuItemResponse, 0, len(cat.Items))
		for _, it := range cat.Items {
			items = append(items, toMenuItemResponse(it))
		}
		res.Categories = append(res.Categories, dto.MenuCategoryResponse{
			Category: cat.Category,
			Items:    items,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("itemID")

	item, err := h.Repo.GetMenuItem(r.Context(), itemID)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "menu item not found")
		return
	}
	if err != nil {
		log.Printf("get menu item failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toMenuItemResponse(item))
}

func toMenuItemResponse(it domain.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ItemID:          it.ItemID,
		Name:            it.Name,
		Description:     it.Description,
		FullDescription: it.FullDescription,
		PricePKR:        it.PricePKR,
		DrinkOptions:    it.DrinkOptions,
	}
}
