package dto

type MenuItemResponse struct {
	ItemID          string   `json:"item_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	PricePKR        int      `json:"price_pkr"`
	DrinkOptions    []string `json:"drink_options,omitempty"`
}

type MenuCategoryResponse struct {
	Category string             `json:"category"`
	Items    []MenuItemResponse `json:"items"`
}

type ListMenuResponse struct {
	Categories []MenuCategoryResponse `json:"categories"`
}
