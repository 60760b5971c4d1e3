package dto

type AddCartItemRequest struct {
	ItemID        string `json:"item_id"`
	Quantity      int    `json:"quantity"`
	SelectedDrink string `json:"selected_drink"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ItemID        string `json:"item_id"`
	Name          string `json:"name"`
	UnitPricePKR  int    `json:"unit_price_pkr"`
	Quantity      int    `json:"quantity"`
	SelectedDrink string `json:"selected_drink,omitempty"`
}

type CartResponse struct {
	CartID   string             `json:"cart_id"`
	Items    []CartItemResponse `json:"items"`
	TotalPKR int                `json:"total_pkr"`
}
