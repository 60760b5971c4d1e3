package dto

type SaveAddressRequest struct {
	Label       string   `json:"label"`
	FullAddress string   `json:"full_address"`
	Details     string   `json:"details"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

type AddressResponse struct {
	AddressID   string  `json:"address_id"`
	Label       string  `json:"label"`
	FullAddress string  `json:"full_address"`
	Details     string  `json:"details,omitempty"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

type ListAddressesResponse struct {
	Addresses        []AddressResponse `json:"addresses"`
	DefaultAddressID *string           `json:"default_address_id"`
}
