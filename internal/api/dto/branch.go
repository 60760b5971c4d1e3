package dto

type HoursEntryResponse struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type BranchResponse struct {
	BranchID             string               `json:"branch_id"`
	Name                 string               `json:"name"`
	Address              string               `json:"address"`
	Lat                  float64              `json:"lat"`
	Lon                  float64              `json:"lon"`
	Services             []string             `json:"services"`
	Hours                []HoursEntryResponse `json:"hours"`
	IsOpen               bool                 `json:"is_open"`
	Status               string               `json:"status"`
	DistanceKm           *float64             `json:"distance_km"`
	WithinDeliveryRadius *bool                `json:"within_delivery_radius"`
}

type ListBranchesResponse struct {
	DeliveryRadiusKm float64          `json:"delivery_radius_km"`
	Branches         []BranchResponse `json:"branches"`
}

type NearestBranchResponse struct {
	Branch BranchResponse `json:"branch"`
}
