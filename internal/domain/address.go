package domain

// A saved delivery address.
type Address struct {
	AddressID   string
	Label       string
	FullAddress string
	Details     string
	Location    Coordinates
}

// DefaultAddress picks the address labelled "Home" if one exists,
// otherwise the first saved address. Returns nil when none are saved.
func DefaultAddress(saved []Address) *Address {
	for i := range saved {
		if saved[i].Label == "Home" {
			return &saved[i]
		}
	}
	if len(saved) > 0 {
		return &saved[0]
	}
	return nil
}
