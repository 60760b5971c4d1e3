package domain

import "math"

// Earth radius used by the haversine formula, in kilometers.
const earthRadiusKm = 6371

// Immutable geographic coordinates (latitude, longitude) in decimal degrees, WGS-84.
type Coordinates struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the great-circle distance between two points in kilometers
// (haversine formula). The result is unrounded; display formatting is a caller concern.
func DistanceKm(a, b Coordinates) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLon := degToRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// DistanceBetween computes DistanceKm when both coordinates are known.
// It returns nil when either side is absent (e.g. location permission denied),
// which callers render as "N/A".
func DistanceBetween(a, b *Coordinates) *float64 {
	if a == nil || b == nil {
		return nil
	}

	d := DistanceKm(*a, *b)
	return &d
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
