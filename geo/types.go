package geo

// Point represents a geographic coordinate in degrees.
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Bounds is an axis-aligned box between a southwest and a northeast
// corner. It is a mutable accumulator: Extend widens it to include a
// point. For any bounds built through NewBounds and Extend,
// SouthWest.Latitude <= NorthEast.Latitude and
// SouthWest.Longitude <= NorthEast.Longitude.
type Bounds struct {
	SouthWest Point `json:"southwest"`
	NorthEast Point `json:"northeast"`
}
