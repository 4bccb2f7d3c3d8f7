// Package geo provides geographic primitives: points, bounds
// accumulation, great-circle distance, rhumb-line navigation and Google
// polyline decoding.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/twpayne/go-polyline"
)

// NewPoint creates a Point from latitude and longitude values with
// validation. NaN and infinite values fail the range checks.
func NewPoint(latitude, longitude float64) (Point, error) {
	p := Point{Latitude: latitude, Longitude: longitude}
	if !isValidCoordinate(p) {
		return Point{}, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}
	return p, nil
}

// NewBounds returns bounds with the given corners.
func NewBounds(sw, ne Point) Bounds {
	return Bounds{SouthWest: sw, NorthEast: ne}
}

// Extend widens the bounds to include p.
func (b *Bounds) Extend(p Point) {
	if p.Latitude < b.SouthWest.Latitude {
		b.SouthWest.Latitude = p.Latitude
	}
	if p.Latitude > b.NorthEast.Latitude {
		b.NorthEast.Latitude = p.Latitude
	}
	if p.Longitude < b.SouthWest.Longitude {
		b.SouthWest.Longitude = p.Longitude
	}
	if p.Longitude > b.NorthEast.Longitude {
		b.NorthEast.Longitude = p.Longitude
	}
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{
		Latitude:  (b.SouthWest.Latitude + b.NorthEast.Latitude) / 2,
		Longitude: (b.SouthWest.Longitude + b.NorthEast.Longitude) / 2,
	}
}

// Contains reports whether p lies within the bounds, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.Latitude >= b.SouthWest.Latitude && p.Latitude <= b.NorthEast.Latitude &&
		p.Longitude >= b.SouthWest.Longitude && p.Longitude <= b.NorthEast.Longitude
}

// Distance returns the great-circle distance between two points in
// meters, using the Haversine formula.
func Distance(p1, p2 Point) float64 {
	const earthRadius = 6371000

	lat1 := rad(p1.Latitude)
	lat2 := rad(p2.Latitude)
	dLat := rad(p2.Latitude - p1.Latitude)
	dLon := rad(p2.Longitude - p1.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// DecodePolyline decodes a Google encoded polyline string to a point
// sequence.
func DecodePolyline(encoded string) ([]Point, error) {
	if encoded == "" {
		return nil, errors.New("encoded polyline string is empty")
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}

	points := make([]Point, len(coords))
	for i, coord := range coords {
		p, err := NewPoint(coord[0], coord[1])
		if err != nil {
			return nil, fmt.Errorf("decoded polyline contains invalid coordinates: %w", err)
		}
		points[i] = p
	}

	return points, nil
}

// isValidCoordinate validates latitude and longitude values.
func isValidCoordinate(p Point) bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
