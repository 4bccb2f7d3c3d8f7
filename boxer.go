// Package routeboxer computes a set of axis-aligned geographic boxes
// that together cover every point within a buffer distance of a route.
//
// The route is rasterized onto a latitude/longitude grid whose cell
// size equals the buffer distance; every cell the route passes through
// is marked along with its eight neighbours, and marked cells are then
// merged into rectangles by two greedy sweeps. The result is a compact
// cover suitable for spatial-filtering queries, not a minimum one:
// rectangle cover is NP-hard in general and the neighbour padding means
// boxes can extend up to roughly three times the buffer distance from
// the route. Routes that cross the antimeridian are not supported.
//
// Every call builds and owns its own grid and merge state, so
// independent goroutines may call the package concurrently without
// locking.
package routeboxer

import (
	"fmt"

	"github.com/dpup/routeboxer/geo"
)

// DefaultBufferMeters is the buffer distance applied when a
// non-positive one is given.
const DefaultBufferMeters = 20

// Box returns coverage boxes for every point within bufferMeters of
// the route. A route with fewer than two points yields no boxes.
func Box(route []geo.Point, bufferMeters float64) []geo.Bounds {
	if len(route) < 2 {
		return nil
	}
	if bufferMeters <= 0 {
		bufferMeters = DefaultBufferMeters
	}

	b := newBoxer(route, bufferMeters/1000)
	if len(b.latLines) < 2 || len(b.lngLines) < 2 {
		// Grid growth halted on a degenerate rhumb result before a
		// single cell existed; there is nothing to cover.
		return nil
	}
	b.markRoute(route)
	return b.merge()
}

// BoxPairs is the flat-array form of Box: each pair is
// {latitude, longitude} in degrees. Invalid coordinates fail fast.
func BoxPairs(pairs [][]float64, bufferMeters float64) ([]geo.Bounds, error) {
	route := make([]geo.Point, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("pair %d: expected {lat, lng}, got %d values", i, len(pair))
		}
		p, err := geo.NewPoint(pair[0], pair[1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		route[i] = p
	}
	return Box(route, bufferMeters), nil
}

// boxer holds the grid and merge state for a single computation. It is
// never reused across calls.
type boxer struct {
	rangeKm  float64
	latLines []float64 // ascending latitude grid lines
	lngLines []float64 // ascending longitude grid lines
	marks    [][]bool  // marks[x][y], x between lngLines, y between latLines
}

func newBoxer(route []geo.Point, rangeKm float64) *boxer {
	b := &boxer{rangeKm: rangeKm}
	b.buildGrid(route)
	return b
}
