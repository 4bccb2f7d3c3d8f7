package routeboxer

import "github.com/dpup/routeboxer/geo"

// buildGrid lays out the latitude and longitude grid lines for the
// route, spaced one buffer distance apart and centered on the middle of
// the route's bounding box, then allocates the mark matrix.
func (b *boxer) buildGrid(route []geo.Point) {
	bounds := geo.NewBounds(route[0], route[0])
	for _, v := range route[1:] {
		bounds.Extend(v)
	}
	center := bounds.Center()

	b.latLines = buildLines(center, 0, 180, b.rangeKm,
		bounds.NorthEast.Latitude, bounds.SouthWest.Latitude,
		func(p geo.Point) float64 { return p.Latitude })
	b.lngLines = buildLines(center, 90, 270, b.rangeKm,
		bounds.NorthEast.Longitude, bounds.SouthWest.Longitude,
		func(p geo.Point) float64 { return p.Longitude })

	b.marks = make([][]bool, len(b.lngLines)-1)
	for x := range b.marks {
		b.marks[x] = make([]bool, len(b.latLines)-1)
	}
}

// buildLines walks outward from center one grid step at a time, first
// along outBearing and then along backBearing, until the lines extend
// one full cell beyond the corresponding bounding-box edge. The result
// is strictly ascending and always brackets the route, even when the
// route collapses to a single point.
//
// Growth halts early if rhumb navigation degenerates to its non-finite
// sentinel, or if a step fails to advance strictly outward (a path
// reflected past a pole would otherwise never clear the edge).
func buildLines(center geo.Point, outBearing, backBearing, step, outEdge, backEdge float64, coord func(geo.Point) float64) []float64 {
	lines := []float64{coord(center)}

	p, ok := geo.RhumbDestination(center, outBearing, step)
	if !ok || coord(p) <= lines[0] {
		return lines
	}
	lines = append(lines, coord(p))
	for i := 2; lines[i-2] < outEdge; i++ {
		p, ok := geo.RhumbDestination(center, outBearing, step*float64(i))
		if !ok || coord(p) <= lines[len(lines)-1] {
			break
		}
		lines = append(lines, coord(p))
	}

	for i := 1; lines[1] > backEdge; i++ {
		p, ok := geo.RhumbDestination(center, backBearing, step*float64(i))
		if !ok || coord(p) >= lines[0] {
			break
		}
		lines = append([]float64{coord(p)}, lines...)
	}

	return lines
}
