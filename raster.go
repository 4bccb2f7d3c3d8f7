package routeboxer

import (
	"math"

	"github.com/dpup/routeboxer/geo"
)

// cell addresses the grid square bounded by lngLines[x]/lngLines[x+1]
// and latLines[y]/latLines[y+1].
type cell struct {
	x, y int
}

// markRoute walks the route vertex by vertex, marking every cell the
// route passes through together with its eight neighbours.
func (b *boxer) markRoute(route []geo.Point) {
	hint := b.cellOf(route[0])
	b.markCell(hint)

	for i := 1; i < len(route); i++ {
		// The previous vertex's cell narrows the search for this one.
		c := b.cellFromHint(route[i], route[i-1], hint)

		switch {
		case c == hint:
			// Same cell as the previous vertex, already marked.
		case (abs(hint.x-c.x) == 1 && hint.y == c.y) || (hint.x == c.x && abs(hint.y-c.y) == 1):
			// Edge-adjacent to the previous cell.
			b.markCell(c)
		default:
			// The segment crosses intermediate grid lines; mark every
			// cell along the way.
			b.markCrossings(route[i-1], route[i], hint, c)
		}

		hint = c
	}
}

// cellOf locates a point's cell by linear scan over both line
// sequences. Only used for the first vertex; later vertices use
// cellFromHint.
func (b *boxer) cellOf(p geo.Point) cell {
	x := 0
	for x < len(b.lngLines) && b.lngLines[x] < p.Longitude {
		x++
	}
	y := 0
	for y < len(b.latLines) && b.latLines[y] < p.Latitude {
		y++
	}
	return cell{x - 1, y - 1}
}

// cellFromHint locates a point's cell by walking from a known nearby
// cell in the direction the coordinate moved.
func (b *boxer) cellFromHint(p, hintPoint geo.Point, hint cell) cell {
	return cell{
		x: searchFrom(b.lngLines, hint.x, p.Longitude, hintPoint.Longitude),
		y: searchFrom(b.latLines, hint.y, p.Latitude, hintPoint.Latitude),
	}
}

// searchFrom returns the index of the cell bracketing v along one axis,
// walking from a known cell index in the direction of coordinate
// change.
func searchFrom(lines []float64, from int, v, hintV float64) int {
	i := from
	if v > hintV {
		for lines[i+1] < v {
			i++
		}
	} else {
		for lines[i] > v {
			i--
		}
	}
	return i
}

// markCrossings marks the cells a segment passes through when its
// endpoints are not in the same or adjacent cells. For every latitude
// grid line strictly between the two cells it computes the exact
// crossing point of the segment's rhumb line, then marks the span of
// cells between consecutive crossings along the crossed row. The
// north-to-south direction mirrors south-to-north with the opposite
// loop direction and row offset.
func (b *boxer) markCrossings(start, end geo.Point, startCell, endCell cell) {
	bearing := geo.RhumbBearing(start, end)

	hintPoint := start
	hint := startCell

	if end.Latitude > start.Latitude {
		i := startCell.y + 1
		for ; i <= endCell.y; i++ {
			// A bearing parallel to the grid line never crosses it.
			if bearing == 90 || bearing == 270 {
				continue
			}
			crossing, ok := b.crossingAt(start, bearing, b.latLines[i])
			if !ok {
				continue
			}
			edge := b.cellFromHint(crossing, hintPoint, hint)
			b.fillRow(hint.x, edge.x, i-1)
			hintPoint = crossing
			hint = edge
		}
		b.fillRow(hint.x, endCell.x, i-1)
	} else {
		i := startCell.y
		for ; i > endCell.y; i-- {
			if bearing == 90 || bearing == 270 {
				continue
			}
			crossing, ok := b.crossingAt(start, bearing, b.latLines[i])
			if !ok {
				continue
			}
			edge := b.cellFromHint(crossing, hintPoint, hint)
			b.fillRow(hint.x, edge.x, i)
			hintPoint = crossing
			hint = edge
		}
		b.fillRow(hint.x, endCell.x, i)
	}
}

// crossingAt returns the point where the constant-bearing path from
// start reaches the given latitude grid line. The rhumb distance to a
// target latitude is R * dLat / cos(bearing).
func (b *boxer) crossingAt(start geo.Point, bearing, lat float64) (geo.Point, bool) {
	d := geo.EarthRadiusKm * (rad(lat) - rad(start.Latitude)) / math.Cos(rad(bearing))
	return geo.RhumbDestination(start, bearing, d)
}

// fillRow marks every cell between x0 and x1, inclusive, in row y.
func (b *boxer) fillRow(x0, x1, y int) {
	if x0 < x1 {
		for x := x0; x <= x1; x++ {
			b.markCell(cell{x, y})
		}
	} else {
		for x := x0; x >= x1; x-- {
			b.markCell(cell{x, y})
		}
	}
}

// markCell marks c and its eight neighbours, clipped to the grid. The
// neighbour padding is what buys the cover its buffer slack.
func (b *boxer) markCell(c cell) {
	for x := c.x - 1; x <= c.x+1; x++ {
		if x < 0 || x >= len(b.marks) {
			continue
		}
		for y := c.y - 1; y <= c.y+1; y++ {
			if y < 0 || y >= len(b.marks[x]) {
				continue
			}
			b.marks[x][y] = true
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
