package routeboxer

import "github.com/dpup/routeboxer/geo"

// merge runs the two greedy sweeps over the mark matrix and returns the
// smaller cover. A tie goes to the column-first cover.
func (b *boxer) merge() []geo.Bounds {
	rows := b.mergeRows()
	cols := b.mergeColumns()
	if len(cols) <= len(rows) {
		return cols
	}
	return rows
}

// mergeRows sweeps the grid a row at a time, merging horizontally
// contiguous marked cells into one box and then extending boxes from
// earlier rows northward when their longitude spans line up.
func (b *boxer) mergeRows() []geo.Bounds {
	var boxes []geo.Bounds
	var current *geo.Bounds

	for y := 0; y < len(b.latLines)-1; y++ {
		for x := 0; x < len(b.lngLines)-1; x++ {
			if b.marks[x][y] {
				cb := b.cellBounds(x, y)
				if current != nil {
					current.Extend(cb.NorthEast)
				} else {
					current = &cb
				}
			} else {
				boxes = extendNorthOrAppend(boxes, current)
				current = nil
			}
		}
		boxes = extendNorthOrAppend(boxes, current)
		current = nil
	}

	return boxes
}

// mergeColumns is the symmetric sweep: vertically contiguous cells per
// column first, then eastward extension across matching columns.
func (b *boxer) mergeColumns() []geo.Bounds {
	var boxes []geo.Bounds
	var current *geo.Bounds

	for x := 0; x < len(b.lngLines)-1; x++ {
		for y := 0; y < len(b.latLines)-1; y++ {
			if b.marks[x][y] {
				cb := b.cellBounds(x, y)
				if current != nil {
					current.Extend(cb.NorthEast)
				} else {
					current = &cb
				}
			} else {
				boxes = extendEastOrAppend(boxes, current)
				current = nil
			}
		}
		boxes = extendEastOrAppend(boxes, current)
		current = nil
	}

	return boxes
}

// extendNorthOrAppend merges box into an existing box from the row
// below whose longitude span matches and whose north edge touches the
// new box's south edge, extending it in place. Otherwise the box is
// appended.
//
// The adjacency match uses exact float equality. That is safe only
// because both sides are the same grid-line values by construction; an
// epsilon tolerance or a different accumulation order would silently
// break the merge.
func extendNorthOrAppend(boxes []geo.Bounds, box *geo.Bounds) []geo.Bounds {
	if box == nil {
		return boxes
	}
	for i := range boxes {
		if boxes[i].NorthEast.Latitude == box.SouthWest.Latitude &&
			boxes[i].SouthWest.Longitude == box.SouthWest.Longitude &&
			boxes[i].NorthEast.Longitude == box.NorthEast.Longitude {
			boxes[i].Extend(box.NorthEast)
			return boxes
		}
	}
	return append(boxes, *box)
}

// extendEastOrAppend is the column-pass counterpart: the latitude spans
// must match and the existing box's east edge must touch the new box's
// west edge.
func extendEastOrAppend(boxes []geo.Bounds, box *geo.Bounds) []geo.Bounds {
	if box == nil {
		return boxes
	}
	for i := range boxes {
		if boxes[i].NorthEast.Longitude == box.SouthWest.Longitude &&
			boxes[i].SouthWest.Latitude == box.SouthWest.Latitude &&
			boxes[i].NorthEast.Latitude == box.NorthEast.Latitude {
			boxes[i].Extend(box.NorthEast)
			return boxes
		}
	}
	return append(boxes, *box)
}

// cellBounds returns the geographic bounds of one grid cell.
func (b *boxer) cellBounds(x, y int) geo.Bounds {
	return geo.NewBounds(
		geo.Point{Latitude: b.latLines[y], Longitude: b.lngLines[x]},
		geo.Point{Latitude: b.latLines[y+1], Longitude: b.lngLines[x+1]},
	)
}
