package grid

import "strconv"

// Marker is the ring number drawn inside a cell as an alignment aid.
// Ring 1 is the outermost ring of cells.
type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerRing1
	MarkerRing2
	MarkerRing3
)

// String returns the digit drawn in the cell, or "" for no marker.
func (m Marker) String() string {
	if m == MarkerNone {
		return ""
	}
	return strconv.Itoa(int(m))
}

// MarkerFor returns the marker for (row, col) in an n×n grid from the cell's
// distance to the nearest border.
func MarkerFor(row, col, n int) Marker {
	d := min(row, n-1-row, col, n-1-col)
	switch d {
	case 0:
		return MarkerRing1
	case 1:
		return MarkerRing2
	case 2:
		return MarkerRing3
	}
	return MarkerNone
}

// MarkerFontSize is the marker glyph size for a cell: 60% of the side, floored.
func MarkerFontSize(cellSize int) int {
	return cellSize * 6 / 10
}
