package grid

import "image"

// Layout is the on-screen geometry of a rendered grid, header row and
// header column included. Every slot is CellSize square.
type Layout struct {
	OriginX, OriginY int
	Dimension        int
	CellSize         int
}

// NewLayout places a grid of cfg with its top-left corner slot at (x, y).
func NewLayout(x, y int, cfg Config) Layout {
	return Layout{OriginX: x, OriginY: y, Dimension: cfg.Dimension, CellSize: cfg.CellSize}
}

// Bounds covers the whole table, headers included.
func (l Layout) Bounds() image.Rectangle {
	side := (l.Dimension + 1) * l.CellSize
	return image.Rect(l.OriginX, l.OriginY, l.OriginX+side, l.OriginY+side)
}

// Content covers the data cells only.
func (l Layout) Content() image.Rectangle {
	x := l.OriginX + l.CellSize
	y := l.OriginY + l.CellSize
	side := l.Dimension * l.CellSize
	return image.Rect(x, y, x+side, y+side)
}

// SlotRect is the square of table position (tableRow, tableCol), where 0 is
// the header row or column.
func (l Layout) SlotRect(tableRow, tableCol int) image.Rectangle {
	x := l.OriginX + tableCol*l.CellSize
	y := l.OriginY + tableRow*l.CellSize
	return image.Rect(x, y, x+l.CellSize, y+l.CellSize)
}

// CellRect is the square of data cell (row, col).
func (l Layout) CellRect(row, col int) image.Rectangle {
	return l.SlotRect(row+1, col+1)
}

// CellAt maps a screen point to the data cell under it.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if !image.Pt(x, y).In(l.Content()) {
		return -1, -1, false
	}
	c := l.Content()
	return (y - c.Min.Y) / l.CellSize, (x - c.Min.X) / l.CellSize, true
}
