// Package grid builds the labeled N×N cell grid and holds its paint.
//
// A Grid is created by Build for one Config and never resized; a config
// change means building a new Grid, which drops all paint. Paint, Clear and
// SetGridLines mutate the live grid in place.
package grid

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrOutOfRange is returned for coordinates outside the grid.
var ErrOutOfRange = errors.New("cell out of range")

// White is the color of an unset cell in any raster output.
var White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Fill is a cell's paint. Set distinguishes "never painted" from any color,
// including white.
type Fill struct {
	Color color.RGBA
	Set   bool
}

// Cell is one paintable square.
type Cell struct {
	Row       int
	Col       int
	Fill      Fill
	Marker    Marker
	GridLines bool
}

// Ref returns the cell's reference, e.g. "A1".
func (c Cell) Ref() string {
	return Ref(c.Row, c.Col)
}

// Effective is the color the cell shows: its fill, or white when unset.
func (c Cell) Effective() color.RGBA {
	if c.Fill.Set {
		return c.Fill.Color
	}
	return White
}

// Grid is the N×N cell matrix for one Config.
type Grid struct {
	cfg       Config
	gridLines bool
	cells     [][]Cell
}

// Build validates cfg and returns a fresh grid with no paint.
func Build(cfg Config, gridLines bool) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Dimension
	cells := make([][]Cell, n)
	for r := 0; r < n; r++ {
		cells[r] = make([]Cell, n)
		for c := 0; c < n; c++ {
			cells[r][c] = Cell{
				Row:       r,
				Col:       c,
				Marker:    MarkerFor(r, c, n),
				GridLines: gridLines,
			}
		}
	}
	return &Grid{cfg: cfg, gridLines: gridLines, cells: cells}, nil
}

func (g *Grid) Config() Config  { return g.cfg }
func (g *Grid) Dimension() int  { return g.cfg.Dimension }
func (g *Grid) CellSize() int   { return g.cfg.CellSize }
func (g *Grid) GridLines() bool { return g.gridLines }

// Cell returns a copy of the cell at (row, col).
func (g *Grid) Cell(row, col int) (Cell, error) {
	if !g.inRange(row, col) {
		return Cell{}, fmt.Errorf("%w: row %d col %d in %dx%d grid", ErrOutOfRange, row, col, g.cfg.Dimension, g.cfg.Dimension)
	}
	return g.cells[row][col], nil
}

// Rows returns a copy of the data rows, top to bottom.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, len(g.cells))
	for r := range g.cells {
		out[r] = append([]Cell(nil), g.cells[r]...)
	}
	return out
}

// Each calls fn for every cell, row by row, left to right.
func (g *Grid) Each(fn func(Cell)) {
	for r := range g.cells {
		for c := range g.cells[r] {
			fn(g.cells[r][c])
		}
	}
}

// Paint sets the fill of one cell. Repainting with the same color is a no-op.
func (g *Grid) Paint(row, col int, c color.RGBA) error {
	if !g.inRange(row, col) {
		return fmt.Errorf("%w: row %d col %d in %dx%d grid", ErrOutOfRange, row, col, g.cfg.Dimension, g.cfg.Dimension)
	}
	c.A = 0xff
	g.cells[row][col].Fill = Fill{Color: c, Set: true}
	return nil
}

// Clear unsets every fill. Markers and grid lines are left alone.
func (g *Grid) Clear() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].Fill = Fill{}
		}
	}
}

// SetGridLines applies the border visibility flag to every cell.
func (g *Grid) SetGridLines(visible bool) {
	g.gridLines = visible
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].GridLines = visible
		}
	}
}

// Painted counts cells with a fill.
func (g *Grid) Painted() int {
	n := 0
	g.Each(func(c Cell) {
		if c.Fill.Set {
			n++
		}
	})
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{cfg: g.cfg, gridLines: g.gridLines, cells: g.Rows()}
}

func (g *Grid) inRange(row, col int) bool {
	n := g.cfg.Dimension
	return row >= 0 && row < n && col >= 0 && col < n
}

// SlotKind tells header slots from data cells in a Table.
type SlotKind int

const (
	SlotCorner SlotKind = iota
	SlotColumnHeader
	SlotRowHeader
	SlotCell
)

// Slot is one position of the rendered table. For SlotCell, Cell holds the
// data cell and Label its marker text.
type Slot struct {
	Kind  SlotKind
	Label string
	Cell  Cell
}

// Table lays the grid out as rendered: a header row (blank corner, then
// column numbers 1..N) followed by N rows each led by its row letter.
// The result has N+1 rows of N+1 slots.
func (g *Grid) Table() [][]Slot {
	n := g.cfg.Dimension
	table := make([][]Slot, 0, n+1)

	header := make([]Slot, 0, n+1)
	header = append(header, Slot{Kind: SlotCorner})
	for c := 0; c < n; c++ {
		header = append(header, Slot{Kind: SlotColumnHeader, Label: ColumnLabel(c)})
	}
	table = append(table, header)

	for r := 0; r < n; r++ {
		row := make([]Slot, 0, n+1)
		row = append(row, Slot{Kind: SlotRowHeader, Label: RowLabel(r)})
		for c := 0; c < n; c++ {
			cell := g.cells[r][c]
			row = append(row, Slot{Kind: SlotCell, Label: cell.Marker.String(), Cell: cell})
		}
		table = append(table, row)
	}
	return table
}
