// Package app owns the paint state of a drawing session and applies user
// commands to it.
package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/example/pixelgrid/internal/grid"
	"github.com/example/pixelgrid/internal/palette"
)

// ErrInvalidInput wraps a rejected size input. State is left unchanged.
var ErrInvalidInput = errors.New("invalid input")

// State is everything a front end needs to draw the session.
type State struct {
	Selected  palette.Entry
	GridLines bool
	Config    grid.Config
	Grid      *grid.Grid
}

// NewState builds the startup state: the grid for cfg (clamped), black
// selected and grid lines visible.
func NewState(cfg grid.Config) (State, error) {
	cfg = cfg.Clamp()
	g, err := grid.Build(cfg, true)
	if err != nil {
		return State{}, err
	}
	return State{
		Selected:  palette.MustLookup(palette.DefaultName),
		GridLines: true,
		Config:    cfg,
		Grid:      g,
	}, nil
}

// Command is one user action.
type Command interface {
	apply(s State) (State, error)
	fmt.Stringer
}

// Reduce applies cmd to s and returns the next state. The grid in s is never
// mutated; commands that change cells work on a clone.
func Reduce(s State, cmd Command) (State, error) {
	next, err := cmd.apply(s)
	if err != nil {
		return s, err
	}
	return next, nil
}

// SelectColor makes the named palette entry the paint color.
type SelectColor struct {
	Name string
}

func (c SelectColor) String() string { return "select-color " + c.Name }

func (c SelectColor) apply(s State) (State, error) {
	e, err := palette.Lookup(c.Name)
	if err != nil {
		return s, err
	}
	s.Selected = e
	return s, nil
}

// PaintCell fills one cell with the selected color.
type PaintCell struct {
	Row, Col int
}

func (c PaintCell) String() string { return "paint " + grid.Ref(c.Row, c.Col) }

func (c PaintCell) apply(s State) (State, error) {
	g := s.Grid.Clone()
	if err := g.Paint(c.Row, c.Col, s.Selected.RGBA()); err != nil {
		return s, err
	}
	s.Grid = g
	return s, nil
}

// ClearAll unsets every fill.
type ClearAll struct{}

func (ClearAll) String() string { return "clear" }

func (ClearAll) apply(s State) (State, error) {
	g := s.Grid.Clone()
	g.Clear()
	s.Grid = g
	return s, nil
}

// ToggleGridLines flips grid-line visibility on every cell.
type ToggleGridLines struct{}

func (ToggleGridLines) String() string { return "toggle-grid-lines" }

func (ToggleGridLines) apply(s State) (State, error) {
	s.GridLines = !s.GridLines
	g := s.Grid.Clone()
	g.SetGridLines(s.GridLines)
	s.Grid = g
	return s, nil
}

// SetDimension rebuilds the grid with a new dimension. Input is the raw
// text entered by the user; values above 26 are clamped.
type SetDimension struct {
	Input string
}

func (c SetDimension) String() string { return "set-dimension " + c.Input }

func (c SetDimension) apply(s State) (State, error) {
	n, err := grid.ParseDimension(c.Input)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return rebuild(s, grid.Config{Dimension: n, CellSize: s.Config.CellSize})
}

// SetCellSize rebuilds the grid with a new cell size. Values below 20 are
// clamped.
type SetCellSize struct {
	Input string
}

func (c SetCellSize) String() string { return "set-cell-size " + c.Input }

func (c SetCellSize) apply(s State) (State, error) {
	size, err := grid.ParseCellSize(c.Input)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return rebuild(s, grid.Config{Dimension: s.Config.Dimension, CellSize: size})
}

// Resize rebuilds the grid from numeric values, clamping both.
type Resize struct {
	Config grid.Config
}

func (c Resize) String() string {
	return fmt.Sprintf("resize %dx%d", c.Config.Dimension, c.Config.CellSize)
}

func (c Resize) apply(s State) (State, error) {
	return rebuild(s, c.Config.Clamp())
}

// StepDimension returns the command that moves the dimension by delta. It
// reports false when clamping leaves the dimension where it is, since a
// rebuild would only drop the paint.
func StepDimension(cfg grid.Config, delta int) (Command, bool) {
	n := grid.ClampDimension(cfg.Dimension + delta)
	if n == cfg.Dimension {
		return nil, false
	}
	return SetDimension{Input: strconv.Itoa(n)}, true
}

// StepCellSize is StepDimension for the cell size.
func StepCellSize(cfg grid.Config, delta int) (Command, bool) {
	size := grid.ClampCellSize(cfg.CellSize + delta)
	if size == cfg.CellSize {
		return nil, false
	}
	return SetCellSize{Input: strconv.Itoa(size)}, true
}

func rebuild(s State, cfg grid.Config) (State, error) {
	g, err := grid.Build(cfg, s.GridLines)
	if err != nil {
		return s, err
	}
	s.Config = cfg
	s.Grid = g
	return s, nil
}
