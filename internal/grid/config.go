package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size limits. Row labels are single letters, so a grid never exceeds 26.
const (
	MinDimension     = 1
	MaxDimension     = 26
	DefaultDimension = 10

	MinCellSize     = 20
	DefaultCellSize = 20

	// MaxImageSide bounds the side of any raster drawn from a grid.
	MaxImageSide = 1 << 14
)

var (
	ErrInvalidDimension = errors.New("grid dimension out of range")
	ErrInvalidCellSize  = errors.New("cell size below minimum")
	ErrImageTooLarge    = errors.New("image too large")
)

// Config describes an N×N grid of square cells with side CellSize pixels.
type Config struct {
	Dimension int `json:"dimension" yaml:"dimension"`
	CellSize  int `json:"cell_size" yaml:"cell_size"`
}

// DefaultConfig is the configuration used when no input is available.
func DefaultConfig() Config {
	return Config{Dimension: DefaultDimension, CellSize: DefaultCellSize}
}

// Validate reports whether the config can be built as is.
func (c Config) Validate() error {
	if c.Dimension < MinDimension || c.Dimension > MaxDimension {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidDimension, c.Dimension, MinDimension, MaxDimension)
	}
	if c.CellSize < MinCellSize {
		return fmt.Errorf("%w: %d < %d", ErrInvalidCellSize, c.CellSize, MinCellSize)
	}
	return nil
}

// Clamp pulls both fields into their valid ranges.
func (c Config) Clamp() Config {
	return Config{Dimension: ClampDimension(c.Dimension), CellSize: ClampCellSize(c.CellSize)}
}

// PixelSize is the side of the exported image: Dimension × CellSize.
func (c Config) PixelSize() int {
	return c.Dimension * c.CellSize
}

// CheckImageSide fails when a raster of cells squares per side would be
// wider than MaxImageSide.
func (c Config) CheckImageSide(cells int) error {
	if cells > 0 && c.CellSize > MaxImageSide/cells {
		return fmt.Errorf("%w: %d cells of %dpx exceed %dpx", ErrImageTooLarge, cells, c.CellSize, MaxImageSide)
	}
	return nil
}

// ClampDimension caps n at 26 and raises it to at least 1.
func ClampDimension(n int) int {
	if n > MaxDimension {
		return MaxDimension
	}
	if n < MinDimension {
		return MinDimension
	}
	return n
}

// ClampCellSize raises s to the 20px floor.
func ClampCellSize(s int) int {
	if s < MinCellSize {
		return MinCellSize
	}
	return s
}

// ParseDimension parses a user-entered dimension and clamps it.
func ParseDimension(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse dimension %q: %w", s, err)
	}
	return ClampDimension(n), nil
}

// ParseCellSize parses a user-entered cell size and clamps it.
func ParseCellSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse cell size %q: %w", s, err)
	}
	return ClampCellSize(n), nil
}

// ConfigFromInputs builds the startup configuration. Empty, non-numeric or
// zero inputs fall back to the defaults (10 cells, 20px) before clamping.
func ConfigFromInputs(dimension, cellSize string) Config {
	n, err := strconv.Atoi(strings.TrimSpace(dimension))
	if err != nil || n == 0 {
		n = DefaultDimension
	}
	s, err := strconv.Atoi(strings.TrimSpace(cellSize))
	if err != nil || s == 0 {
		s = DefaultCellSize
	}
	return Config{Dimension: n, CellSize: s}.Clamp()
}
