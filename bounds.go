package main

import (
	"image"

	"github.com/example/pixelgrid/internal/grid"
	"github.com/example/pixelgrid/internal/palette"
)

// SwatchRect is the on-screen square of palette entry i.
func SwatchRect(i int) image.Rectangle {
	x := WindowMargin + i*(SwatchSize+SwatchGap)
	return image.Rect(x, WindowMargin, x+SwatchSize, WindowMargin+SwatchSize)
}

// SwatchAt returns the palette index under the cursor.
func SwatchAt(x, y int) (int, bool) {
	p := image.Pt(x, y)
	for i := range palette.Default {
		if p.In(SwatchRect(i)) {
			return i, true
		}
	}
	return -1, false
}

// GridLayout places the grid, headers included, below the palette bar.
func GridLayout(cfg grid.Config) grid.Layout {
	return grid.NewLayout(WindowMargin, WindowMargin+SwatchSize+PaletteGridGap, cfg)
}
