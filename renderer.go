package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/example/pixelgrid/internal/grid"
	"github.com/example/pixelgrid/internal/palette"
)

// Renderer handles all drawing operations for the application.
type Renderer struct {
	ui *UI
}

// NewRenderer creates a new Renderer instance.
func NewRenderer(ui *UI) *Renderer {
	return &Renderer{ui: ui}
}

// DrawPalette renders the swatch bar with the selected swatch outlined.
func (r *Renderer) DrawPalette(screen *ebiten.Image, entries []palette.Entry, selected string) {
	for i, e := range entries {
		rect := SwatchRect(i)
		border := ColorSwatchBorder
		if e.Name == selected {
			border = ColorSelection
		}
		outer := rect.Inset(-SwatchBorder)
		fillRect(screen, outer, border)
		fillRect(screen, rect, e.RGBA())
	}
}

// DrawGrid renders the header row, the header column and every cell.
func (r *Renderer) DrawGrid(screen *ebiten.Image, g *grid.Grid) {
	layout := GridLayout(g.Config())
	size := g.CellSize()
	labelFace := r.ui.faceFor(size / 2)
	markerFace := r.ui.faceFor(grid.MarkerFontSize(size))

	for tr, row := range g.Table() {
		for tc, slot := range row {
			rect := layout.SlotRect(tr, tc)
			cx := rect.Min.X + size/2
			cy := rect.Min.Y + size/2

			if slot.Kind != grid.SlotCell {
				fillRect(screen, rect, ColorHeaderBg)
				if slot.Label != "" {
					drawTextCentered(screen, labelFace, slot.Label, cx, cy, ColorText)
				}
				continue
			}
			r.drawCell(screen, slot.Cell, rect)
			if slot.Label != "" {
				drawTextCentered(screen, markerFace, slot.Label, cx, cy, ColorMarker)
			}
		}
	}
}

func (r *Renderer) drawCell(screen *ebiten.Image, c grid.Cell, rect image.Rectangle) {
	if !c.GridLines {
		fillRect(screen, rect, c.Effective())
		return
	}
	fillRect(screen, rect, ColorGridLine)
	fillRect(screen, rect.Inset(GridLineWidth), c.Effective())
}

func fillRect(screen *ebiten.Image, rect image.Rectangle, col color.Color) {
	ebitenutil.DrawRect(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), col)
}
