// Package preview renders a grid the way it appears on screen: header
// labels, markers and optional grid lines on top of the paint.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/example/pixelgrid/internal/grid"
)

var (
	headerBg  = color.RGBA{0xee, 0xee, 0xee, 0xff}
	headerFg  = color.RGBA{0x44, 0x44, 0x44, 0xff}
	lineColor = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	markerFg  = color.RGBA{A: 0xff}
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func loadFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Render draws g with its header row and column. The image is
// (Dimension+1)×CellSize on each side.
func Render(g *grid.Grid) (image.Image, error) {
	if err := g.Config().CheckImageSide(g.Dimension() + 1); err != nil {
		return nil, err
	}
	src, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	size := g.CellSize()
	layout := grid.NewLayout(0, 0, g.Config())
	side := layout.Bounds().Dx()

	dc := gg.NewContext(side, side)
	defer dc.Close()
	dc.ClearWithColor(gg.FromColor(headerBg))

	labelFace := src.Face(float64(size) / 2)
	markerFace := src.Face(float64(grid.MarkerFontSize(size)))

	for tr, row := range g.Table() {
		for tc, slot := range row {
			r := layout.SlotRect(tr, tc)
			x, y := float64(r.Min.X), float64(r.Min.Y)
			cx, cy := x+float64(size)/2, y+float64(size)/2

			if slot.Kind != grid.SlotCell {
				if slot.Label != "" {
					dc.SetFont(labelFace)
					dc.SetColor(headerFg)
					dc.DrawStringAnchored(slot.Label, cx, cy, 0.5, 0.5)
				}
				continue
			}

			dc.SetColor(slot.Cell.Effective())
			dc.DrawRectangle(x, y, float64(size), float64(size))
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("fill %s: %w", slot.Cell.Ref(), err)
			}
			if slot.Cell.GridLines {
				dc.SetColor(lineColor)
				dc.SetLineWidth(1)
				dc.DrawRectangle(x+0.5, y+0.5, float64(size)-1, float64(size)-1)
				if err := dc.Stroke(); err != nil {
					return nil, fmt.Errorf("stroke %s: %w", slot.Cell.Ref(), err)
				}
			}
			if slot.Label != "" {
				dc.SetFont(markerFace)
				dc.SetColor(markerFg)
				dc.DrawStringAnchored(slot.Label, cx, cy, 0.5, 0.5)
			}
		}
	}
	return dc.Image(), nil
}

// EncodePNG renders g and writes it as PNG.
func EncodePNG(w io.Writer, g *grid.Grid) error {
	img, err := Render(g)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
