// Package export rasterizes the painted cells of a grid into a PNG.
//
// Only committed paint is exported: header labels, markers and grid lines
// never reach the image, and unset cells come out white.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/example/pixelgrid/internal/grid"
)

// FileName is the name offered for a saved export.
const FileName = "pixel-art.png"

// Image draws one solid CellSize square per data cell, rows top to bottom,
// cells left to right. The canvas is Dimension×CellSize on each side.
// Grids wider than grid.MaxImageSide fail with grid.ErrImageTooLarge.
func Image(g *grid.Grid) (*image.RGBA, error) {
	cfg := g.Config()
	if err := cfg.CheckImageSide(cfg.Dimension); err != nil {
		return nil, err
	}
	size := cfg.CellSize
	side := cfg.PixelSize()
	img := image.NewRGBA(image.Rect(0, 0, side, side))

	for r, row := range g.Rows() {
		for c, cell := range row {
			rect := image.Rect(c*size, r*size, (c+1)*size, (r+1)*size)
			draw.Draw(img, rect, image.NewUniform(cell.Effective()), image.Point{}, draw.Src)
		}
	}
	return img, nil
}

// EncodePNG writes the exported image as PNG.
func EncodePNG(w io.Writer, g *grid.Grid) error {
	img, err := Image(g)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNG returns the encoded export.
func PNG(g *grid.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes the export to path, creating parent directories. If path
// names an existing directory the file is written there as FileName.
// It returns the path written.
func WriteFile(path string, g *grid.Grid) (string, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, FileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := EncodePNG(f, g); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
