package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pixelgrid/internal/app"
	"github.com/example/pixelgrid/internal/grid"
)

func newView(t *testing.T, n int) (*View, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(100, 50)

	log := logrus.New()
	log.SetOutput(io.Discard)
	ctrl, err := app.NewController(grid.Config{Dimension: n, CellSize: 20}, logrus.NewEntry(log))
	require.NoError(t, err)
	v := New(s, ctrl, t.TempDir(), logrus.NewEntry(log))
	v.Draw()
	return v, s
}

func click(v *View, x, y int) {
	v.Handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	v.Handle(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func key(v *View, r rune) bool {
	return v.Handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestCellAt(t *testing.T) {
	r, c, ok := cellAt(labelColumn, headerRow+1, 5)
	assert.True(t, ok)
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	r, c, ok = cellAt(labelColumn+2*cellW+1, headerRow+3, 5)
	assert.True(t, ok)
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)

	_, _, ok = cellAt(0, headerRow+1, 5)
	assert.False(t, ok)
	_, _, ok = cellAt(labelColumn, headerRow, 5)
	assert.False(t, ok)
	_, _, ok = cellAt(labelColumn+5*cellW, headerRow+1, 5)
	assert.False(t, ok)
}

func TestSwatchAt(t *testing.T) {
	i, ok := swatchAt(0, paletteRow)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	i, ok = swatchAt(swatchW*2+1, paletteRow)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = swatchAt(swatchW-1, paletteRow)
	assert.False(t, ok)
	_, ok = swatchAt(swatchW*10, paletteRow)
	assert.False(t, ok)
	_, ok = swatchAt(0, paletteRow+1)
	assert.False(t, ok)
}

func TestClickSwatchThenCell(t *testing.T) {
	v, _ := newView(t, 5)

	click(v, swatchW*2, paletteRow) // red
	assert.Equal(t, "red", v.ctrl.State().Selected.Name)

	click(v, labelColumn+cellW*3, headerRow+2)
	cell, err := v.ctrl.State().Grid.Cell(1, 3)
	require.NoError(t, err)
	assert.True(t, cell.Fill.Set)
	assert.Equal(t, uint8(0xff), cell.Fill.Color.R)
	assert.Equal(t, "B4", v.hover)
}

func TestHeldButtonPaintsOnce(t *testing.T) {
	v, _ := newView(t, 5)
	v.Handle(tcell.NewEventMouse(labelColumn, headerRow+1, tcell.Button1, tcell.ModNone))
	v.Handle(tcell.NewEventMouse(labelColumn+cellW, headerRow+1, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 1, v.ctrl.State().Grid.Painted())
}

func TestKeys(t *testing.T) {
	v, _ := newView(t, 5)
	click(v, labelColumn, headerRow+1)
	require.Equal(t, 1, v.ctrl.State().Grid.Painted())

	assert.False(t, key(v, 'c'))
	assert.Equal(t, 0, v.ctrl.State().Grid.Painted())

	key(v, 'g')
	assert.False(t, v.ctrl.State().GridLines)

	key(v, '+')
	assert.Equal(t, 6, v.ctrl.State().Config.Dimension)
	key(v, '[')
	assert.Equal(t, 20, v.ctrl.State().Config.CellSize)
	key(v, ']')
	assert.Equal(t, 24, v.ctrl.State().Config.CellSize)

	key(v, '3')
	assert.Equal(t, "red", v.ctrl.State().Selected.Name)
	key(v, '0')
	assert.Equal(t, "pink", v.ctrl.State().Selected.Name)

	assert.True(t, key(v, 'q'))
	assert.True(t, v.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestResizeKeysStopAtLimits(t *testing.T) {
	v, _ := newView(t, grid.MaxDimension)
	click(v, labelColumn, headerRow+1)
	require.Equal(t, 1, v.ctrl.State().Grid.Painted())

	key(v, '+')
	key(v, '[')
	assert.Equal(t, grid.MaxDimension, v.ctrl.State().Config.Dimension)
	assert.Equal(t, 1, v.ctrl.State().Grid.Painted(), "no-op resize keeps the artwork")

	key(v, '-')
	assert.Equal(t, grid.MaxDimension-1, v.ctrl.State().Config.Dimension)
}

func TestSaveWritesExport(t *testing.T) {
	v, _ := newView(t, 3)
	key(v, 's')
	assert.Contains(t, v.status, "saved")
	_, err := os.Stat(filepath.Join(v.exportDir, "pixel-art.png"))
	assert.NoError(t, err)
}

func TestDrawShowsLabelsAndMarkers(t *testing.T) {
	v, s := newView(t, 3)
	v.Draw()

	mainc, _, _, _ := s.GetContent(0, headerRow+1)
	assert.Equal(t, 'A', mainc)
	mainc, _, _, _ = s.GetContent(labelColumn+cellW*2, headerRow)
	assert.Equal(t, '3', mainc)
	mainc, _, _, _ = s.GetContent(labelColumn+cellW, headerRow+2)
	assert.Equal(t, '2', mainc, "center of a 3x3 grid is ring 2")
	mainc, _, _, _ = s.GetContent(labelColumn+1, headerRow+1)
	assert.Equal(t, '▕', mainc)

	key(v, 'g')
	v.Draw()
	mainc, _, _, _ = s.GetContent(labelColumn+1, headerRow+1)
	assert.Equal(t, ' ', mainc)

	mainc, _, _, _ = s.GetContent(swatchW, paletteRow)
	assert.Equal(t, '[', mainc, "black is selected at start")
}
