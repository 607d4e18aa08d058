package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"

	"github.com/example/pixelgrid/internal/app"
	"github.com/example/pixelgrid/internal/export"
	"github.com/example/pixelgrid/internal/grid"
)

// cellSizeStep is how many pixels the cell size changes per key press.
const cellSizeStep = 4

// InputManager turns mouse and keyboard input into controller commands.
// The Game owns the session state; the ContextMenu manages its own
// visibility and hover state.
type InputManager struct {
	exportDir string
}

func NewInputManager(exportDir string) *InputManager {
	return &InputManager{exportDir: exportDir}
}

// HandleMouse paints cells, picks swatches and opens the context menu.
func (im *InputManager) HandleMouse(g *Game) {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.contextMenu.Show(mx, my)
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if i, ok := SwatchAt(mx, my); ok {
		im.dispatch(g, app.SelectColor{Name: g.palette[i].Name})
		return
	}
	layout := GridLayout(g.ctrl.State().Config)
	if row, col, ok := layout.CellAt(mx, my); ok {
		im.dispatch(g, app.PaintCell{Row: row, Col: col})
	}
}

// HandleKeys maps shortcut keys to the same actions as the context menu.
func (im *InputManager) HandleKeys(g *Game) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		im.Perform(g, MenuActionClear)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		im.Perform(g, MenuActionToggleGrid)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		im.Perform(g, MenuActionSave)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		im.Perform(g, MenuActionGrowGrid)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		im.Perform(g, MenuActionShrinkGrid)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		im.Perform(g, MenuActionLargerCells)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		im.Perform(g, MenuActionSmallerCells)
	}
}

// HandleContextMenuInput lets the menu update and runs the chosen action.
func (im *InputManager) HandleContextMenuInput(g *Game) {
	im.Perform(g, g.contextMenu.Update())
}

// Perform runs one menu action against the controller.
func (im *InputManager) Perform(g *Game, action MenuAction) {
	cfg := g.ctrl.State().Config
	switch action {
	case MenuActionNone:
		// nothing to do
	case MenuActionClear:
		im.dispatch(g, app.ClearAll{})
	case MenuActionToggleGrid:
		im.dispatch(g, app.ToggleGridLines{})
	case MenuActionSave:
		im.save(g)
	case MenuActionGrowGrid:
		if cmd, ok := app.StepDimension(cfg, 1); ok {
			im.dispatch(g, cmd)
		}
	case MenuActionShrinkGrid:
		if cmd, ok := app.StepDimension(cfg, -1); ok {
			im.dispatch(g, cmd)
		}
	case MenuActionLargerCells:
		if cmd, ok := app.StepCellSize(cfg, cellSizeStep); ok {
			im.dispatch(g, cmd)
		}
	case MenuActionSmallerCells:
		if cmd, ok := app.StepCellSize(cfg, -cellSizeStep); ok {
			im.dispatch(g, cmd)
		}
	}
}


func (im *InputManager) dispatch(g *Game, cmd app.Command) {
	if err := g.ctrl.Dispatch(cmd); err != nil {
		g.ui.addClickLog(cmd.String() + " failed")
	}
}

// save asks for a destination and writes the PNG export there.
func (im *InputManager) save(g *Game) {
	path, err := dialog.File().
		Filter("PNG image", "png").
		Title("Save Pixel Art").
		SetStartDir(im.exportDir).
		SetStartFile(export.FileName).
		Save()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			g.log.WithError(err).Error("file save dialog failed")
			g.ui.addClickLog("save dialog failed")
		}
		return
	}
	if path == "" {
		return
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}
	written, err := g.ctrl.Save(path)
	if err != nil {
		g.ui.addClickLog("failed to save: " + filepath.Base(path))
		return
	}
	im.exportDir = filepath.Dir(written)
	g.ui.addClickLog("saved: " + filepath.Base(written))
}

// hoverRef is the reference of the cell under the cursor, or "".
func hoverRef(g *Game) string {
	mx, my := ebiten.CursorPosition()
	if row, col, ok := GridLayout(g.ctrl.State().Config).CellAt(mx, my); ok {
		return grid.Ref(row, col)
	}
	return ""
}
