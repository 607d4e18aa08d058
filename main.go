package main

import (
	"flag"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/example/pixelgrid/internal/app"
	"github.com/example/pixelgrid/internal/config"
	"github.com/example/pixelgrid/internal/palette"
)

type Game struct {
	ctrl     *app.Controller
	palette  []palette.Entry
	log      *logrus.Entry
	renderer *Renderer
	ui       *UI

	input       *InputManager
	contextMenu *ContextMenu
}

func NewGame(settings config.Settings, log *logrus.Entry) (*Game, error) {
	ctrl, err := app.NewController(settings.Grid(), log)
	if err != nil {
		return nil, err
	}
	g := &Game{ctrl: ctrl, palette: palette.Entries(), log: log}
	g.ui = NewUI(log)
	g.renderer = NewRenderer(g.ui)
	g.input = NewInputManager(settings.ExportDir)
	g.contextMenu = NewContextMenu()

	if !settings.ShowGridLines() {
		if err := ctrl.Dispatch(app.ToggleGridLines{}); err != nil {
			log.WithError(err).Warn("could not hide grid lines")
		}
	}
	if err := ctrl.Dispatch(app.SelectColor{Name: settings.Color}); err != nil {
		log.WithError(err).Warn("configured color ignored")
	}
	return g, nil
}

func (g *Game) Update() error {
	// an open menu takes every click until it closes
	if g.contextMenu.Visible() {
		g.input.HandleContextMenuInput(g)
		return nil
	}
	g.input.HandleMouse(g)
	g.input.HandleKeys(g)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// dark background
	screen.Fill(ColorBackground)

	st := g.ctrl.State()
	g.renderer.DrawPalette(screen, g.palette, st.Selected.Name)
	g.renderer.DrawGrid(screen, st.Grid)

	// draw UI (HUD, status log)
	g.ui.Draw(screen, g)

	// draw context menu
	g.contextMenu.Draw(screen, g.ui.face)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Return the outside dimensions so the logical screen matches window size.
	// This prevents black bars when the window is resized.
	return outsideWidth, outsideHeight
}

// settingsSnapshot records the session's current options for the next start.
func (g *Game) settingsSnapshot(base config.Settings) config.Settings {
	st := g.ctrl.State()
	base.Dimension = strconv.Itoa(st.Config.Dimension)
	base.CellSize = strconv.Itoa(st.Config.CellSize)
	base.Color = st.Selected.Name
	lines := st.GridLines
	base.GridLines = &lines
	base.ExportDir = g.input.exportDir
	return base
}

func main() {
	settingsPath := flag.String("config", config.DefaultPath, "settings file")
	flag.Parse()

	if err := config.LoadEnvFile(); err != nil {
		logrus.WithError(err).Warn("could not load .env, using environment only")
	}
	settings, err := config.Load(*settingsPath)
	log := settings.Logger()
	if err != nil {
		log.WithError(err).Warn("settings not loaded, using defaults")
	}
	entry := logrus.NewEntry(log)

	g, err := NewGame(settings, entry)
	if err != nil {
		log.WithError(err).Fatal("could not build grid")
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle("Pixel Grid")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game loop failed")
	}
	if err := config.Save(*settingsPath, g.settingsSnapshot(settings)); err != nil {
		log.WithError(err).Warn("could not save settings")
	}
}
