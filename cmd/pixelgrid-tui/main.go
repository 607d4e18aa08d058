// Command pixelgrid-tui paints pixel art in the terminal.
package main

import (
	"flag"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/example/pixelgrid/internal/app"
	"github.com/example/pixelgrid/internal/config"
	"github.com/example/pixelgrid/internal/tui"
)

func main() {
	settingsPath := flag.String("config", config.DefaultPath, "settings file")
	logPath := flag.String("log", "pixelgrid-tui.log", "log file (the terminal is taken by the UI)")
	flag.Parse()

	if err := config.LoadEnvFile(); err != nil {
		logrus.WithError(err).Warn("could not load .env")
	}
	settings, err := config.Load(*settingsPath)
	log := settings.Logger()
	if f, ferr := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); ferr == nil {
		defer f.Close()
		log.SetOutput(f)
	}
	if err != nil {
		log.WithError(err).Warn("settings not loaded, using defaults")
	}

	entry := logrus.NewEntry(log)
	ctrl, err := app.NewController(settings.Grid(), entry)
	if err != nil {
		log.WithError(err).Fatal("could not build grid")
	}
	if !settings.ShowGridLines() {
		if err := ctrl.Dispatch(app.ToggleGridLines{}); err != nil {
			log.WithError(err).Warn("could not hide grid lines")
		}
	}
	if err := ctrl.Dispatch(app.SelectColor{Name: settings.Color}); err != nil {
		log.WithError(err).Warn("configured color ignored")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("could not open terminal")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("could not init terminal")
	}
	defer screen.Fini()

	if err := tui.New(screen, ctrl, settings.ExportDir, entry).Run(); err != nil {
		log.WithError(err).Error("tui stopped")
	}
}
