package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const maxClickLog = 4

type UI struct {
	face  font.Face
	tt    *opentype.Font
	faces map[int]font.Face
	log   *logrus.Entry

	clickLog []string
}

func NewUI(log *logrus.Entry) *UI {
	ui := &UI{faces: map[int]font.Face{}, log: log.WithField("component", "ui")}

	// Prefer a local RobotoMono TTF from res/, then the bundled Go font.
	b, err := os.ReadFile("res/Roboto-Regular.ttf")
	if err != nil {
		b = goregular.TTF
	}
	tt, err := opentype.Parse(b)
	if err != nil {
		ui.log.WithError(err).Warn("could not parse ttf; falling back to basic font")
		ui.face = basicfont.Face7x13
		return ui
	}
	ui.tt = tt
	ui.face = ui.faceFor(14)
	return ui
}

// faceFor returns a cached face of the given pixel size.
func (ui *UI) faceFor(size int) font.Face {
	if ui.tt == nil {
		return basicfont.Face7x13
	}
	if f, ok := ui.faces[size]; ok {
		return f
	}
	face, err := opentype.NewFace(ui.tt, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		ui.log.WithError(err).WithField("size", size).Warn("could not create font face")
		return basicfont.Face7x13
	}
	ui.faces[size] = face
	return face
}

func (ui *UI) addClickLog(msg string) {
	ui.clickLog = append(ui.clickLog, msg)
	if len(ui.clickLog) > maxClickLog {
		ui.clickLog = ui.clickLog[len(ui.clickLog)-maxClickLog:]
	}
}

// Draw renders the HUD and the status log.
func (ui *UI) Draw(screen *ebiten.Image, g *Game) {
	// Use the actual logical screen height so the HUD sits at the bottom
	// even when the window is resized.
	screenH := screen.Bounds().Dy()
	st := g.ctrl.State()

	x := SwatchRect(len(g.palette)).Min.X + SwatchGap
	info := fmt.Sprintf("%s  %dx%d  %dpx  %s", st.Selected.Name, st.Config.Dimension, st.Config.Dimension, st.Config.CellSize, hoverRef(g))
	drawTextAt(screen, ui.face, info, x, WindowMargin+2, ColorText)

	drawTextAt(screen, ui.face, "Click to paint - Right-click for menu - C clear - G grid - S save", 8, screenH-28, ColorText)
	drawTextAt(screen, ui.face, "+/- grid size - [/] cell size", 8, screenH-14, ColorText)

	if len(ui.clickLog) > 0 {
		w := screen.Bounds().Dx()
		lh := 16
		h := lh*len(ui.clickLog) + 8
		ebitenutil.DrawRect(screen, float64(w-320), 8, 312, float64(h), ColorLogBg)
		for i, msg := range ui.clickLog {
			drawTextAt(screen, ui.face, msg, w-312, 12+i*lh, ColorTextDim)
		}
	}
}

// drawTextAt draws text using the provided face. If face is nil, falls back to ebitenutil.DebugPrintAt.
func drawTextAt(screen *ebiten.Image, face font.Face, s string, x, y int, col color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	// text.Draw expects y to be baseline; DebugPrintAt uses top-left.
	// Adjust by ascent so text appears where DebugPrintAt placed it.
	ascent := face.Metrics().Ascent.Round()
	text.Draw(screen, s, face, x, y+ascent, col)
}

// drawTextCentered centers s on (cx, cy) using its ink bounds.
func drawTextCentered(screen *ebiten.Image, face font.Face, s string, cx, cy int, col color.Color) {
	b := text.BoundString(face, s)
	x := cx - b.Dx()/2 - b.Min.X
	y := cy - b.Dy()/2 - b.Min.Y
	text.Draw(screen, s, face, x, y, col)
}
