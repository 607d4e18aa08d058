// Package tui draws a drawing session in a terminal with tcell and maps
// keys and mouse clicks to commands.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/example/pixelgrid/internal/app"
	"github.com/example/pixelgrid/internal/grid"
	"github.com/example/pixelgrid/internal/palette"
)

// Terminal layout. Each cell is cellW columns wide and one row high.
const (
	cellW       = 2
	swatchW     = 3
	paletteRow  = 0
	headerRow   = 2
	labelColumn = 3

	cellSizeStep = 4
)

var (
	styleBase   = tcell.StyleDefault
	styleHeader = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	colorLine   = tcell.NewRGBColor(0xaa, 0xaa, 0xaa)
)

// View is the terminal front end. It owns no state beyond the hover
// position and status message; everything else comes from the Controller.
type View struct {
	screen    tcell.Screen
	ctrl      *app.Controller
	log       *logrus.Entry
	exportDir string

	pressed bool
	hover   string
	status  string
}

// New binds a View to an initialized screen.
func New(screen tcell.Screen, ctrl *app.Controller, exportDir string, log *logrus.Entry) *View {
	screen.EnableMouse()
	return &View{screen: screen, ctrl: ctrl, exportDir: exportDir, log: log.WithField("component", "tui")}
}

// Run draws and handles events until the user quits.
func (v *View) Run() error {
	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.Handle(ev) {
			return nil
		}
		v.Draw()
	}
}

// Handle processes one event and reports whether the user asked to quit.
func (v *View) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return false
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	cfg := v.ctrl.State().Config
	switch r := ev.Rune(); r {
	case 'q':
		return true
	case 'c':
		v.dispatch(app.ClearAll{})
	case 'g':
		v.dispatch(app.ToggleGridLines{})
	case 's':
		v.save()
	case '+', '=':
		v.step(app.StepDimension(cfg, 1))
	case '-':
		v.step(app.StepDimension(cfg, -1))
	case ']':
		v.step(app.StepCellSize(cfg, cellSizeStep))
	case '[':
		v.step(app.StepCellSize(cfg, -cellSizeStep))
	default:
		// 1..9 then 0 pick the ten swatches in order
		if r >= '0' && r <= '9' {
			i := int(r - '1')
			if r == '0' {
				i = 9
			}
			v.dispatch(app.SelectColor{Name: palette.Default[i].Name})
		}
	}
	return false
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	n := v.ctrl.State().Config.Dimension
	row, col, onCell := cellAt(x, y, n)
	if onCell {
		v.hover = grid.Ref(row, col)
	} else {
		v.hover = ""
	}

	down := ev.Buttons()&tcell.Button1 != 0
	click := down && !v.pressed
	v.pressed = down
	if !click {
		return
	}
	if onCell {
		v.dispatch(app.PaintCell{Row: row, Col: col})
		return
	}
	if i, ok := swatchAt(x, y); ok {
		v.dispatch(app.SelectColor{Name: palette.Default[i].Name})
	}
}

func (v *View) dispatch(cmd app.Command) {
	if err := v.ctrl.Dispatch(cmd); err != nil {
		v.status = err.Error()
		return
	}
	v.status = ""
}

// step dispatches a resize unless clamping left the config unchanged.
func (v *View) step(cmd app.Command, ok bool) {
	if ok {
		v.dispatch(cmd)
	}
}

func (v *View) save() {
	p, err := v.ctrl.Save(v.exportDir)
	if err != nil {
		v.status = "save failed: " + err.Error()
		return
	}
	v.status = "saved " + p
}

// cellAt maps a terminal position to a data cell of an n×n grid.
func cellAt(x, y, n int) (row, col int, ok bool) {
	row = y - headerRow - 1
	if x < labelColumn || row < 0 || row >= n {
		return -1, -1, false
	}
	col = (x - labelColumn) / cellW
	if col >= n {
		return -1, -1, false
	}
	return row, col, true
}

// swatchAt maps a terminal position to a palette index.
func swatchAt(x, y int) (int, bool) {
	if y != paletteRow || x < 0 {
		return -1, false
	}
	i := x / swatchW
	if i >= len(palette.Default) || x%swatchW == swatchW-1 {
		return -1, false
	}
	return i, true
}

func tcellColor(e palette.Entry) tcell.Color {
	c := e.RGBA()
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw renders the palette, the labeled grid and the status line.
func (v *View) Draw() {
	s := v.screen
	s.Clear()
	st := v.ctrl.State()

	for i, e := range palette.Default {
		style := styleBase.Background(tcellColor(e)).Foreground(tcell.ColorGray)
		l, r := ' ', ' '
		if e.Name == st.Selected.Name {
			l, r = '[', ']'
		}
		s.SetContent(i*swatchW, paletteRow, l, nil, style)
		s.SetContent(i*swatchW+1, paletteRow, r, nil, style)
	}

	for tr, row := range st.Grid.Table() {
		y := headerRow + tr
		for tc, slot := range row {
			switch slot.Kind {
			case grid.SlotCorner:
			case grid.SlotRowHeader:
				drawText(s, 0, y, slot.Label, styleHeader)
			case grid.SlotColumnHeader:
				drawText(s, labelColumn+(tc-1)*cellW, y, fmt.Sprintf("%-2s", slot.Label), styleHeader)
			case grid.SlotCell:
				c := slot.Cell.Effective()
				bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
				x := labelColumn + (tc-1)*cellW
				mark := ' '
				if slot.Label != "" {
					mark = rune(slot.Label[0])
				}
				s.SetContent(x, y, mark, nil, styleBase.Background(bg).Foreground(tcell.ColorBlack))
				edge := ' '
				if slot.Cell.GridLines {
					edge = '▕'
				}
				s.SetContent(x+1, y, edge, nil, styleBase.Background(bg).Foreground(colorLine))
			}
		}
	}

	status := fmt.Sprintf("%dx%d @%dpx  color:%s  grid:%v  %s", st.Config.Dimension, st.Config.Dimension,
		st.Config.CellSize, st.Selected.Name, st.GridLines, v.hover)
	y := headerRow + st.Config.Dimension + 2
	drawText(s, 0, y, status, styleBase)
	drawText(s, 0, y+1, "click paint  1-0 color  c clear  g grid  s save  +/- size  [/] cell  q quit", styleHeader)
	if v.status != "" {
		drawText(s, 0, y+2, v.status, styleBase.Foreground(tcell.ColorRed))
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
