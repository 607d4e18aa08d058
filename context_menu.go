package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// MenuAction describes what action was selected in the context menu
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionClear
	MenuActionToggleGrid
	MenuActionSave
	MenuActionGrowGrid
	MenuActionShrinkGrid
	MenuActionLargerCells
	MenuActionSmallerCells
)

type menuItem struct {
	label  string
	action MenuAction
}

var defaultMenuItems = []menuItem{
	{"Clear", MenuActionClear},
	{"Toggle Grid", MenuActionToggleGrid},
	{"Save PNG...", MenuActionSave},
	{"Grow Grid", MenuActionGrowGrid},
	{"Shrink Grid", MenuActionShrinkGrid},
	{"Larger Cells", MenuActionLargerCells},
	{"Smaller Cells", MenuActionSmallerCells},
}

// ContextMenu encapsulates the state and behavior of a right-click context menu
// It provides methods to show/hide, update based on input, and draw itself.
type ContextMenu struct {
	visible  bool
	x, y     int
	items    []menuItem
	selected int
}

func NewContextMenu() *ContextMenu {
	return &ContextMenu{items: defaultMenuItems, selected: -1}
}

func (cm *ContextMenu) Show(x, y int) {
	cm.visible = true
	cm.x = x
	cm.y = y
	cm.selected = -1
}

func (cm *ContextMenu) Hide() {
	cm.visible = false
	cm.selected = -1
}

func (cm *ContextMenu) Visible() bool {
	return cm.visible
}

// itemAt returns the index of the item under (mx, my), or -1.
func (cm *ContextMenu) itemAt(mx, my int) int {
	if mx < cm.x || mx > cm.x+MenuW || my < cm.y || my >= cm.y+MenuItemH*len(cm.items) {
		return -1
	}
	return (my - cm.y) / MenuItemH
}

// Update returns a MenuAction for any selection triggered, and may hide the menu
// as part of its behavior.
func (cm *ContextMenu) Update() MenuAction {
	if !cm.visible {
		return MenuActionNone
	}

	mx, my := ebiten.CursorPosition()
	cm.selected = cm.itemAt(mx, my)

	// left click selects or closes
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		idx := cm.selected
		cm.Hide()
		if idx >= 0 {
			return cm.items[idx].action
		}
		return MenuActionNone
	}

	// close menu on Escape or a second right-click
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cm.Hide()
	}
	return MenuActionNone
}

func (cm *ContextMenu) Draw(screen *ebiten.Image, face font.Face) {
	if !cm.visible {
		return
	}
	x := cm.x
	y := cm.y
	// background with small padding
	bgX := float64(x - MenuPadding)
	bgY := float64(y - MenuPadding)
	bgW := float64(MenuW + MenuPadding*2)
	bgH := float64(MenuItemH*len(cm.items) + MenuPadding*2)
	ebitenutil.DrawRect(screen, bgX, bgY, bgW, bgH, ColorMenuBg)
	// border
	ebitenutil.DrawRect(screen, bgX, bgY, bgW, 2, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX, bgY+bgH-2, bgW, 2, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX, bgY, 2, bgH, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX+bgW-2, bgY, 2, bgH, ColorMenuBorder)

	for i, it := range cm.items {
		iy := y + i*MenuItemH
		// highlight on hover
		if cm.selected == i {
			ebitenutil.DrawRect(screen, float64(x), float64(iy), float64(MenuW), float64(MenuItemH), ColorMenuHighlight)
		}
		drawTextAt(screen, face, it.label, x+MenuInnerPadding+2, iy+MenuInnerPadding, ColorText)
	}
}
