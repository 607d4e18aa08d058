package main

import "image/color"

// Color Palette
var (
	ColorBackground    = color.RGBA{0x12, 0x12, 0x14, 0xff} // Main window background
	ColorHeaderBg      = color.RGBA{0x22, 0x22, 0x2a, 0xff} // Row/column header background
	ColorGridLine      = color.RGBA{0x44, 0x44, 0x50, 0xff} // Cell borders
	ColorSwatchBorder  = color.RGBA{0x55, 0x55, 0x66, 0xff} // Unselected swatch outline
	ColorSelection     = color.RGBA{0x66, 0x88, 0xff, 0xff} // Selected swatch outline
	ColorMarker        = color.Black                        // Ring markers inside cells
	ColorText          = color.White                        // Standard text
	ColorTextDim       = color.RGBA{0xdd, 0xdd, 0xdd, 0xff} // Dimmed text (logs)
	ColorLogBg         = color.RGBA{0x0c, 0x0c, 0x0e, 0xee} // Status log background
	ColorMenuBg        = color.RGBA{0x10, 0x10, 0x12, 0xff} // Context menu background
	ColorMenuBorder    = color.RGBA{0x44, 0x44, 0x50, 0xff} // Context menu border
	ColorMenuHighlight = color.RGBA{0x33, 0x55, 0xff, 0xff} // Context menu hover highlight
)

// Layout Constants
const (
	WindowMargin     = 16
	SwatchSize       = 20
	SwatchGap        = 6
	SwatchBorder     = 2
	PaletteGridGap   = 16
	GridLineWidth    = 1
	MenuPadding      = 4
	MenuItemH        = 28
	MenuW            = 200
	MenuInnerPadding = 6
)
