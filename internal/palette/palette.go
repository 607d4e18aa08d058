// Package palette holds the fixed set of colors a user can paint with.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrUnknownColor is returned when a name or value is not in the palette.
var ErrUnknownColor = errors.New("unknown palette color")

// Entry is one named swatch. Value is encoded as "#rrggbb".
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DefaultName is the color selected at startup.
const DefaultName = "black"

// Default is the palette in display order. It must not be modified.
var Default = []Entry{
	{Name: "white", Value: "#ffffff"},
	{Name: "black", Value: "#000000"},
	{Name: "red", Value: "#ff0000"},
	{Name: "orange", Value: "#ffa500"},
	{Name: "yellow", Value: "#ffff00"},
	{Name: "green", Value: "#008000"},
	{Name: "cyan", Value: "#00ffff"},
	{Name: "blue", Value: "#0000ff"},
	{Name: "purple", Value: "#800080"},
	{Name: "pink", Value: "#ffc0cb"},
}

// Entries returns a copy of the palette in display order.
func Entries() []Entry {
	out := make([]Entry, len(Default))
	copy(out, Default)
	return out
}

// Lookup finds an entry by name, case-insensitively.
func Lookup(name string) (Entry, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range Default {
		if e.Name == n {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// ByValue finds an entry by its "#rrggbb" value.
func ByValue(value string) (Entry, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, e := range Default {
		if e.Value == v {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownColor, value)
}

// Index returns the display position of the named entry, or -1.
func Index(name string) int {
	for i, e := range Default {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Entry {
	e, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return e
}

// RGBA returns the opaque color for the entry. Palette values are always
// well formed, so a parse failure yields opaque black.
func (e Entry) RGBA() color.RGBA {
	c, err := ParseHex(e.Value)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

// ParseHex parses "#rrggbb" (leading '#' optional) into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Hex formats an opaque color as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
