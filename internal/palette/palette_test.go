package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaletteOrderAndUniqueness(t *testing.T) {
	names := []string{"white", "black", "red", "orange", "yellow", "green", "cyan", "blue", "purple", "pink"}
	require.Len(t, Default, len(names))

	seen := map[string]bool{}
	for i, e := range Default {
		assert.Equal(t, names[i], e.Name)
		assert.False(t, seen[e.Name], "duplicate name %s", e.Name)
		seen[e.Name] = true
	}
}

func TestLookup(t *testing.T) {
	e, err := Lookup(" Orange ")
	require.NoError(t, err)
	assert.Equal(t, "#ffa500", e.Value)

	_, err = Lookup("magenta")
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestByValue(t *testing.T) {
	e, err := ByValue("#FFC0CB")
	require.NoError(t, err)
	assert.Equal(t, "pink", e.Name)

	_, err = ByValue("#123456")
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestEntryRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}, MustLookup("orange").RGBA())
	assert.Equal(t, color.RGBA{R: 0x80, B: 0x80, A: 0xff}, MustLookup("purple").RGBA())
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("008000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 0x80, A: 0xff}, c)
	assert.Equal(t, "#008000", Hex(c))

	_, err = ParseHex("#fff")
	assert.Error(t, err)
	_, err = ParseHex("#gggggg")
	assert.Error(t, err)
}

func TestEntriesIsACopy(t *testing.T) {
	es := Entries()
	es[0].Value = "#000000"
	assert.Equal(t, "#ffffff", Default[0].Value)
	assert.Equal(t, 1, Index(DefaultName))
	assert.Equal(t, -1, Index("nope"))
}
