package grid

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func TestBuildTableShape(t *testing.T) {
	for n := MinDimension; n <= MaxDimension; n++ {
		for _, s := range []int{20, 33} {
			g, err := Build(Config{Dimension: n, CellSize: s}, true)
			require.NoError(t, err)

			table := g.Table()
			require.Len(t, table, n+1, "n=%d", n)
			for i, row := range table {
				require.Len(t, row, n+1, "n=%d row=%d", n, i)
			}
		}
	}
}

func TestBuildLabels(t *testing.T) {
	g, err := Build(Config{Dimension: 3, CellSize: 20}, true)
	require.NoError(t, err)
	table := g.Table()

	assert.Equal(t, SlotCorner, table[0][0].Kind)
	assert.Equal(t, "", table[0][0].Label)
	assert.Equal(t, []string{"1", "2", "3"}, []string{table[0][1].Label, table[0][2].Label, table[0][3].Label})

	for r, want := range []string{"A", "B", "C"} {
		assert.Equal(t, SlotRowHeader, table[r+1][0].Kind)
		assert.Equal(t, want, table[r+1][0].Label)
	}
	assert.Equal(t, SlotCell, table[2][2].Kind)
	assert.Equal(t, 1, table[2][2].Cell.Row)
	assert.Equal(t, 1, table[2][2].Cell.Col)
}

func TestBuildLastRowIsZ(t *testing.T) {
	g, err := Build(Config{Dimension: 26, CellSize: 20}, false)
	require.NoError(t, err)
	table := g.Table()
	assert.Equal(t, "Z", table[26][0].Label)
	assert.Equal(t, "26", table[0][26].Label)
}

func TestBuildInitialCells(t *testing.T) {
	g, err := Build(Config{Dimension: 7, CellSize: 25}, false)
	require.NoError(t, err)
	g.Each(func(c Cell) {
		assert.False(t, c.Fill.Set)
		assert.False(t, c.GridLines)
		assert.Equal(t, MarkerFor(c.Row, c.Col, 7), c.Marker)
	})
	assert.Equal(t, 0, g.Painted())
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	_, err := Build(Config{Dimension: 27, CellSize: 20}, true)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = Build(Config{Dimension: 0, CellSize: 20}, true)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = Build(Config{Dimension: 5, CellSize: 19}, true)
	assert.ErrorIs(t, err, ErrInvalidCellSize)
}

func TestMarkerRings(t *testing.T) {
	n := 8
	want := [][]Marker{}
	for r := 0; r < n; r++ {
		row := []Marker{}
		for c := 0; c < n; c++ {
			row = append(row, MarkerFor(r, c, n))
		}
		want = append(want, row)
	}
	assert.Equal(t, MarkerRing1, want[0][4])
	assert.Equal(t, MarkerRing2, want[1][4])
	assert.Equal(t, MarkerRing3, want[2][2])
	assert.Equal(t, MarkerNone, want[3][3])
	assert.Equal(t, MarkerNone, want[4][4])
	assert.Equal(t, MarkerRing3, want[5][3])
	assert.Equal(t, MarkerRing1, want[7][7])
}

func TestMarkerSymmetry(t *testing.T) {
	for n := 1; n <= MaxDimension; n++ {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				assert.Equal(t, MarkerFor(r, c, n), MarkerFor(n-1-r, n-1-c, n), "n=%d r=%d c=%d", n, r, c)
			}
		}
	}
}

func TestMarkerSmallGridsAreAllRingOne(t *testing.T) {
	for _, n := range []int{1, 2} {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				assert.Equal(t, MarkerRing1, MarkerFor(r, c, n))
			}
		}
	}
}

func TestMarkerString(t *testing.T) {
	assert.Equal(t, "", MarkerNone.String())
	assert.Equal(t, "1", MarkerRing1.String())
	assert.Equal(t, "3", MarkerRing3.String())
	assert.Equal(t, 12, MarkerFontSize(20))
	assert.Equal(t, 13, MarkerFontSize(23))
}

func TestPaintAndClear(t *testing.T) {
	g, err := Build(Config{Dimension: 5, CellSize: 20}, true)
	require.NoError(t, err)

	require.NoError(t, g.Paint(1, 2, red))
	require.NoError(t, g.Paint(1, 2, red))
	c, err := g.Cell(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Fill{Color: red, Set: true}, c.Fill)
	assert.Equal(t, red, c.Effective())
	assert.Equal(t, 1, g.Painted())

	before := g.Rows()
	g.Clear()
	after := g.Rows()
	for r := range after {
		for col := range after[r] {
			assert.False(t, after[r][col].Fill.Set)
			assert.Equal(t, before[r][col].Marker, after[r][col].Marker)
			assert.Equal(t, before[r][col].GridLines, after[r][col].GridLines)
			assert.Equal(t, White, after[r][col].Effective())
		}
	}
}

func TestPaintWhiteIsAFill(t *testing.T) {
	g, err := Build(Config{Dimension: 2, CellSize: 20}, true)
	require.NoError(t, err)
	require.NoError(t, g.Paint(0, 0, White))
	c, _ := g.Cell(0, 0)
	assert.True(t, c.Fill.Set)
}

func TestPaintOutOfRange(t *testing.T) {
	g, err := Build(Config{Dimension: 3, CellSize: 20}, true)
	require.NoError(t, err)
	assert.ErrorIs(t, g.Paint(3, 0, red), ErrOutOfRange)
	assert.ErrorIs(t, g.Paint(0, -1, red), ErrOutOfRange)
	_, err = g.Cell(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSetGridLinesTwiceRestores(t *testing.T) {
	g, err := Build(Config{Dimension: 6, CellSize: 20}, true)
	require.NoError(t, err)
	require.NoError(t, g.Paint(2, 3, red))
	before := g.Rows()

	g.SetGridLines(!g.GridLines())
	g.Each(func(c Cell) { assert.False(t, c.GridLines) })
	g.SetGridLines(!g.GridLines())

	assert.True(t, g.GridLines())
	assert.Equal(t, before, g.Rows())
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := Build(Config{Dimension: 4, CellSize: 20}, true)
	require.NoError(t, err)
	cp := g.Clone()
	require.NoError(t, cp.Paint(0, 0, red))
	assert.Equal(t, 0, g.Painted())
	assert.Equal(t, 1, cp.Painted())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 26, ClampDimension(30))
	assert.Equal(t, 1, ClampDimension(0))
	assert.Equal(t, 12, ClampDimension(12))
	assert.Equal(t, 20, ClampCellSize(5))
	assert.Equal(t, 45, ClampCellSize(45))
	assert.Equal(t, Config{Dimension: 26, CellSize: 20}, Config{Dimension: 30, CellSize: 5}.Clamp())
}

func TestParseInputs(t *testing.T) {
	n, err := ParseDimension(" 30 ")
	require.NoError(t, err)
	assert.Equal(t, 26, n)

	s, err := ParseCellSize("5")
	require.NoError(t, err)
	assert.Equal(t, 20, s)

	_, err = ParseDimension("ten")
	assert.Error(t, err)
	_, err = ParseCellSize("")
	assert.Error(t, err)
}

func TestConfigFromInputs(t *testing.T) {
	assert.Equal(t, Config{Dimension: 10, CellSize: 20}, ConfigFromInputs("", "abc"))
	assert.Equal(t, Config{Dimension: 26, CellSize: 20}, ConfigFromInputs("40", "8"))
	assert.Equal(t, Config{Dimension: 4, CellSize: 32}, ConfigFromInputs("4", "32"))
	assert.Equal(t, 128, Config{Dimension: 4, CellSize: 32}.PixelSize())
}

func TestRefs(t *testing.T) {
	assert.Equal(t, "A1", Ref(0, 0))
	assert.Equal(t, "C7", Ref(2, 6))
	assert.Equal(t, "Z26", Ref(25, 25))

	r, c, err := ParseRef("c7")
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	assert.Equal(t, 6, c)

	for _, bad := range []string{"", "7", "C", "C0", "C-1", "1C", "Cx"} {
		_, _, err := ParseRef(bad)
		assert.ErrorIs(t, err, ErrBadReference, bad)
	}
}

func TestLetters(t *testing.T) {
	assert.Equal(t, "A", IndexToLetters(0))
	assert.Equal(t, "Z", IndexToLetters(25))
	assert.Equal(t, "AA", IndexToLetters(26))
	n, err := LettersToIndex("aa")
	require.NoError(t, err)
	assert.Equal(t, 26, n)
}

func TestLayout(t *testing.T) {
	l := NewLayout(10, 40, Config{Dimension: 4, CellSize: 20})

	assert.Equal(t, image.Rect(10, 40, 110, 140), l.Bounds())
	assert.Equal(t, image.Rect(30, 60, 110, 140), l.Content())
	assert.Equal(t, image.Rect(30, 60, 50, 80), l.CellRect(0, 0))
	assert.Equal(t, image.Rect(10, 40, 30, 60), l.SlotRect(0, 0))

	r, c, ok := l.CellAt(30, 60)
	assert.True(t, ok)
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	r, c, ok = l.CellAt(109, 81)
	assert.True(t, ok)
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)

	_, _, ok = l.CellAt(20, 70)
	assert.False(t, ok, "row header is not a cell")
	_, _, ok = l.CellAt(110, 70)
	assert.False(t, ok)
}

func TestCheckImageSide(t *testing.T) {
	assert.NoError(t, Config{Dimension: 26, CellSize: 630}.CheckImageSide(26))
	assert.ErrorIs(t, Config{Dimension: 26, CellSize: 631}.CheckImageSide(26), ErrImageTooLarge)
	assert.ErrorIs(t, Config{Dimension: 26, CellSize: 630}.CheckImageSide(27), ErrImageTooLarge)
	assert.ErrorIs(t, Config{Dimension: 1, CellSize: math.MaxInt}.CheckImageSide(26), ErrImageTooLarge)
}
