package layout

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	items  []string
	widths []int
}

func collect(l *Layout[string]) []line {
	var out []line
	l.EachLine(func(items []string, widths []int) {
		out = append(out, line{items: items, widths: widths})
	})
	return out
}

func lengths(items []string) []int {
	out := make([]int, len(items))
	for i, s := range items {
		out[i] = len(s)
	}
	return out
}

const first = "1234567890"

func TestEmpty(t *testing.T) {
	for _, mode := range []Mode{Vertical, Horizontal, SingleColumn} {
		l := New(mode, []string{}, []int{}, 10)
		assert.Empty(t, collect(l), mode.String())
		assert.Equal(t, 0, l.Columns())
	}
}

func TestOneItem(t *testing.T) {
	for _, mode := range []Mode{Vertical, Horizontal} {
		got := collect(New(mode, []string{first}, []int{10}, 11))
		assert.Equal(t, []line{{[]string{first}, []int{10}}}, got, mode.String())
	}
}

func TestItemNotFitting(t *testing.T) {
	for _, mode := range []Mode{Vertical, Horizontal, SingleColumn} {
		got := collect(New(mode, []string{first}, []int{10}, 1))
		assert.Equal(t, []line{{[]string{first}, []int{10}}}, got, mode.String())
	}
}

func TestOverWideItemIsNeverSplit(t *testing.T) {
	items := []string{strings.Repeat("x", 500)}
	l := New(Vertical, items, []int{500}, 80)
	got := collect(l)
	require.Len(t, got, 1)
	assert.Equal(t, items, got[0].items)
	assert.Equal(t, 1, l.Columns())
}

func TestTwoItemsFitting(t *testing.T) {
	items := []string{first, "a"}
	for _, mode := range []Mode{Vertical, Horizontal} {
		got := collect(New(mode, items, lengths(items), 100))
		assert.Equal(t, []line{{items, []int{10, 1}}}, got, mode.String())
	}
}

func TestHorizontalThreeItemsPlaceForTwo(t *testing.T) {
	items := []string{first, "a", first}
	got := collect(New(Horizontal, items, lengths(items), len(first)+1))
	widths := []int{10, 1}
	assert.Equal(t, []line{
		{[]string{first, "a"}, widths},
		{[]string{first}, widths},
	}, got)
}

func TestVerticalThreeItemsPlaceForTwo(t *testing.T) {
	items := []string{first, "a", first}
	got := collect(New(Vertical, items, lengths(items), len(first)*2))
	widths := []int{10, 10}
	assert.Equal(t, []line{
		{[]string{first, first}, widths},
		{[]string{"a"}, widths},
	}, got)
}

func TestVerticalPicksMaximumFeasibleColumns(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	widths := []int{10, 10, 10, 10, 10}

	l := New(Vertical, items, widths, 35)
	assert.Equal(t, 3, l.Columns())
	assert.Equal(t, []int{10, 10, 10}, l.Widths())
	assert.Equal(t, [][]string{{"a", "c", "e"}, {"b", "d"}}, l.Lines())

	l = New(Vertical, items, widths, 29)
	assert.Equal(t, 2, l.Columns())
	assert.Equal(t, [][]string{{"a", "d"}, {"b", "e"}, {"c"}}, l.Lines())
}

func TestHorizontalOrder(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	widths := []int{10, 10, 10, 10, 10}

	l := New(Horizontal, items, widths, 35)
	assert.Equal(t, 3, l.Columns())
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e"}}, l.Lines())
}

func TestSingleColumn(t *testing.T) {
	items := []string{"a", "bbb", "cc"}
	l := New(SingleColumn, items, lengths(items), 1000)
	assert.Equal(t, [][]string{{"a"}, {"bbb"}, {"cc"}}, l.Lines())
	assert.Equal(t, 1, l.Columns())
}

func TestZeroWidthsAndUnknownTerminal(t *testing.T) {
	items := []string{"a", "b", "c"}
	l := New(Horizontal, items, []int{0, 0, 0}, 0)
	assert.Equal(t, 3, l.Columns())
	require.Len(t, l.Lines(), 1)
}

func TestMismatchedInputPanics(t *testing.T) {
	assert.Panics(t, func() { New(Vertical, []string{"a"}, []int{}, 10) })
}

func TestHorizontalFindsWidestPackingPastOverflow(t *testing.T) {
	items := []string{first, "a", "b", first, "c", "d"}
	l := New(Horizontal, items, lengths(items), 15)
	assert.Equal(t, 3, l.Columns())
	assert.Equal(t, []int{10, 1, 1}, l.Widths())
	assert.Equal(t, [][]string{{first, "a", "b"}, {first, "c", "d"}}, l.Lines())
}

// The packing fits the line or degenerates to one column. For rows filled
// left to right, any larger column count would overflow.
func TestPackingIsMaximal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 300; iter++ {
		n := 1 + rng.Intn(40)
		maxWidth := 10 + rng.Intn(200)
		widths := make([]int, n)
		items := make([]string, n)
		for i := range widths {
			widths[i] = 1 + rng.Intn(30)
			items[i] = strings.Repeat("x", widths[i])
		}

		for _, mode := range []Mode{Vertical, Horizontal} {
			l := New(mode, items, widths, maxWidth)
			cols := len(l.Lines()[0])
			total := sum(l.Widths())
			if cols > 1 {
				assert.LessOrEqual(t, total, maxWidth, "mode %v widths %v", mode, widths)
			}

			if mode == Horizontal {
				for more := cols + 1; more <= n; more++ {
					assert.Greater(t, sum(horizontalWidths(widths, more)), maxWidth, "cols %d widths %v", cols, widths)
				}
			}

			var flat []string
			for _, ln := range l.Lines() {
				flat = append(flat, ln...)
			}
			assert.Len(t, flat, n, "no item is dropped")
		}
	}
}

func TestUniformWidths(t *testing.T) {
	for n := 1; n <= 30; n++ {
		for maxWidth := 1; maxWidth <= 120; maxWidth += 7 {
			widths := make([]int, n)
			items := make([]string, n)
			for i := range widths {
				widths[i] = 8
				items[i] = "x"
			}
			best := 1
			for c := 1; c <= n; c++ {
				if sum(horizontalWidths(widths, c)) <= maxWidth {
					best = c
				}
			}
			assert.Equal(t, best, New(Horizontal, items, widths, maxWidth).Columns(), "n=%d max=%d", n, maxWidth)
		}
	}
}
