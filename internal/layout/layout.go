// Package layout packs items of known display width into aligned rows and
// columns that fit a line width.
package layout

// Mode selects how items are arranged.
type Mode int

const (
	// Vertical fills columns top to bottom, like ls -C.
	Vertical Mode = iota
	// Horizontal fills rows left to right, like ls -x.
	Horizontal
	// SingleColumn puts one item on each line.
	SingleColumn
)

func (m Mode) String() string {
	switch m {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "single-column"
	}
}

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// Layout is a computed packing. Widths is shared by every line: entry i of
// a line sits in column i, whose width is the widest item assigned to it.
type Layout[T any] struct {
	lines  [][]T
	widths []int
}

// New packs items into lines no wider than maxWidth. widths[i] is the
// display width of items[i] including any per-item overhead. A maxWidth
// below one is replaced by DefaultWidth.
func New[T any](mode Mode, items []T, widths []int, maxWidth int) *Layout[T] {
	if len(items) != len(widths) {
		panic("layout: items and widths differ in length")
	}
	if maxWidth < 1 {
		maxWidth = DefaultWidth
	}
	if len(items) == 0 {
		return &Layout[T]{}
	}

	switch mode {
	case SingleColumn:
		return singleColumn(items, widths)
	case Horizontal:
		cols := widest(len(items), widths, maxWidth, func(c int) []int {
			return horizontalWidths(widths, c)
		})
		return &Layout[T]{lines: chunk(items, cols), widths: horizontalWidths(widths, cols)}
	default:
		cols := widest(len(items), widths, maxWidth, func(c int) []int {
			return verticalWidths(widths, rowsFor(len(widths), c))
		})
		rows := rowsFor(len(items), cols)
		return &Layout[T]{lines: transpose(chunk(items, rows)), widths: verticalWidths(widths, rows)}
	}
}

// Lines returns the packed lines in display order.
func (l *Layout[T]) Lines() [][]T { return l.lines }

// Widths returns the per-column widths.
func (l *Layout[T]) Widths() []int { return l.widths }

// Columns is the number of columns in the packing.
func (l *Layout[T]) Columns() int { return len(l.widths) }

// EachLine calls fn for every line with the column widths.
func (l *Layout[T]) EachLine(fn func(line []T, widths []int)) {
	for _, line := range l.lines {
		fn(line, l.widths)
	}
}

// widest finds the largest column count whose packing fits maxWidth.
// Packed width is not monotone in the column count, so every count from
// the upper bound down is tried. One column is returned when nothing fits.
func widest(n int, widths []int, maxWidth int, columnWidths func(int) []int) int {
	minWidth := widths[0]
	for _, w := range widths[1:] {
		if w < minWidth {
			minWidth = w
		}
	}
	hi := maxWidth / max(1, minWidth)
	hi = min(max(1, hi), n)

	for cols := hi; cols > 1; cols-- {
		if sum(columnWidths(cols)) <= maxWidth {
			return cols
		}
	}
	return 1
}

func singleColumn[T any](items []T, widths []int) *Layout[T] {
	lines := make([][]T, len(items))
	colWidth := 0
	for i, item := range items {
		lines[i] = []T{item}
		colWidth = max(colWidth, widths[i])
	}
	return &Layout[T]{lines: lines, widths: []int{colWidth}}
}

func rowsFor(n, cols int) int {
	return (n + cols - 1) / cols
}

// verticalWidths slices widths into columns of rows items each.
func verticalWidths(widths []int, rows int) []int {
	var out []int
	for start := 0; start < len(widths); start += rows {
		end := min(start+rows, len(widths))
		w := 0
		for _, x := range widths[start:end] {
			w = max(w, x)
		}
		out = append(out, w)
	}
	return out
}

// horizontalWidths slices widths into rows of cols items and takes the
// maximum per position. A short last row counts as zero-width padding.
func horizontalWidths(widths []int, cols int) []int {
	out := make([]int, min(cols, len(widths)))
	for i, w := range widths {
		col := i % cols
		out[col] = max(out[col], w)
	}
	return out
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end:end])
	}
	return out
}

// transpose turns columns into lines; a short last column leaves the
// trailing slot of the later lines empty rather than padded.
func transpose[T any](columns [][]T) [][]T {
	if len(columns) == 0 {
		return nil
	}
	rows := len(columns[0])
	lines := make([][]T, rows)
	for r := 0; r < rows; r++ {
		line := make([]T, 0, len(columns))
		for _, col := range columns {
			if r < len(col) {
				line = append(line, col[r])
			}
		}
		lines[r] = line
	}
	return lines
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
