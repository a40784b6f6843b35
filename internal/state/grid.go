package state

// Grid describes how lines are laid out in rows and columns.
type Grid struct {
	Lines   int
	Columns int
	Rows    int
	// CellWidth is the text width of one column, excluding the prefix.
	CellWidth   int
	PrefixWidth int
	Widest      int
	VisibleRows int
}

// ComputeGrid lays lineCount lines out on a cols x rows terminal. One row is
// reserved for the status line. Columns is always at least one.
func ComputeGrid(lineCount, widest, cols, rows int, oneColumn bool, prefixWidth int) Grid {
	if lineCount < 0 {
		lineCount = 0
	}
	cellWidth := min(cols-prefixWidth, widest)
	if cellWidth < 0 {
		cellWidth = 0
	}

	columns := 1
	if !oneColumn && lineCount > 0 {
		if stride := cellWidth + prefixWidth; stride > 0 {
			columns = max(cols/stride, 1)
		}
	}

	return Grid{
		Lines:       lineCount,
		Columns:     columns,
		Rows:        ceilDiv(lineCount, columns),
		CellWidth:   cellWidth,
		PrefixWidth: prefixWidth,
		Widest:      widest,
		VisibleRows: max(rows-1, 0),
	}
}

// Stride is the distance in cells between the starts of adjacent columns.
func (g Grid) Stride() int {
	return g.CellWidth + g.PrefixWidth
}

// Position returns the cell coordinate of line i in grid space.
func (g Grid) Position(i int) (x, y int) {
	cols := max(g.Columns, 1)
	return (i % cols) * g.Stride(), i / cols
}

// Row returns the grid row of line i.
func (g Grid) Row(i int) int {
	return i / max(g.Columns, 1)
}

// LastRowMaxColumn is the highest valid column index on the last row.
func (g Grid) LastRowMaxColumn() int {
	if g.Rows == 0 {
		return 0
	}
	return g.Lines - (g.Rows-1)*g.Columns - 1
}

// PrefixWidth is the width of the decoration drawn before every line: the
// cursor marker, the optional line number and the optional checkbox.
func PrefixWidth(opts Options, lineCount int) int {
	w := 1
	if opts.Numbers {
		w += digits(lineCount)
	}
	if opts.Checkbox {
		w += 3
	}
	return w
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

func ceilDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
