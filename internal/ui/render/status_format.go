package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/chooser/internal/state"
)

// statusText formats the position block, the committed search badge and any
// pending status message.
func statusText(state *statepkg.AppState) string {
	var b strings.Builder
	b.WriteString(formatPosition(state))

	if state.Mode == statepkg.ModeBrowsing && state.Search.Text != "" {
		b.WriteString("[" + state.Search.Text + "]")
	}
	if state.StatusMessage != "" {
		b.WriteString(" " + state.StatusMessage)
	}
	if state.LastError != nil {
		b.WriteString(" error: " + state.LastError.Error())
	}
	return b.String()
}

// formatPosition shows the line index, then the 1-based row and column. One
// column layouts show the row and the raw horizontal offset instead, or the
// column with StatusPosition.
func formatPosition(state *statepkg.AppState) string {
	grid := state.Grid
	cols := max(grid.Columns, 1)
	row := state.Current/cols + 1
	col := state.Current%cols + 1
	percent := scrollPercent(state.TopY, grid.Rows, grid.VisibleRows)
	rowDigits := digits(grid.Rows)
	colDigits := digits(cols)

	if cols > 1 {
		return fmt.Sprintf("[№%-*d:%*d,%-*d] %3d%% ",
			digits(len(state.Lines)), state.Current, rowDigits, row, colDigits, col, percent)
	}

	second := state.TopX
	if state.Options.SingleColumnStatus == statepkg.StatusPosition {
		second = col
	}
	return fmt.Sprintf("[№%*d,%-*d] %3d%% ", rowDigits, row, colDigits, second, percent)
}

// scrollPercent is 100 once the last row is on screen, 0 at the top and
// proportional to the middle of the view otherwise.
func scrollPercent(topY, rows, visible int) int {
	switch {
	case rows <= visible || topY == rows-visible:
		return 100
	case topY == 0:
		return 0
	default:
		return 100 * (topY + visible/2) / rows
	}
}

// digits counts decimal digits; zero has one.
func digits(n int) int {
	if n < 0 {
		n = -n
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
