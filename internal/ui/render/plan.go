package render

import (
	"strconv"
	"strings"

	statepkg "github.com/kk-code-lab/chooser/internal/state"
	"github.com/kk-code-lab/chooser/internal/textutil"
)

const (
	searchLabel     = "Search:"
	ignoreCaseLabel = "Ignore Case "
	pageSeparator   = "…"
)

// Cell is one visible line of the grid, already cut to the viewport.
type Cell struct {
	Index int
	// X and Y are screen coordinates of the first prefix cell.
	X, Y   int
	Prefix string
	// Body is the slice of the line inside [TopX, TopX+CellWidth). It may
	// still carry control runes; drawing sanitizes it.
	Body string
	// Pad is the number of blank cells needed after Body to fill the column.
	Pad     int
	Current bool
	Checked bool
}

// PromptPlan describes the search prompt line.
type PromptPlan struct {
	Label     string
	Separator string
	Text      string
	// CursorX is the screen column of the edit point.
	CursorX int
}

// Frame is everything the drawing side needs for one repaint. It holds no
// terminal types, so it can be checked without a screen.
type Frame struct {
	Width, Height int
	Cells         []Cell
	// StatusY is the row of the status or prompt line, -1 when there is none.
	StatusY int
	Status  string
	Prompt  *PromptPlan
}

// BuildFrame turns the session state into a render plan.
func BuildFrame(state *statepkg.AppState) Frame {
	frame := Frame{
		Width:   state.ScreenWidth,
		Height:  state.ScreenHeight,
		StatusY: -1,
	}
	if state.ScreenHeight <= 0 || state.ScreenWidth <= 0 {
		return frame
	}
	frame.StatusY = state.ScreenHeight - 1

	frame.Cells = buildCells(state)
	if state.Mode == statepkg.ModeSearching {
		prompt := buildPrompt(state)
		frame.Prompt = &prompt
	} else {
		frame.Status = statusText(state)
	}
	return frame
}

func buildCells(state *statepkg.AppState) []Cell {
	grid := state.Grid
	visible := grid.VisibleRows
	n := len(state.Lines)
	if visible <= 0 || n == 0 {
		return nil
	}

	first := state.TopY * grid.Columns
	last := min(n, grid.Columns*(state.TopY+visible))
	if first >= last {
		return nil
	}

	cells := make([]Cell, 0, last-first)
	for i := first; i < last; i++ {
		line := &state.Lines[i]
		x, y := grid.Position(i)
		body := cellBody(line.Text, line.Narrow, line.Width, state.TopX, grid.CellWidth)
		cells = append(cells, Cell{
			Index:   i,
			X:       x,
			Y:       y - state.TopY,
			Prefix:  linePrefix(state, i),
			Body:    body,
			Pad:     max(grid.CellWidth-textutil.StringWidth(body), 0),
			Current: i == state.Current,
			Checked: line.Checked,
		})
	}
	return cells
}

// cellBody cuts the part of a line that falls inside the column once the view
// is scrolled by topX cells.
func cellBody(text string, narrow bool, width, topX, cellWidth int) string {
	start := min(topX, width)
	finish := min(cellWidth, width-start) + start
	if narrow {
		return textutil.SubstringByRunes(text, start, finish)
	}
	return textutil.SubstringByWidth(text, start, finish)
}

// linePrefix builds the decoration drawn before line i: the optional
// zero-padded number, the cursor marker and the optional checkbox.
func linePrefix(state *statepkg.AppState, i int) string {
	var b strings.Builder
	opts := state.Options

	if opts.Numbers {
		num := strconv.Itoa(i)
		b.WriteString(strings.Repeat("0", max(digits(len(state.Lines))-len(num), 0)))
		b.WriteString(num)
	}

	marker := byte(' ')
	if i == state.Current && (state.TopX > 0 || state.Lines[i].Blank) {
		marker = '>'
	}
	b.WriteByte(marker)

	if opts.Checkbox {
		symbol := " "
		if state.Lines[i].Checked {
			symbol = "x"
			if opts.Radiobox {
				symbol = "o"
			}
		}
		b.WriteString("[" + symbol + "]")
	}
	return b.String()
}

// buildPrompt pages the query so the edit point is always on screen. When the
// query is wider than the space left after the label, the separator turns
// into an ellipsis and the text is shown one page at a time.
func buildPrompt(state *statepkg.AppState) PromptPlan {
	label := searchLabel
	if state.Search.IgnoreCase {
		label = ignoreCaseLabel + searchLabel
	}
	promptWidth := textutil.StringWidth(label) + 1

	text := state.Prompt.Text()
	textWidth := textutil.StringWidth(text)
	pointWidth := textutil.StringWidth(state.Prompt.BeforeCursor())

	width := max(min(textWidth, state.ScreenWidth-promptWidth), 0)
	start, finish := 0, width
	separator := " "
	if textWidth > width {
		if width > 0 {
			start = (pointWidth / width) * width
		}
		finish = min(width+start, textWidth)
		separator = pageSeparator
	}

	return PromptPlan{
		Label:     label,
		Separator: separator,
		Text:      textutil.SubstringByWidth(text, start, finish),
		CursorX:   promptWidth + max(pointWidth-start, 0),
	}
}
