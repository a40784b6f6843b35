package render

import (
	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/chooser/internal/textutil"
)

const ellipsis = "…"

// asciiWidths caches the cell width of every ASCII rune. Control bytes are
// drawn in caret notation and take two cells.
var asciiWidths = func() (w [128]int8) {
	for r := range w {
		w[r] = int8(textutil.RuneWidth(rune(r)))
	}
	return w
}()

func cellWidth(r rune) int {
	if r >= 0 && r < 128 {
		return int(asciiWidths[r])
	}
	return textutil.RuneWidth(r)
}

// truncateToWidth shortens text to maxWidth cells, marking the cut with an
// ellipsis.
func truncateToWidth(text string, maxWidth int) string {
	switch {
	case maxWidth <= 0:
		return ""
	case textutil.StringWidth(text) <= maxWidth:
		return text
	case maxWidth == 1:
		return ellipsis
	}
	return textutil.SubstringByWidth(text, 0, maxWidth-1) + ellipsis
}

// drawTextLine writes text starting at startX and returns the column after
// the last cell written. Zero-width runes ride on the preceding rune as
// combining characters. A wide rune that would cross maxWidth is not drawn.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(textutil.VisibleText(text))
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		i++

		w := cellWidth(mainc)
		if w == 0 {
			// Nothing to attach to.
			continue
		}
		if x-startX+w > maxWidth {
			break
		}

		var combc []rune
		for i < len(runes) && cellWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// fillBlank paints n spaces from x on row y.
func (r *Renderer) fillBlank(x, y, n int, style tcell.Style) int {
	for ; n > 0; n-- {
		r.screen.SetContent(x, y, ' ', nil, style)
		x++
	}
	return x
}
