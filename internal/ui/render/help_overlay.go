package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/chooser/internal/state"
	textutil "github.com/kk-code-lab/chooser/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func buildHelpOverlayLines(state *statepkg.AppState) []string {
	var opts statepkg.Options
	if state != nil {
		opts = state.Options
	}

	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "Tab / S-Tab", desc: "Next / previous line"},
				{keys: "↑↓ or k j", desc: "Move up / down"},
				{keys: "←→ or h l", desc: "Move to the previous / next column"},
				{keys: "PgUp / PgDn", desc: "Page up / down"},
				{keys: "g / G", desc: "First / last line"},
				{keys: "z", desc: "Center the current line"},
				{keys: ", / .", desc: "Scroll one cell left / right"},
				{keys: "H < / L >", desc: "Scroll half a screen left / right"},
				{keys: "Home ^ / End $", desc: "Scroll to line start / end"},
			},
		},
		{
			title: "Selection",
			entries: []helpOverlayEntry{
				{keys: "Space", desc: "Toggle the current line"},
				{keys: "!", desc: "Check only the current line"},
				{keys: "t / a / A", desc: "Toggle all / check all / uncheck all"},
				{keys: "m / M / T", desc: "Check / uncheck / toggle search matches"},
			},
		},
		{
			title: "Search",
			entries: []helpOverlayEntry{
				{keys: "s / S", desc: "Search ignoring case / case-sensitive"},
				{keys: "/ or ?", desc: "Search, then find next / previous"},
				{keys: "n / N", desc: "Find next / previous match"},
				{keys: "c", desc: "Clear the search badge"},
				{keys: "↑↓ in prompt", desc: "Walk search history"},
			},
		},
		{
			title: "Display",
			entries: []helpOverlayEntry{
				{keys: "x", desc: "Checkboxes (" + onOff(opts.Checkbox) + ")"},
				{keys: "#", desc: "Line numbers (" + onOff(opts.Numbers) + ")"},
				{keys: "o or 1", desc: "One column (" + onOff(opts.OneColumn) + ")"},
				{keys: "u", desc: "Underline checked (" + onOff(opts.Underline) + ")"},
				{keys: "C", desc: "Color checked (" + onOff(opts.Color) + ")"},
				{keys: "f", desc: "Attributes to column end (" + onOff(opts.FullAttr) + ")"},
				{keys: "r", desc: "Radiobox (" + onOff(opts.Radiobox) + ")"},
				{keys: "Ctrl+L", desc: "Redraw"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "Enter", desc: "Print checked lines and exit"},
				{keys: "q", desc: "Exit without output"},
				{keys: "Ctrl+C", desc: "Abort"},
				{keys: "Ctrl+Z", desc: "Suspend"},
			},
		},
	}

	lines := make([]string, 0, 40)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.VisibleText(entry.keys)
	desc := textutil.VisibleText(entry.desc)
	return fmt.Sprintf("  %-16s %s", key, desc)
}

func (r *Renderer) drawHelpOverlay(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillBlank(0, y, w, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	titleStart := 0
	titleWidth := textutil.StringWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	lines := buildHelpOverlayLines(state)
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = truncateToWidth(text, w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	footer := "F1 or Esc close"
	if h > 1 {
		footerText := truncateToWidth(footer, w)
		r.drawTextLine(0, h-1, w, footerText, headerStyle)
	}
}
