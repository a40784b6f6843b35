package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/chooser/internal/state"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	if state == nil {
		r.screen.Show()
		return
	}

	if state.HelpVisible {
		w, h := r.screen.Size()
		r.screen.HideCursor()
		r.drawHelpOverlay(state, w, h)
		r.screen.Show()
		return
	}

	frame := BuildFrame(state)
	r.drawFrame(state.Options, frame)
	r.screen.Show()
}

func (r *Renderer) drawFrame(opts statepkg.Options, frame Frame) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for _, cell := range frame.Cells {
		r.drawCell(opts, cell, frame.Width, baseStyle)
	}

	if frame.StatusY < 0 {
		r.screen.HideCursor()
		return
	}
	if frame.Prompt != nil {
		r.drawPrompt(*frame.Prompt, frame.StatusY, frame.Width, baseStyle)
		return
	}
	r.screen.HideCursor()
	r.drawTextLine(0, frame.StatusY, frame.Width, frame.Status, baseStyle)
}

// drawCell paints prefix, body and padding of one grid cell. The body takes
// the cursor and checked attributes; the padding only gets them in fullattr
// mode.
func (r *Renderer) drawCell(opts statepkg.Options, cell Cell, width int, baseStyle tcell.Style) {
	x := r.drawTextLine(cell.X, cell.Y, width-cell.X, cell.Prefix, baseStyle)

	bodyStyle := baseStyle
	if cell.Current {
		bodyStyle = bodyStyle.Reverse(true)
	}
	if cell.Checked {
		bodyStyle = r.checkedStyle(bodyStyle, opts.Color, opts.Underline)
	}

	end := r.drawTextLine(x, cell.Y, width-x, cell.Body, bodyStyle)

	padStyle := baseStyle
	if opts.FullAttr {
		padStyle = bodyStyle
	}
	r.fillBlank(end, cell.Y, min(cell.Pad, width-end), padStyle)
}

func (r *Renderer) drawPrompt(prompt PromptPlan, y, width int, style tcell.Style) {
	x := r.drawTextLine(0, y, width, prompt.Label+prompt.Separator, style)
	r.drawTextLine(x, y, width-x, prompt.Text, style)
	if prompt.CursorX < width {
		r.screen.ShowCursor(prompt.CursorX, y)
	} else {
		r.screen.ShowCursor(width-1, y)
	}
}
