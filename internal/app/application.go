package app

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/chooser/internal/lines"
	statepkg "github.com/kk-code-lab/chooser/internal/state"
	inputui "github.com/kk-code-lab/chooser/internal/ui/input"
	renderui "github.com/kk-code-lab/chooser/internal/ui/render"
)

// Options configures a picking session.
type Options struct {
	State statepkg.Options
	// Foreground and Background name the colors of checked lines.
	Foreground string
	Background string
	Logger     *slog.Logger
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	logger     *slog.Logger
	shouldQuit bool
}

// State exposes the session state, mostly for inspection after Run.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// Checked returns the checked lines in input order.
func (app *Application) Checked() []lines.Line {
	var out []lines.Line
	for _, line := range app.state.Lines {
		if line.Checked {
			out = append(out, line)
		}
	}
	return out
}
