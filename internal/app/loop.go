package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/chooser/internal/lines"
	statepkg "github.com/kk-code-lab/chooser/internal/state"
	"github.com/kk-code-lab/chooser/internal/ui/input"
	renderui "github.com/kk-code-lab/chooser/internal/ui/render"
)

// NewApplication opens the controlling terminal and prepares a session over
// the ingested lines.
func NewApplication(store *lines.Store, opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return newApplication(screen, store, opts), nil
}

// newApplication wires a session to an initialized screen.
func newApplication(screen tcell.Screen, store *lines.Store, opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	stateOpts := opts.State
	colors := screen.Colors() > 0
	if !colors {
		stateOpts.Color = false
	}

	w, h := screen.Size()
	state := statepkg.NewAppState(store, stateOpts, w, h)
	state.ColorsAvailable = colors

	actionCh := make(chan statepkg.Action, 10)
	theme := renderui.GetColorTheme().WithCheckedColors(opts.Foreground, opts.Background)
	inputHandler := input.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	logger.Debug("session ready",
		"lines", state.LineCount(),
		"widest", state.Widest,
		"width", w,
		"height", h,
		"columns", state.Grid.Columns,
		"colors", colors)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(logger),
		renderer: renderui.NewRenderer(screen, theme),
		input:    inputHandler,
		actionCh: actionCh,
		logger:   logger,
	}
}

// Run drives the session until it is confirmed, quit or aborted, then
// releases the terminal. It returns the outcome.
func (app *Application) Run() statepkg.Outcome {
	defer func() {
		app.screen.Fini()
		if err := flushConsoleInput(); err != nil {
			app.logger.Debug("flush console input", "error", err)
		}
	}()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	sigStopCh := make(chan os.Signal, 1)
	signal.Notify(sigStopCh, stopSignals()...)
	defer signal.Stop(sigStopCh)

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		case sig := <-sigStopCh:
			app.logger.Info("signal received", "signal", sig.String())
			app.handleAction(statepkg.AbortAction{})
		}

		if app.processActions() {
			renderPending = true
		}
	}

	app.logger.Info("session finished",
		"outcome", outcomeName(app.state.Outcome),
		"checked", app.state.CheckedCount())
	return app.state.Outcome
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return false
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

// processActions drains queued actions without blocking.
func (app *Application) processActions() bool {
	redraw := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				redraw = true
			}
		default:
			return redraw
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.SuspendAction:
		app.suspendToShell()
		return app.resumeAfterStop()
	case statepkg.RedrawAction:
		app.screen.Sync()
	}

	redraw := app.reduce(action)
	if app.state.Done() {
		app.shouldQuit = true
	}
	return redraw
}

func (app *Application) reduce(action statepkg.Action) bool {
	redraw, err := app.reducer.Reduce(app.state, action)
	if err != nil {
		app.logger.Error("action failed", "action", fmt.Sprintf("%T", action), "error", err)
		app.state.LastError = err
		return true
	}
	return redraw
}

func outcomeName(o statepkg.Outcome) string {
	switch o {
	case statepkg.OutcomeConfirmed:
		return "confirmed"
	case statepkg.OutcomeQuit:
		return "quit"
	case statepkg.OutcomeAborted:
		return "aborted"
	default:
		return "running"
	}
}
