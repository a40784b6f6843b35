package state

import (
	"errors"
	"io"
	"log/slog"

	"github.com/kk-code-lab/chooser/internal/search"
)

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct {
	logger *slog.Logger
}

// NewStateReducer creates a new reducer. A nil logger discards output.
func NewStateReducer(logger *slog.Logger) *StateReducer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &StateReducer{logger: logger}
}

// Reduce applies an action to state and reports whether the screen needs a
// redraw. Every transition ends with the viewport reclamped, so no sequence
// of actions can leave the cursor or offsets out of range.
func (r *StateReducer) Reduce(state *AppState, action Action) (bool, error) {
	switch action.(type) {
	case ResizeAction, RedrawAction:
	default:
		state.StatusMessage = ""
		state.LastError = nil
	}

	redraw, err := r.reduce(state, action)
	state.clampViewport()
	return redraw, err
}

func (r *StateReducer) reduce(state *AppState, action Action) (bool, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case MoveElementAction:
		state.moveElement(a.Delta)
	case MoveVerticalAction:
		state.moveVertical(a.Delta)
	case MoveHorizontalAction:
		state.moveHorizontal(a.Delta)
	case MovePageAction:
		state.movePage(a.Delta)
	case MoveHomeAction:
		state.moveHome()
	case MoveEndAction:
		state.moveEnd()
	case CenterViewAction:
		state.centerView()

	// ===== HORIZONTAL SCROLL =====

	case ScrollLeftAction:
		state.scrollLeft(scrollCells(state, a.Cells, a.HalfScreen))
	case ScrollRightAction:
		state.scrollRight(scrollCells(state, a.Cells, a.HalfScreen))
	case ScrollLineStartAction:
		state.scrollLineStart()
	case ScrollLineEndAction:
		state.scrollLineEnd()

	// ===== SELECTION =====

	case ToggleCurrentAction:
		state.Toggle(state.Current)
	case CheckOnlyCurrentAction:
		state.CheckOnlyCurrent()
	case ToggleAllAction:
		state.ToggleAll()
	case CheckAllAction:
		state.CheckAll()
	case UncheckAllAction:
		state.UncheckAll()
	case ToggleOptionAction:
		r.toggleOption(state, a.Option)

	// ===== SEARCH =====

	case SearchStartAction:
		state.startSearch(a.IgnoreCase, a.Then)
	case FindNextAction:
		if _, err := state.findMatching(FindForward); err != nil {
			return true, err
		}
	case FindPreviousAction:
		if _, err := state.findMatching(FindBackward); err != nil {
			return true, err
		}
	case ApplyToMatchesAction:
		hits, err := state.applyToMatches(a.Op)
		if err != nil {
			return true, err
		}
		r.logger.Debug("applied to matches", "op", a.Op, "hits", hits)
	case ClearSearchAction:
		state.Search.Text = ""

	// ===== PROMPT =====

	case PromptCharAction:
		state.Prompt.Insert(a.Char)
	case PromptBackspaceAction:
		state.Prompt.Backspace()
	case PromptDeleteAction:
		state.Prompt.Delete()
	case PromptDeleteWordAction:
		state.Prompt.DeleteWord()
	case PromptClearAction:
		state.Prompt.ClearToStart()
	case PromptMoveCursorAction:
		switch a.Direction {
		case "left":
			state.Prompt.MoveLeft()
		case "right":
			state.Prompt.MoveRight()
		case "home":
			state.Prompt.MoveHome()
		case "end":
			state.Prompt.MoveEnd()
		}
	case PromptHistoryAction:
		if a.Direction == "up" {
			state.Prompt.HistoryPrev()
		} else {
			state.Prompt.HistoryNext()
		}
	case PromptCommitAction:
		return r.commitSearch(state)
	case PromptCancelAction:
		state.cancelSearch()

	// ===== VIEW =====

	case ResizeAction:
		state.resize(a.Width, a.Height)
		r.logger.Debug("regrid", "width", a.Width, "height", a.Height,
			"columns", state.Grid.Columns, "rows", state.Grid.Rows)
	case RedrawAction:
		state.regrid()
	case ToggleHelpAction:
		state.HelpVisible = !state.HelpVisible

	// ===== APPLICATION =====

	case ConfirmAction:
		state.Outcome = OutcomeConfirmed
	case QuitAction:
		state.UncheckAll()
		state.Outcome = OutcomeQuit
	case AbortAction:
		state.Outcome = OutcomeAborted

	default:
		return false, nil
	}
	return true, nil
}

func (r *StateReducer) commitSearch(state *AppState) (bool, error) {
	pattern, err := state.commitSearch()
	switch {
	case errors.Is(err, search.ErrInvalidPattern):
		r.logger.Info("invalid search pattern", "error", err)
		return true, nil
	case err != nil:
		return true, err
	}
	if pattern != nil {
		r.logger.Debug("search committed", "pattern", pattern.Text(), "ignore_case", pattern.IgnoreCase())
	}
	return true, nil
}

func (r *StateReducer) toggleOption(state *AppState, opt OptionID) {
	o := &state.Options
	switch opt {
	case OptionCheckbox:
		o.Checkbox = !o.Checkbox
		state.regrid()
	case OptionNumbers:
		o.Numbers = !o.Numbers
		state.regrid()
	case OptionOneColumn:
		o.OneColumn = !o.OneColumn
		state.regrid()
	case OptionUnderline:
		o.Underline = !o.Underline
	case OptionFullAttr:
		o.FullAttr = !o.FullAttr
	case OptionRadiobox:
		state.toggleRadiobox()
	case OptionColor:
		if state.ColorsAvailable {
			o.Color = !o.Color
		}
	}
}

func scrollCells(state *AppState, cells int, halfScreen bool) int {
	if halfScreen {
		return state.ScreenWidth / 2
	}
	return cells
}
