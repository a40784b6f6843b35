package state

// Action is the base interface for all state mutations
type Action interface{}

// FindDirection selects which way a match search runs.
type FindDirection int

const (
	FindNone FindDirection = iota
	FindForward
	FindBackward
)

// MatchOp is applied to every line matching the committed pattern.
type MatchOp int

const (
	MatchToggle MatchOp = iota
	MatchCheck
	MatchUncheck
)

// OptionID names a toggle that can be flipped during the session.
type OptionID int

const (
	OptionCheckbox OptionID = iota
	OptionNumbers
	OptionOneColumn
	OptionUnderline
	OptionFullAttr
	OptionRadiobox
	OptionColor
)

// ===== NAVIGATION ACTIONS =====

// MoveElementAction moves the cursor by Delta in reading order.
type MoveElementAction struct {
	Delta int
}

// MoveVerticalAction moves Delta rows, keeping the column.
type MoveVerticalAction struct {
	Delta int
}

// MoveHorizontalAction moves Delta columns within the current row.
type MoveHorizontalAction struct {
	Delta int
}

type MovePageAction struct {
	Delta int
}

type MoveHomeAction struct{}
type MoveEndAction struct{}
type CenterViewAction struct{}

// ===== HORIZONTAL SCROLL ACTIONS =====

// ScrollLeftAction scrolls the current line by Cells display columns, or by
// half the screen width when HalfScreen is set.
type ScrollLeftAction struct {
	Cells      int
	HalfScreen bool
}

type ScrollRightAction struct {
	Cells      int
	HalfScreen bool
}

type ScrollLineStartAction struct{}
type ScrollLineEndAction struct{}

// ===== SELECTION ACTIONS =====

type ToggleCurrentAction struct{}
type CheckOnlyCurrentAction struct{}
type ToggleAllAction struct{}
type CheckAllAction struct{}
type UncheckAllAction struct{}

type ToggleOptionAction struct {
	Option OptionID
}

// ===== SEARCH ACTIONS =====

// SearchStartAction opens the prompt. Then runs once the text is committed.
type SearchStartAction struct {
	IgnoreCase bool
	Then       FindDirection
}

type FindNextAction struct{}
type FindPreviousAction struct{}

type ApplyToMatchesAction struct {
	Op MatchOp
}

// ClearSearchAction drops the committed text badge.
type ClearSearchAction struct{}

// ===== PROMPT ACTIONS =====

type PromptCharAction struct {
	Char rune
}
type PromptBackspaceAction struct{}
type PromptDeleteAction struct{}
type PromptDeleteWordAction struct{}
type PromptClearAction struct{}
type PromptMoveCursorAction struct {
	Direction string // "left", "right", "home", "end"
}
type PromptHistoryAction struct {
	Direction string // "up" or "down"
}
type PromptCommitAction struct{}
type PromptCancelAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// RedrawAction recomputes the layout for the current size.
type RedrawAction struct{}

type ToggleHelpAction struct{}

// ===== APPLICATION ACTIONS =====

type ConfirmAction struct{} // Enter - emit checked lines
type QuitAction struct{}    // q - emit nothing
type AbortAction struct{}   // Ctrl-C
type SuspendAction struct{} // Ctrl-Z
