package state

import (
	"github.com/kk-code-lab/chooser/internal/lines"
	"github.com/kk-code-lab/chooser/internal/search"
)

// Mode selects which dispatch table handles key input.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeSearching
)

func (m Mode) String() string {
	if m == ModeSearching {
		return "searching"
	}
	return "browsing"
}

// Outcome records how the session ended.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeConfirmed
	OutcomeQuit
	OutcomeAborted
)

// StatusStyle picks what the single-column status line shows next to the row.
type StatusStyle int

const (
	// StatusOffset shows the horizontal scroll offset.
	StatusOffset StatusStyle = iota
	// StatusPosition shows the column, as the multi-column line does.
	StatusPosition
)

// Options are the session toggles. Some of them can be flipped from the
// keyboard while the session runs.
type Options struct {
	OneColumn  bool
	Checkbox   bool
	Numbers    bool
	Underline  bool
	Color      bool
	Radiobox   bool
	Initial    bool
	WhiteLines bool
	FullAttr   bool

	SingleColumnStatus StatusStyle
}

// SearchState holds the committed search and the prompt that edits it.
type SearchState struct {
	// Pattern is replaced on every successful commit, never mutated.
	Pattern *search.Pattern
	// Text is the last committed prompt text, shown as a badge while the
	// prompt is closed.
	Text string
	// IgnoreCase applies to the prompt currently being edited.
	IgnoreCase bool

	pendingFind FindDirection
}

// AppState is the single source of truth for a picking session.
type AppState struct {
	Lines  []lines.Line
	Widest int

	Options         Options
	ColorsAvailable bool

	// Layout and viewport
	Grid    Grid
	Current int
	TopY    int
	TopX    int

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	Mode        Mode
	HelpVisible bool
	Search      SearchState
	Prompt      PromptEditor

	// Status line
	StatusMessage string

	// Error state
	LastError error

	Outcome Outcome
}

// NewAppState builds a session over an ingested store and lays it out for a
// width x height terminal.
func NewAppState(store *lines.Store, opts Options, width, height int) *AppState {
	s := &AppState{
		Options:      opts,
		ScreenWidth:  width,
		ScreenHeight: height,
	}
	if store != nil {
		s.Lines = store.Lines
		s.Widest = store.Widest
	}
	if opts.Radiobox {
		s.collapseToCurrent()
	}
	s.regrid()
	return s
}

// VisibleRows is the number of grid rows that fit above the status line.
func (s *AppState) VisibleRows() int {
	if s.ScreenHeight <= 1 {
		return 0
	}
	return s.ScreenHeight - 1
}

// LineCount returns the number of lines in the session.
func (s *AppState) LineCount() int {
	return len(s.Lines)
}

// CurrentLine returns the line under the cursor, or nil for an empty session.
func (s *AppState) CurrentLine() *lines.Line {
	if s.Current < 0 || s.Current >= len(s.Lines) {
		return nil
	}
	return &s.Lines[s.Current]
}

// Done reports whether the session has reached an outcome.
func (s *AppState) Done() bool {
	return s.Outcome != OutcomeRunning
}

// CheckedCount returns how many lines are checked.
func (s *AppState) CheckedCount() int {
	n := 0
	for i := range s.Lines {
		if s.Lines[i].Checked {
			n++
		}
	}
	return n
}
