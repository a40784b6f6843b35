package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/chooser/internal/state"
)

// browsingKeys maps special keys to actions while the grid has focus.
var browsingKeys = map[tcell.Key]statepkg.Action{
	tcell.KeyTab:     statepkg.MoveElementAction{Delta: 1},
	tcell.KeyBacktab: statepkg.MoveElementAction{Delta: -1},
	tcell.KeyDown:    statepkg.MoveVerticalAction{Delta: 1},
	tcell.KeyUp:      statepkg.MoveVerticalAction{Delta: -1},
	tcell.KeyRight:   statepkg.MoveHorizontalAction{Delta: 1},
	tcell.KeyLeft:    statepkg.MoveHorizontalAction{Delta: -1},
	tcell.KeyPgDn:    statepkg.MovePageAction{Delta: 1},
	tcell.KeyPgUp:    statepkg.MovePageAction{Delta: -1},
	tcell.KeyHome:    statepkg.ScrollLineStartAction{},
	tcell.KeyEnd:     statepkg.ScrollLineEndAction{},
	tcell.KeyEnter:   statepkg.ConfirmAction{},
	tcell.KeyCtrlL:   statepkg.RedrawAction{},
	tcell.KeyCtrlC:   statepkg.AbortAction{},
	tcell.KeyCtrlZ:   statepkg.SuspendAction{},
	tcell.KeyF1:      statepkg.ToggleHelpAction{},
}

// browsingRunes maps printable keys to actions while the grid has focus.
var browsingRunes = map[rune]statepkg.Action{
	'j': statepkg.MoveVerticalAction{Delta: 1},
	'k': statepkg.MoveVerticalAction{Delta: -1},
	'l': statepkg.MoveHorizontalAction{Delta: 1},
	'h': statepkg.MoveHorizontalAction{Delta: -1},
	'g': statepkg.MoveHomeAction{},
	'G': statepkg.MoveEndAction{},
	'z': statepkg.CenterViewAction{},

	',': statepkg.ScrollLeftAction{Cells: 1},
	'.': statepkg.ScrollRightAction{Cells: 1},
	'H': statepkg.ScrollLeftAction{HalfScreen: true},
	'<': statepkg.ScrollLeftAction{HalfScreen: true},
	'L': statepkg.ScrollRightAction{HalfScreen: true},
	'>': statepkg.ScrollRightAction{HalfScreen: true},
	'^': statepkg.ScrollLineStartAction{},
	'$': statepkg.ScrollLineEndAction{},

	' ': statepkg.ToggleCurrentAction{},
	'!': statepkg.CheckOnlyCurrentAction{},
	't': statepkg.ToggleAllAction{},
	'a': statepkg.CheckAllAction{},
	'A': statepkg.UncheckAllAction{},

	'x': statepkg.ToggleOptionAction{Option: statepkg.OptionCheckbox},
	'#': statepkg.ToggleOptionAction{Option: statepkg.OptionNumbers},
	'o': statepkg.ToggleOptionAction{Option: statepkg.OptionOneColumn},
	'1': statepkg.ToggleOptionAction{Option: statepkg.OptionOneColumn},
	'u': statepkg.ToggleOptionAction{Option: statepkg.OptionUnderline},
	'f': statepkg.ToggleOptionAction{Option: statepkg.OptionFullAttr},
	'r': statepkg.ToggleOptionAction{Option: statepkg.OptionRadiobox},
	'C': statepkg.ToggleOptionAction{Option: statepkg.OptionColor},

	's': statepkg.SearchStartAction{IgnoreCase: true},
	'S': statepkg.SearchStartAction{IgnoreCase: false},
	'/': statepkg.SearchStartAction{IgnoreCase: true, Then: statepkg.FindForward},
	'?': statepkg.SearchStartAction{IgnoreCase: true, Then: statepkg.FindBackward},
	'n': statepkg.FindNextAction{},
	'N': statepkg.FindPreviousAction{},
	'm': statepkg.ApplyToMatchesAction{Op: statepkg.MatchCheck},
	'M': statepkg.ApplyToMatchesAction{Op: statepkg.MatchUncheck},
	'T': statepkg.ApplyToMatchesAction{Op: statepkg.MatchToggle},
	'c': statepkg.ClearSearchAction{},

	'q': statepkg.QuitAction{},
}

// searchingKeys maps special keys to prompt edits while the search prompt is
// open. Printable runes become PromptCharAction.
var searchingKeys = map[tcell.Key]statepkg.Action{
	tcell.KeyBackspace:  statepkg.PromptBackspaceAction{},
	tcell.KeyBackspace2: statepkg.PromptBackspaceAction{},
	tcell.KeyDelete:     statepkg.PromptDeleteAction{},
	tcell.KeyCtrlW:      statepkg.PromptDeleteWordAction{},
	tcell.KeyCtrlU:      statepkg.PromptClearAction{},
	tcell.KeyLeft:       statepkg.PromptMoveCursorAction{Direction: "left"},
	tcell.KeyRight:      statepkg.PromptMoveCursorAction{Direction: "right"},
	tcell.KeyHome:       statepkg.PromptMoveCursorAction{Direction: "home"},
	tcell.KeyCtrlA:      statepkg.PromptMoveCursorAction{Direction: "home"},
	tcell.KeyEnd:        statepkg.PromptMoveCursorAction{Direction: "end"},
	tcell.KeyCtrlE:      statepkg.PromptMoveCursorAction{Direction: "end"},
	tcell.KeyUp:         statepkg.PromptHistoryAction{Direction: "up"},
	tcell.KeyDown:       statepkg.PromptHistoryAction{Direction: "down"},
	tcell.KeyEnter:      statepkg.PromptCommitAction{},
	tcell.KeyEscape:     statepkg.PromptCancelAction{},
	tcell.KeyCtrlC:      statepkg.AbortAction{},
	tcell.KeyCtrlL:      statepkg.RedrawAction{},
}

// ctrlRunes recovers control keys that some terminals report as a rune with
// the Ctrl modifier.
var ctrlRunes = map[rune]tcell.Key{
	'a': tcell.KeyCtrlA,
	'c': tcell.KeyCtrlC,
	'e': tcell.KeyCtrlE,
	'l': tcell.KeyCtrlL,
	'u': tcell.KeyCtrlU,
	'w': tcell.KeyCtrlW,
	'z': tcell.KeyCtrlZ,
}

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event ends the session.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := Translate(ih.dispatchMode(), ev)
		if action == nil {
			return true
		}
		ih.actionChan <- action
		return !endsSession(action)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) dispatchMode() DispatchMode {
	switch {
	case ih.state == nil:
		return DispatchBrowsing
	case ih.state.HelpVisible:
		return DispatchHelp
	case ih.state.Mode == statepkg.ModeSearching:
		return DispatchSearching
	default:
		return DispatchBrowsing
	}
}

func endsSession(action statepkg.Action) bool {
	switch action.(type) {
	case statepkg.ConfirmAction, statepkg.QuitAction, statepkg.AbortAction:
		return true
	}
	return false
}

// DispatchMode selects the key table used by Translate.
type DispatchMode int

const (
	DispatchBrowsing DispatchMode = iota
	DispatchSearching
	DispatchHelp
)

// Translate maps a key event to an action for the given mode. It returns nil
// for keys the mode does not bind.
func Translate(mode DispatchMode, ev *tcell.EventKey) statepkg.Action {
	key, r := normalizeKey(ev)

	switch mode {
	case DispatchHelp:
		switch key {
		case tcell.KeyCtrlC:
			return statepkg.AbortAction{}
		case tcell.KeyEscape, tcell.KeyF1:
			return statepkg.ToggleHelpAction{}
		case tcell.KeyRune:
			if r == 'q' || r == '?' {
				return statepkg.ToggleHelpAction{}
			}
		}
		return nil

	case DispatchSearching:
		if key == tcell.KeyRune {
			return statepkg.PromptCharAction{Char: r}
		}
		return searchingKeys[key]

	default:
		if key == tcell.KeyRune {
			return browsingRunes[r]
		}
		return browsingKeys[key]
	}
}

func normalizeKey(ev *tcell.EventKey) (tcell.Key, rune) {
	key := ev.Key()
	if key != tcell.KeyRune {
		return key, 0
	}
	r := ev.Rune()
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if k, ok := ctrlRunes[unicode.ToLower(r)]; ok {
			return k, 0
		}
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		// Normalize shifted alphabetic runes to reflect user intent (Shift+A => 'A')
		r = unicode.ToUpper(r)
	}
	return key, r
}
