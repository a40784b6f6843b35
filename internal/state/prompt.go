package state

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

const promptHistoryLimit = 100

// PromptEditor is the single-line editor behind the search prompt. The cursor
// is a byte offset into the text and always sits on a grapheme boundary.
type PromptEditor struct {
	text   string
	cursor int

	history []string
	// histPos indexes history while browsing it; len(history) means the
	// draft being edited.
	histPos int
	draft   string
}

func (p *PromptEditor) Text() string {
	return p.text
}

// Cursor returns the byte offset of the edit point.
func (p *PromptEditor) Cursor() int {
	return p.cursor
}

// BeforeCursor returns the text left of the edit point.
func (p *PromptEditor) BeforeCursor() string {
	return p.text[:p.cursor]
}

// History returns the committed queries, oldest first.
func (p *PromptEditor) History() []string {
	return p.history
}

// Reset starts a fresh, empty edit.
func (p *PromptEditor) Reset() {
	p.text = ""
	p.cursor = 0
	p.draft = ""
	p.histPos = len(p.history)
}

func (p *PromptEditor) SetText(text string) {
	p.text = text
	p.cursor = len(text)
}

func (p *PromptEditor) Insert(r rune) {
	if r == utf8.RuneError || unicode.IsControl(r) {
		return
	}
	s := string(r)
	p.text = p.text[:p.cursor] + s + p.text[p.cursor:]
	p.cursor += len(s)
	p.snapToBoundary()
}

// Backspace removes the grapheme cluster before the cursor.
func (p *PromptEditor) Backspace() {
	if p.cursor == 0 {
		return
	}
	start := prevBoundary(p.text, p.cursor)
	p.text = p.text[:start] + p.text[p.cursor:]
	p.cursor = start
}

// Delete removes the grapheme cluster under the cursor.
func (p *PromptEditor) Delete() {
	if p.cursor >= len(p.text) {
		return
	}
	end := nextBoundary(p.text, p.cursor)
	p.text = p.text[:p.cursor] + p.text[end:]
}

// DeleteWord removes the word before the cursor along with the spaces
// that follow it.
func (p *PromptEditor) DeleteWord() {
	start := p.cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(p.text[:start])
		if !unicode.IsSpace(r) {
			break
		}
		start -= size
	}
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(p.text[:start])
		if unicode.IsSpace(r) {
			break
		}
		start -= size
	}
	p.text = p.text[:start] + p.text[p.cursor:]
	p.cursor = start
	p.snapToBoundary()
}

// ClearToStart removes everything before the cursor.
func (p *PromptEditor) ClearToStart() {
	p.text = p.text[p.cursor:]
	p.cursor = 0
}

func (p *PromptEditor) MoveLeft() {
	if p.cursor > 0 {
		p.cursor = prevBoundary(p.text, p.cursor)
	}
}

func (p *PromptEditor) MoveRight() {
	if p.cursor < len(p.text) {
		p.cursor = nextBoundary(p.text, p.cursor)
	}
}

func (p *PromptEditor) MoveHome() {
	p.cursor = 0
}

func (p *PromptEditor) MoveEnd() {
	p.cursor = len(p.text)
}

// HistoryPrev replaces the text with the previous committed query.
func (p *PromptEditor) HistoryPrev() {
	if p.histPos == 0 || len(p.history) == 0 {
		return
	}
	if p.histPos == len(p.history) {
		p.draft = p.text
	}
	p.histPos--
	p.SetText(p.history[p.histPos])
}

// HistoryNext walks forward, ending at the draft that was being typed.
func (p *PromptEditor) HistoryNext() {
	if p.histPos >= len(p.history) {
		return
	}
	p.histPos++
	if p.histPos == len(p.history) {
		p.SetText(p.draft)
		return
	}
	p.SetText(p.history[p.histPos])
}

// Commit records a non-empty text in the history.
func (p *PromptEditor) Commit() {
	if p.text != "" {
		if n := len(p.history); n == 0 || p.history[n-1] != p.text {
			p.history = append(p.history, p.text)
		}
		if over := len(p.history) - promptHistoryLimit; over > 0 {
			p.history = append(p.history[:0], p.history[over:]...)
		}
	}
	p.histPos = len(p.history)
	p.draft = ""
}

// Cancel abandons the edit; history is untouched.
func (p *PromptEditor) Cancel() {
	p.text = ""
	p.cursor = 0
	p.histPos = len(p.history)
	p.draft = ""
}

// snapToBoundary moves the cursor to the end of the cluster it landed in, so
// a combining mark typed after a base letter stays attached to it.
func (p *PromptEditor) snapToBoundary() {
	if p.cursor <= 0 || p.cursor >= len(p.text) {
		return
	}
	pos := 0
	state := -1
	rest := p.text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end := pos + len(cluster)
		if p.cursor > pos && p.cursor < end {
			p.cursor = end
			return
		}
		if end >= p.cursor {
			return
		}
		pos = end
	}
}

func prevBoundary(s string, cursor int) int {
	pos, last := 0, 0
	state := -1
	rest := s
	for len(rest) > 0 && pos < cursor {
		var cluster string
		last = pos
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
	}
	return last
}

func nextBoundary(s string, cursor int) int {
	pos := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		if pos > cursor {
			return pos
		}
	}
	return len(s)
}
