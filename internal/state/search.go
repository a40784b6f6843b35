package state

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/kk-code-lab/chooser/internal/search"
)

// matchAt evaluates the committed pattern against the display text of line i.
func (s *AppState) matchAt(i int) (bool, error) {
	return s.Search.Pattern.MatchString(s.Lines[i].Text)
}

// findMatching scans from the line after (or before) the cursor, wrapping
// once around the whole list. On a hit the cursor moves there and the view
// is centered; otherwise nothing changes.
func (s *AppState) findMatching(dir FindDirection) (bool, error) {
	n := len(s.Lines)
	if s.Search.Pattern == nil || n == 0 || dir == FindNone {
		return false, nil
	}
	step := 1
	if dir == FindBackward {
		step = n - 1
	}
	i := s.Current
	for k := 0; k < n; k++ {
		i = (i + step) % n
		ok, err := s.matchAt(i)
		if err != nil {
			return false, err
		}
		if ok {
			s.Current = i
			s.centerView()
			return true, nil
		}
	}
	return false, nil
}

// applyToMatches runs op over every line matching the committed pattern. It
// is a no-op in radiobox mode. Lines are only changed once every line has
// been matched, so a matcher error leaves the selection untouched.
func (s *AppState) applyToMatches(op MatchOp) (int, error) {
	if s.Options.Radiobox || s.Search.Pattern == nil {
		return 0, nil
	}
	var hits []int
	for i := range s.Lines {
		ok, err := s.matchAt(i)
		if err != nil {
			return 0, err
		}
		if ok {
			hits = append(hits, i)
		}
	}
	for _, i := range hits {
		switch op {
		case MatchToggle:
			s.Toggle(i)
		case MatchCheck:
			s.Set(i, true)
		case MatchUncheck:
			s.Set(i, false)
		}
	}
	return len(hits), nil
}

func (s *AppState) startSearch(ignoreCase bool, then FindDirection) {
	s.Mode = ModeSearching
	s.Search.IgnoreCase = ignoreCase
	s.Search.pendingFind = then
	s.Prompt.Reset()
}

// commitSearch closes the prompt and compiles its text. An empty commit
// clears the pattern; a malformed one leaves the previous pattern in place
// and reports through StatusMessage.
func (s *AppState) commitSearch() (*search.Pattern, error) {
	text := norm.NFC.String(s.Prompt.Text())
	s.Prompt.Commit()
	s.Mode = ModeBrowsing
	pending := s.Search.pendingFind
	s.Search.pendingFind = FindNone

	pattern, err := search.Compile(text, s.Search.IgnoreCase)
	switch {
	case errors.Is(err, search.ErrEmptyPattern):
		s.Search.Pattern = nil
		s.Search.Text = ""
		return nil, nil
	case err != nil:
		s.StatusMessage = err.Error()
		return nil, err
	}

	s.Search.Pattern = pattern
	s.Search.Text = text
	if _, err := s.findMatching(pending); err != nil {
		return pattern, fmt.Errorf("search %q: %w", text, err)
	}
	return pattern, nil
}

func (s *AppState) cancelSearch() {
	s.Prompt.Cancel()
	s.Mode = ModeBrowsing
	s.Search.pendingFind = FindNone
}
