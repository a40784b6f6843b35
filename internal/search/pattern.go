package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single match attempt.
const DefaultMatchTimeout = 250 * time.Millisecond

var (
	ErrEmptyPattern   = errors.New("empty pattern")
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Pattern is a compiled search expression. Empty matches never count, so
// patterns such as "x*" only match lines that actually contain an x.
type Pattern struct {
	text       string
	ignoreCase bool
	re         *regexp2.Regexp
}

// Compile builds a Pattern from Perl-style syntax.
func Compile(text string, ignoreCase bool) (*Pattern, error) {
	if text == "" {
		return nil, ErrEmptyPattern
	}
	opts := regexp2.None
	if ignoreCase {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(text, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	re.MatchTimeout = DefaultMatchTimeout
	return &Pattern{text: text, ignoreCase: ignoreCase, re: re}, nil
}

// Text returns the source of the pattern.
func (p *Pattern) Text() string {
	if p == nil {
		return ""
	}
	return p.text
}

func (p *Pattern) IgnoreCase() bool {
	return p != nil && p.ignoreCase
}

// MatchString reports whether s contains a non-empty match. A nil pattern
// matches nothing. A timed-out match returns an error.
func (p *Pattern) MatchString(s string) (bool, error) {
	if p == nil || p.re == nil {
		return false, nil
	}
	m, err := p.re.FindStringMatch(s)
	for m != nil && err == nil {
		if m.Length > 0 {
			return true, nil
		}
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		return false, fmt.Errorf("match %q: %w", p.text, err)
	}
	return false, nil
}
