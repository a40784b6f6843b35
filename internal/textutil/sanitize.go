package textutil

import (
	"strings"
	"unicode"
)

// VisibleText rewrites s into runes that are safe to hand to the terminal
// while keeping the cell count equal to StringWidth(s):
//   - tab and vertical tab become control pictures;
//   - other control runes become caret notation (two cells);
//   - invalid bytes become a space;
//   - zero-width format runes (bidi overrides, joiners) are dropped so they
//     cannot reorder what the terminal shows.
//
// Text after the first separator is dropped, matching StringWidth.
func VisibleText(s string) string {
	if !needsRewrite(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := decodeRune(s[i:])
		i += size
		if IsSeparator(r) {
			break
		}
		r = VisibleRune(r)
		switch {
		case unicode.IsControl(r):
			b.WriteString(caretNotation(r))
		case isFormatRune(r):
			for n := RuneWidth(r); n > 0; n-- {
				b.WriteRune('·')
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsRewrite(s string) bool {
	for i := 0; i < len(s); {
		r, size := decodeRune(s[i:])
		if size == 1 && r == ' ' && s[i] != ' ' {
			return true
		}
		i += size
		if IsSeparator(r) || r == '\t' || r == '\v' {
			return true
		}
		if unicode.IsControl(r) || isFormatRune(r) {
			return true
		}
	}
	return false
}

func isFormatRune(r rune) bool {
	return unicode.Is(unicode.Cf, r) || unicode.Is(unicode.Zl, r)
}

// caretNotation renders a control rune in two cells the way curses does:
// ^@..^_ for C0, ^? for DEL and ~@..~_ for C1.
func caretNotation(r rune) string {
	switch {
	case r < 0x20:
		return string([]rune{'^', r + '@'})
	case r == 0x7f:
		return "^?"
	case r >= 0x80 && r < 0xa0:
		return string([]rune{'~', r - 0x80 + '@'})
	default:
		return "??"
	}
}
