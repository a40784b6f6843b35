package textutil

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	tabGlyph         = '\u2409' // ␉
	verticalTabGlyph = '\u240b' // ␋
	paragraphSep     = '\u2029'
)

// widthCondition pins ambiguous-width runes to a single cell so layout does
// not depend on the locale of whoever launched the process.
var widthCondition = newWidthCondition()

func newWidthCondition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return cond
}

// Metrics holds the cached measurements of a line.
type Metrics struct {
	Width  int
	Length int
	// Narrow is true when every rune occupies exactly one cell, which lets
	// callers slice by rune index instead of scanning widths.
	Narrow bool
}

// IsSeparator reports whether r ends the measurable part of a line.
func IsSeparator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0 || r == paragraphSep
}

// VisibleRune maps tab and vertical tab onto their control pictures.
func VisibleRune(r rune) rune {
	switch r {
	case '\t':
		return tabGlyph
	case '\v':
		return verticalTabGlyph
	}
	return r
}

// RuneWidth returns the number of cells r occupies: 2 for wide runes and for
// control runes (drawn in caret notation), 0 for zero-width runes, 1 otherwise.
func RuneWidth(r rune) int {
	r = VisibleRune(r)
	if unicode.IsControl(r) {
		return 2
	}
	switch widthCondition.RuneWidth(r) {
	case 0:
		return 0
	case 2:
		return 2
	default:
		return 1
	}
}

// decodeRune decodes the first rune of s. Invalid bytes decode as a single
// space so they keep a stable one-cell footprint.
func decodeRune(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		if size == 0 {
			size = 1
		}
		return ' ', size
	}
	return r, size
}

// StringWidth sums rune widths up to, not including, the first separator.
func StringWidth(s string) int {
	width := 0
	for i := 0; i < len(s); {
		r, size := decodeRune(s[i:])
		if IsSeparator(r) {
			break
		}
		width += RuneWidth(r)
		i += size
	}
	return width
}

// Measure computes the width, rune count and narrowness of s in one pass.
func Measure(s string) Metrics {
	m := Metrics{Narrow: true}
	stopped := false
	for i := 0; i < len(s); {
		r, size := decodeRune(s[i:])
		i += size
		m.Length++
		if stopped {
			continue
		}
		if IsSeparator(r) {
			stopped = true
			m.Narrow = false
			continue
		}
		w := RuneWidth(r)
		if w != 1 {
			m.Narrow = false
		}
		m.Width += w
	}
	return m
}

// SubstringByWidth returns the longest run of s whose cells all fall inside
// [start, finish). A double-width rune straddling either edge is dropped,
// never split; zero-width runes follow the rune they attach to. The result is
// empty when finish precedes start.
func SubstringByWidth(s string, start, finish int) string {
	if finish <= start || s == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}

	from, to := -1, -1
	cell := 0
	prevIncluded := false
	for i := 0; i < len(s); {
		r, size := decodeRune(s[i:])
		if IsSeparator(r) {
			break
		}
		w := RuneWidth(r)

		var included bool
		if w == 0 {
			if i == 0 {
				included = start == 0
			} else {
				included = prevIncluded
			}
		} else {
			included = cell >= start && cell+w <= finish
		}

		if included {
			if from < 0 {
				from = i
			}
			to = i + size
		} else if from >= 0 {
			break
		}
		if w > 0 && cell >= finish {
			break
		}

		prevIncluded = included
		cell += w
		i += size
	}

	if from < 0 {
		return ""
	}
	return s[from:to]
}

// SubstringByRunes slices s by rune index, clamping both bounds. It is the
// fast path for narrow lines where rune index and cell index coincide.
func SubstringByRunes(s string, start, finish int) string {
	if start < 0 {
		start = 0
	}
	if finish <= start {
		return ""
	}

	from, to := len(s), len(s)
	idx := 0
	for i := 0; i < len(s); {
		if idx == start {
			from = i
		}
		if idx == finish {
			to = i
			break
		}
		_, size := decodeRune(s[i:])
		i += size
		idx++
	}
	if from > to {
		return ""
	}
	return s[from:to]
}

// RuneWidthAt returns the width of the visible rune covering cell, or 0 when
// cell lies past the measurable end of s.
func RuneWidthAt(s string, cell int) int {
	if cell < 0 {
		return 0
	}
	pos := 0
	for i := 0; i < len(s); {
		r, size := decodeRune(s[i:])
		if IsSeparator(r) {
			return 0
		}
		w := RuneWidth(r)
		if w > 0 && cell >= pos && cell < pos+w {
			return w
		}
		pos += w
		i += size
	}
	return 0
}
