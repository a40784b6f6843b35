package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	// CheckedFg and CheckedBg color checked lines when color is on.
	CheckedFg tcell.Color
	CheckedBg tcell.Color
	HeaderBg  tcell.Color
	HeaderFg  tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		CheckedFg:  tcell.ColorDefault,
		CheckedBg:  tcell.ColorDefault,
		HeaderBg:   tcell.Color33,
		HeaderFg:   tcell.ColorWhite,
	}
}

// WithCheckedColors returns a copy of the theme using the named colors for
// checked lines.
func (t ColorTheme) WithCheckedColors(fg, bg string) ColorTheme {
	t.CheckedFg = ParseColor(fg)
	t.CheckedBg = ParseColor(bg)
	return t
}

var basicColors = map[string]tcell.Color{
	"black":   tcell.ColorBlack,
	"red":     tcell.ColorMaroon,
	"green":   tcell.ColorGreen,
	"yellow":  tcell.ColorOlive,
	"blue":    tcell.ColorNavy,
	"magenta": tcell.ColorPurple,
	"cyan":    tcell.ColorTeal,
	"white":   tcell.ColorSilver,
}

// ParseColor maps one of the eight curses color names to the matching ANSI
// palette entry. Unknown or empty names leave the terminal default.
func ParseColor(name string) tcell.Color {
	if c, ok := basicColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return tcell.ColorDefault
}

// checkedStyle adds the checked-line attributes to base.
func (r *Renderer) checkedStyle(base tcell.Style, color, underline bool) tcell.Style {
	if color {
		base = base.Foreground(r.theme.CheckedFg).Background(r.theme.CheckedBg)
	}
	if underline {
		base = base.Underline(true)
	}
	return base
}
