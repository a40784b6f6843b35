package state

import (
	"github.com/kk-code-lab/chooser/internal/textutil"
)

// regrid recomputes the layout from the current size and options, then
// reclamps the viewport against it.
func (s *AppState) regrid() {
	pw := PrefixWidth(s.Options, len(s.Lines))
	s.Grid = ComputeGrid(len(s.Lines), s.Widest, s.ScreenWidth, s.ScreenHeight, s.Options.OneColumn, pw)
	s.clampViewport()
}

func (s *AppState) clampViewport() {
	s.correctTopY()
	s.correctTopX()
}

// correctTopY keeps Current inside the line range and its row inside
// [TopY, TopY+VisibleRows).
func (s *AppState) correctTopY() {
	n := len(s.Lines)
	if n == 0 {
		s.Current, s.TopY = 0, 0
		return
	}
	s.Current = clamp(s.Current, 0, n-1)

	y := s.Grid.Row(s.Current)
	visible := s.Grid.VisibleRows
	if visible <= 0 {
		s.TopY = y
		return
	}
	s.TopY = clamp(s.TopY, 0, max(s.Grid.Rows-visible, 0))
	s.TopY = clamp(s.TopY, max(y-visible+1, 0), y)
}

// maxTopX is the largest horizontal offset that still shows the end of the
// current line.
func (s *AppState) maxTopX() int {
	line := s.CurrentLine()
	if line == nil {
		return 0
	}
	return max(line.Width-s.ScreenWidth+s.Grid.PrefixWidth, 0)
}

func (s *AppState) correctTopX() {
	s.TopX = clamp(s.TopX, 0, s.maxTopX())
}

func (s *AppState) moveElement(delta int) {
	s.Current += delta
	s.correctTopY()
}

// moveHorizontal stays within the current row. The last row may be short.
func (s *AppState) moveHorizontal(delta int) {
	if len(s.Lines) == 0 {
		return
	}
	cols := s.Grid.Columns
	y := s.Current / cols
	x := s.Current%cols + delta

	maxX := cols - 1
	if y == s.Grid.Rows-1 {
		maxX = s.Grid.LastRowMaxColumn()
	}
	x = clamp(x, 0, maxX)
	s.Current = cols*y + x
	s.correctTopY()
}

// moveVertical keeps the column. A column past the end of the short last row
// stops one row above it.
func (s *AppState) moveVertical(delta int) {
	if len(s.Lines) == 0 {
		return
	}
	cols := s.Grid.Columns
	y := s.Current/cols + delta
	x := s.Current % cols

	maxY := s.Grid.Rows - 1
	if x > s.Grid.LastRowMaxColumn() {
		maxY = s.Grid.Rows - 2
	}
	y = clamp(y, 0, max(maxY, 0))
	s.Current = cols*y + x
	s.correctTopY()
}

func (s *AppState) movePage(delta int) {
	visible := s.Grid.VisibleRows
	s.TopY += delta * visible
	s.Current += delta * visible * s.Grid.Columns
	s.correctTopY()
}

func (s *AppState) moveHome() {
	s.Current = 0
	s.TopY = 0
	s.correctTopY()
}

func (s *AppState) moveEnd() {
	s.Current = len(s.Lines) - 1
	s.TopY = max(s.Grid.Rows-s.Grid.VisibleRows, 0)
	s.correctTopY()
}

// centerView puts the current row in the middle of the visible rows.
func (s *AppState) centerView() {
	s.TopY = s.Grid.Row(s.Current) - s.Grid.VisibleRows/2
	s.correctTopY()
}

// scrollLeft moves the horizontal offset back by the width of the cells it
// uncovers, so a wide rune is never split.
func (s *AppState) scrollLeft(offset int) {
	line := s.CurrentLine()
	if line == nil {
		return
	}
	offset = min(offset, s.TopX)
	if offset <= 0 {
		s.correctTopX()
		return
	}

	step := offset
	if !line.Narrow {
		dropped := textutil.SubstringByWidth(line.Text, s.TopX-offset, s.TopX)
		step = textutil.StringWidth(dropped)
		if step == 0 {
			step = textutil.RuneWidthAt(line.Text, s.TopX-1)
		}
	}
	s.TopX -= step
	s.correctTopX()
}

func (s *AppState) scrollRight(offset int) {
	line := s.CurrentLine()
	if line == nil {
		return
	}
	offset = min(offset, s.maxTopX()-s.TopX)
	if offset <= 0 {
		s.correctTopX()
		return
	}

	step := offset
	if !line.Narrow {
		dropped := textutil.SubstringByWidth(line.Text, s.TopX, s.TopX+offset)
		step = textutil.StringWidth(dropped)
		if step == 0 {
			step = textutil.RuneWidthAt(line.Text, s.TopX)
		}
	}
	s.TopX += step
	s.correctTopX()
}

func (s *AppState) scrollLineStart() {
	s.TopX = 0
	s.correctTopX()
}

func (s *AppState) scrollLineEnd() {
	if line := s.CurrentLine(); line != nil {
		s.TopX = line.Width - s.ScreenWidth + s.Grid.PrefixWidth
	}
	s.correctTopX()
}

func (s *AppState) resize(width, height int) {
	s.ScreenWidth = max(width, 0)
	s.ScreenHeight = max(height, 0)
	s.regrid()
}
