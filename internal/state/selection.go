package state

// Toggle flips line i. In radiobox mode checking a line unchecks every other.
func (s *AppState) Toggle(i int) {
	if i < 0 || i >= len(s.Lines) {
		return
	}
	checked := s.Lines[i].Checked
	if !checked && s.Options.Radiobox {
		s.UncheckAll()
	}
	s.Lines[i].Checked = !checked
}

// Set assigns the checked flag of line i.
func (s *AppState) Set(i int, checked bool) {
	if i < 0 || i >= len(s.Lines) {
		return
	}
	if checked && s.Options.Radiobox {
		s.UncheckAll()
	}
	s.Lines[i].Checked = checked
}

// CheckAll checks every line, or only the current one in radiobox mode.
func (s *AppState) CheckAll() {
	if s.Options.Radiobox {
		s.UncheckAll()
		s.Set(s.Current, true)
		return
	}
	for i := range s.Lines {
		s.Lines[i].Checked = true
	}
}

func (s *AppState) UncheckAll() {
	for i := range s.Lines {
		s.Lines[i].Checked = false
	}
}

// ToggleAll inverts every line. It does nothing in radiobox mode.
func (s *AppState) ToggleAll() {
	if s.Options.Radiobox {
		return
	}
	for i := range s.Lines {
		s.Lines[i].Checked = !s.Lines[i].Checked
	}
}

// CheckOnlyCurrent leaves the current line as the single checked line.
func (s *AppState) CheckOnlyCurrent() {
	s.UncheckAll()
	s.Toggle(s.Current)
}

// toggleRadiobox flips radiobox mode. Turning it on keeps the current line if
// it was checked and drops every other check immediately.
func (s *AppState) toggleRadiobox() {
	if !s.Options.Radiobox {
		s.collapseToCurrent()
	}
	s.Options.Radiobox = !s.Options.Radiobox
}

func (s *AppState) collapseToCurrent() {
	keep := false
	if line := s.CurrentLine(); line != nil {
		keep = line.Checked
	}
	s.UncheckAll()
	if keep {
		s.Lines[s.Current].Checked = true
	}
}
