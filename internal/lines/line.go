package lines

// Line is one ingested record. Everything except Checked is fixed at load
// time; layout code reads the cached measurements instead of the text.
type Line struct {
	// Text is the NFC-normalized display string without its terminator.
	Text string
	// Raw holds the bytes exactly as read, terminator included.
	Raw []byte

	Size   int // bytes in Text
	Length int // codepoints in Text
	Width  int // display cells of Text
	Narrow bool

	Blank   bool
	Checked bool
}

// Store is the ordered collection produced by ingestion.
type Store struct {
	Lines   []Line
	Widest  int
	Sources []SourceInfo
}

// SourceInfo summarizes one ingested input.
type SourceInfo struct {
	Name     string
	Encoding Encoding
	Lines    int
	Skipped  int
	Binary   bool
}

// Len returns the number of stored lines.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Lines)
}

func (s *Store) add(line Line) {
	if line.Width > s.Widest {
		s.Widest = line.Width
	}
	s.Lines = append(s.Lines, line)
}
