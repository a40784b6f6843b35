package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/kk-code-lab/chooser/internal/textutil"
)

const readBufferSize = 64 * 1024

// Options controls how records are turned into lines.
type Options struct {
	// KeepBlank keeps lines made only of whitespace.
	KeepBlank bool
	// Initial marks every ingested line as checked.
	Initial bool
}

// Reader accumulates lines from one or more inputs into a Store.
type Reader struct {
	opts  Options
	store Store
	// lead holds the byte order mark until the first kept line of an input
	// takes it into its Raw bytes.
	lead []byte
}

func NewReader(opts Options) *Reader {
	return &Reader{opts: opts}
}

// Store returns the lines read so far.
func (r *Reader) Store() *Store {
	return &r.store
}

// ReadFrom ingests every line of src. The name is only used for diagnostics.
func (r *Reader) ReadFrom(name string, src io.Reader) error {
	br := bufio.NewReaderSize(src, readBufferSize)
	sample, err := br.Peek(textDetectionSampleSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return fmt.Errorf("read %s: %w", name, err)
	}

	info := SourceInfo{Name: name, Encoding: detectEncoding(sample)}
	info.Binary = looksBinary(sample, info.Encoding)
	if n := info.Encoding.bomLen(); n > 0 {
		r.lead = make([]byte, n)
		if _, err := io.ReadFull(br, r.lead); err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
	}
	defer func() { r.lead = nil }()

	before := r.store.Len()
	if info.Encoding.isUTF16() {
		err = r.readUTF16(br, info.Encoding, &info)
	} else {
		err = r.readUTF8(br, &info)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	info.Lines = r.store.Len() - before
	r.store.Sources = append(r.store.Sources, info)
	return nil
}

func (r *Reader) readUTF8(br *bufio.Reader, info *SourceInfo) error {
	for {
		chunk, err := br.ReadBytes('\n')
		for _, raw := range splitUTF8Records(chunk) {
			r.addRecord(raw, string(trimUTF8Terminator(raw)), info)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (r *Reader) readUTF16(br *bufio.Reader, enc Encoding, info *SourceInfo) error {
	data, err := io.ReadAll(br)
	if err != nil {
		return err
	}
	for _, rec := range splitUTF16Records(data, enc) {
		r.addRecord(rec.raw, decodeUTF16(rec.raw[:rec.body], enc), info)
	}
	return nil
}

func (r *Reader) addRecord(raw []byte, text string, info *SourceInfo) {
	line := newLine(raw, text, r.opts.Initial)
	if line.Blank && !r.opts.KeepBlank {
		info.Skipped++
		return
	}
	if r.lead != nil {
		line.Raw = append(append(make([]byte, 0, len(r.lead)+len(raw)), r.lead...), raw...)
		r.lead = nil
	}
	r.store.add(line)
}

func newLine(raw []byte, text string, checked bool) Line {
	text = norm.NFC.String(text)
	m := textutil.Measure(text)
	return Line{
		Text:    text,
		Raw:     raw,
		Size:    len(text),
		Length:  m.Length,
		Width:   m.Width,
		Narrow:  m.Narrow,
		Blank:   isBlank(text),
		Checked: checked,
	}
}

func isBlank(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError || !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// splitUTF8Records cuts a chunk ending in '\n' (or at EOF) into records,
// each keeping its own terminator: "\n", "\r\n", "\r" or U+2029.
func splitUTF8Records(chunk []byte) [][]byte {
	if len(chunk) == 0 {
		return nil
	}
	var out [][]byte
	start := 0
	for i := 0; i < len(chunk); {
		switch {
		case chunk[i] == '\n':
			i++
		case chunk[i] == '\r':
			i++
			if i < len(chunk) && chunk[i] == '\n' {
				i++
			}
		case isParagraphSeparator(chunk[i:]):
			i += 3
		default:
			i++
			continue
		}
		out = append(out, chunk[start:i:i])
		start = i
	}
	if start < len(chunk) {
		out = append(out, chunk[start:])
	}
	return out
}

func isParagraphSeparator(b []byte) bool {
	return len(b) >= 3 && b[0] == 0xE2 && b[1] == 0x80 && b[2] == 0xA9
}

func trimUTF8Terminator(raw []byte) []byte {
	n := len(raw)
	switch {
	case n >= 2 && raw[n-2] == '\r' && raw[n-1] == '\n':
		return raw[:n-2]
	case n >= 1 && (raw[n-1] == '\n' || raw[n-1] == '\r'):
		return raw[:n-1]
	case n >= 3 && isParagraphSeparator(raw[n-3:]):
		return raw[:n-3]
	}
	return raw
}

type utf16Record struct {
	raw  []byte
	body int // bytes before the terminator
}

func splitUTF16Records(data []byte, enc Encoding) []utf16Record {
	var out []utf16Record
	start := 0
	i := 0
	for i+1 < len(data) {
		unit := utf16Unit(data, i, enc)
		body := i
		switch unit {
		case '\n', 0x2029:
			i += 2
		case '\r':
			i += 2
			if i+1 < len(data) && utf16Unit(data, i, enc) == '\n' {
				i += 2
			}
		default:
			i += 2
			continue
		}
		out = append(out, utf16Record{raw: data[start:i:i], body: body - start})
		start = i
	}
	if start < len(data) {
		out = append(out, utf16Record{raw: data[start:], body: len(data) - start})
	}
	return out
}

// LoadInputs reads stdin when it is not a terminal, then every path in order.
// A path of "-" reads stdin explicitly.
func LoadInputs(stdin *os.File, paths []string, opts Options) (*Store, error) {
	r := NewReader(opts)
	stdinUsed := false
	readStdin := func() error {
		if stdinUsed || stdin == nil {
			return nil
		}
		stdinUsed = true
		return r.ReadFrom("<stdin>", stdin)
	}

	if stdin != nil && !term.IsTerminal(int(stdin.Fd())) {
		if err := readStdin(); err != nil {
			return nil, err
		}
	}

	for _, path := range paths {
		if path == "-" {
			if err := readStdin(); err != nil {
				return nil, err
			}
			continue
		}
		if err := readFile(r, path); err != nil {
			return nil, err
		}
	}
	return r.Store(), nil
}

func readFile(r *Reader, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return r.ReadFrom(path, f)
}
