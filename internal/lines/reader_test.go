package lines

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input string, opts Options) *Store {
	t.Helper()
	r := NewReader(opts)
	require.NoError(t, r.ReadFrom("test", strings.NewReader(input)))
	return r.Store()
}

func texts(store *Store) []string {
	out := make([]string, 0, store.Len())
	for _, l := range store.Lines {
		out = append(out, l.Text)
	}
	return out
}

func TestReaderSplitsAllTerminators(t *testing.T) {
	store := readAll(t, "one\ntwo\r\nthree\rfour\u2029five", Options{})

	require.Equal(t, []string{"one", "two", "three", "four", "five"}, texts(store))
	require.Equal(t, "two\r\n", string(store.Lines[1].Raw))
	require.Equal(t, "three\r", string(store.Lines[2].Raw))
	require.Equal(t, "four\u2029", string(store.Lines[3].Raw))
	require.Equal(t, "five", string(store.Lines[4].Raw))
}

func TestReaderSkipsBlankLinesUnlessKept(t *testing.T) {
	input := "a\n\n  \t\n\v\nb\n"

	store := readAll(t, input, Options{})
	require.Equal(t, []string{"a", "b"}, texts(store))
	require.Equal(t, 3, store.Sources[0].Skipped)

	store = readAll(t, input, Options{KeepBlank: true})
	require.Len(t, store.Lines, 5)
	require.True(t, store.Lines[1].Blank)
	require.True(t, store.Lines[3].Blank)
	require.False(t, store.Lines[4].Blank)
}

func TestReaderMeasuresAndNormalizes(t *testing.T) {
	store := readAll(t, "e\u0301\n你好\nplain\n", Options{Initial: true})
	require.Len(t, store.Lines, 3)

	composed := store.Lines[0]
	require.Equal(t, "\u00e9", composed.Text)
	require.Equal(t, "e\u0301\n", string(composed.Raw))
	require.Equal(t, 1, composed.Length)
	require.Equal(t, 1, composed.Width)
	require.Equal(t, 2, composed.Size)
	require.True(t, composed.Narrow)

	wide := store.Lines[1]
	require.Equal(t, 4, wide.Width)
	require.Equal(t, 2, wide.Length)
	require.False(t, wide.Narrow)

	require.Equal(t, 5, store.Widest)
	for _, l := range store.Lines {
		require.True(t, l.Checked)
	}
}

func TestReaderKeepsInvalidBytes(t *testing.T) {
	store := readAll(t, "bad\xffbyte\n", Options{})
	require.Len(t, store.Lines, 1)
	require.Equal(t, "bad\xffbyte\n", string(store.Lines[0].Raw))
	require.Equal(t, 8, store.Lines[0].Width)
}

func TestReaderKeepsUTF8BOMInRawOnly(t *testing.T) {
	store := readAll(t, "\xEF\xBB\xBFfirst\nsecond\n", Options{})
	require.Equal(t, []string{"first", "second"}, texts(store))
	require.Equal(t, "\xEF\xBB\xBFfirst\n", string(store.Lines[0].Raw))
	require.Equal(t, "second\n", string(store.Lines[1].Raw))
	require.Equal(t, EncodingUTF8BOM, store.Sources[0].Encoding)
}

func TestReaderDecodesUTF16(t *testing.T) {
	input := []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0, 'y', 0, 'o', 0}
	r := NewReader(Options{})
	require.NoError(t, r.ReadFrom("utf16", bytes.NewReader(input)))

	store := r.Store()
	require.Equal(t, []string{"hi", "yo"}, texts(store))
	require.Equal(t, []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0}, store.Lines[0].Raw)
	require.Equal(t, EncodingUTF16LE, store.Sources[0].Encoding)

	store.Lines[0].Checked = true
	store.Lines[1].Checked = true
	var buf bytes.Buffer
	_, err := WriteChecked(&buf, store.Lines)
	require.NoError(t, err)
	require.Equal(t, input, buf.Bytes())
}

func TestReaderBOMMovesPastSkippedBlankLines(t *testing.T) {
	store := readAll(t, "\xEF\xBB\xBF  \nfirst\n", Options{})
	require.Equal(t, []string{"first"}, texts(store))
	require.Equal(t, "\xEF\xBB\xBFfirst\n", string(store.Lines[0].Raw))
	require.Equal(t, 1, store.Sources[0].Skipped)
}

func TestReaderBOMStaysWithItsInput(t *testing.T) {
	r := NewReader(Options{})
	require.NoError(t, r.ReadFrom("a", strings.NewReader("\xEF\xBB\xBF\n")))
	require.NoError(t, r.ReadFrom("b", strings.NewReader("plain\n")))
	require.Equal(t, "plain\n", string(r.Store().Lines[0].Raw))
}

func TestReaderEmptyInput(t *testing.T) {
	store := readAll(t, "", Options{})
	require.Zero(t, store.Len())
	require.Zero(t, store.Widest)
}

func TestLoadInputsReadsFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("a\nb\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("c"), 0o644))

	store, err := LoadInputs(nil, []string{first, second}, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, texts(store))
	require.Len(t, store.Sources, 2)
	require.Equal(t, 2, store.Sources[0].Lines)
}

func TestLoadInputsMissingFile(t *testing.T) {
	_, err := LoadInputs(nil, []string{filepath.Join(t.TempDir(), "missing")}, Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteCheckedEmitsRawBytesInOrder(t *testing.T) {
	store := readAll(t, "e\u0301\r\nkeep\nskip\nlast", Options{})
	store.Lines[0].Checked = true
	store.Lines[1].Checked = true
	store.Lines[3].Checked = true

	var buf bytes.Buffer
	n, err := WriteChecked(&buf, store.Lines)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "e\u0301\r\nkeep\nlast", buf.String())
}

func TestWriteCheckedNothingChecked(t *testing.T) {
	store := readAll(t, "a\nb\n", Options{})
	var buf bytes.Buffer
	n, err := WriteChecked(&buf, store.Lines)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Empty(t, buf.String())
}
