package state

import (
	"strings"
	"testing"

	"github.com/kk-code-lab/chooser/internal/lines"
)

func newTestState(t *testing.T, texts []string, opts Options, width, height int) *AppState {
	t.Helper()
	r := lines.NewReader(lines.Options{KeepBlank: true, Initial: opts.Initial})
	if err := r.ReadFrom("test", strings.NewReader(strings.Join(texts, "\n"))); err != nil {
		t.Fatalf("read lines: %v", err)
	}
	return NewAppState(r.Store(), opts, width, height)
}

func repeatLines(n int, text string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = text
	}
	return out
}

func checkedIndices(s *AppState) []int {
	var out []int
	for i := range s.Lines {
		if s.Lines[i].Checked {
			out = append(out, i)
		}
	}
	return out
}

func mustReduce(t *testing.T, r *StateReducer, s *AppState, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		if _, err := r.Reduce(s, a); err != nil {
			t.Fatalf("Reduce(%T): %v", a, err)
		}
	}
}

func typeQuery(query string) []Action {
	out := make([]Action, 0, len(query))
	for _, r := range query {
		out = append(out, PromptCharAction{Char: r})
	}
	return out
}

func commitSearch(t *testing.T, r *StateReducer, s *AppState, query string, ignoreCase bool) {
	t.Helper()
	mustReduce(t, r, s, SearchStartAction{IgnoreCase: ignoreCase})
	mustReduce(t, r, s, typeQuery(query)...)
	mustReduce(t, r, s, PromptCommitAction{})
}

func assertViewportInvariants(t *testing.T, s *AppState, context string) {
	t.Helper()
	n := len(s.Lines)
	if n == 0 {
		if s.Current != 0 || s.TopY != 0 {
			t.Fatalf("%s: empty session has current=%d top=%d", context, s.Current, s.TopY)
		}
		return
	}
	if s.Current < 0 || s.Current >= n {
		t.Fatalf("%s: current %d outside [0,%d)", context, s.Current, n)
	}
	row := s.Grid.Row(s.Current)
	if visible := s.Grid.VisibleRows; visible > 0 {
		if row < s.TopY || row >= s.TopY+visible {
			t.Fatalf("%s: row %d outside [%d,%d)", context, row, s.TopY, s.TopY+visible)
		}
		if s.TopY > max(s.Grid.Rows-visible, 0) {
			t.Fatalf("%s: top %d past last page (rows=%d visible=%d)", context, s.TopY, s.Grid.Rows, visible)
		}
	}
	if s.TopX < 0 || s.TopX > s.maxTopX() {
		t.Fatalf("%s: top_x %d outside [0,%d]", context, s.TopX, s.maxTopX())
	}
}
