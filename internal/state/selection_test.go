package state

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestRadioboxToggleMovesTheCheck(t *testing.T) {
	s := newTestState(t, []string{"a", "b", "c", "d", "e"}, Options{OneColumn: true, Radiobox: true}, 80, 10)

	s.Set(2, true)
	s.Toggle(4)

	if got := checkedIndices(s); !reflect.DeepEqual(got, []int{4}) {
		t.Fatalf("expected only index 4 checked, got %v", got)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	s := newTestState(t, []string{"a", "b", "c", "d"}, Options{}, 80, 10)
	s.Lines[1].Checked = true
	s.Lines[3].Checked = true
	before := checkedIndices(s)

	for i := range s.Lines {
		s.Toggle(i)
		s.Toggle(i)
		if got := checkedIndices(s); !reflect.DeepEqual(got, before) {
			t.Fatalf("toggle(%d) twice changed selection: %v -> %v", i, before, got)
		}
	}
}

func TestBulkOperations(t *testing.T) {
	s := newTestState(t, []string{"a", "b", "c"}, Options{}, 80, 10)
	reducer := NewStateReducer(nil)

	mustReduce(t, reducer, s, CheckAllAction{})
	if s.CheckedCount() != 3 {
		t.Fatalf("check all: %v", checkedIndices(s))
	}
	mustReduce(t, reducer, s, UncheckAllAction{}, ToggleCurrentAction{}, ToggleAllAction{})
	if got := checkedIndices(s); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("toggle all: %v", got)
	}

	s.Current = 2
	mustReduce(t, reducer, s, CheckOnlyCurrentAction{})
	if got := checkedIndices(s); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("check only current: %v", got)
	}
}

func TestRadioboxBulkOperations(t *testing.T) {
	s := newTestState(t, []string{"a", "b", "c"}, Options{Radiobox: true}, 80, 10)
	reducer := NewStateReducer(nil)
	s.Current = 1

	mustReduce(t, reducer, s, CheckAllAction{})
	if got := checkedIndices(s); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("check all under radiobox: %v", got)
	}

	mustReduce(t, reducer, s, ToggleAllAction{})
	if got := checkedIndices(s); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("toggle all should be a no-op under radiobox: %v", got)
	}
}

func TestEnablingRadioboxCollapsesSelection(t *testing.T) {
	tests := []struct {
		name    string
		current int
		want    []int
	}{
		{"current checked survives", 2, []int{2}},
		{"current unchecked clears all", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, []string{"a", "b", "c", "d"}, Options{}, 80, 10)
			for _, i := range []int{1, 2, 3} {
				s.Lines[i].Checked = true
			}
			s.Current = tt.current

			mustReduce(t, NewStateReducer(nil), s, ToggleOptionAction{Option: OptionRadiobox})
			if !s.Options.Radiobox {
				t.Fatalf("expected radiobox on")
			}
			if got := checkedIndices(s); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestInitialWithRadioboxKeepsOneLine(t *testing.T) {
	s := newTestState(t, []string{"a", "b", "c"}, Options{Radiobox: true, Initial: true}, 80, 10)
	if got := checkedIndices(s); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected only the first line checked, got %v", got)
	}
}

func TestRadioboxInvariantUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := newTestState(t, []string{"ab", "abc", "x", "ab", "y", "zab"}, Options{Radiobox: true}, 40, 10)
	reducer := NewStateReducer(nil)
	commitSearch(t, reducer, s, "ab", false)

	actions := []Action{
		ToggleCurrentAction{}, CheckOnlyCurrentAction{}, ToggleAllAction{}, CheckAllAction{},
		UncheckAllAction{}, ApplyToMatchesAction{Op: MatchCheck}, ApplyToMatchesAction{Op: MatchToggle},
		MoveElementAction{Delta: 1}, MoveElementAction{Delta: -2}, FindNextAction{},
	}
	for step := 0; step < 500; step++ {
		mustReduce(t, reducer, s, actions[rng.Intn(len(actions))])
		if n := s.CheckedCount(); n > 1 {
			t.Fatalf("step %d: %d lines checked under radiobox", step, n)
		}
	}
}
