package state

import "testing"

func typeInto(p *PromptEditor, s string) {
	for _, r := range s {
		p.Insert(r)
	}
}

func TestPromptInsertAndMove(t *testing.T) {
	var p PromptEditor
	typeInto(&p, "hllo")
	p.MoveHome()
	p.MoveRight()
	p.Insert('e')
	if p.Text() != "hello" {
		t.Fatalf("expected hello, got %q", p.Text())
	}
	if p.BeforeCursor() != "he" {
		t.Fatalf("expected cursor after 'he', got %q", p.BeforeCursor())
	}
	p.MoveEnd()
	if p.Cursor() != len("hello") {
		t.Fatalf("expected cursor at end, got %d", p.Cursor())
	}
}

func TestPromptIgnoresControlRunes(t *testing.T) {
	var p PromptEditor
	p.Insert('\x1b')
	p.Insert('\t')
	if p.Text() != "" {
		t.Fatalf("expected control runes to be ignored, got %q", p.Text())
	}
}

func TestPromptBackspaceRemovesGraphemeCluster(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"combining mark", "ae\u0301", "a"},
		{"flag", "x\U0001F1EF\U0001F1F5", "x"},
		{"zwj sequence", "y\U0001F469\u200d\U0001F4BB", "y"},
		{"ascii", "ab", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PromptEditor
			typeInto(&p, tt.input)
			p.Backspace()
			if p.Text() != tt.want {
				t.Fatalf("Backspace on %q left %q want %q", tt.input, p.Text(), tt.want)
			}
		})
	}
}

func TestPromptDeleteAndCursorByCluster(t *testing.T) {
	var p PromptEditor
	typeInto(&p, "e\u0301x")
	p.MoveHome()
	p.MoveRight()
	if p.BeforeCursor() != "e\u0301" {
		t.Fatalf("expected cursor to step over the whole cluster, got %q", p.BeforeCursor())
	}
	p.MoveLeft()
	p.Delete()
	if p.Text() != "x" {
		t.Fatalf("expected Delete to remove the cluster, got %q", p.Text())
	}
	p.MoveEnd()
	p.Delete()
	if p.Text() != "x" {
		t.Fatalf("Delete at end should be a no-op, got %q", p.Text())
	}
}

func TestPromptDeleteWordAndClear(t *testing.T) {
	var p PromptEditor
	typeInto(&p, "foo bar  ")
	p.DeleteWord()
	if p.Text() != "foo " {
		t.Fatalf("expected 'foo ', got %q", p.Text())
	}

	typeInto(&p, "baz")
	p.MoveLeft()
	p.ClearToStart()
	if p.Text() != "z" || p.Cursor() != 0 {
		t.Fatalf("expected 'z' with cursor at 0, got %q/%d", p.Text(), p.Cursor())
	}
}

func TestPromptHistory(t *testing.T) {
	var p PromptEditor
	for _, q := range []string{"first", "second"} {
		p.Reset()
		typeInto(&p, q)
		p.Commit()
	}
	p.Reset()
	p.Commit()
	if got := len(p.History()); got != 2 {
		t.Fatalf("empty commit should not enter history, got %d entries", got)
	}

	p.Reset()
	typeInto(&p, "dra")
	p.HistoryPrev()
	if p.Text() != "second" {
		t.Fatalf("expected second, got %q", p.Text())
	}
	p.HistoryPrev()
	p.HistoryPrev()
	if p.Text() != "first" {
		t.Fatalf("expected first, got %q", p.Text())
	}
	p.HistoryNext()
	p.HistoryNext()
	if p.Text() != "dra" {
		t.Fatalf("expected the draft back, got %q", p.Text())
	}
	p.HistoryNext()
	if p.Text() != "dra" {
		t.Fatalf("walking past the draft should be a no-op, got %q", p.Text())
	}
}

func TestPromptHistorySkipsRepeats(t *testing.T) {
	var p PromptEditor
	for i := 0; i < 3; i++ {
		p.Reset()
		typeInto(&p, "same")
		p.Commit()
	}
	if got := len(p.History()); got != 1 {
		t.Fatalf("expected one entry, got %d", got)
	}
}
