package focus_test

import (
	"testing"

	"tileboard/internal/domain"
	"tileboard/internal/focus"
)

func TestFirstEmpty(t *testing.T) {
	cases := []struct {
		b      domain.Board
		want   int
		wantOK bool
	}{
		{domain.Board{}, 0, true},
		{domain.Board{"A", "B"}, 2, true},
		{domain.Board{"A", "", "C"}, 1, true},
		{domain.Board{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}, 0, false},
	}
	for _, c := range cases {
		got, ok := focus.FirstEmpty(c.b)
		if ok != c.wantOK || (ok && got != c.want) {
			t.Fatalf("FirstEmpty(%v) = %d,%v want %d,%v", c.b, got, ok, c.want, c.wantOK)
		}
	}
}

func TestObserver_FollowsFirstEmpty(t *testing.T) {
	var b domain.Board
	o := focus.NewObserver(b)
	if o.Focused() != 0 {
		t.Fatalf("got %d, want 0", o.Focused())
	}

	b[0] = "S"
	if !o.Observe(b) || o.Focused() != 1 {
		t.Fatalf("after first letter focus = %d, want 1", o.Focused())
	}

	// A letter typed further along does not skip the hole at 1.
	o.Move(3)
	b[4] = "T"
	o.Observe(b)
	if o.Focused() != 1 {
		t.Fatalf("got %d, want 1", o.Focused())
	}
}

func TestObserver_FullBoardKeepsFocus(t *testing.T) {
	b := domain.Board{"A", "B", "C", "D", "E", "F", "G", "H", "I", ""}
	o := focus.NewObserver(b)
	if o.Focused() != 9 {
		t.Fatalf("got %d, want 9", o.Focused())
	}
	b[9] = "J"
	if o.Observe(b) {
		t.Fatal("focus moved on a full board")
	}
	if o.Focused() != 9 {
		t.Fatalf("got %d, want 9", o.Focused())
	}
}

func TestObserver_UnchangedBoardIgnored(t *testing.T) {
	b := domain.Board{"A"}
	o := focus.NewObserver(b)
	o.Move(-2)
	if o.Observe(b) {
		t.Fatal("focus moved without a board change")
	}
	if o.Focused() != 9 {
		t.Fatalf("got %d, want 9 after wrapping left", o.Focused())
	}
}
