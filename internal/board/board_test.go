package board_test

import (
	"errors"
	"testing"

	"tileboard/internal/board"
	"tileboard/internal/domain"
)

func TestSetTile_RecomputesScore(t *testing.T) {
	s := board.Reset()
	for i, l := range []string{"Q", "U", "I", "Z"} {
		s = board.SetTile(s, i, l)
	}
	if got := s.Score(); got != 22 {
		t.Fatalf("got score %d, want 22", got)
	}
	if got := s.Word(); got != "QUIZ" {
		t.Fatalf("got word %q, want %q", got, "QUIZ")
	}

	s = board.SetTile(s, 0, "")
	if got := s.Score(); got != 12 {
		t.Fatalf("after clearing Q got score %d, want 12", got)
	}
}

func TestSetTile_LeavesOtherTilesAlone(t *testing.T) {
	start, err := board.FromLetters("abcdefghij")
	if err != nil {
		t.Fatalf("FromLetters: %v", err)
	}
	for i := 0; i < domain.BoardSize; i++ {
		next := board.SetTile(start, i, "z")
		before, after := start.Tiles(), next.Tiles()
		for j := range before {
			if j == i {
				if after[j] != "z" {
					t.Fatalf("slot %d = %q, want %q", j, after[j], "z")
				}
				continue
			}
			if after[j] != before[j] {
				t.Fatalf("setting slot %d changed slot %d: %q -> %q", i, j, before[j], after[j])
			}
		}
	}
}

func TestSetTile_DoesNotMutateInput(t *testing.T) {
	s := board.SetTile(board.Reset(), 0, "K")
	_ = board.SetTile(s, 0, "A")
	if s.Tile(0) != "K" || s.Score() != 6 {
		t.Fatalf("original state changed: tile %q score %d", s.Tile(0), s.Score())
	}
}

func TestSetTile_OutOfRangeIsIgnored(t *testing.T) {
	s := board.SetTile(board.Reset(), 2, "x")
	for _, i := range []int{-1, domain.BoardSize, 99} {
		if got := board.SetTile(s, i, "Q"); got != s {
			t.Fatalf("SetTile(%d) changed state", i)
		}
	}
}

func TestSetTile_KeepsFirstCharacter(t *testing.T) {
	s := board.SetTile(board.Reset(), 0, "QU")
	if s.Tile(0) != "Q" || s.Score() != 10 {
		t.Fatalf("got tile %q score %d, want %q 10", s.Tile(0), s.Score(), "Q")
	}
}

func TestReset_AlwaysEmpty(t *testing.T) {
	s, err := board.FromLetters("jukebox")
	if err != nil {
		t.Fatalf("FromLetters: %v", err)
	}
	if s.Score() == 0 {
		t.Fatal("expected a non-zero score before reset")
	}
	r := board.Reset()
	if r.Score() != 0 || r.Filled() != 0 || r.Tiles() != (domain.Board{}) {
		t.Fatalf("reset state not empty: %+v score %d", r.Tiles(), r.Score())
	}
}

func TestFromLetters_TooMany(t *testing.T) {
	_, err := board.FromLetters("abcdefghijk")
	if !errors.Is(err, board.ErrTooManyLetters) {
		t.Fatalf("got %v, want ErrTooManyLetters", err)
	}
}

func TestWord_SkipsEmptySlots(t *testing.T) {
	s := board.Reset()
	s = board.SetTile(s, 0, "C")
	s = board.SetTile(s, 4, "A")
	s = board.SetTile(s, 9, "T")
	if got := s.Word(); got != "CAT" {
		t.Fatalf("got %q, want %q", got, "CAT")
	}
}
