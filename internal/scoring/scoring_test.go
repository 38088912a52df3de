package scoring_test

import (
	"strings"
	"testing"

	"tileboard/internal/domain"
	"tileboard/internal/scoring"
)

func TestPointValue_Table(t *testing.T) {
	want := map[int]string{
		1:  "AEIOULNSTR",
		2:  "DG",
		3:  "BCMP",
		4:  "FHVWY",
		6:  "K",
		8:  "JX",
		10: "QZ",
	}
	seen := 0
	for value, letters := range want {
		for _, r := range letters {
			upper := string(r)
			lower := strings.ToLower(upper)
			if got := scoring.PointValue(upper); got != value {
				t.Fatalf("PointValue(%q) = %d, want %d", upper, got, value)
			}
			if got := scoring.PointValue(lower); got != value {
				t.Fatalf("PointValue(%q) = %d, want %d", lower, got, value)
			}
			seen++
		}
	}
	if seen != 26 {
		t.Fatalf("table covers %d letters, want 26", seen)
	}
}

func TestPointValue_NonLettersScoreZero(t *testing.T) {
	for _, in := range []string{"", " ", "1", "?", "*", "é", "AB", "qu", "\xff", "😀"} {
		if got := scoring.PointValue(in); got != 0 {
			t.Fatalf("PointValue(%q) = %d, want 0", in, got)
		}
	}
}

func TestTotalScore_Quiz(t *testing.T) {
	b := domain.Board{"Q", "U", "I", "Z"}
	if got := scoring.TotalScore(b); got != 22 {
		t.Fatalf("got %d, want 22", got)
	}
}

func TestTotalScore_MatchesSumOfSlots(t *testing.T) {
	boards := []domain.Board{
		{},
		{"c", "A", "t"},
		{"", "", "x", "", "", "", "", "", "", "j"},
		{"S", "C", "R", "A", "B", "B", "L", "E", "R", "S"},
		{"1", "!", "k", " ", "", "", "", "", "", ""},
	}
	for _, b := range boards {
		sum := 0
		for _, tile := range b {
			sum += scoring.PointValue(tile)
		}
		if got := scoring.TotalScore(b); got != sum {
			t.Fatalf("TotalScore(%v) = %d, want %d", b, got, sum)
		}
	}
}
