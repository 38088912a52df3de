package scoring

import (
	"unicode"
	"unicode/utf8"

	"tileboard/internal/domain"
)

// letterValues is indexed by letter - 'A'.
var letterValues = [26]int{
	'A' - 'A': 1, 'E' - 'A': 1, 'I' - 'A': 1, 'O' - 'A': 1, 'U' - 'A': 1,
	'L' - 'A': 1, 'N' - 'A': 1, 'S' - 'A': 1, 'T' - 'A': 1, 'R' - 'A': 1,
	'D' - 'A': 2, 'G' - 'A': 2,
	'B' - 'A': 3, 'C' - 'A': 3, 'M' - 'A': 3, 'P' - 'A': 3,
	'F' - 'A': 4, 'H' - 'A': 4, 'V' - 'A': 4, 'W' - 'A': 4, 'Y' - 'A': 4,
	'K' - 'A': 6,
	'J' - 'A': 8, 'X' - 'A': 8,
	'Q' - 'A': 10, 'Z' - 'A': 10,
}

// PointValue returns the value of a single letter, ignoring case.
// Empty input, multi-character input and non-letters score 0.
func PointValue(letter string) int {
	r, size := utf8.DecodeRuneInString(letter)
	if size == 0 || size != len(letter) || r == utf8.RuneError {
		return 0
	}
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return 0
	}
	return letterValues[r-'A']
}

// TotalScore sums PointValue over every slot of b. Empty slots count 0.
func TotalScore(b domain.Board) int {
	total := 0
	for _, t := range b {
		total += PointValue(t)
	}
	return total
}
