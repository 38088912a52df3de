package board

import (
	"errors"
	"strings"
	"unicode/utf8"

	"tileboard/internal/domain"
	"tileboard/internal/scoring"
)

var ErrTooManyLetters = errors.New("too many letters for board")

// State is the board plus its score.
type State struct {
	tiles domain.Board
	score int
}

// Reset returns an empty board with score 0.
func Reset() State {
	return State{}
}

// SetTile replaces slot index with letter and recomputes the score.
// Only the first character of letter is kept. An index outside the board
// returns s unchanged.
func SetTile(s State, index int, letter string) State {
	if index < 0 || index >= domain.BoardSize {
		return s
	}
	s.tiles[index] = firstChar(letter)
	s.score = scoring.TotalScore(s.tiles)
	return s
}

// FromLetters fills the board positionally from letters.
func FromLetters(letters string) (State, error) {
	if utf8.RuneCountInString(letters) > domain.BoardSize {
		return State{}, ErrTooManyLetters
	}
	s := Reset()
	i := 0
	for _, r := range letters {
		s = SetTile(s, i, string(r))
		i++
	}
	return s, nil
}

// Tiles returns a copy of the slots.
func (s State) Tiles() domain.Board { return s.tiles }

// Tile returns slot i, or "" when i is off the board.
func (s State) Tile(i int) string {
	if i < 0 || i >= domain.BoardSize {
		return ""
	}
	return s.tiles[i]
}

// Score returns the sum of the tile values.
func (s State) Score() int { return s.score }

// Word joins the slots in order; empty slots contribute nothing.
func (s State) Word() string {
	return strings.Join(s.tiles[:], "")
}

// Filled reports how many slots hold a letter.
func (s State) Filled() int {
	n := 0
	for _, t := range s.tiles {
		if t != "" {
			n++
		}
	}
	return n
}

func firstChar(letter string) string {
	if letter == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(letter)
	return letter[:size]
}
