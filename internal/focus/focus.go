// Package focus tracks which slot receives the next keystroke.
//
// The Observer watches board values and, whenever they change, moves focus to
// the first empty slot. It is a view concern and knows nothing about scoring.
package focus

import "tileboard/internal/domain"

// FirstEmpty returns the lowest index holding no letter.
func FirstEmpty(b domain.Board) (int, bool) {
	for i, t := range b {
		if t == "" {
			return i, true
		}
	}
	return 0, false
}

// Observer holds the focused slot and the last board it saw.
type Observer struct {
	current int
	last    domain.Board
}

// NewObserver starts focused on the first empty slot of b.
func NewObserver(b domain.Board) *Observer {
	o := &Observer{last: b}
	if i, ok := FirstEmpty(b); ok {
		o.current = i
	}
	return o
}

// Observe reacts to a board value. If it differs from the last one seen,
// focus jumps to the first empty slot; a full board leaves focus where it was.
// It reports whether focus moved.
func (o *Observer) Observe(b domain.Board) bool {
	if b == o.last {
		return false
	}
	o.last = b
	i, ok := FirstEmpty(b)
	if !ok || i == o.current {
		return false
	}
	o.current = i
	return true
}

// Focused returns the focused slot.
func (o *Observer) Focused() int { return o.current }

// Move shifts focus by delta, wrapping around the board.
func (o *Observer) Move(delta int) {
	o.current = ((o.current+delta)%domain.BoardSize + domain.BoardSize) % domain.BoardSize
}
