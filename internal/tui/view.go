package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"tileboard/internal/domain"
)

const (
	slotWidth = 4
	boardRow  = 2
	scoreRow  = 4
	helpRow   = 6
	topRow    = 8
	wordCol   = 12
)

var (
	plain   = tcell.StyleDefault
	bold    = tcell.StyleDefault.Bold(true)
	focused = tcell.StyleDefault.Reverse(true)
	dim     = tcell.StyleDefault.Dim(true)
)

// Draw renders m and shows the screen.
func Draw(s tcell.Screen, m *Model) {
	s.Clear()
	st := m.State()

	putString(s, 0, 0, bold, "TileBoard")
	for i := 0; i < domain.BoardSize; i++ {
		style := plain
		if i == m.Focused() {
			style = focused
		}
		letter := st.Board.Tile(i)
		if letter == "" {
			letter = "_"
		}
		x := i * slotWidth
		putString(s, x, boardRow, plain, "[")
		putString(s, x+1, boardRow, style, letter)
		putString(s, x+2, boardRow, plain, "]")
	}
	s.ShowCursor(m.Focused()*slotWidth+1, boardRow)

	putString(s, 0, scoreRow, bold, "Score: "+strconv.Itoa(st.Board.Score()))
	putString(s, 0, helpRow, dim, "^R reset  ^S save  ^T top scores  Esc quit")

	if len(st.Leaderboard) > 0 {
		putString(s, 0, topRow, bold, "Word")
		putString(s, wordCol, topRow, bold, "Score")
		for i, row := range st.Leaderboard {
			putString(s, 0, topRow+1+i, plain, row.Word)
			putString(s, wordCol, topRow+1+i, plain, strconv.Itoa(row.Score))
		}
	}
	s.Show()
}

func putString(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
