package tui

import (
	"context"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"tileboard/internal/board"
	"tileboard/internal/focus"
	"tileboard/internal/session"
)

// Model is the form state plus the focused slot.
type Model struct {
	ctx   context.Context
	sess  *session.Session
	state session.State
	focus *focus.Observer
}

// NewModel starts with an empty board. Network calls started by the model use ctx.
func NewModel(ctx context.Context, sess *session.Session) *Model {
	st := session.State{Board: board.Reset()}
	return &Model{
		ctx:   ctx,
		sess:  sess,
		state: st,
		focus: focus.NewObserver(st.Board.Tiles()),
	}
}

// State returns the current form state.
func (m *Model) State() session.State { return m.state }

// Focused returns the slot receiving the next letter.
func (m *Model) Focused() int { return m.focus.Focused() }

// Apply folds a completed network call into the state.
func (m *Model) Apply(u session.Update) {
	m.state = u(m.state)
	m.focus.Observe(m.state.Board.Tiles())
}

// HandleKey reacts to one key press and reports whether the form should close.
func (m *Model) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyCtrlR:
		m.setBoard(board.Reset())
	case tcell.KeyCtrlS:
		m.sess.Save(m.ctx, m.state)
	case tcell.KeyCtrlT:
		m.sess.FetchTopScores(m.ctx)
	case tcell.KeyLeft, tcell.KeyBacktab:
		m.focus.Move(-1)
	case tcell.KeyRight, tcell.KeyTab:
		m.focus.Move(1)
	case tcell.KeyDelete:
		m.setTile(m.Focused(), "")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		i := m.Focused()
		if m.state.Board.Tile(i) == "" && i > 0 {
			i--
		}
		m.setTile(i, "")
	case tcell.KeyRune:
		if r := ev.Rune(); unicode.IsPrint(r) {
			m.setTile(m.Focused(), string(r))
		}
	}
	return false
}

func (m *Model) setTile(i int, letter string) {
	m.setBoard(board.SetTile(m.state.Board, i, letter))
}

func (m *Model) setBoard(b board.State) {
	m.state.Board = b
	m.focus.Observe(b.Tiles())
}
