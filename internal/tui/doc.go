// Package tui renders the ten-slot form in a terminal.
//
// Keys:
//
//   - letters        fill the focused slot
//   - Backspace      clear the focused slot, or the one before it when empty
//   - Delete         clear the focused slot
//   - Left/Right     move focus (Tab and Shift-Tab too)
//   - Ctrl-R         reset the board
//   - Ctrl-S         save word and score
//   - Ctrl-T         fetch the top scores
//   - Esc, Ctrl-C    quit
//
// # Implementation
//
// Model owns the session.State and a focus.Observer. Every board change is
// shown to the observer, which moves the cursor to the first empty slot.
// Run pumps screen events and session updates into one loop, so state is only
// ever touched from that loop.
package tui
