// Package board holds the letter slots being edited and their derived score.
//
// State is a value: SetTile and Reset return a new State instead of mutating
// the receiver, so callers own exactly one copy and can test transitions
// without a rendering environment. The score is recomputed on every change and
// cannot be set on its own.
package board
