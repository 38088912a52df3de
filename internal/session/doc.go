// Package session owns the form state and runs the two network operations.
//
// State is held by a single loop (the terminal UI, or a CLI command). Network
// calls run on their own goroutines and never touch State: each completed call
// yields an Update, a pure function the loop applies to its State. A failed
// call yields no Update at all, so the state is exactly what it was before the
// call.
//
// Leaderboard fetches are numbered. An Update from a fetch older than the one
// last applied is dropped, so a slow response cannot overwrite a newer
// leaderboard. Saves keep completion order: a successful save resets the board
// whenever it lands.
package session
