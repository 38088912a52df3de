// Package commands defines the tileboard CLI and wires dependencies for subcommands.
//
// Commands
//
//   - play    Interactive ten-slot scoring form
//   - score   Print the value of each letter and the total
//   - save    Submit a word and its score to the scoring service
//   - top     Print the scoring service leaderboard
//
// # Implementation
//
// The root command builds the app (HTTP client, score service client, session)
// before any subcommand runs. Diagnostics go to --log when set, to stderr for
// one-shot commands, and nowhere for play, which owns the terminal.
package commands
