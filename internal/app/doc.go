// Package app wires application dependencies for the CLI.
//
// It builds the HTTP client, score service client and session from Config
// through a samber/do injector, exposing them via the App struct for commands
// to use.
package app
