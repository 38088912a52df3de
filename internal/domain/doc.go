// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (board, leaderboard) and contracts (interfaces) only.
package domain
