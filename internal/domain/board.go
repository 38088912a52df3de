package domain

// BoardSize is the number of letter slots on the board.
const BoardSize = 10

// Board is the ordered sequence of tiles making up the word in progress.
// Each slot is empty or holds a single letter.
type Board [BoardSize]string

// TopScore is one leaderboard entry as returned by the scoring service.
type TopScore struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Leaderboard is an ordered snapshot of top scores, replaced wholesale on each fetch.
type Leaderboard []TopScore
