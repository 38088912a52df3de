package domain

import "context"

// ScoreService is how we talk to the remote scoring service.
type ScoreService interface {
	SaveScore(ctx context.Context, entry TopScore) error
	TopScores(ctx context.Context) ([]TopScore, error)
}
