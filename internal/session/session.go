package session

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"tileboard/internal/board"
	"tileboard/internal/domain"
)

var ErrNothingToSave = errors.New("score is zero, nothing to save")

// State is everything the form shows.
type State struct {
	Board       board.State
	Leaderboard domain.Leaderboard

	leaderboardSeq uint64
}

// Update transforms State after a network call completes.
type Update func(State) State

// Apply folds updates into st in order.
func Apply(st State, updates ...Update) State {
	for _, u := range updates {
		st = u(st)
	}
	return st
}

// Session runs save and fetch calls against a ScoreService.
type Session struct {
	svc     domain.ScoreService
	log     *log.Logger
	updates chan Update

	fetchSeq atomic.Uint64
	inflight sync.WaitGroup
}

// New returns a Session. A nil logger discards diagnostics.
func New(svc domain.ScoreService, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		svc:     svc,
		log:     logger,
		updates: make(chan Update, 16),
	}
}

// Updates delivers the results of Save and FetchTopScores.
func (s *Session) Updates() <-chan Update { return s.updates }

// Wait blocks until every started call has finished and queued its Update.
func (s *Session) Wait() { s.inflight.Wait() }

// Save submits the current word and score without waiting for the result.
// It does nothing and returns false when the score is zero.
func (s *Session) Save(ctx context.Context, st State) bool {
	b := st.Board
	if b.Score() <= 0 {
		return false
	}
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		u, err := s.SaveNow(ctx, b)
		if err != nil {
			s.log.Printf("save score: %v", err)
			return
		}
		s.deliver(ctx, u)
	}()
	return true
}

// SaveNow submits b and waits. On success the returned Update resets the board.
func (s *Session) SaveNow(ctx context.Context, b board.State) (Update, error) {
	if b.Score() <= 0 {
		return nil, ErrNothingToSave
	}
	entry := domain.TopScore{Word: b.Word(), Score: b.Score()}
	if err := s.svc.SaveScore(ctx, entry); err != nil {
		return nil, err
	}
	s.log.Printf("saved %q for %d points", entry.Word, entry.Score)
	return func(st State) State {
		st.Board = board.Reset()
		return st
	}, nil
}

// FetchTopScores requests the leaderboard without waiting for the result.
func (s *Session) FetchTopScores(ctx context.Context) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		u, err := s.FetchNow(ctx)
		if err != nil {
			s.log.Printf("fetch top scores: %v", err)
			return
		}
		s.deliver(ctx, u)
	}()
}

// FetchNow requests the leaderboard and waits. The returned Update replaces
// the leaderboard unless a newer fetch has already been applied.
func (s *Session) FetchNow(ctx context.Context) (Update, error) {
	seq := s.fetchSeq.Add(1)
	top, err := s.svc.TopScores(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Printf("fetched %d top scores (fetch %d)", len(top), seq)
	return func(st State) State {
		if seq < st.leaderboardSeq {
			s.log.Printf("dropping top scores from fetch %d, already showing fetch %d", seq, st.leaderboardSeq)
			return st
		}
		st.Leaderboard = domain.Leaderboard(top)
		st.leaderboardSeq = seq
		return st
	}, nil
}

func (s *Session) deliver(ctx context.Context, u Update) {
	select {
	case s.updates <- u:
	case <-ctx.Done():
		s.log.Printf("dropping update: %v", ctx.Err())
	}
}
