// Package scoreapitest runs an in-process scoring service for tests.
//
// Server speaks the same two endpoints as the real service, records every
// submission, and can be told to fail or to return a fixed leaderboard.
package scoreapitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"

	"github.com/labstack/echo/v4"

	"tileboard/internal/domain"
	"tileboard/internal/scoreapi"
)

// Leaderboard length when it is derived from submissions.
const topN = 10

type Server struct {
	*httptest.Server

	mu         sync.Mutex
	saved      []domain.TopScore
	bodies     []string
	requestIDs []string
	topCalls   int
	top        []domain.TopScore
	fixedTop   bool
	failStatus int
	saveReply  []byte
}

// New starts a server. Close it when done.
func New() *Server {
	s := &Server{}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.POST(scoreapi.SaveScorePath, s.saveScore)
	e.GET(scoreapi.TopScoresPath, s.topScores)
	s.Server = httptest.NewServer(e)
	return s
}

// SetTopScores pins the leaderboard response instead of deriving it from submissions.
func (s *Server) SetTopScores(top ...domain.TopScore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.top = append([]domain.TopScore{}, top...)
	s.fixedTop = true
}

// Fail makes every endpoint answer with status. Zero restores normal replies.
func (s *Server) Fail(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// SetSaveReply overrides the raw body returned by a successful save.
func (s *Server) SetSaveReply(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveReply = []byte(body)
}

// Saved returns the accepted submissions in arrival order.
func (s *Server) Saved() []domain.TopScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.TopScore{}, s.saved...)
}

// Bodies returns the raw save request bodies, including rejected ones.
func (s *Server) Bodies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.bodies...)
}

// TopCalls counts leaderboard requests.
func (s *Server) TopCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topCalls
}

// RequestIDs returns the request id header of every request seen.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.requestIDs...)
}

func (s *Server) saveScore(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestIDs = append(s.requestIDs, c.Request().Header.Get(scoreapi.RequestIDHeader))
	s.bodies = append(s.bodies, string(raw))
	if s.failStatus != 0 {
		return c.JSON(s.failStatus, map[string]string{"error": http.StatusText(s.failStatus)})
	}

	var in domain.TopScore
	if err := json.Unmarshal(raw, &in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.saved = append(s.saved, in)
	if s.saveReply != nil {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, s.saveReply)
	}
	return c.JSON(http.StatusOK, in)
}

func (s *Server) topScores(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topCalls++
	s.requestIDs = append(s.requestIDs, c.Request().Header.Get(scoreapi.RequestIDHeader))
	if s.failStatus != 0 {
		return c.JSON(s.failStatus, map[string]string{"error": http.StatusText(s.failStatus)})
	}
	if s.fixedTop {
		return c.JSON(http.StatusOK, s.top)
	}

	top := append([]domain.TopScore{}, s.saved...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Score > top[j].Score })
	if len(top) > topN {
		top = top[:topN]
	}
	return c.JSON(http.StatusOK, top)
}
