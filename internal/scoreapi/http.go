package scoreapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"tileboard/internal/domain"
)

const (
	SaveScorePath = "/scrabble/api/savescore"
	TopScoresPath = "/scrabble/api/topscores"

	RequestIDHeader = "X-Request-Id"
)

var ErrBadStatus = errors.New("unexpected status")

type Client struct {
	Base string
	HTTP *http.Client
	Log  *log.Logger
}

// New returns a client for the service at base. A nil hc uses
// http.DefaultClient and a nil logger discards diagnostics.
func New(base string, hc *http.Client, logger *log.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc, Log: logger}
}

// SaveScore submits entry. The response body must be JSON but is otherwise ignored.
func (c *Client) SaveScore(ctx context.Context, entry domain.TopScore) error {
	var ack json.RawMessage
	return c.post(ctx, SaveScorePath, entry, &ack)
}

// TopScores fetches the leaderboard in the order the service returns it.
func (c *Client) TopScores(ctx context.Context) ([]domain.TopScore, error) {
	var out []domain.TopScore
	if err := c.getJSON(ctx, TopScoresPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	id := uuid.NewString()
	req.Header.Set(RequestIDHeader, id)
	req.Header.Set("Accept", "application/json")
	c.Log.Printf("%s %s request_id=%s", req.Method, path, id)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("scoreapi %s %s: %s: %w", strings.ToLower(req.Method), path, resp.Status, ErrBadStatus)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("scoreapi %s %s: decode: %w", strings.ToLower(req.Method), path, err)
	}
	return nil
}

var _ domain.ScoreService = (*Client)(nil)
