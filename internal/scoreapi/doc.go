// Package scoreapi provides an HTTP implementation of the domain.ScoreService
// interface used by tileboard.
//
// The scoring service stores submitted words with their scores and returns the
// best ones. This package offers a concrete client for its two endpoints:
//   - POST /scrabble/api/savescore  submits {word, score}.
//   - GET  /scrabble/api/topscores  returns an ordered [{word, score}] list.
//
// All requests are JSON over HTTP and accept a context. Non-2xx statuses are
// returned as errors wrapping ErrBadStatus with the method, path and status
// text. Every request carries a fresh X-Request-Id so the diagnostic log can be
// matched against service logs. There is no retry and no client-side timeout.
package scoreapi
