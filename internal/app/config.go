package app

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
)

// DefaultAPIURL is where the scoring service listens during development.
const DefaultAPIURL = "http://localhost:8080"

var ErrInvalidAPIURL = errors.New("invalid scoring service URL")

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL string       // scoring service base URL, e.g. http://localhost:8080
	HTTP   *http.Client // optional; defaults to http.DefaultClient
	Log    *log.Logger  // optional; diagnostics are discarded when nil
}

// Validate checks that APIURL is an absolute http(s) URL.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAPIURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL)
	}
	return nil
}
