package app

import (
	"log"
	"net/http"

	"tileboard/internal/domain"
	"tileboard/internal/session"
)

// App bundles the clients and services the commands use.
type App struct {
	Scores  domain.ScoreService
	Session *session.Session
	Log     *log.Logger
	HTTP    *http.Client
}
