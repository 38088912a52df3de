package app

import (
	"io"
	"log"
	"net/http"

	"github.com/samber/do"

	"tileboard/internal/domain"
	"tileboard/internal/scoreapi"
	"tileboard/internal/session"
)

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	injector := do.New()

	do.Provide(injector, func(i *do.Injector) (*http.Client, error) {
		if cfg.HTTP != nil {
			return cfg.HTTP, nil
		}
		return http.DefaultClient, nil
	})

	do.Provide(injector, func(i *do.Injector) (*log.Logger, error) {
		if cfg.Log != nil {
			return cfg.Log, nil
		}
		return log.New(io.Discard, "", 0), nil
	})

	do.Provide(injector, func(i *do.Injector) (domain.ScoreService, error) {
		hc, err := do.Invoke[*http.Client](i)
		if err != nil {
			return nil, err
		}
		logger, err := do.Invoke[*log.Logger](i)
		if err != nil {
			return nil, err
		}
		return scoreapi.New(cfg.APIURL, hc, logger), nil
	})

	do.Provide(injector, func(i *do.Injector) (*session.Session, error) {
		svc, err := do.Invoke[domain.ScoreService](i)
		if err != nil {
			return nil, err
		}
		logger, err := do.Invoke[*log.Logger](i)
		if err != nil {
			return nil, err
		}
		return session.New(svc, logger), nil
	})

	sess, err := do.Invoke[*session.Session](injector)
	if err != nil {
		return nil, err
	}
	return &App{
		Scores:  do.MustInvoke[domain.ScoreService](injector),
		Session: sess,
		Log:     do.MustInvoke[*log.Logger](injector),
		HTTP:    do.MustInvoke[*http.Client](injector),
	}, nil
}
