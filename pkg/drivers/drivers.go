// Package drivers picks the browser session implementation named by the configuration.
package drivers

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/config"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/drivers/cdpdriver"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/drivers/pwdriver"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
)

// Session is a browser session owned by the caller.
type Session interface {
	browser.Session
	Close() error
}

type factory func(ctx context.Context, cfg *config.BrowserConfig) (Session, error)

var factories = map[string]factory{
	config.DriverPlaywright: func(ctx context.Context, cfg *config.BrowserConfig) (Session, error) {
		return pwdriver.New(cfg)
	},
	config.DriverChromedp: func(ctx context.Context, cfg *config.BrowserConfig) (Session, error) {
		return cdpdriver.New(ctx, cfg)
	},
}

func New(ctx context.Context, cfg *config.BrowserConfig) (Session, error) {
	newSession, ok := factories[cfg.Driver]
	if !ok {
		return nil, errors.Validation("unknown browser driver %q", cfg.Driver)
	}
	session, err := newSession(ctx, cfg)
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to start %s browser session", cfg.Driver)
	}
	return session, nil
}
