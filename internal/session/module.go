package session

import (
	"context"
	"fmt"

	"github.com/ghaggin/hbnb-web/internal/config"
	"github.com/ghaggin/hbnb-web/internal/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Log    *zap.Logger
}

// NewProvider builds the provider named by session.backend.
func NewProvider(p Params) (Provider, error) {
	s := p.Config.Session

	switch s.Backend {
	case config.BackendCookie:
		return &CookieProvider{
			Name:     s.CookieName,
			Path:     s.CookiePath,
			Secure:   s.Secure,
			HTTPOnly: s.HTTPOnly,
		}, nil

	case config.BackendSCS, config.BackendRedis:
		opts := middleware.SessionOptions{
			CookieName: s.CookieName,
			CookiePath: s.CookiePath,
			Secure:     s.Secure,
			HTTPOnly:   s.HTTPOnly,
			Lifetime:   s.Lifetime,
		}

		if s.Backend == config.BackendRedis {
			r := p.Config.Redis
			client, err := NewRedisClient(r.Addr, r.Password, r.DB)
			if err != nil {
				return nil, err
			}
			p.LC.Append(fx.Hook{
				OnStop: func(context.Context) error { return client.Close() },
			})
			opts.Store = NewRedisStore(client, r.Prefix)
		}

		p.Log.Info("using server side sessions", zap.String("backend", s.Backend))
		return NewSCSProvider(middleware.NewSessionManager(opts)), nil
	}

	return nil, fmt.Errorf("session: unknown backend %q", s.Backend)
}
