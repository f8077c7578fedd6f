package main

import (
	"context"
	"flag"

	"github.com/ghaggin/hbnb-web/internal/api"
	"github.com/ghaggin/hbnb-web/internal/config"
	"github.com/ghaggin/hbnb-web/internal/middleware"
	"github.com/ghaggin/hbnb-web/internal/session"
	"github.com/ghaggin/hbnb-web/internal/web"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	var path = flag.String("config", "./config/config.yaml", "path to the yaml config file")
	flag.Parse()

	envErr := godotenv.Load()

	newPath := func() config.Path {
		return config.Path(*path)
	}

	app := fx.New(
		fx.Provide(
			newPath,
			config.New,
			newLogger,
			newRateLimiter,
			api.New,
			session.NewProvider,
			web.New,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Invoke(func(log *zap.Logger) {
			if envErr != nil {
				log.Warn("no .env file found, using environment", zap.Error(envErr))
			}
		}),
		fx.Invoke(web.RegisterHooks),
	)

	app.Run()
}

func newLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.Log.Production {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = l.Sync()
			return nil
		},
	})
	return l, nil
}

func newRateLimiter(lc fx.Lifecycle, cfg *config.Config) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			rl.Close()
			return nil
		},
	})
	return rl
}
