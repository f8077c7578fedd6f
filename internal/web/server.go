package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ghaggin/hbnb-web/internal/api"
	"github.com/ghaggin/hbnb-web/internal/config"
	"github.com/ghaggin/hbnb-web/internal/middleware"
	"github.com/ghaggin/hbnb-web/internal/page"
	"github.com/ghaggin/hbnb-web/internal/session"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	log    *zap.Logger
	server *http.Server
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Config   *config.Config
	Client   *api.Client
	Sessions session.Provider
	Limiter  *middleware.RateLimiter
}

func New(p Params) (*Server, error) {
	d := NewDispatcher(p.Client, p.Sessions, p.Log)

	return &Server{
		log: p.Log,
		server: &http.Server{
			Addr:              p.Config.Addr(),
			Handler:           NewRouter(d, p.Sessions, p.Limiter, p.Log),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// NewRouter mounts the pages behind the session and login rate limit
// middleware. Everything that is not / or /logout goes to the dispatcher.
func NewRouter(d *Dispatcher, sessions session.Provider, limiter *middleware.RateLimiter, log *zap.Logger) http.Handler {
	root := chi.NewRouter()
	root.Use(chimw.RealIP)
	root.Use(middleware.Activation)
	root.Use(middleware.Logger(log))
	root.Use(chimw.Recoverer)

	root.Get("/healthz", healthz)

	root.Group(func(r chi.Router) {
		r.Use(sessions.Wrap)
		r.Use(limiter.Limit(isLoginSubmit))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, page.LandingPath, http.StatusSeeOther)
		})
		r.Post("/logout", d.Logout)
		r.Handle("/*", d)
	})

	return root
}

func RegisterHooks(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.server.Shutdown,
	})
}

func (s *Server) Start(_ context.Context) error {
	s.log.Info("listening", zap.String("addr", s.server.Addr))

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("error shutting down server", zap.Error(err))
		}
	}()
	return nil
}

func isLoginSubmit(r *http.Request) bool {
	return r.Method == http.MethodPost && page.Identify(r.URL.Path) == page.Login
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "ok")
}
