package middleware

import (
	"context"
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/ghaggin/hbnb-web/internal/model"
)

const (
	sessionKey = "token"
)

var (
	errSessionNotFound = errors.New("session not found")
)

// SessionManager keeps the credential server side, the browser only holds
// the scs session cookie.
type SessionManager struct {
	impl *scs.SessionManager
}

type SessionOptions struct {
	CookieName string
	CookiePath string
	Secure     bool
	HTTPOnly   bool
	Lifetime   time.Duration
	// Store defaults to the scs in-memory store.
	Store scs.Store
}

func NewSessionManager(opts SessionOptions) *SessionManager {
	gob.Register(&model.Session{})

	sm := &SessionManager{}
	sm.impl = scs.New()
	sm.impl.Cookie.Name = opts.CookieName
	sm.impl.Cookie.Path = opts.CookiePath
	sm.impl.Cookie.Secure = opts.Secure
	sm.impl.Cookie.HttpOnly = opts.HTTPOnly
	sm.impl.Cookie.SameSite = http.SameSiteLaxMode
	if opts.Lifetime > 0 {
		sm.impl.Lifetime = opts.Lifetime
	}
	if opts.Store != nil {
		sm.impl.Store = opts.Store
	}

	return sm
}

func (s *SessionManager) Wrap(next http.Handler) http.Handler {
	return s.impl.LoadAndSave(next)
}

func (s *SessionManager) Get(ctx context.Context) (*model.Session, error) {
	session, ok := s.impl.Get(ctx, sessionKey).(*model.Session)
	if !ok || session.Credential == "" {
		return nil, errSessionNotFound
	}

	return session, nil
}

// SetCredential stores the credential under a fresh session token.
func (s *SessionManager) SetCredential(ctx context.Context, credential string) error {
	if err := s.impl.RenewToken(ctx); err != nil {
		return err
	}

	s.impl.Put(ctx, sessionKey, &model.Session{Credential: credential})
	return nil
}

func (s *SessionManager) Destroy(ctx context.Context) error {
	return s.impl.Destroy(ctx)
}
