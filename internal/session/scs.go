package session

import (
	"context"
	"net/http"

	"github.com/ghaggin/hbnb-web/internal/middleware"
)

// SCSProvider keeps the credential in a server side scs session.
type SCSProvider struct {
	sm *middleware.SessionManager
}

func NewSCSProvider(sm *middleware.SessionManager) *SCSProvider {
	return &SCSProvider{sm: sm}
}

func (p *SCSProvider) Wrap(next http.Handler) http.Handler {
	return p.sm.Wrap(next)
}

func (p *SCSProvider) Bind(_ http.ResponseWriter, r *http.Request) Store {
	return &scsStore{sm: p.sm, ctx: r.Context()}
}

type scsStore struct {
	sm  *middleware.SessionManager
	ctx context.Context
}

func (s *scsStore) Get() (string, bool) {
	session, err := s.sm.Get(s.ctx)
	if err != nil {
		return "", false
	}
	return session.Credential, true
}

func (s *scsStore) Set(credential string) error {
	if credential == "" {
		return ErrEmptyCredential
	}
	return s.sm.SetCredential(s.ctx, credential)
}

func (s *scsStore) Clear() error {
	return s.sm.Destroy(s.ctx)
}
