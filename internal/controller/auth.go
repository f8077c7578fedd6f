package controller

import (
	"context"
	"errors"

	"github.com/ghaggin/hbnb-web/internal/api"
	"github.com/ghaggin/hbnb-web/internal/page"
	"go.uber.org/zap"
)

const (
	msgLoginPrefix      = "Login failed: "
	msgLoginUnreachable = "Unable to reach the server. Please check your connection and try again."
	msgLoginBadResponse = msgLoginPrefix + "unexpected response from server."
)

// LoginResult carries either a redirect target or a message for the login
// form, never both.
type LoginResult struct {
	Redirect string
	Message  string
}

type Auth struct {
	api   Authenticator
	store CredentialSetter
	log   *zap.Logger
}

func NewAuth(a Authenticator, store CredentialSetter, log *zap.Logger) *Auth {
	return &Auth{
		api:   a,
		store: store,
		log:   log.Named("auth"),
	}
}

// Submit exchanges the credentials for an access token. The session is
// written only after the response has been fully decoded.
func (c *Auth) Submit(ctx context.Context, email, password string) LoginResult {
	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		return LoginResult{Message: c.report(err)}
	}

	if err := c.store.Set(resp.AccessToken); err != nil {
		c.log.Error("storing credential", zap.Error(err))
		return LoginResult{Message: msgLoginBadResponse}
	}

	c.log.Info("login succeeded", zap.String("email", email))
	return LoginResult{Redirect: page.LandingPath}
}

func (c *Auth) report(err error) string {
	var se *api.StatusError
	switch {
	case errors.As(err, &se):
		c.log.Warn("login rejected", zap.Int("status", se.Status), zap.Error(err))
		return msgLoginPrefix + se.Error()
	case errors.Is(err, api.ErrUnreachable):
		c.log.Error("login request failed", zap.Error(err))
		return msgLoginUnreachable
	default:
		c.log.Error("login response invalid", zap.Error(err))
		return msgLoginBadResponse
	}
}
