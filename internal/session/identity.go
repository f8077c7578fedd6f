package session

import (
	"github.com/ghaggin/hbnb-web/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

// Describe reads the identity claims of a JWT credential without checking
// its signature, the api does that. It is for display only, the presence
// of a credential is what counts as signed in.
func Describe(credential string) (model.Identity, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return model.Identity{}, false
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return model.Identity{}, false
	}

	id := model.Identity{Subject: sub}
	id.Admin, _ = claims["is_admin"].(bool)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}

	return id, true
}
