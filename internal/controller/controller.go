// Package controller holds the per-page components. Each one is built for a
// single page activation, talks to the api through a narrow interface and
// turns every failure into a view state and a log line.
package controller

import (
	"context"

	"github.com/ghaggin/hbnb-web/internal/api"
	"github.com/ghaggin/hbnb-web/internal/model"
)

type CredentialGetter interface {
	Get() (string, bool)
}

type CredentialSetter interface {
	Set(credential string) error
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
}

type PlaceLister interface {
	ListPlaces(ctx context.Context, token string) ([]model.Listing, error)
}

type PlaceGetter interface {
	GetPlace(ctx context.Context, id, token string) (*model.Listing, error)
}

type ReviewCreator interface {
	CreateReview(ctx context.Context, token string, review model.NewReview) error
}
