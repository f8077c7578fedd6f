package controller

import (
	"context"

	"github.com/ghaggin/hbnb-web/internal/view"
	"go.uber.org/zap"
)

type Catalog struct {
	places PlaceLister
	creds  CredentialGetter
	log    *zap.Logger
}

func NewCatalog(places PlaceLister, creds CredentialGetter, log *zap.Logger) *Catalog {
	return &Catalog{
		places: places,
		creds:  creds,
		log:    log.Named("catalog"),
	}
}

// Initialize fetches the listings when a credential is present. Without
// one it only shows the login link.
func (c *Catalog) Initialize(ctx context.Context) view.Catalog {
	token, ok := c.creds.Get()
	if !ok {
		out := view.NewCatalog(nil)
		out.LoginLinkVisible = true
		return out
	}

	listings, err := c.places.ListPlaces(ctx, token)
	if err != nil {
		c.log.Error("fetching listings", zap.Error(err))
		return view.NewCatalog(nil)
	}

	c.log.Debug("fetched listings", zap.Int("count", len(listings)))
	return view.NewCatalog(listings)
}
