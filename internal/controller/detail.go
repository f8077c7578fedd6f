package controller

import (
	"context"

	"github.com/ghaggin/hbnb-web/internal/view"
	"go.uber.org/zap"
)

type Detail struct {
	places    PlaceGetter
	creds     CredentialGetter
	listingID string
	log       *zap.Logger
}

func NewDetail(places PlaceGetter, creds CredentialGetter, listingID string, log *zap.Logger) *Detail {
	return &Detail{
		places:    places,
		creds:     creds,
		listingID: listingID,
		log:       log.Named("detail"),
	}
}

// Initialize fetches one listing. The add-review link follows the
// credential, not the fetch outcome.
func (d *Detail) Initialize(ctx context.Context) view.Detail {
	token, ok := d.creds.Get()
	out := view.Detail{
		AddReviewVisible: ok,
		ListingID:        d.listingID,
	}

	if d.listingID == "" {
		d.log.Warn("no listing id in query")
		return out
	}

	l, err := d.places.GetPlace(ctx, d.listingID, token)
	if err != nil {
		d.log.Error("fetching listing", zap.String("id", d.listingID), zap.Error(err))
		return out
	}

	out.Listing = view.NewListingView(*l)
	return out
}
