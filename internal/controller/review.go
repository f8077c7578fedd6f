package controller

import (
	"context"
	"errors"
	"strconv"

	"github.com/ghaggin/hbnb-web/internal/api"
	"github.com/ghaggin/hbnb-web/internal/model"
	"github.com/ghaggin/hbnb-web/internal/view"
	"go.uber.org/zap"
)

const (
	MinRating = 1
	MaxRating = 5
)

const (
	msgReviewSucceeded = "Review submitted successfully!"
	msgReviewFailed    = "Failed to submit review."
	msgReviewServer    = "Server error. Please try again later."
	msgReviewSignedOut = "You must be logged in to add a review."
	msgReviewNoListing = "No place selected for this review."
	msgReviewRating    = "Rating must be between 1 and 5."
)

// ReviewSubmitter posts reviews for one listing. The credential and listing
// id are read once, when the page is activated.
type ReviewSubmitter struct {
	reviews   ReviewCreator
	token     string
	signedIn  bool
	listingID string
	log       *zap.Logger
}

func NewReviewSubmitter(reviews ReviewCreator, creds CredentialGetter, listingID string, log *zap.Logger) *ReviewSubmitter {
	token, ok := creds.Get()
	return &ReviewSubmitter{
		reviews:   reviews,
		token:     token,
		signedIn:  ok,
		listingID: listingID,
		log:       log.Named("review"),
	}
}

// Form is the idle page: the form is only offered to a signed in user.
func (s *ReviewSubmitter) Form() view.AddReview {
	return view.AddReview{
		ListingID:   s.listingID,
		FormVisible: s.signedIn,
		State:       view.Idle,
	}
}

func (s *ReviewSubmitter) Submit(ctx context.Context, text string, rating int) view.AddReview {
	out := s.Form()
	if !s.signedIn {
		return s.fail(out, msgReviewSignedOut)
	}
	if s.listingID == "" {
		return s.fail(out, msgReviewNoListing)
	}

	out.Form = view.ReviewForm{Text: text}
	if rating < MinRating || rating > MaxRating {
		return s.fail(out, msgReviewRating)
	}
	out.Form.Rating = strconv.Itoa(rating)

	out.State = view.Submitting
	s.log.Debug("submitting review", zap.String("place_id", s.listingID), zap.Int("rating", rating))

	err := s.reviews.CreateReview(ctx, s.token, model.NewReview{
		Text:    text,
		Rating:  rating,
		PlaceID: s.listingID,
	})
	if err != nil {
		return s.fail(out, s.report(err))
	}

	out.State = view.Succeeded
	out.Message = msgReviewSucceeded
	out.Form = view.ReviewForm{}
	return out
}

func (s *ReviewSubmitter) fail(out view.AddReview, msg string) view.AddReview {
	out.State = view.Failed
	out.Message = msg
	return out
}

func (s *ReviewSubmitter) report(err error) string {
	var se *api.StatusError
	if errors.As(err, &se) {
		s.log.Warn("review rejected", zap.Int("status", se.Status), zap.Error(err))
		if se.Message != "" {
			return msgReviewFailed + " " + se.Message
		}
		return msgReviewFailed
	}

	s.log.Error("review request failed", zap.Error(err))
	return msgReviewServer
}
