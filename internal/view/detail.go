package view

import (
	"strconv"

	"github.com/ghaggin/hbnb-web/internal/model"
)

type Detail struct {
	AddReviewVisible bool
	ListingID        string

	// Listing is nil when the fetch failed.
	Listing *ListingView
}

type ListingView struct {
	ID          string
	Title       string
	Description string
	Price       string
	Latitude    float64
	Longitude   float64
	Amenities   []string
	Reviews     []string
}

// NewListingView renders reviews as "author: text". Both lists are non-nil
// so an empty list still renders its container.
func NewListingView(l model.Listing) *ListingView {
	amenities := make([]string, 0, len(l.Amenities))
	amenities = append(amenities, l.Amenities...)

	reviews := make([]string, 0, len(l.Reviews))
	for _, r := range l.Reviews {
		reviews = append(reviews, r.Author+": "+r.Text)
	}

	return &ListingView{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Price:       strconv.FormatFloat(l.Price, 'f', -1, 64),
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Amenities:   amenities,
		Reviews:     reviews,
	}
}
