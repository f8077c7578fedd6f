// Package view holds the page view-models. Building one never does I/O;
// the template package turns them into markup.
package view

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/ghaggin/hbnb-web/internal/model"
)

// AllPrices disables the price filter.
const AllPrices = "All"

// PriceOptions are the thresholds offered by the filter control.
var PriceOptions = []string{"10", "50", "100", AllPrices}

type Card struct {
	ID      string
	Title   string
	Price   float64
	Link    string
	Visible bool
}

// PriceAttr is the price as written to the card's data-price attribute.
func (c Card) PriceAttr() string {
	return strconv.FormatFloat(c.Price, 'f', -1, 64)
}

type Catalog struct {
	LoginLinkVisible bool
	Cards            []Card
	Threshold        string
	Options          []string

	// Detail is set when the index page also previews one listing.
	Detail *Detail
}

// NewCatalog builds one visible card per listing, in order.
func NewCatalog(listings []model.Listing) Catalog {
	cards := make([]Card, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, Card{
			ID:      l.ID,
			Title:   l.Title,
			Price:   l.Price,
			Link:    "/place.html?id=" + url.QueryEscape(l.ID),
			Visible: true,
		})
	}

	return Catalog{
		Cards:     cards,
		Threshold: AllPrices,
		Options:   PriceOptions,
	}
}

// ApplyPriceFilter shows a card iff threshold is All or the card's price
// is at most the numeric threshold. A threshold that is not a finite number
// is treated as All.
func (c *Catalog) ApplyPriceFilter(threshold string) {
	threshold = strings.TrimSpace(threshold)

	limit, err := strconv.ParseFloat(threshold, 64)
	all := threshold == AllPrices || threshold == "" || err != nil ||
		math.IsNaN(limit) || math.IsInf(limit, 0)
	if all {
		c.Threshold = AllPrices
	} else {
		c.Threshold = threshold
	}

	for i := range c.Cards {
		c.Cards[i].Visible = all || c.Cards[i].Price <= limit
	}
}
