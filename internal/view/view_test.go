package view

import (
	"fmt"
	"testing"

	"github.com/ghaggin/hbnb-web/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listings(prices ...float64) []model.Listing {
	out := make([]model.Listing, 0, len(prices))
	for i, p := range prices {
		out = append(out, model.Listing{ID: fmt.Sprint(i + 1), Title: fmt.Sprint("place ", i+1), Price: p})
	}
	return out
}

func visible(c Catalog) []string {
	ids := []string{}
	for _, card := range c.Cards {
		if card.Visible {
			ids = append(ids, card.ID)
		}
	}
	return ids
}

func TestNewCatalog(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	c := NewCatalog([]model.Listing{{ID: "a b", Title: "Loft", Price: 99.5}})
	require.Len(c.Cards, 1)
	assert.Equal("/place.html?id=a+b", c.Cards[0].Link)
	assert.Equal("99.5", c.Cards[0].PriceAttr())
	assert.True(c.Cards[0].Visible)
	assert.Equal(AllPrices, c.Threshold)
	assert.Equal(PriceOptions, c.Options)

	empty := NewCatalog(nil)
	assert.NotNil(empty.Cards)
	assert.Empty(empty.Cards)
}

func TestCatalog_ApplyPriceFilter(t *testing.T) {
	tests := []struct {
		threshold string
		want      []string
		selected  string
	}{
		{"All", []string{"1", "2", "3", "4"}, "All"},
		{"10", []string{"1", "2"}, "10"},
		{"50", []string{"1", "2", "3"}, "50"},
		{"100", []string{"1", "2", "3", "4"}, "100"},
		{"0", []string{}, "0"},
		{" 50 ", []string{"1", "2", "3"}, "50"},
		{"", []string{"1", "2", "3", "4"}, "All"},
		{"cheap", []string{"1", "2", "3", "4"}, "All"},
		{"NaN", []string{"1", "2", "3", "4"}, "All"},
		{"Inf", []string{"1", "2", "3", "4"}, "All"},
		{"-Inf", []string{"1", "2", "3", "4"}, "All"},
		{"0x10", []string{"1", "2", "3", "4"}, "All"},
	}

	for _, tt := range tests {
		t.Run(tt.threshold, func(t *testing.T) {
			c := NewCatalog(listings(5, 10, 50, 100))
			c.ApplyPriceFilter(tt.threshold)
			assert.Equal(t, tt.want, visible(c))
			assert.Equal(t, tt.selected, c.Threshold)
		})
	}
}

func TestCatalog_ApplyPriceFilter_idempotent(t *testing.T) {
	c := NewCatalog(listings(5, 10, 50, 100))

	c.ApplyPriceFilter("10")
	once := visible(c)
	c.ApplyPriceFilter("10")
	assert.Equal(t, once, visible(c))

	// narrowing then widening restores hidden cards
	c.ApplyPriceFilter("All")
	assert.Len(t, visible(c), 4)
}

func TestNewListingView(t *testing.T) {
	assert := assert.New(t)

	v := NewListingView(model.Listing{
		ID:          "1",
		Title:       "Loft",
		Description: "Nice",
		Price:       100,
		Amenities:   []string{"wifi"},
		Reviews:     []model.Review{{Author: "bob", Text: "ok"}},
	})

	assert.Equal("Loft", v.Title)
	assert.Equal("100", v.Price)
	assert.Equal([]string{"wifi"}, v.Amenities)
	assert.Equal([]string{"bob: ok"}, v.Reviews)
}

func TestNewListingView_emptyLists(t *testing.T) {
	v := NewListingView(model.Listing{ID: "1"})
	assert.NotNil(t, v.Amenities)
	assert.NotNil(t, v.Reviews)
	assert.Empty(t, v.Amenities)
	assert.Empty(t, v.Reviews)
}

func TestReviewState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "success", Succeeded.String())
	assert.Equal(t, "failure", Failed.String())
}
