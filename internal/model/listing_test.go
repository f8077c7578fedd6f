package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_UnmarshalJSON(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	var l Listing
	err := json.Unmarshal([]byte(`{
		"id": 1,
		"title": "Loft",
		"description": "Nice",
		"price": 100,
		"latitude": 0,
		"longitude": 0,
		"amenities": ["wifi"],
		"reviews": [{"user": "bob", "text": "ok"}]
	}`), &l)
	require.NoError(err)

	assert.Equal("1", l.ID)
	assert.Equal("Loft", l.Title)
	assert.Equal(100.0, l.Price)
	assert.Equal([]string{"wifi"}, l.Amenities)
	assert.Equal([]Review{{Author: "bob", Text: "ok"}}, l.Reviews)
}

func TestListing_UnmarshalJSON_missingSequencesAreEmpty(t *testing.T) {
	var l Listing
	require.NoError(t, json.Unmarshal([]byte(`{"id": "a1", "title": "Hut", "price": 12.5}`), &l))

	assert.NotNil(t, l.Amenities)
	assert.Empty(t, l.Amenities)
	assert.NotNil(t, l.Reviews)
	assert.Empty(t, l.Reviews)
}

func TestListing_UnmarshalJSON_amenityObjects(t *testing.T) {
	var l Listing
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "p1",
		"amenities": [{"id": "a1", "name": "pool"}, "wifi"]
	}`), &l))

	assert.Equal(t, []string{"pool", "wifi"}, l.Amenities)
}

func TestListing_UnmarshalJSON_negativePrice(t *testing.T) {
	var l Listing
	err := json.Unmarshal([]byte(`{"id": "p1", "price": -1}`), &l)
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestReview_UnmarshalJSON_author(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"user string", `{"user": "bob", "text": "ok"}`, "bob"},
		{"user object name", `{"user": {"id": "u1", "first_name": "Ada", "last_name": "Lovelace"}, "text": "ok"}`, "Ada Lovelace"},
		{"user object email", `{"user": {"id": "u1", "email": "ada@example.com"}, "text": "ok"}`, "ada@example.com"},
		{"user object id", `{"user": {"id": 7}, "text": "ok"}`, "7"},
		{"user_id", `{"user_id": "u42", "text": "ok"}`, "u42"},
		{"anonymous", `{"text": "ok"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Review
			require.NoError(t, json.Unmarshal([]byte(tt.in), &r))
			assert.Equal(t, tt.want, r.Author)
			assert.Equal(t, "ok", r.Text)
		})
	}
}

func TestReview_UnmarshalJSON_rating(t *testing.T) {
	var r Review
	require.NoError(t, json.Unmarshal([]byte(`{"user": "bob", "text": "ok", "rating": 4}`), &r))
	assert.Equal(t, 4, r.Rating)
}

func TestNewReview_wireFormat(t *testing.T) {
	b, err := json.Marshal(NewReview{Text: "great place", Rating: 5, PlaceID: "42"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text": "great place", "rating": 5, "place_id": "42"}`, string(b))
}
