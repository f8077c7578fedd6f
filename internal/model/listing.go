package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNegativePrice = errors.New("listing price is negative")
)

// Listing is a place as returned by the api.
type Listing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Amenities   []string `json:"amenities"`
	Reviews     []Review `json:"reviews"`
}

type Review struct {
	Author string `json:"user"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// NewReview is the body posted to create a review. The author comes from
// the bearer credential.
type NewReview struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
}

func (l *Listing) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID          json.RawMessage   `json:"id"`
		Title       string            `json:"title"`
		Description string            `json:"description"`
		Price       float64           `json:"price"`
		Latitude    float64           `json:"latitude"`
		Longitude   float64           `json:"longitude"`
		Amenities   []json.RawMessage `json:"amenities"`
		Reviews     []Review          `json:"reviews"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if raw.Price < 0 {
		return fmt.Errorf("%w: %v", ErrNegativePrice, raw.Price)
	}

	id, err := scalarString(raw.ID)
	if err != nil {
		return fmt.Errorf("listing id: %w", err)
	}

	amenities := make([]string, 0, len(raw.Amenities))
	for _, a := range raw.Amenities {
		name, err := amenityName(a)
		if err != nil {
			return fmt.Errorf("listing amenity: %w", err)
		}
		amenities = append(amenities, name)
	}

	reviews := raw.Reviews
	if reviews == nil {
		reviews = []Review{}
	}

	*l = Listing{
		ID:          id,
		Title:       raw.Title,
		Description: raw.Description,
		Price:       raw.Price,
		Latitude:    raw.Latitude,
		Longitude:   raw.Longitude,
		Amenities:   amenities,
		Reviews:     reviews,
	}
	return nil
}

func (r *Review) UnmarshalJSON(b []byte) error {
	var raw struct {
		User   json.RawMessage `json:"user"`
		UserID json.RawMessage `json:"user_id"`
		Text   string          `json:"text"`
		Rating float64         `json:"rating"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	author, err := authorName(raw.User)
	if err != nil {
		return fmt.Errorf("review user: %w", err)
	}
	if author == "" {
		if author, err = scalarString(raw.UserID); err != nil {
			return fmt.Errorf("review user_id: %w", err)
		}
	}

	*r = Review{
		Author: author,
		Text:   raw.Text,
		Rating: int(raw.Rating),
	}
	return nil
}

// amenityName accepts either a bare name or an amenity object.
func amenityName(b json.RawMessage) (string, error) {
	if isObject(b) {
		var a struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(b, &a); err != nil {
			return "", err
		}
		return a.Name, nil
	}
	return scalarString(b)
}

// authorName accepts the user as a name or as a user object, preferring the
// full name, then the email, then the id.
func authorName(b json.RawMessage) (string, error) {
	if !isObject(b) {
		return scalarString(b)
	}

	var u struct {
		ID        json.RawMessage `json:"id"`
		FirstName string          `json:"first_name"`
		LastName  string          `json:"last_name"`
		Email     string          `json:"email"`
	}
	if err := json.Unmarshal(b, &u); err != nil {
		return "", err
	}

	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name, nil
	}
	if u.Email != "" {
		return u.Email, nil
	}
	return scalarString(u.ID)
}

// scalarString renders a json string or number as a string. Absent and null
// values are empty.
func scalarString(b json.RawMessage) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", nil
	}

	if b[0] == '"' {
		var s string
		err := json.Unmarshal(b, &s)
		return s, err
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func isObject(b json.RawMessage) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}
