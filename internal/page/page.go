package page

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type Identity int

const (
	Unknown Identity = iota
	Login
	Index
	Place
	AddReview
)

// LandingPath is where a successful login navigates to.
const LandingPath = "/index.html"

var markers = []struct {
	marker   string
	identity Identity
}{
	{"login.html", Login},
	{"index.html", Index},
	{"place.html", Place},
	{"add_review.html", AddReview},
}

// Identify classifies a request path by the page file it names.
func Identify(path string) Identity {
	for _, m := range markers {
		if strings.Contains(path, m.marker) {
			return m.identity
		}
	}
	return Unknown
}

func (i Identity) String() string {
	switch i {
	case Login:
		return "login"
	case Index:
		return "index"
	case Place:
		return "place"
	case AddReview:
		return "add_review"
	default:
		return "unknown"
	}
}

// Context is everything a page activation may know about the request that
// started it. It is computed once and has no setters.
type Context struct {
	identity     Identity
	query        url.Values
	activationID string
}

func NewContext(r *http.Request) Context {
	query := url.Values{}
	for k, v := range r.URL.Query() {
		query[k] = append([]string(nil), v...)
	}

	return Context{
		identity:     Identify(r.URL.Path),
		query:        query,
		activationID: ActivationID(r.Context()),
	}
}

func (c Context) Identity() Identity { return c.identity }

func (c Context) ActivationID() string { return c.activationID }

func (c Context) Query(key string) string { return c.query.Get(key) }

// ListingID is the id query parameter used by the detail and review pages.
func (c Context) ListingID() string { return strings.TrimSpace(c.query.Get("id")) }

type activationKey struct{}

func WithActivationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, activationKey{}, id)
}

func ActivationID(ctx context.Context) string {
	id, _ := ctx.Value(activationKey{}).(string)
	return id
}
