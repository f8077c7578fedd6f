package template

import (
	"net/http/httptest"
	"testing"

	"github.com/ghaggin/hbnb-web/internal/model"
	"github.com/ghaggin/hbnb-web/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, tmpl string, td *Data) string {
	t.Helper()

	rr := httptest.NewRecorder()
	err := Render(rr, httptest.NewRequest("GET", "/", nil), tmpl, td)
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	return rr.Body.String()
}

func TestRender_place(t *testing.T) {
	assert := assert.New(t)

	body := render(t, "place.html", &Data{
		PageTitle: "Loft",
		Body: view.Detail{
			ListingID: "1",
			Listing: view.NewListingView(model.Listing{
				ID:          "1",
				Title:       "Loft",
				Description: "Nice",
				Price:       100,
				Amenities:   []string{"wifi"},
				Reviews:     []model.Review{{Author: "bob", Text: "ok"}},
			}),
		},
	})

	assert.Contains(body, "<h1>Loft</h1>")
	assert.Contains(body, `<span id="price">100</span>`)
	assert.Contains(body, `<ul id="amenities"><li>wifi</li></ul>`)
	assert.Contains(body, `<ul id="reviews"><li>bob: ok</li></ul>`)
	assert.Contains(body, `id="add-review" href="/add_review.html?id=1" hidden>`)
}

func TestRender_placeEmptyLists(t *testing.T) {
	body := render(t, "place.html", &Data{
		Body: view.Detail{
			AddReviewVisible: true,
			ListingID:        "1",
			Listing:          view.NewListingView(model.Listing{ID: "1"}),
		},
	})

	assert.Contains(t, body, `<ul id="amenities"></ul>`)
	assert.Contains(t, body, `<ul id="reviews"></ul>`)
	assert.Contains(t, body, `id="add-review" href="/add_review.html?id=1">`)
}

func TestRender_placeFetchFailed(t *testing.T) {
	body := render(t, "place.html", &Data{Body: view.Detail{ListingID: "1"}})

	assert.Contains(t, body, `<section id="place-details">`)
	assert.NotContains(t, body, `id="amenities"`)
}

func TestRender_index(t *testing.T) {
	assert := assert.New(t)

	c := view.NewCatalog([]model.Listing{
		{ID: "1", Title: "Cheap", Price: 10},
		{ID: "2", Title: "Dear", Price: 250},
	})
	c.ApplyPriceFilter("100")

	body := render(t, "index.html", &Data{
		SignedIn: true,
		Viewer:   &model.Identity{Subject: "user-1"},
		Body:     c,
	})

	assert.Contains(body, `<span id="viewer">user-1</span>`)
	assert.Contains(body, `<form id="logout-form" method="post" action="/logout">`)
	assert.Contains(body, `id="login-link" href="/login.html" hidden>`)
	assert.Contains(body, `<article class="place-card" data-price="10">`)
	assert.Contains(body, `<article class="place-card" data-price="250" hidden>`)
	assert.Contains(body, `href="/place.html?id=1"`)
	assert.Contains(body, `<option value="100" selected>`)
	assert.NotContains(body, `id="place-details"`)
}

func TestRender_login(t *testing.T) {
	assert := assert.New(t)

	body := render(t, "login.html", &Data{Body: view.Login{}})
	assert.Contains(body, `<p id="error-message" hidden></p>`)

	body = render(t, "login.html", &Data{Body: view.Login{Email: "a@b.c", Message: "Login failed: <bad>"}})
	assert.Contains(body, `value="a@b.c"`)
	assert.Contains(body, "Login failed: &lt;bad&gt;")
}

func TestRender_addReview(t *testing.T) {
	assert := assert.New(t)

	body := render(t, "add_review.html", &Data{Body: view.AddReview{
		ListingID:   "42",
		FormVisible: true,
		State:       view.Failed,
		Message:     "Rating must be between 1 and 5.",
		Form:        view.ReviewForm{Text: "great place", Rating: "5"},
	}})
	assert.Contains(body, `<p id="review-message" class="failure">`)
	assert.Contains(body, `action="/add_review.html?id=42"`)
	assert.Contains(body, `<textarea id="review-text" name="text" required>great place</textarea>`)
	assert.Contains(body, `<option value="5" selected>`)

	body = render(t, "add_review.html", &Data{Body: view.AddReview{ListingID: "42"}})
	assert.NotContains(body, `id="review-form"`)
	assert.Contains(body, `id="login-link"`)
}
