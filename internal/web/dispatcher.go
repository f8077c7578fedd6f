package web

import (
	"net/http"
	"strconv"

	"github.com/ghaggin/hbnb-web/internal/controller"
	"github.com/ghaggin/hbnb-web/internal/page"
	"github.com/ghaggin/hbnb-web/internal/session"
	"github.com/ghaggin/hbnb-web/internal/template"
	"github.com/ghaggin/hbnb-web/internal/view"
	"go.uber.org/zap"
)

// API is the part of the hbnb api the pages use.
type API interface {
	controller.Authenticator
	controller.PlaceLister
	controller.PlaceGetter
	controller.ReviewCreator
}

// Dispatcher activates the component for the requested page. Each request
// is one activation with its own session binding.
type Dispatcher struct {
	api      API
	sessions session.Provider
	log      *zap.Logger
}

func NewDispatcher(a API, sessions session.Provider, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		api:      a,
		sessions: sessions,
		log:      log.Named("page"),
	}
}

type activation struct {
	w     http.ResponseWriter
	r     *http.Request
	page  page.Context
	store session.Store
	log   *zap.Logger
}

func (d *Dispatcher) activate(w http.ResponseWriter, r *http.Request) *activation {
	pc := page.NewContext(r)
	return &activation{
		w:     w,
		r:     r,
		page:  pc,
		store: d.sessions.Bind(w, r),
		log: d.log.With(
			zap.String("page", pc.Identity().String()),
			zap.String("activation", pc.ActivationID()),
		),
	}
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a := d.activate(w, r)

	switch a.page.Identity() {
	case page.Login:
		d.login(a)
	case page.Index:
		d.index(a)
	case page.Place:
		d.place(a)
	case page.AddReview:
		d.addReview(a)
	default:
		http.NotFound(w, r)
	}
}

// Logout drops the credential and goes back to the landing page.
func (d *Dispatcher) Logout(w http.ResponseWriter, r *http.Request) {
	a := d.activate(w, r)
	if err := a.store.Clear(); err != nil {
		a.log.Error("clearing session", zap.Error(err))
	}
	http.Redirect(w, r, page.LandingPath, http.StatusSeeOther)
}

func (d *Dispatcher) login(a *activation) {
	switch a.r.Method {
	case http.MethodGet, http.MethodHead:
		a.render("login.html", "Login", view.Login{})

	case http.MethodPost:
		if err := a.r.ParseForm(); err != nil {
			http.Error(a.w, "bad form", http.StatusBadRequest)
			return
		}
		email := a.r.PostFormValue("email")

		res := controller.NewAuth(d.api, a.store, a.log).Submit(a.r.Context(), email, a.r.PostFormValue("password"))
		if res.Redirect != "" {
			http.Redirect(a.w, a.r, res.Redirect, http.StatusSeeOther)
			return
		}
		a.render("login.html", "Login", view.Login{Email: email, Message: res.Message})

	default:
		methodNotAllowed(a.w, "GET, POST")
	}
}

func (d *Dispatcher) index(a *activation) {
	if !isRead(a.r) {
		methodNotAllowed(a.w, "GET")
		return
	}

	out := controller.NewCatalog(d.api, a.store, a.log).Initialize(a.r.Context())
	out.ApplyPriceFilter(a.page.Query("price"))

	if id := a.page.ListingID(); id != "" {
		detail := controller.NewDetail(d.api, a.store, id, a.log).Initialize(a.r.Context())
		out.Detail = &detail
	}

	a.render("index.html", "Places", out)
}

func (d *Dispatcher) place(a *activation) {
	if !isRead(a.r) {
		methodNotAllowed(a.w, "GET")
		return
	}

	out := controller.NewDetail(d.api, a.store, a.page.ListingID(), a.log).Initialize(a.r.Context())

	title := "Place"
	if out.Listing != nil {
		title = out.Listing.Title
	}
	a.render("place.html", title, out)
}

func (d *Dispatcher) addReview(a *activation) {
	s := controller.NewReviewSubmitter(d.api, a.store, a.page.ListingID(), a.log)

	switch a.r.Method {
	case http.MethodGet, http.MethodHead:
		a.render("add_review.html", "Add review", s.Form())

	case http.MethodPost:
		if err := a.r.ParseForm(); err != nil {
			http.Error(a.w, "bad form", http.StatusBadRequest)
			return
		}

		// an unparsable rating is left at zero and rejected by Submit
		rating, _ := strconv.Atoi(a.r.PostFormValue("rating"))
		out := s.Submit(a.r.Context(), a.r.PostFormValue("text"), rating)
		a.render("add_review.html", "Add review", out)

	default:
		methodNotAllowed(a.w, "GET, POST")
	}
}

func (a *activation) render(tmpl, title string, body any) {
	td := &template.Data{
		PageTitle: title,
		Body:      body,
	}

	if token, ok := a.store.Get(); ok {
		td.SignedIn = true
		if id, ok := session.Describe(token); ok {
			td.Viewer = &id
		}
	}

	if err := template.Render(a.w, a.r, tmpl, td); err != nil {
		a.log.Error("rendering page", zap.String("template", tmpl), zap.Error(err))
		http.Error(a.w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func isRead(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
