package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghaggin/hbnb-web/internal/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRateLimiter_Limit(t *testing.T) {
	assert := assert.New(t)

	rl := NewRateLimiter(0.001, 2)
	defer rl.Close()

	onlyPost := func(r *http.Request) bool { return r.Method == http.MethodPost }
	handler := rl.Limit(onlyPost)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(method, addr string) int {
		r := httptest.NewRequest(method, "/login.html", nil)
		r.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, r)
		return rr.Code
	}

	assert.Equal(http.StatusNoContent, do(http.MethodPost, "10.0.0.1:1234"))
	assert.Equal(http.StatusNoContent, do(http.MethodPost, "10.0.0.1:1235"))
	assert.Equal(http.StatusTooManyRequests, do(http.MethodPost, "10.0.0.1:1236"))

	// other clients and unmatched requests are unaffected
	assert.Equal(http.StatusNoContent, do(http.MethodPost, "10.0.0.2:1234"))
	assert.Equal(http.StatusNoContent, do(http.MethodGet, "10.0.0.1:1237"))
}

func TestRateLimiter_CloseTwice(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Close()
	assert.NotPanics(t, rl.Close)
}

func TestActivationAndLogger(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	core, logs := observer.New(zap.InfoLevel)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = page.ActivationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	handler := Activation(Logger(zap.New(core))(next))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/index.html", nil))

	assert.NotEmpty(seen)
	assert.Equal(seen, rr.Header().Get(activationHeader))

	entries := logs.FilterMessage("request").All()
	require.Len(entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal("/index.html", fields["path"])
	assert.EqualValues(http.StatusTeapot, fields["status"])
	assert.Equal(seen, fields["activation"])
}

func TestSessionManager(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	sm := NewSessionManager(SessionOptions{CookieName: "hbnb_session", CookiePath: "/", HTTPOnly: true})

	login := sm.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := sm.Get(r.Context())
		assert.ErrorIs(err, errSessionNotFound)
		assert.NoError(sm.SetCredential(r.Context(), "abc"))
	}))

	rr := httptest.NewRecorder()
	login.ServeHTTP(rr, httptest.NewRequest("POST", "/login.html", nil))

	cookies := rr.Result().Cookies()
	require.Len(cookies, 1)
	assert.Equal("hbnb_session", cookies[0].Name)

	var got string
	read := sm.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := sm.Get(r.Context())
		require.NoError(err)
		got = s.Credential
	}))

	r := httptest.NewRequest("GET", "/index.html", nil)
	r.AddCookie(cookies[0])
	read.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal("abc", got)
}
