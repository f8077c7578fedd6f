package session

import (
	"net/http"
	"strings"
)

// CookieProvider keeps the credential in a browser cookie, token=<value>
// with path / and no expiry.
type CookieProvider struct {
	Name     string
	Path     string
	Secure   bool
	HTTPOnly bool
}

func (p *CookieProvider) Wrap(next http.Handler) http.Handler {
	return next
}

func (p *CookieProvider) Bind(w http.ResponseWriter, r *http.Request) Store {
	return &cookieStore{
		provider: p,
		w:        w,
		header:   strings.Join(r.Header.Values("Cookie"), "; "),
	}
}

type cookieStore struct {
	provider *CookieProvider
	w        http.ResponseWriter
	header   string

	// written is set once Set or Clear ran, value then overrides the header.
	written bool
	value   string
}

func (s *cookieStore) Get() (string, bool) {
	if s.written {
		return s.value, s.value != ""
	}
	return lookup(s.header, s.provider.Name)
}

func (s *cookieStore) Set(credential string) error {
	if credential == "" {
		return ErrEmptyCredential
	}

	http.SetCookie(s.w, s.cookie(credential))
	s.written = true
	s.value = credential
	return nil
}

func (s *cookieStore) Clear() error {
	c := s.cookie("")
	c.MaxAge = -1
	http.SetCookie(s.w, c)
	s.written = true
	s.value = ""
	return nil
}

func (s *cookieStore) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     s.provider.Name,
		Value:    value,
		Path:     s.provider.Path,
		Secure:   s.provider.Secure,
		HttpOnly: s.provider.HTTPOnly,
		SameSite: http.SameSiteLaxMode,
	}
}

// lookup finds name=<value> among the ;-delimited pairs of a Cookie header.
// An empty value counts as absent.
func lookup(header, name string) (string, bool) {
	prefix := name + "="
	for _, pair := range strings.Split(header, ";") {
		pair = strings.TrimSpace(pair)
		if !strings.HasPrefix(pair, prefix) {
			continue
		}
		value := strings.Trim(pair[len(prefix):], `"`)
		return value, value != ""
	}
	return "", false
}
