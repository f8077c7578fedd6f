// Package session persists the credential of one browsing context.
package session

import (
	"errors"
	"net/http"
)

var (
	ErrEmptyCredential = errors.New("empty credential")
)

// Store is the credential of the browser behind one request. A value set
// is visible to every later Get on the same Store.
type Store interface {
	Get() (credential string, ok bool)
	Set(credential string) error
	// Clear forgets the credential. Only logout uses it.
	Clear() error
}

// Provider hands out a Store per request.
type Provider interface {
	Bind(w http.ResponseWriter, r *http.Request) Store
	// Wrap loads and saves whatever the provider keeps per request. Bind
	// must only be called inside it.
	Wrap(next http.Handler) http.Handler
}
