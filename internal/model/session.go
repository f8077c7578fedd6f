package model

import "time"

// Session is what the scs backends keep for one browser.
type Session struct {
	Credential string
}

// Identity is the signed-in user as far as the credential tells.
type Identity struct {
	Subject   string
	Admin     bool
	ExpiresAt time.Time
}
