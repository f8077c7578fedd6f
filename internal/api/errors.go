package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrUnreachable means no response reached us.
	ErrUnreachable = errors.New("api unreachable")
	// ErrBadResponse means a success response whose body could not be used.
	ErrBadResponse  = errors.New("unexpected api response")
	ErrMissingToken = errors.New("login response has no access_token")
)

// StatusError is a non-success response from the api.
type StatusError struct {
	Status     int
	StatusText string
	// Message is the error the api put in the body, if any.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.StatusText
}

func newStatusError(resp *http.Response, body []byte) *StatusError {
	return &StatusError{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		Message:    errorMessage(body),
	}
}

// statusText strips the code from resp.Status ("401 UNAUTHORIZED" becomes
// "UNAUTHORIZED").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func errorMessage(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Error, &s); err == nil && s != "" {
		return s
	}
	return payload.Message
}
