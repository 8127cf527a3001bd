package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is returned after a backend answered 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrLoginRequired is returned when an action needs a session and none is held.
	ErrLoginRequired = errors.New("login required")
)

// RequestError is a non-2xx answer other than 401.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsStatus reports whether err is a RequestError with the given status.
func IsStatus(err error, statusCode int) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == statusCode
}
