package service

import (
	"errors"
	"fmt"
	"github.com/viant/afs/url"
	neturl "net/url"
	"strings"
)

// ValidationError reports a request rejected before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid creates a ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// Endpoint joins base URL and path elements; elements are path-escaped.
func Endpoint(baseURL string, elements ...string) string {
	escaped := make([]string, 0, len(elements))
	for _, element := range elements {
		escaped = append(escaped, neturl.PathEscape(element))
	}
	return url.Join(strings.TrimRight(baseURL, "/"), escaped...)
}

// RequireID validates a non-empty identifier.
func RequireID(field, id string) error {
	if id == "" {
		return Invalid(field, "is required")
	}
	return nil
}
