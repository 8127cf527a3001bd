package gateway

import (
	"github.com/viant/storefront/session"
	"log/slog"
	"net/http"
)

type Option func(*RoundTripper)

// WithStore sets the session store
func WithStore(store session.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithNavigator sets the navigator notified on 401 and missing sessions
func WithNavigator(navigator Navigator) Option {
	return func(t *RoundTripper) {
		if navigator != nil {
			t.navigator = navigator
		}
	}
}

// WithTransport sets the underlying transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		if transport != nil {
			t.transport = transport
		}
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(t *RoundTripper) {
		if logger != nil {
			t.logger = logger
		}
	}
}
