package gateway

import (
	"context"
	"github.com/google/uuid"
	"github.com/viant/storefront/session"
	"golang.org/x/oauth2"
	"log/slog"
	"net/http"
	"time"
)

const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-Id"
	ContentTypeJSON   = "application/json"
)

// RoundTripper decorates requests with the session bearer token and turns a
// 401 answer into a cleared session and ErrUnauthorized.
type RoundTripper struct {
	store     session.Store
	navigator Navigator
	transport http.RoundTripper
	logger    *slog.Logger
}

func NewRoundTripper(options ...Option) *RoundTripper {
	ret := &RoundTripper{
		store:     session.NewMemoryStore(),
		navigator: nopNavigator{},
		transport: http.DefaultTransport,
		logger:    slog.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (r *RoundTripper) Store() session.Store {
	return r.store
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	outgoing := req.Clone(ctx)
	if outgoing.Header.Get(HeaderContentType) == "" {
		outgoing.Header.Set(HeaderContentType, ContentTypeJSON)
	}
	requestID := outgoing.Header.Get(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
		outgoing.Header.Set(HeaderRequestID, requestID)
	}
	anonymous := isAnonymous(ctx)
	if !anonymous {
		if token := r.token(ctx); token != "" {
			(&oauth2.Token{AccessToken: token}).SetAuthHeader(outgoing)
		}
	}

	started := time.Now()
	resp, err := r.transport.RoundTrip(outgoing)
	if err != nil {
		r.logger.DebugContext(ctx, "storefront request failed", "method", outgoing.Method, "url", outgoing.URL.String(), "request_id", requestID, "error", err)
		return nil, err
	}
	r.logger.DebugContext(ctx, "storefront request", "method", outgoing.Method, "url", outgoing.URL.String(), "request_id", requestID, "status", resp.StatusCode, "elapsed", time.Since(started))

	if anonymous || resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	// Close the body so we don't leak; the caller never sees this response.
	_ = resp.Body.Close()
	r.expire(ctx)
	return nil, ErrUnauthorized
}

func (r *RoundTripper) token(ctx context.Context) string {
	if token, ok := getToken(ctx); ok {
		return token
	}
	token, _ := r.store.LookupToken(ctx)
	return token
}

// expire ends the session: Authenticated -> Anonymous.
func (r *RoundTripper) expire(ctx context.Context) {
	if err := r.store.Clear(ctx); err != nil {
		r.logger.WarnContext(ctx, "failed to clear session", "error", err)
	}
	r.navigator.Navigate(ctx, Redirect{Route: RouteLogin})
}
