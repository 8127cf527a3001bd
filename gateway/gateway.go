package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/viant/storefront/session"
	"io"
	"net/http"
	"strings"
)

const maxErrorBody = 4096

// Request describes one call; it is built per call and never stored.
type Request struct {
	Method string
	URL    string
	// Body is encoded as JSON when not nil.
	Body   interface{}
	Header http.Header
	// Public requests carry no bearer token and do not end the session on 401.
	Public bool
}

// Gateway performs storefront HTTP calls through the authenticating RoundTripper.
type Gateway struct {
	transport *RoundTripper
	client    *http.Client
}

// New creates a gateway.
func New(options ...Option) *Gateway {
	rt := NewRoundTripper(options...)
	return &Gateway{
		transport: rt,
		client:    &http.Client{Transport: rt},
	}
}

// Store returns the session store used for bearer tokens.
func (g *Gateway) Store() session.Store {
	return g.transport.store
}

// Navigator returns the configured navigator.
func (g *Gateway) Navigator() Navigator {
	return g.transport.navigator
}

// RequireSession fails with ErrLoginRequired, and asks for the login page,
// when no access token is available. No request is issued.
func (g *Gateway) RequireSession(ctx context.Context) error {
	if g.transport.token(ctx) != "" {
		return nil
	}
	g.transport.navigator.Navigate(ctx, Redirect{Route: RouteLogin})
	return ErrLoginRequired
}

// Do performs a single attempt and returns the raw response. A 401 on a
// non-public request yields ErrUnauthorized and a cleared session.
func (g *Gateway) Do(ctx context.Context, request *Request) (*http.Response, error) {
	var body io.Reader
	if request.Body != nil {
		data, err := json.Marshal(request.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s request: %w", request.Method, request.URL, err)
		}
		body = bytes.NewReader(data)
	}
	if request.Public {
		ctx = WithAnonymous(ctx)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, request.Method, request.URL, body)
	if err != nil {
		return nil, err
	}
	for k, values := range request.Header {
		for _, v := range values {
			httpRequest.Header.Add(k, v)
		}
	}
	resp, err := g.client.Do(httpRequest)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%s %s: %w", request.Method, request.URL, err)
	}
	return resp, nil
}

// JSON performs the call, maps non-2xx answers to *RequestError and decodes a
// non-empty body into out when out is not nil.
func (g *Gateway) JSON(ctx context.Context, request *Request, out interface{}) error {
	resp, err := g.Do(ctx, request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{
			Method:     request.Method,
			URL:        request.URL,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s response: %w", request.Method, request.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", request.Method, request.URL, err)
	}
	return nil
}

// errorMessage extracts a human readable message from an error body.
func errorMessage(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(data))
}
