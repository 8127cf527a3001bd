package mock

import "net/http/httptest"

// HTTPTestServer serves a Backend over a local listener; all four service
// base URLs point at URL.
type HTTPTestServer struct {
	*Backend
	Server *httptest.Server
	URL    string
}

// NewHTTPTestServer starts a backend on a random local port.
func NewHTTPTestServer(options ...Option) *HTTPTestServer {
	backend := New(options...)
	ret := &HTTPTestServer{Backend: backend}
	ret.Server = httptest.NewServer(backend.Handler())
	ret.URL = ret.Server.URL
	return ret
}

func (s *HTTPTestServer) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.Server = nil
}
