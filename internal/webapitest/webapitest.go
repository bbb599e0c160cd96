// Package webapitest provides a fixture backed stand-in for the Steam WebAPI host.
package webapitest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
)

type route struct {
	status int
	body   string
}

// Server answers GET requests for registered paths with fixed bodies and records every query it receives.
type Server struct {
	*httptest.Server
	mu      sync.Mutex
	routes  map[string]route
	queries map[string][]url.Values
}

// New starts a server answering each path in fixtures with a 200 and the given body. The server is closed
// when the test finishes.
func New(t *testing.T, fixtures map[string]string) *Server {
	t.Helper()

	server := &Server{
		routes:  map[string]route{},
		queries: map[string][]url.Values{},
	}

	for path, body := range fixtures {
		server.routes[path] = route{status: http.StatusOK, body: body}
	}

	server.Server = httptest.NewServer(http.HandlerFunc(server.handle))
	t.Cleanup(server.Close)

	return server
}

func (s *Server) handle(writer http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	s.queries[req.URL.Path] = append(s.queries[req.URL.Path], req.URL.Query())
	current, found := s.routes[req.URL.Path]
	s.mu.Unlock()

	if req.Method != http.MethodGet {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)

		return
	}

	if !found {
		http.NotFound(writer, req)

		return
	}

	writer.Header().Set("Content-Type", "application/json; charset=UTF-8")
	writer.WriteHeader(current.status)
	_, _ = writer.Write([]byte(current.body))
}

// Respond replaces the answer for path.
func (s *Server) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.routes[path] = route{status: status, body: body}
}

// APIClient returns a webapi client pointed at the server.
func (s *Server) APIClient() *webapi.Client {
	return s.APIClientWith(webapi.Config{})
}

// APIClientWith returns a webapi client pointed at the server, overriding the base url in cfg.
func (s *Server) APIClientWith(cfg webapi.Config) *webapi.Client {
	cfg.BaseURL = s.URL

	return webapi.New(cfg)
}

// Queries returns every query string received for path, in arrival order.
func (s *Server) Queries(path string) []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]url.Values(nil), s.queries[path]...)
}

// LastQuery returns the most recent query string received for path, or nil.
func (s *Server) LastQuery(path string) url.Values {
	queries := s.Queries(path)
	if len(queries) == 0 {
		return nil
	}

	return queries[len(queries)-1]
}
