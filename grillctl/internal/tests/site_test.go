package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"mikes-grill/grillctl/internal/api"
	"mikes-grill/grillctl/internal/session"
	"mikes-grill/grillctl/internal/views"

	"github.com/stretchr/testify/require"
)

// fakeSite is a stand-in grill server that records every request it sees.
type fakeSite struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []recorded
}

type recorded struct {
	Route  string
	Body   []byte
	Cookie string
}

func newFakeSite(t *testing.T) *fakeSite {
	s := &fakeSite{t: t, routes: map[string]http.HandlerFunc{}}
	s.server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.server.Close)
	return s
}

func (s *fakeSite) serve(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))

	rec := recorded{Route: route, Body: body}
	if c, err := r.Cookie(api.SessionCookieName); err == nil {
		rec.Cookie = c.Value
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	handler, ok := s.routes[route]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	handler(w, r)
}

func (s *fakeSite) handle(route string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[route] = handler
}

func (s *fakeSite) reply(route string, status int, body interface{}) {
	s.handle(route, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	})
}

func (s *fakeSite) count(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Route == route {
			n++
		}
	}
	return n
}

func (s *fakeSite) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *fakeSite) last(route string) recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Route == route {
			return s.requests[i]
		}
	}
	s.t.Fatalf("no request to %s", route)
	return recorded{}
}

// newStore returns an empty session store under the test's temp dir.
func newStore(t *testing.T) *session.Store {
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

// loggedIn returns a store holding mike's session with token "tok".
func loggedIn(t *testing.T) *session.Store {
	store := newStore(t)
	require.NoError(t, store.Save(session.Session{Username: "mike", Token: "tok"}))
	return store
}

func (s *fakeSite) client(store session.Loader) *api.Client {
	return api.NewClient(s.server.URL, store)
}

var (
	alwaysYes = views.ConfirmFunc(func(string) bool { return true })
	alwaysNo  = views.ConfirmFunc(func(string) bool { return false })
)
