package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// response is a canned upstream reply.
type response struct {
	status int
	body   string
}

// Upstream is a fake OctoFit REST API backed by httptest.
type Upstream struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]response
	hits      map[string]int
}

// NewUpstream starts a fake API. Unknown paths answer 404. The server is
// closed when the test ends.
func NewUpstream(t testing.TB) *Upstream {
	t.Helper()
	u := &Upstream{
		responses: make(map[string]response),
		hits:      make(map[string]int),
	}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Close)
	return u
}

// Set registers the reply for /api/<resource>/.
func (u *Upstream) Set(resource string, status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.responses[APIPath(resource)] = response{status: status, body: body}
}

// Hits reports how many times /api/<resource>/ was requested.
func (u *Upstream) Hits(resource string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hits[APIPath(resource)]
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.hits[r.URL.Path]++
	resp, ok := u.responses[r.URL.Path]
	u.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

// APIPath returns the upstream path for a resource.
func APIPath(resource string) string {
	return "/api/" + resource + "/"
}
