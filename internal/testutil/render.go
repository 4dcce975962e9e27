package testutil

import (
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"testing"
)

// RenderCall records one template render.
type RenderCall struct {
	Name    string
	Data    any
	Snippet bool
}

// CaptureRenderer records render calls and, when built with template
// filesystems, executes the named template into the response.
type CaptureRenderer struct {
	t    testing.TB
	tmpl *template.Template

	mu    sync.Mutex
	calls []RenderCall
}

// NewCaptureRenderer parses templates/*.gohtml from every fsys into one
// template set. With no fsys it only records calls.
func NewCaptureRenderer(t testing.TB, fsys ...fs.FS) *CaptureRenderer {
	t.Helper()
	c := &CaptureRenderer{t: t}
	if len(fsys) == 0 {
		return c
	}
	tmpl := template.New("test")
	for _, f := range fsys {
		var err error
		tmpl, err = tmpl.ParseFS(f, "templates/*.gohtml")
		if err != nil {
			t.Fatalf("parse templates: %v", err)
		}
	}
	c.tmpl = tmpl
	return c
}

// Render records a full-page render.
func (c *CaptureRenderer) Render(w http.ResponseWriter, _ *http.Request, name string, data any) {
	c.record(w, RenderCall{Name: name, Data: data})
}

// RenderSnippet records a partial render.
func (c *CaptureRenderer) RenderSnippet(w http.ResponseWriter, name string, data any) {
	c.record(w, RenderCall{Name: name, Data: data, Snippet: true})
}

// RenderPage adapts the renderer to a plain render function.
func (c *CaptureRenderer) RenderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	c.Render(w, r, name, data)
}

func (c *CaptureRenderer) record(w http.ResponseWriter, call RenderCall) {
	c.mu.Lock()
	c.calls = append(c.calls, call)
	c.mu.Unlock()

	if c.tmpl == nil {
		return
	}
	if err := c.tmpl.ExecuteTemplate(w, call.Name, call.Data); err != nil {
		c.t.Errorf("execute %s: %v", call.Name, err)
	}
}

// Calls returns every recorded render in order.
func (c *CaptureRenderer) Calls() []RenderCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]RenderCall(nil), c.calls...)
}

// Last returns the most recent render. It fails the test if nothing was rendered.
func (c *CaptureRenderer) Last() RenderCall {
	c.t.Helper()
	calls := c.Calls()
	if len(calls) == 0 {
		c.t.Fatalf("no template was rendered")
		return RenderCall{}
	}
	return calls[len(calls)-1]
}
