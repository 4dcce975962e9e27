// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message string
	BackURL string
}

// RenderFunc renders a named full-page template.
type RenderFunc func(w http.ResponseWriter, r *http.Request, name string, data any)

func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

// Handler is the errors feature handler.
// No upstream needed; it just renders templates.
type Handler struct {
	Render RenderFunc
}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{Render: renderPage}
}

// NotFound renders the 404 page for unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found"),
		Status:  http.StatusNotFound,
		Message: "The page you were looking for does not exist.",
		BackURL: "/",
	}

	w.WriteHeader(http.StatusNotFound)
	h.Render(w, r, "error_page", data)
}

// RenderServerError writes a 500 page with a user-facing message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderServerError(w http.ResponseWriter, r *http.Request, render RenderFunc, userMsg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	if render == nil {
		render = renderPage
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong"),
		Status:  http.StatusInternalServerError,
		Message: userMsg,
		BackURL: backURL,
	}

	w.WriteHeader(http.StatusInternalServerError)
	render(w, r, "error_page", data)
}
