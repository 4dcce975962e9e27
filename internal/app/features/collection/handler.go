// internal/app/features/collection/handler.go
package collection

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/dataview"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Renderer renders full pages and HTMX partials.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, name string, data any)
	RenderSnippet(w http.ResponseWriter, name string, data any)
}

type pantryRenderer struct{}

func (pantryRenderer) Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

func (pantryRenderer) RenderSnippet(w http.ResponseWriter, name string, data any) {
	templates.RenderSnippet(w, name, data)
}

// RowsFunc maps fetched records to template rows.
type RowsFunc[T, R any] func(items []T, site models.SiteSettings) []R

// Handler serves one resource: the page shell and its table partial.
// T is the decoded API record and R the row the templates render.
type Handler[T, R any] struct {
	Resource models.Resource
	View     *dataview.View[T]
	Rows     RowsFunc[T, R]
	Render   Renderer
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a Handler that renders through the template engine.
func NewHandler[T, R any](res models.Resource, view *dataview.View[T], rows RowsFunc[T, R], errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler[T, R] {
	return &Handler[T, R]{
		Resource: res,
		View:     view,
		Rows:     rows,
		Render:   pantryRenderer{},
		ErrLog:   errLog,
		Log:      logger.With(zap.String("resource", res.Slug)),
	}
}

// Fetcher returns the fetch routine for a resource's API collection.
func Fetcher[T any](client *apiclient.Client, res models.Resource) dataview.FetchFunc[T] {
	return func(ctx context.Context) ([]T, error) {
		return apiclient.ListAs[T](ctx, client, res.APIPath)
	}
}

// PageTemplate is the full-page template name, e.g. "workouts_page".
func (h *Handler[T, R]) PageTemplate() string { return h.Resource.Slug + "_page" }

// BodyTemplate is the partial swapped into the page body, e.g. "workouts_body".
func (h *Handler[T, R]) BodyTemplate() string { return h.Resource.Slug + "_body" }

/*─────────────────────────────────────────────────────────────────────────────*
| GET /<resource> – page shell                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// ServePage renders the shell with a loading spinner. The body region
// requests the table partial as soon as htmx loads it.
func (h *Handler[T, R]) ServePage(w http.ResponseWriter, r *http.Request) {
	data := PageData[R]{
		BaseVM: viewdata.NewBaseVM(r, h.Resource.Title),
		Body:   h.body(dataview.Snapshot[T]{State: dataview.StateLoading}),
	}
	h.Render.Render(w, r, h.PageTemplate(), data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /<resource>/table – fetch cycle + partial                               |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeTable runs a fetch cycle and renders its outcome. HTMX requests get
// the body partial; plain requests get the full page already populated.
func (h *Handler[T, R]) ServeTable(w http.ResponseWriter, r *http.Request) {
	snap, err := h.View.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, dataview.ErrClosed) {
			h.ErrLog.LogServerError(w, r, "view closed during refresh", err,
				"The dashboard is shutting down. Please try again shortly.", "/")
			return
		}
		// The client went away before the fetch settled; nobody to answer.
		h.Log.Debug("table request ended before fetch settled",
			zap.Uint64("generation", snap.Generation), zap.Error(err))
		return
	}

	body := h.body(snap)
	if IsHTMX(r) {
		h.Render.RenderSnippet(w, h.BodyTemplate(), body)
		return
	}

	data := PageData[R]{
		BaseVM:    viewdata.NewBaseVM(r, h.Resource.Title),
		Body:      body,
		Populated: true,
	}
	h.Render.Render(w, r, h.PageTemplate(), data)
}

func (h *Handler[T, R]) body(snap dataview.Snapshot[T]) BodyData[R] {
	data := BodyData[R]{
		Resource:   h.Resource,
		TableURL:   "/" + h.Resource.Slug + "/table",
		State:      snap.State.String(),
		Loading:    snap.State == dataview.StateLoading,
		Error:      snap.Err,
		Empty:      snap.Empty(),
		Generation: snap.Generation,
	}
	if snap.State == dataview.StateSuccess {
		data.Rows = h.Rows(snap.Items, viewdata.Settings())
	}
	if !snap.FetchedAt.IsZero() {
		data.Updated = snap.FetchedAt.Format("15:04:05")
	}
	return data
}

// IsHTMX reports whether r was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
