package home

import (
	"net/http"

	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// RenderFunc renders a named full-page template.
type RenderFunc func(w http.ResponseWriter, r *http.Request, name string, data any)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Render RenderFunc
	Log    *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
		Log: logger,
	}
}

type card struct {
	Title       string
	Description string
	Icon        string
	URL         string
}

type homeData struct {
	viewdata.BaseVM
	Cards []card
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := homeData{
		BaseVM: viewdata.NewBaseVM(r, "Welcome"),
	}
	for _, res := range models.Resources {
		data.Cards = append(data.Cards, card{
			Title:       res.Title,
			Description: res.Description,
			Icon:        res.Icon,
			URL:         "/" + res.Slug,
		})
	}

	h.Render(w, r, "home", data)
}
