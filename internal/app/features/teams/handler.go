// internal/app/features/teams/handler.go
package teams

import (
	"github.com/dalemusser/octofit/internal/app/features/collection"
	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/dataview"
	"github.com/dalemusser/octofit/internal/app/system/display"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves /teams as a card grid.
type Handler = collection.Handler[models.Team, Card]

var resource = models.MustResource(models.ResourceTeams)

// NewView creates the teams view backed by /api/teams/.
func NewView(client *apiclient.Client, logger *zap.Logger) *dataview.View[models.Team] {
	return dataview.New[models.Team](resource.Slug, collection.Fetcher[models.Team](client, resource), logger)
}

func NewHandler(view *dataview.View[models.Team], errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return collection.NewHandler[models.Team, Card](resource, view, cards, errLog, logger)
}

func cards(items []models.Team, _ models.SiteSettings) []Card {
	out := make([]Card, 0, len(items))
	for i, t := range items {
		out = append(out, Card{
			Key:         display.RowKey(t.ID, i),
			Name:        t.Name.String(),
			Description: t.Description.String(),
			Members:     display.MemberLabel(t.MemberCount()),
		})
	}
	return out
}
