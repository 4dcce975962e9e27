// internal/app/features/leaderboard/handler.go
package leaderboard

import (
	"github.com/dalemusser/octofit/internal/app/features/collection"
	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/dataview"
	"github.com/dalemusser/octofit/internal/app/system/display"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves /leaderboard.
type Handler = collection.Handler[models.LeaderboardEntry, Row]

var resource = models.MustResource(models.ResourceLeaderboard)

// NewView creates the leaderboard view backed by /api/leaderboard/.
func NewView(client *apiclient.Client, logger *zap.Logger) *dataview.View[models.LeaderboardEntry] {
	return dataview.New[models.LeaderboardEntry](resource.Slug, collection.Fetcher[models.LeaderboardEntry](client, resource), logger)
}

func NewHandler(view *dataview.View[models.LeaderboardEntry], errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return collection.NewHandler[models.LeaderboardEntry, Row](resource, view, rows, errLog, logger)
}

// rows ranks entries by their position in the response; the API orders them.
func rows(items []models.LeaderboardEntry, _ models.SiteSettings) []Row {
	out := make([]Row, 0, len(items))
	for i, e := range items {
		out = append(out, Row{
			Key:        display.RowKey(e.ID, i),
			Medal:      display.Medal(i),
			Rank:       display.RankLabel(i),
			RowClass:   display.RankRowClass(i),
			User:       e.User.String(),
			Team:       e.Team.String(),
			Points:     e.TotalPoints.String(),
			Activities: e.ActivitiesCount.String(),
		})
	}
	return out
}
