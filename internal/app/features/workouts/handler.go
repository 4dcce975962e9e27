// internal/app/features/workouts/handler.go
package workouts

import (
	"github.com/dalemusser/octofit/internal/app/features/collection"
	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/dataview"
	"github.com/dalemusser/octofit/internal/app/system/display"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves /workouts.
type Handler = collection.Handler[models.Workout, Row]

var resource = models.MustResource(models.ResourceWorkouts)

// NewView creates the workouts view backed by /api/workouts/.
func NewView(client *apiclient.Client, logger *zap.Logger) *dataview.View[models.Workout] {
	return dataview.New[models.Workout](resource.Slug, collection.Fetcher[models.Workout](client, resource), logger)
}

func NewHandler(view *dataview.View[models.Workout], errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return collection.NewHandler[models.Workout, Row](resource, view, rows, errLog, logger)
}

func rows(items []models.Workout, _ models.SiteSettings) []Row {
	out := make([]Row, 0, len(items))
	for i, w := range items {
		out = append(out, Row{
			Key:             display.RowKey(w.ID, i),
			ID:              w.ID.String(),
			Name:            w.Name.String(),
			Description:     w.Description.String(),
			Duration:        w.Duration.String(),
			Difficulty:      w.Difficulty.String(),
			DifficultyClass: display.DifficultyBadge(w.DifficultyLevel()),
		})
	}
	return out
}
