// internal/app/features/activities/handler.go
package activities

import (
	"time"

	"github.com/dalemusser/octofit/internal/app/features/collection"
	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/dataview"
	"github.com/dalemusser/octofit/internal/app/system/display"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves /activities.
type Handler = collection.Handler[models.Activity, Row]

var resource = models.MustResource(models.ResourceActivities)

// NewView creates the activities view backed by /api/activities/.
func NewView(client *apiclient.Client, logger *zap.Logger) *dataview.View[models.Activity] {
	return dataview.New[models.Activity](resource.Slug, collection.Fetcher[models.Activity](client, resource), logger)
}

func NewHandler(view *dataview.View[models.Activity], errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return collection.NewHandler[models.Activity, Row](resource, view, rows, errLog, logger)
}

// rows formats timestamps in the server's local zone.
func rows(items []models.Activity, site models.SiteSettings) []Row {
	out := make([]Row, 0, len(items))
	for i, a := range items {
		out = append(out, Row{
			Key:          display.RowKey(a.ID, i),
			ID:           a.ID.String(),
			User:         a.User.String(),
			ActivityType: a.ActivityType.String(),
			Duration:     a.Duration.String(),
			Calories:     a.CaloriesBurned.String(),
			Date:         display.FormatDate(a.Date.String(), site.DateLayout, time.Local),
		})
	}
	return out
}
