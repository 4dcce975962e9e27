// internal/app/features/users/handler.go
package users

import (
	"github.com/dalemusser/octofit/internal/app/features/collection"
	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/dataview"
	"github.com/dalemusser/octofit/internal/app/system/display"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves /users.
type Handler = collection.Handler[models.User, Row]

var resource = models.MustResource(models.ResourceUsers)

// NewView creates the users view backed by /api/users/.
func NewView(client *apiclient.Client, logger *zap.Logger) *dataview.View[models.User] {
	return dataview.New[models.User](resource.Slug, collection.Fetcher[models.User](client, resource), logger)
}

func NewHandler(view *dataview.View[models.User], errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return collection.NewHandler[models.User, Row](resource, view, rows, errLog, logger)
}

func rows(items []models.User, _ models.SiteSettings) []Row {
	out := make([]Row, 0, len(items))
	for i, u := range items {
		email := u.Email.String()
		row := Row{
			Key:      display.RowKey(u.ID, i),
			ID:       u.ID.String(),
			Username: u.Username.String(),
			Email:    email,
			FullName: u.FullName(),
		}
		if email != "" {
			row.Mailto = "mailto:" + email
		}
		out = append(out, row)
	}
	return out
}
