// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/dataview"
)

// DBDeps holds back-end dependencies for the app. The dashboard has no
// database of its own; its only backend is the OctoFit REST API.
type DBDeps struct {
	API   *apiclient.Client
	Views *dataview.Set // every resource view, closed on shutdown
}
