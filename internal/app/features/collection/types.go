// internal/app/features/collection/types.go
package collection

import (
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
)

// BodyData is the view model for a resource's body partial.
type BodyData[R any] struct {
	Resource   models.Resource
	TableURL   string
	State      string
	Loading    bool
	Error      string
	Rows       []R
	Empty      bool
	Generation uint64
	Updated    string // wall-clock time of the last settled fetch
}

// PageData is the view model for a resource's full page.
type PageData[R any] struct {
	viewdata.BaseVM
	Body BodyData[R]

	// Populated is set when the body was fetched server-side, so the page
	// must not request it again on load.
	Populated bool
}
