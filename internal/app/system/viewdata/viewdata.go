// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"strings"
	"sync"

	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// NavItem is one entry in the top navigation bar.
type NavItem struct {
	Title  string
	URL    string
	Icon   string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title"),
//	}
type BaseVM struct {
	// Site settings (from configuration)
	SiteName   string
	FooterHTML template.HTML

	// Page context
	Title       string
	CurrentPath string
	Nav         []NavItem
}

var (
	settingsMu sync.RWMutex
	settings   = models.SiteSettings{
		SiteName:   models.DefaultSiteName,
		DateLayout: models.DefaultDateLayout,
	}
)

// Init stores the site settings used by every page.
// Call this once at startup from bootstrap.
func Init(s models.SiteSettings) {
	if s.SiteName == "" {
		s.SiteName = models.DefaultSiteName
	}
	if s.DateLayout == "" {
		s.DateLayout = models.DefaultDateLayout
	}
	settingsMu.Lock()
	settings = s
	settingsMu.Unlock()
}

// Settings returns the current site settings.
func Settings() models.SiteSettings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	s := Settings()
	current := httpnav.CurrentPath(r)
	return BaseVM{
		SiteName:    s.SiteName,
		FooterHTML:  s.FooterHTML,
		Title:       title,
		CurrentPath: current,
		Nav:         Nav(current),
	}
}

// Nav builds the navigation bar, marking the entry that owns current.
func Nav(current string) []NavItem {
	items := make([]NavItem, 0, len(models.Resources))
	for _, res := range models.Resources {
		url := "/" + res.Slug
		items = append(items, NavItem{
			Title:  res.Title,
			URL:    url,
			Icon:   res.Icon,
			Active: current == url || strings.HasPrefix(current, url+"/"),
		})
	}
	return items
}
