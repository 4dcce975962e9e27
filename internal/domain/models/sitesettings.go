// internal/domain/models/sitesettings.go
package models

import "html/template"

// SiteSettings holds presentation settings shared by every page.
// They come from configuration at startup and never change afterwards.
type SiteSettings struct {
	SiteName   string        // Name shown in the navbar and page titles
	FooterHTML template.HTML // Sanitized footer markup (may be empty)
	DateLayout string        // Go time layout for date columns
}

// DefaultSiteName is the site name used when none is configured.
const DefaultSiteName = "OctoFit Tracker"

// DefaultDateLayout renders dates like the en-US short date (M/D/YYYY).
const DefaultDateLayout = "1/2/2006"

// HasFooter reports whether custom footer markup is set.
func (s SiteSettings) HasFooter() bool {
	return s.FooterHTML != ""
}
