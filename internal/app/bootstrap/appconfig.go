// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to the dashboard lives: where the
// REST API is, how the pages are branded, and how hard clients may refresh.
type AppConfig struct {
	// Upstream REST API
	CodespaceName string        // GitHub Codespace name; derives https://<name>-8000.app.github.dev
	APIBaseURL    string        // Explicit base URL; overrides CodespaceName when set
	APIToken      string        // Optional bearer token sent with every API request
	FetchTimeout  time.Duration // Per-fetch timeout for one collection

	// Presentation
	SiteName   string // Brand shown in the navbar and page titles
	FooterHTML string // Optional footer markup (sanitized before use)
	DateLayout string // Go time layout for date columns

	// Per-client refresh limiting on /<resource>/table
	RefreshRate  float64 // requests per second; 0 disables limiting
	RefreshBurst int
	TrustProxy   bool // key clients by X-Forwarded-For/X-Real-IP
}
