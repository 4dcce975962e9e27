// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/octofit/internal/app/resources"
	"github.com/dalemusser/octofit/internal/app/system/htmlsanitize"
	"github.com/dalemusser/octofit/internal/app/system/observability"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the API client is
// built, but before the HTTP handler is built. It loads shared templates,
// applies site settings and timeouts, and registers metrics.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Init(siteSettings(appCfg, logger))

	timeouts.Configure(timeouts.Config{Medium: appCfg.FetchTimeout})
	observability.Register(prometheus.DefaultRegisterer)

	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("ping", cur.Ping),
		zap.Duration("fetch", cur.Medium))
	return nil
}

// siteSettings builds the page settings from config, sanitizing the footer.
func siteSettings(appCfg AppConfig, logger *zap.Logger) models.SiteSettings {
	s := models.SiteSettings{
		SiteName:   appCfg.SiteName,
		DateLayout: appCfg.DateLayout,
	}
	if appCfg.FooterHTML != "" {
		s.FooterHTML = htmlsanitize.SanitizeToHTML(appCfg.FooterHTML)
		if string(s.FooterHTML) != appCfg.FooterHTML {
			logger.Warn("footer_html was altered by sanitization")
		}
	}
	return s
}
