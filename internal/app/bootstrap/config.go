// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for OctoFit.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: codespace_name, api_base_url, etc.
//   - Environment variables: OCTOFIT_CODESPACE_NAME, OCTOFIT_API_BASE_URL, etc.
//   - Command-line flags: --codespace_name, --api_base_url, etc.
var appConfigKeys = []config.AppKey{
	// Upstream API
	{Name: "codespace_name", Default: "", Desc: "GitHub Codespace name hosting the API (https://<name>-8000.app.github.dev)"},
	{Name: "api_base_url", Default: "", Desc: "Explicit API base URL (overrides codespace_name)"},
	{Name: "api_token", Default: "", Desc: "Optional bearer token for the API"},
	{Name: "fetch_timeout", Default: "10s", Desc: "Timeout for one collection fetch (e.g., 10s, 1m)"},

	// Presentation
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the navbar and titles"},
	{Name: "footer_html", Default: "", Desc: "Optional footer HTML (sanitized)"},
	{Name: "date_layout", Default: models.DefaultDateLayout, Desc: "Go time layout for date columns"},

	// Refresh limiting
	{Name: "refresh_rate", Default: "2", Desc: "Per-client table requests per second, fractions allowed (0 disables)"},
	{Name: "refresh_burst", Default: 10, Desc: "Per-client refresh burst"},
	{Name: "trust_proxy", Default: false, Desc: "Key refresh limiting on X-Forwarded-For/X-Real-IP (enable only behind a proxy)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, OCTOFIT_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "OCTOFIT", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	refreshRate, err := floatValue(appValues, "refresh_rate")
	if err != nil {
		return nil, AppConfig{}, err
	}
	refreshBurst, err := intValue(appValues, "refresh_burst")
	if err != nil {
		return nil, AppConfig{}, err
	}
	trustProxy, err := boolValue(appValues, "trust_proxy")
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		CodespaceName: strings.TrimSpace(appValues.String("codespace_name")),
		APIBaseURL:    strings.TrimSpace(appValues.String("api_base_url")),
		APIToken:      appValues.String("api_token"),
		FetchTimeout:  appValues.Duration("fetch_timeout", 10*time.Second),

		SiteName:   appValues.String("site_name"),
		FooterHTML: appValues.String("footer_html"),
		DateLayout: appValues.String("date_layout"),

		RefreshRate:  refreshRate,
		RefreshBurst: refreshBurst,
		TrustProxy:   trustProxy,
	}

	return coreCfg, appCfg, nil
}

// Values set through flags or config files arrive typed; values from the
// environment arrive as strings. The helpers below accept both.

func floatValue(values config.AppConfigValues, key string) (float64, error) {
	switch v := values[key].(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a number", key, v)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%s: unsupported value type %T", key, values[key])
}

func intValue(values config.AppConfigValues, key string) (int, error) {
	if s, ok := values[key].(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not an integer", key, s)
		}
		return n, nil
	}
	return values.Int(key), nil
}

func boolValue(values config.AppConfigValues, key string) (bool, error) {
	if s, ok := values[key].(string); ok {
		if strings.TrimSpace(s) == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return false, fmt.Errorf("%s: %q is not a boolean", key, s)
		}
		return b, nil
	}
	return values.Bool(key), nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// An explicit api_base_url must be an absolute http(s) URL; a missing API
// host is allowed and falls back to the local development server.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.APIBaseURL != "" {
		if _, err := apiclient.ValidateBaseURL(appCfg.APIBaseURL); err != nil {
			logger.Error("invalid API base URL", zap.String("api_base_url", appCfg.APIBaseURL), zap.Error(err))
			return fmt.Errorf("invalid api_base_url: %w", err)
		}
	}
	if appCfg.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must not be negative (got %s)", appCfg.FetchTimeout)
	}
	if appCfg.RefreshRate < 0 {
		return fmt.Errorf("refresh_rate must not be negative (got %g)", appCfg.RefreshRate)
	}
	if appCfg.RefreshRate > 0 && appCfg.RefreshBurst < 1 {
		return fmt.Errorf("refresh_burst must be at least 1 when refresh_rate is set (got %d)", appCfg.RefreshBurst)
	}
	return nil
}

// resolveBaseURL picks the API base URL: explicit URL, then codespace,
// then the local development server.
func resolveBaseURL(appCfg AppConfig, logger *zap.Logger) string {
	switch {
	case appCfg.APIBaseURL != "":
		return appCfg.APIBaseURL
	case appCfg.CodespaceName != "":
		return apiclient.CodespaceBaseURL(appCfg.CodespaceName)
	default:
		logger.Warn("no api_base_url or codespace_name configured; using local API",
			zap.String("base_url", apiclient.LocalBaseURL))
		return apiclient.LocalBaseURL
	}
}
