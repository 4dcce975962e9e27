// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/dataview"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the upstream API client. Nothing is dialed here; the
// first request happens in EnsureSchema.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	baseURL := resolveBaseURL(appCfg, logger)

	opts := []apiclient.Option{apiclient.WithLogger(logger)}
	if appCfg.APIToken != "" {
		opts = append(opts, apiclient.WithBearerToken(appCfg.APIToken))
	}

	client, err := apiclient.New(baseURL, opts...)
	if err != nil {
		logger.Error("API client init failed", zap.String("base_url", baseURL), zap.Error(err))
		return DBDeps{}, fmt.Errorf("api client: %w", err)
	}

	logger.Info("OctoFit API configured",
		zap.String("base_url", client.BaseURL()),
		zap.Bool("bearer_token", appCfg.APIToken != ""))

	return DBDeps{API: client, Views: dataview.NewSet()}, nil
}

// EnsureSchema probes the API once so a misconfigured host shows up in the
// startup log. The dashboard still starts when the API is down; each view
// reports the failure on its own.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.API == nil {
		return nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	if err := deps.API.Ping(pingCtx); err != nil {
		logger.Warn("OctoFit API not reachable at startup",
			zap.String("base_url", deps.API.BaseURL()), zap.Error(err))
	}
	return nil
}
