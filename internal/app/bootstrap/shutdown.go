// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cancels in-flight fetches and tears down the views.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Views != nil {
		logger.Info("closing dashboard views", zap.Int("views", deps.Views.Len()))
		deps.Views.CloseAll()
	}
	return nil
}
