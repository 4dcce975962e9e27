// internal/app/features/leaderboard/routes.go
package leaderboard

import (
	"github.com/dalemusser/octofit/internal/app/features/collection"
	"github.com/dalemusser/octofit/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func Routes(h *Handler, limiter *ratelimit.Limiter, logger *zap.Logger) chi.Router {
	return collection.Routes(h, limiter, logger)
}
