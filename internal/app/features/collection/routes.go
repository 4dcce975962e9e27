// internal/app/features/collection/routes.go
package collection

import (
	"github.com/dalemusser/octofit/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes mounts the page shell and its table partial. Table requests hit
// the upstream API, so they go through the per-client limiter.
func Routes[T, R any](h *Handler[T, R], limiter *ratelimit.Limiter, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	r.With(limiter.Middleware(logger)).Get("/table", h.ServeTable)
	return r
}
