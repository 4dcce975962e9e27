// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	activitiesfeature "github.com/dalemusser/octofit/internal/app/features/activities"
	errorsfeature "github.com/dalemusser/octofit/internal/app/features/errors"
	healthfeature "github.com/dalemusser/octofit/internal/app/features/health"
	homefeature "github.com/dalemusser/octofit/internal/app/features/home"
	leaderboardfeature "github.com/dalemusser/octofit/internal/app/features/leaderboard"
	teamsfeature "github.com/dalemusser/octofit/internal/app/features/teams"
	usersfeature "github.com/dalemusser/octofit/internal/app/features/users"
	workoutsfeature "github.com/dalemusser/octofit/internal/app/features/workouts"
	"github.com/dalemusser/octofit/internal/app/system/observability"
	"github.com/dalemusser/octofit/internal/app/system/ratelimit"
	"github.com/dalemusser/octofit/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Refresh-limit buckets idle for limiterIdle are dropped every limiterSweep.
const (
	limiterIdle  = 10 * time.Minute
	limiterSweep = time.Minute
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the API client, and the Startup
// hook are ready. OctoFit boots the template engine, creates one view per
// resource, and mounts each resource's page and table routes next to the
// health, metrics, and static endpoints.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	limiter := newLimiter(appCfg, deps, logger)

	r := chi.NewRouter()
	r.Use(observability.Middleware)

	// Unknown paths
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint (for load balancers, monitoring)
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus exposition
	r.Handle("/metrics", promhttp.Handler())

	// Static assets
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Home page
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Resource pages; each owns one view.
	activitiesView := activitiesfeature.NewView(deps.API, logger.Named("activities"))
	deps.Views.Add(activitiesView)
	activitiesHandler := activitiesfeature.NewHandler(activitiesView, errLog, logger)
	r.Mount("/activities", activitiesfeature.Routes(activitiesHandler, limiter, logger))

	leaderboardView := leaderboardfeature.NewView(deps.API, logger.Named("leaderboard"))
	deps.Views.Add(leaderboardView)
	leaderboardHandler := leaderboardfeature.NewHandler(leaderboardView, errLog, logger)
	r.Mount("/leaderboard", leaderboardfeature.Routes(leaderboardHandler, limiter, logger))

	teamsView := teamsfeature.NewView(deps.API, logger.Named("teams"))
	deps.Views.Add(teamsView)
	teamsHandler := teamsfeature.NewHandler(teamsView, errLog, logger)
	r.Mount("/teams", teamsfeature.Routes(teamsHandler, limiter, logger))

	usersView := usersfeature.NewView(deps.API, logger.Named("users"))
	deps.Views.Add(usersView)
	usersHandler := usersfeature.NewHandler(usersView, errLog, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, limiter, logger))

	workoutsView := workoutsfeature.NewView(deps.API, logger.Named("workouts"))
	deps.Views.Add(workoutsView)
	workoutsHandler := workoutsfeature.NewHandler(workoutsView, errLog, logger)
	r.Mount("/workouts", workoutsfeature.Routes(workoutsHandler, limiter, logger))

	return r, nil
}

// newLimiter returns nil when refresh limiting is disabled. The sweep
// worker is closed with the views on shutdown.
func newLimiter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) *ratelimit.Limiter {
	if appCfg.RefreshRate <= 0 {
		logger.Info("refresh rate limiting disabled")
		return nil
	}
	limiter := ratelimit.New(appCfg.RefreshRate, appCfg.RefreshBurst, limiterIdle)
	limiter.TrustProxyHeaders(appCfg.TrustProxy)

	sweep := workers.NewLimiterSweep(limiter, logger, limiterSweep)
	sweep.Start()
	deps.Views.Add(sweep)

	logger.Info("refresh rate limiting enabled",
		zap.Float64("per_second", appCfg.RefreshRate),
		zap.Int("burst", appCfg.RefreshBurst),
		zap.Bool("trust_proxy", appCfg.TrustProxy))
	return limiter
}
