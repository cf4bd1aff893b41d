package main

import (
	"log/slog"

	"github.com/JaimeStill/starlight/internal/config"
	"github.com/JaimeStill/starlight/internal/metrics"
	"github.com/JaimeStill/starlight/internal/middleware"
)

// buildMiddleware creates the middleware stack. Request IDs are assigned first
// so recovery and request logs can reference them. Metrics sit outside Recover
// so recovered panics are counted as 500s.
func buildMiddleware(logger *slog.Logger, metricsSys metrics.System, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(logger))
	middlewareSys.Use(metricsSys.Middleware())
	middlewareSys.Use(middleware.Recover(logger))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.TrimSlash())
	return middlewareSys
}
