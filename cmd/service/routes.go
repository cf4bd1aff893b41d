package main

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/starlight/internal/config"
	"github.com/JaimeStill/starlight/internal/greeter"
	"github.com/JaimeStill/starlight/internal/metrics"
	"github.com/JaimeStill/starlight/pkg/handlers"
	"github.com/JaimeStill/starlight/pkg/routes"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r routes.System, logger *slog.Logger, metricsSys metrics.System, cfg *config.Config) {
	greeterHandler := greeter.NewHandler(logger, cfg.Greeter.MaxBodySizeBytes())
	r.RegisterGroup(greeterHandler.Routes())

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/metrics",
		Handler: metricsSys.Handler().ServeHTTP,
	})
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	handlers.RespondText(w, http.StatusOK, "OK")
}
