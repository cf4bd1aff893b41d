package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/JaimeStill/starlight/internal/config"
	"github.com/JaimeStill/starlight/internal/logger"
	"github.com/JaimeStill/starlight/internal/metrics"
	"github.com/JaimeStill/starlight/internal/routes"
	"github.com/JaimeStill/starlight/internal/server"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	ctx        context.Context
	cancel     context.CancelFunc
	shutdownWg sync.WaitGroup

	logger  logger.System
	handler http.Handler
	server  server.System
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	loggerSys := logger.New(&cfg.Logging)
	return newService(cfg, loggerSys), nil
}

func newService(cfg *config.Config, loggerSys logger.System) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	metricsSys := metrics.New()

	routeSys := routes.New(loggerSys.Logger())
	registerRoutes(routeSys, loggerSys.Logger(), metricsSys, cfg)

	middlewareSys := buildMiddleware(loggerSys.Logger(), metricsSys, cfg)
	handler := middlewareSys.Apply(routeSys.Build())

	serverSys := server.New(&cfg.Server, handler, loggerSys.Logger())

	return &Service{
		ctx:     ctx,
		cancel:  cancel,
		logger:  loggerSys,
		handler: handler,
		server:  serverSys,
	}
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.logger.Logger().Info("starting service")

	if err := s.server.Start(s.ctx, &s.shutdownWg); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.logger.Logger().Info("service started", "addr", s.server.Addr())
	return nil
}

// Shutdown gracefully stops all subsystems within the provided context deadline.
func (s *Service) Shutdown(ctx context.Context) error {
	s.logger.Logger().Info("initiating shutdown")

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Logger().Info("all subsystems shut down successfully")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
