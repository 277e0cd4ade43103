package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/city-lens/internal/config"
	"github.com/JaimeStill/city-lens/internal/lifecycle"
	"github.com/JaimeStill/city-lens/internal/server"
	"github.com/JaimeStill/city-lens/pkg/logging"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	lifecycle *lifecycle.Coordinator
	logger    *slog.Logger
	server    server.System
}

// NewService builds the logger, the view application, and the HTTP server.
// Route table and template errors abort here, before anything listens.
func NewService(cfg *config.Config) (*Service, error) {
	logger := logging.New(&cfg.Logging)
	lc := lifecycle.New()

	handler, err := buildHandler(cfg, logger, lc)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	return &Service{
		lifecycle: lc,
		logger:    logger,
		server:    server.New(&cfg.Server, handler, logger),
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.logger.Info("starting service")

	if err := s.server.Start(s.lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.lifecycle.WaitForStartup()
	s.logger.Info("service started", "addr", s.server.Addr())
	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Service) Shutdown(timeout time.Duration) error {
	s.logger.Info("initiating shutdown")

	if err := s.lifecycle.Shutdown(timeout); err != nil {
		return err
	}

	s.logger.Info("all subsystems shut down successfully")
	return nil
}
