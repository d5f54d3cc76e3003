package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/booknotes/internal/config"
	"github.com/MKhiriev/booknotes/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop
// signal before the listener is closed forcefully.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer wraps the router in an HTTP server bound to the configured
// address.
func NewServer(router http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoAddressConfigured
	}

	return &server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           http.TimeoutHandler(router, cfg.RequestTimeout, "request timed out"),
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}, nil
}

// RunServer serves until a stop signal arrives, then drains in-flight
// requests and returns.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("Launching HTTP server")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown drains in-flight requests within shutdownTimeout.
func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
