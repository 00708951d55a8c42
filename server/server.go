package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ghiac/eventdesk/config"
	"github.com/ghiac/eventdesk/log"
)

// shutdownTimeout bounds how long in-flight requests may take once Run's
// context is cancelled
const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	config  *config.Config
	handler http.Handler
	srv     *http.Server
}

// NewServer creates a new HTTP server for handler
func NewServer(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		config:  cfg,
		handler: handler,
		srv: &http.Server{
			Addr:              cfg.GetAddress(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log.Log.Infof("Starting HTTP server on %s", ln.Addr())
	log.Log.Infof("Available endpoints:")
	log.Log.Infof("  GET  /           - Event list (login required)")
	log.Log.Infof("  GET  /add        - Add event")
	log.Log.Infof("  POST /delete/:id - Delete event (confirmed in the browser)")
	if s.config.Features.StatsEnabled {
		log.Log.Infof("  GET  /stats      - Event statistics")
	}
	log.Log.Infof("  GET  /health     - Health check")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Log.Infof("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
