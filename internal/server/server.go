package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/algonquin-pet-store/product-service/internal/config"
)

// Server owns the public listener and, when enabled, the ops listener
type Server struct {
	cfg    *config.Config
	logger *slog.Logger

	public   *http.Server
	ops      *http.Server
	publicLn net.Listener
	opsLn    net.Listener
}

// New creates a server for the given handlers. opsHandler is only used
// when the ops listener is enabled in cfg.
func New(cfg *config.Config, handler, opsHandler http.Handler, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		public: &http.Server{
			Addr:         address(cfg.Server.Host, cfg.Server.Port),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		},
	}

	if cfg.Metrics.Enabled {
		s.ops = &http.Server{
			Addr:              address(cfg.Server.Host, cfg.Metrics.Port),
			Handler:           opsHandler,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return s
}

func address(host string, port uint16) string {
	return net.JoinHostPort(host, strconv.Itoa(int(port)))
}

// Listen binds the configured ports. Bind failures are returned before anything is served.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.public.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.public.Addr, err)
	}
	s.publicLn = ln

	if s.ops != nil {
		opsLn, err := net.Listen("tcp", s.ops.Addr)
		if err != nil {
			_ = s.publicLn.Close()
			return fmt.Errorf("listen on %s: %w", s.ops.Addr, err)
		}
		s.opsLn = opsLn
	}

	return nil
}

// Addr returns the bound public address, or nil before Listen
func (s *Server) Addr() net.Addr {
	if s.publicLn == nil {
		return nil
	}
	return s.publicLn.Addr()
}

// OpsAddr returns the bound ops address, or nil when disabled or before Listen
func (s *Server) OpsAddr() net.Addr {
	if s.opsLn == nil {
		return nil
	}
	return s.opsLn.Addr()
}

// Serve serves on the bound listeners until ctx is cancelled or a listener
// fails, then shuts down gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context) error {
	if s.publicLn == nil {
		return errors.New("server: Serve called before Listen")
	}

	errCh := make(chan error, 2)

	go func() {
		s.logger.Info("server listening", "address", s.publicLn.Addr().String())
		errCh <- serve(s.public, s.publicLn)
	}()

	if s.ops != nil {
		go func() {
			s.logger.Info("ops server listening", "address", s.opsLn.Addr().String())
			errCh <- serve(s.ops, s.opsLn)
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("shutting down server...")
	case serveErr = <-errCh:
		s.logger.Error("server failed", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := s.shutdown(shutdownCtx); err != nil {
		return errors.Join(serveErr, fmt.Errorf("shutdown: %w", err))
	}

	if serveErr == nil {
		s.logger.Info("server stopped gracefully")
	}
	return serveErr
}

// Run binds and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

func (s *Server) shutdown(ctx context.Context) error {
	var errs []error
	if err := s.public.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if s.ops != nil {
		if err := s.ops.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func serve(srv *http.Server, ln net.Listener) error {
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
