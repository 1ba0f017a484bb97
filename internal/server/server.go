package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/psylines/psy-lines-backend/internal/config"
)

// Server owns the bound listener and the http.Server serving it.
type Server struct {
	ln     net.Listener
	srv    *http.Server
	logger *zap.Logger
}

// Listen binds cfg.BindAddr. Binding happens before serving so a port
// conflict surfaces as an error here rather than from Serve.
func Listen(cfg *config.Config, h http.Handler, logger *zap.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", cfg.BindAddr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", cfg.BindAddr, err)
	}

	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ErrorLog:          zap.NewStdLog(logger.Named("http")),
	}

	return &Server{ln: ln, srv: srv, logger: logger}, nil
}

func (s *Server) Addr() net.Addr { return s.ln.Addr() }

// Serve accepts connections until the listener fails, handling each
// connection on its own goroutine. It returns nil after Close.
func (s *Server) Serve() error {
	s.logger.Info("server listening", zap.String("addr", s.ln.Addr().String()))
	if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Close stops the listener and drops open connections without draining.
func (s *Server) Close() error {
	if err := s.srv.Close(); err != nil {
		return err
	}
	// srv.Close only tracks listeners passed to Serve.
	if err := s.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}
