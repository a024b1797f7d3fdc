package mockserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/nandemo-ya/dms-go/internal/logging"
)

// DefaultPort is the port the local server listens on
const DefaultPort = 8700

// Config configures a Server
type Config struct {
	// Port to listen on; 0 picks a free port
	Port int

	// Region used in ARNs
	Region string

	// AccountID used in ARNs
	AccountID string
}

// Server serves a Service over HTTP
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	service    *Service
}

// NewServer creates a new server with an empty Service
func NewServer(cfg Config, opts ...Option) *Server {
	opts = append([]Option{WithRegion(cfg.Region), WithAccountID(cfg.AccountID)}, opts...)
	service := NewService(opts...)

	return &Server{
		service: service,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      NewRouter(service),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Service returns the in-memory service behind the server
func (s *Server) Service() *Service {
	return s.service
}

// Listen binds the listening socket. Start calls it when needed.
func (s *Server) Listen() error {
	if s.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// URL returns the endpoint URL clients should use
func (s *Server) URL() string {
	_, port, err := net.SplitHostPort(s.Addr())
	if err != nil {
		return "http://" + s.Addr()
	}
	return "http://localhost:" + port
}

// Start serves requests until Shutdown is called
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}

	logging.Info("Starting DMS server", "addr", s.Addr(), "region", s.service.Region())
	if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down DMS server")
	return s.httpServer.Shutdown(ctx)
}
