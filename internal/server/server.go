package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/willbiddy/recipe-to-notion/config"
	"github.com/willbiddy/recipe-to-notion/internal/api"
	"github.com/willbiddy/recipe-to-notion/internal/middleware"
)

// maxPortAttempts bounds the forward scan when the default port is
// taken by another process (usually a previous dev server).
const maxPortAttempts = 10

// Server is the local development HTTP server (Transport B).
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
	logger *log.Logger
}

// New assembles the gin engine with recovery, request IDs, permissive
// CORS and the scrape routes.
func New(cfg *config.Config, logger *log.Logger) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	api.NewScrapeHandler(logger).RegisterRoutes(router)

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
	}
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Listen binds the first available port at or above the configured one
// and returns the listener along with the port actually bound.
func (s *Server) Listen() (net.Listener, int, error) {
	for port := s.cfg.Port; port < s.cfg.Port+maxPortAttempts; port++ {
		ln, err := net.Listen("tcp", net.JoinHostPort(s.cfg.Host, strconv.Itoa(port)))
		if err == nil {
			return ln, port, nil
		}
	}
	return nil, 0, fmt.Errorf("could not find available port in range %d-%d",
		s.cfg.Port, s.cfg.Port+maxPortAttempts-1)
}

// Start serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	ln, port, err := s.Listen()
	if err != nil {
		return err
	}
	if port != s.cfg.Port {
		s.logger.Warn("default port in use, using next available",
			"default", s.cfg.Port, "port", port)
	}
	s.logger.Info("listening", "addr", ln.Addr().String())

	s.http = &http.Server{Handler: s.router}
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
