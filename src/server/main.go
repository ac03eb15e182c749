package server

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/config"
	"github.com/Jaeki-Lee/mini-cloud/src/router"
	"github.com/Jaeki-Lee/mini-cloud/src/session"

	_ "github.com/Jaeki-Lee/mini-cloud/src/docs"

	_ "github.com/swaggo/files"
	_ "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	config          config.GlobalConfig
	sessions        *session.Store
	log             *logrus.Logger
	http            *http.Server
	shutdownHandler ShutdownHandlerInterface
}

// NewServer creates a new server instance
func NewServer(cfg config.GlobalConfig, log *logrus.Logger) *Server {
	server := &Server{
		config:   cfg,
		sessions: session.NewStore(),
		log:      log,
	}

	// Create and assign shutdown handler
	server.shutdownHandler = NewShutdownHandler(server)

	return server
}

// Run starts the server with graceful shutdown using ShutdownHandler
func (s *Server) Run() error {
	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	serverDone := s.startServerGoroutine()

	return s.shutdownHandler.HandleShutdown(serverDone, osSignals)
}

// startServerGoroutine starts the HTTP server in a goroutine and returns a channel for errors
func (s *Server) startServerGoroutine() chan error {
	serverDone := make(chan error, 1)

	go func() {
		r := router.NewRouter(s.config, s.sessions, s.log)
		httpServer := &http.Server{
			Addr:    fmt.Sprintf("%s:%s", s.config.Host, s.config.Port),
			Handler: r,
		}
		s.http = httpServer

		s.log.WithFields(logrus.Fields{
			"host": s.config.Host,
			"port": s.config.Port,
		}).Info("Starting mini-cloud backend")

		serverDone <- s.startServer()
	}()

	return serverDone
}

// startServer starts the HTTP server and handles errors
func (s *Server) startServer() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
