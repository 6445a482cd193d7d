package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/margdarshak/disha/internal/logger"
	"github.com/margdarshak/disha/internal/session"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
	janitorInterval   = 5 * time.Minute
)

// Server runs the HTTP API and the session eviction janitor.
type Server struct {
	httpServer *http.Server
	sessions   *session.Manager
	log        *logger.Logger
}

// New builds a Server listening on addr.
func New(addr string, chat *ChatHandler, sessions *session.Manager, allowedOrigins []string, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	router := NewRouter(chat, allowedOrigins, log)
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		sessions: sessions,
		log:      log,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	janitorCtx, cancelJanitor := context.WithCancel(ctx)
	defer cancelJanitor()
	go s.sessions.Janitor(janitorCtx, janitorInterval)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
