// Package server provides the HTTP API surface with lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/optivex/lumexa-go/internal/config"
	"github.com/optivex/lumexa-go/internal/metrics"
	"github.com/optivex/lumexa-go/internal/service"
)

// Server wraps the HTTP server with dependencies and lifecycle management.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates the API server and wires up all routes.
func New(cfg config.Config, chat *service.ChatService, webSearch *service.WebSearchService, pdf *service.PDFService, mc *metrics.Collector, logger *slog.Logger) *Server {
	s := &Server{logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", s.handleGenerate(chat))
	mux.HandleFunc("POST /api/smart-search", s.handleSmartSearch(webSearch))
	mux.HandleFunc("POST /api/pdf-search", s.handlePDFSearch(pdf))
	mux.HandleFunc("GET /api/stats", s.handleStats(mc))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Lumexa backend is running.")
	})

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      LoggingMiddleware(logger)(mux),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 30*time.Second, // headroom past upstream calls
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler returns the root handler, middleware included. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the server and blocks until the context is canceled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting lumexa-server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
