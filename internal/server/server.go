// Package server is the HTTP upload shell: it accepts disclosure workbooks,
// runs the extractors and returns JSON or the combined summary workbook.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ukaji3/fundalloc-go/internal/config"
	"github.com/ukaji3/fundalloc-go/internal/metrics"
)

// Server wires routes, middleware and the extraction settings.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	router  chi.Router
}

// New builds a server. rec may be nil, in which case a private recorder is created.
func New(cfg *config.Config, logger *slog.Logger, rec *metrics.Recorder) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if rec == nil {
		rec = metrics.New()
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "http")),
		metrics: rec,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(StructuredLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		if rl := s.cfg.Server.RateLimit; rl.Enabled {
			r.Use(RateLimit(rl.RPS, rl.Burst))
		}
		r.Get("/institutions", s.handleInstitutions)
		r.Post("/extract", s.handleExtract)
		r.Post("/summary", s.handleSummary)
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.Server.ShutdownTimeout > 0 {
		return s.cfg.Server.ShutdownTimeout
	}
	return 15 * time.Second
}
