// Package server exposes commit graph rendering over HTTP.
//
// Routes:
//
//	POST /render?format=png|svg|json   body: commit layout (JSON or YAML)
//	GET  /palette                       branch colors in assignment order
//	GET  /healthz                       liveness and version
//
// Layout settings can be overridden per request with query parameters named
// like the config keys (orientation, scale, step_lane, ...). Every response
// carries an X-Request-ID header.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/commitgraph/pkg/buildinfo"
	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/pipeline"
)

// Server renders commit graphs for HTTP clients.
type Server struct {
	runner  *pipeline.Runner
	layout  config.Layout
	maxBody int64
	logger  *log.Logger
}

// New creates a server. layout supplies the defaults that query parameters
// override.
func New(runner *pipeline.Runner, layout config.Layout, cfg config.Server, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = config.DefaultFile().Server.MaxBodyBytes
	}
	layout.SetDefaults()
	return &Server{runner: runner, layout: layout, maxBody: maxBody, logger: logger}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	r.Post("/render", s.handleRender)
	r.Get("/palette", s.handlePalette)
	r.Get("/healthz", s.handleHealth)
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func serverHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", buildinfo.UserAgent())
		next.ServeHTTP(w, r)
	})
}
