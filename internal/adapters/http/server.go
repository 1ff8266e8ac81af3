package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/turtlebench/pkg/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// shutdownTimeout bounds how long outstanding requests may take once the run is over.
const shutdownTimeout = 5 * time.Second

// ResultsSource provides the results served on /results.
type ResultsSource interface {
	Snapshot() report.Snapshot
}

// NewHandler exposes health, Prometheus metrics and collected results.
func NewHandler(gatherer prometheus.Gatherer, results ResultsSource, version string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok", "version": version})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/results", func(w http.ResponseWriter, r *http.Request) {
		if results == nil {
			http.Error(w, "results are not collected", http.StatusNotFound)
			return
		}
		writeJSON(w, results.Snapshot())
	})
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("encode error: %v", err), http.StatusInternalServerError)
	}
}

// Server serves a handler in the background for the lifetime of a run.
type Server struct {
	srv      *http.Server
	listener net.Listener
	errs     chan error
	logger   *slog.Logger
}

// Start listens on addr and serves handler until Shutdown is called.
// Listening happens synchronously so a bad address fails the run before it starts.
func Start(addr string, handler http.Handler, logger *slog.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := &Server{
		srv:      &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second},
		listener: ln,
		errs:     make(chan error, 1),
		logger:   logger,
	}

	go func() {
		logger.Info("metrics server listening", "addr", ln.Addr().String())
		s.errs <- s.srv.Serve(ln)
	}()
	return s, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Shutdown gracefully stops the server, closing it if requests do not drain in time.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("graceful shutdown did not complete", "error", err)
		if cerr := s.srv.Close(); cerr != nil {
			return cerr
		}
	}

	if err := <-s.errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
