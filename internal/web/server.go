// ABOUTME: JSON view-model HTTP server for a thin browser shell.
// ABOUTME: Serves dashboard, calendar, history, and workout entry views plus /metrics.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/harperreed/broccoli/internal/pages"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes page views over HTTP.
type Server struct {
	svc      *pages.Service
	registry *prometheus.Registry
	metrics  *Metrics
	now      func() time.Time
}

// NewServer creates a server over svc. Collectors are registered on registry,
// which is also what /metrics serves.
func NewServer(svc *pages.Service, registry *prometheus.Registry) *Server {
	return &Server{
		svc:      svc,
		registry: registry,
		metrics:  NewMetrics("broccoli", registry),
		now:      time.Now,
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/dashboard", s.handleDashboard).Methods("GET").Name("dashboard")
	api.HandleFunc("/calendar", s.handleCalendar).Methods("GET").Name("calendar")
	api.HandleFunc("/history", s.handleHistory).Methods("GET").Name("history")
	api.HandleFunc("/categories", s.handleCategories).Methods("GET").Name("list-categories")
	api.HandleFunc("/exercise-options", s.handleExerciseOptions).Methods("GET").Name("exercise-options")
	api.HandleFunc("/today", s.handleToday).Methods("GET").Name("today")
	api.HandleFunc("/records", s.handleLogRecord).Methods("POST").Name("log-record")
	api.HandleFunc("/records/{id:[0-9]+}", s.handleDeleteRecord).Methods("DELETE").Name("delete-record")

	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Name("metrics")

	r.Use(PanicRecovery(s.metrics), RequestMetrics(s.metrics), LogRequest())

	return r
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
