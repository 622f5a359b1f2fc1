// ABOUTME: HTTP middleware for request metrics, debug logging, and panic recovery.
// ABOUTME: Routes are labelled by their mux route name rather than the raw path.
package web

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.statusCode = statusCode
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if name := route.GetName(); name != "" {
			return name
		}
	}
	return "unknown"
}

// RequestMetrics counts every request and observes its latency.
func RequestMetrics(m *Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			sw := &statusWriter{w, http.StatusOK}

			next.ServeHTTP(sw, r)

			route := routeName(r)
			m.HistRequestDuration.WithLabelValues(route).Observe(time.Since(begin).Seconds())
			m.CounterRequests.WithLabelValues(route, r.Method, strconv.Itoa(sw.statusCode)).Inc()
		})
	}
}

// LogRequest logs each request at debug level once it completes.
func LogRequest() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			sw := &statusWriter{w, http.StatusOK}

			next.ServeHTTP(sw, r)

			slog.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.statusCode,
				"duration_ms", time.Since(begin).Milliseconds(),
			)
		})
	}
}

// PanicRecovery turns a handler panic into a 500 and counts it.
func PanicRecovery(m *Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("panic serving request", "path", r.URL.Path, "panic", rec, "stack", string(debug.Stack()))
					if m != nil {
						m.CounterPanics.Inc()
					}
					writeError(w, http.StatusInternalServerError, "internal error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
