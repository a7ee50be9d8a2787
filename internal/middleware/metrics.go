package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/HussainAbbasDev/linkedineese/internal/metrics"
)

// Metrics records request count by method, route, and status code.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		metrics.RequestsTotal.WithLabelValues(r.Method, routeLabel(r.URL.Path), strconv.Itoa(sw.status)).Inc()
	})
}

// routeLabel keeps the path label bounded: API routes and /metrics are
// reported as-is, everything else is a static asset or a miss.
func routeLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/"), path == "/metrics", path == "/":
		return path
	default:
		return "static"
	}
}
