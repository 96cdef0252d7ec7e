package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTP surfaces served by kbase.
const (
	SurfaceMCP   = "mcp"
	SurfaceTools = "tools"
	SurfaceOps   = "ops"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kbase",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by surface (mcp, tools, ops)",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"surface", "method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kbase",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by surface",
		},
		[]string{"surface", "method", "path", "status"},
	)

	// HTTPInFlight counts open requests. MCP event streams stay open, so the
	// mcp surface roughly tracks connected streaming clients.
	HTTPInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "kbase",
			Name:      "http_in_flight_requests",
			Help:      "HTTP requests currently being served, by surface",
		},
		[]string{"surface"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(HTTPInFlight)
}

// Middleware records HTTP request duration, count and in-flight requests per surface.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			surface := surfaceOf(r.URL.Path)

			inFlight := HTTPInFlight.WithLabelValues(surface)
			inFlight.Inc()
			defer inFlight.Dec()

			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(ww.status)

			// Use chi route pattern for path normalization
			path := normalizePath(chi.RouteContext(r.Context()).RoutePattern())

			httpRequestDuration.WithLabelValues(surface, r.Method, path, status).Observe(duration)
			httpRequestsTotal.WithLabelValues(surface, r.Method, path, status).Inc()
		})
	}
}

// surfaceOf classifies a request path.
func surfaceOf(path string) string {
	switch {
	case path == "/mcp" || strings.HasPrefix(path, "/mcp/"):
		return SurfaceMCP
	case path == "/tools" || strings.HasPrefix(path, "/tools/"):
		return SurfaceTools
	default:
		return SurfaceOps
	}
}

// normalizePath normalizes paths to prevent high cardinality in metrics labels.
// Tool names stay inside the {name} pattern; per-tool counts live in the tool metrics.
func normalizePath(path string) string {
	if path == "" {
		return "unknown"
	}
	return path
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b) //nolint:wrapcheck // delegating to underlying ResponseWriter
}

// Flush forwards to the underlying writer so streamed MCP responses are not buffered.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
