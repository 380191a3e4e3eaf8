package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadflow_leads_collected_total",
			Help: "Total number of leads added, by origin",
		},
		[]string{"origin"},
	)

	messagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leadflow_messages_sent_total",
			Help: "Total number of leads marked as messaged",
		},
	)

	conversions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leadflow_conversions_total",
			Help: "Total number of leads converted to clients",
		},
	)

	landingSubmissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leadflow_landing_submissions_total",
			Help: "Total number of landing form submissions accepted",
		},
	)

	syncErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadflow_sync_errors_total",
			Help: "Total number of changes that failed to reach the remote mirror",
		},
		[]string{"stage"},
	)

	outboxDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leadflow_outbox_dropped_total",
			Help: "Total number of changes dropped because the outbox was full",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Metrics records request counts and latency labelled by the chi route
// pattern, so path parameters do not explode the label set.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func RecordLeadsCollected(origin string, n int) {
	leadsCollected.WithLabelValues(origin).Add(float64(n))
}

func RecordMessageSent() {
	messagesSent.Inc()
}

func RecordConversion() {
	conversions.Inc()
}

func RecordLandingSubmission() {
	landingSubmissions.Inc()
}

// SyncErrorCounter is handed to the outbox ("publish") and the mirror
// worker ("apply").
func SyncErrorCounter(stage string) prometheus.Counter {
	return syncErrors.WithLabelValues(stage)
}

func OutboxDropCounter() prometheus.Counter {
	return outboxDropped
}
