package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glean",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests served, by path and status code.",
	}, []string{"path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "glean",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})

	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glean",
		Subsystem: "analyze",
		Name:      "total",
		Help:      "Analyses performed, by outcome.",
	}, []string{"outcome"})
)

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware records request counts and latencies per route.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		requestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
