// Package observability owns the Prometheus collectors for the dashboard.
package observability

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes recorded by RecordFetch.
const (
	OutcomeSuccess   = "success"
	OutcomeError     = "error"
	OutcomeDiscarded = "discarded"
)

var (
	fetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "upstream",
		Name:      "fetch_total",
		Help:      "Collection fetches from the upstream API by resource and outcome.",
	}, []string{"resource", "outcome"})

	fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "upstream",
		Name:      "fetch_duration_seconds",
		Help:      "Time spent fetching and decoding one collection.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource"})

	collectionItems = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "view",
		Name:      "items",
		Help:      "Number of records in the most recent successful fetch.",
	}, []string{"resource"})

	shapeMismatch = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit_dashboard",
		Name:      "shape_mismatch_total",
		Help:      "Responses whose payload was neither an array nor a results envelope.",
	}, []string{"resource"})

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served by route pattern, method and status.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit_dashboard",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

var registerOnce sync.Once

// Collectors returns every collector owned by this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		fetchTotal,
		fetchDuration,
		collectionItems,
		shapeMismatch,
		httpRequestsTotal,
		httpRequestDuration,
	}
}

// Register adds every collector to reg. Only the first call has an effect.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(Collectors()...)
	})
}

// RecordFetch counts one settled fetch and observes its duration.
func RecordFetch(resource, outcome string, elapsed time.Duration) {
	fetchTotal.WithLabelValues(resource, outcome).Inc()
	fetchDuration.WithLabelValues(resource).Observe(elapsed.Seconds())
}

// SetItems records the size of the latest successful collection.
func SetItems(resource string, n int) {
	collectionItems.WithLabelValues(resource).Set(float64(n))
}

// RecordShapeMismatch counts a payload that was coerced to an empty list.
func RecordShapeMismatch(resource string) {
	shapeMismatch.WithLabelValues(resource).Inc()
}

// Middleware records request counts and durations. It labels by chi route
// pattern rather than raw path so ids in URLs don't explode cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.status)).Inc()
		httpRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
