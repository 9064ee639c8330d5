package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated registry served on /metrics.
	Registry = prometheus.NewRegistry()

	// WebhooksReceived counts ingress outcomes: accepted, duplicate,
	// rejected, not_found, unavailable, too_large.
	WebhooksReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hookrelay_webhooks_received_total", Help: "Inbound webhook deliveries by provider and outcome."},
		[]string{"provider", "outcome"},
	)
	// IngressDuration is wall time from request to acknowledgement.
	IngressDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "hookrelay_ingress_duration_seconds", Help: "Time to acknowledge an inbound webhook.", Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2, 3}},
		[]string{"provider"},
	)
	// Processed counts worker outcomes: success, failed, skipped.
	Processed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hookrelay_events_processed_total", Help: "Processing attempts by result."},
		[]string{"result"},
	)
	// ProcessingDuration records effect latency.
	ProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "hookrelay_processing_duration_seconds", Help: "Effect execution time.", Buckets: prometheus.DefBuckets},
		[]string{"result"},
	)
	RetriesScheduled = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hookrelay_retries_scheduled_total", Help: "Retry attempts scheduled."},
	)
	DeadLetters = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hookrelay_dead_letters_total", Help: "Events moved to the dead-letter state."},
	)
	// Recovered counts events re-driven by the sweeper, by the state they were found in.
	Recovered = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hookrelay_sweeper_recovered_total", Help: "Events recovered by the sweeper."},
		[]string{"status"},
	)
	QueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "hookrelay_queue_depth", Help: "Work queue entries awaiting delivery."},
	)
	// HTTPRequests covers the operator API.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "hookrelay_http_requests_total", Help: "Operator API requests."},
		[]string{"method", "route", "status"},
	)
)

var regOnce sync.Once

// Register adds all collectors to Registry. Safe to call repeatedly.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(
			WebhooksReceived,
			IngressDuration,
			Processed,
			ProcessingDuration,
			RetriesScheduled,
			DeadLetters,
			Recovered,
			QueueDepth,
			HTTPRequests,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	})
}

// Handler serves Registry in the Prometheus exposition format.
func Handler() http.Handler {
	Register()
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// Instrument counts requests by their chi route pattern so path
// parameters don't explode label cardinality.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}

// ObserveSince records elapsed time on a histogram child.
func ObserveSince(h prometheus.Observer, start time.Time) {
	h.Observe(time.Since(start).Seconds())
}
