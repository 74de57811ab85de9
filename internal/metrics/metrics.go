// Package metrics records catalog call counts and latencies with
// Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "brainz"

// DefaultDurationBuckets spans a quick lookup to a slow search.
var DefaultDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Collector tracks catalog calls.
//
// Metrics:
//   - brainz_requests_total: calls by entity, operation and outcome
//   - brainz_request_duration_seconds: call duration by entity and operation
//   - brainz_validation_failures_total: requests rejected before the network, by code
type Collector struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	validationFailures *prometheus.CounterVec
}

// Options tunes metric naming.
type Options struct {
	Namespace string
	Buckets   []float64
}

// New creates a collector and registers it with registry.
func New(registry prometheus.Registerer, opts Options) *Collector {
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if len(opts.Buckets) == 0 {
		opts.Buckets = DefaultDurationBuckets
	}

	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Name:      "requests_total",
				Help:      "Total number of catalog calls",
			},
			[]string{"entity", "operation", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: opts.Namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of catalog calls in seconds",
				Buckets:   opts.Buckets,
			},
			[]string{"entity", "operation"},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Name:      "validation_failures_total",
				Help:      "Requests rejected locally before any call",
			},
			[]string{"entity", "code"},
		),
	}

	registry.MustRegister(c.requestsTotal, c.requestDuration, c.validationFailures)
	return c
}

// ObserveCall records one completed call.
func (c *Collector) ObserveCall(entity, operation, outcome string, d time.Duration) {
	c.requestsTotal.WithLabelValues(entity, operation, outcome).Inc()
	c.requestDuration.WithLabelValues(entity, operation).Observe(d.Seconds())
}

// ObserveRejected records a request refused by local validation.
func (c *Collector) ObserveRejected(entity, code string) {
	c.validationFailures.WithLabelValues(entity, code).Inc()
}
