// Package metrics holds the Prometheus collectors exported by the server.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/authmodule/internal/models"
)

// Options configures the collectors.
type Options struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Namespace  string
	Buckets    []float64
}

// Metrics exposes collectors for HTTP traffic and auth outcomes.
type Metrics struct {
	gatherer       prometheus.Gatherer
	Requests       *prometheus.CounterVec
	Duration       *prometheus.HistogramVec
	InFlight       prometheus.Gauge
	AuthOperations *prometheus.CounterVec
}

// New constructs the collectors and registers them with the provided
// registerer. Collectors that are already registered are reused.
func New(opts Options) (*Metrics, error) {
	namespace := opts.Namespace
	if namespace == "" {
		namespace = "authmodule"
	}

	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		if g, ok := reg.(prometheus.Gatherer); ok {
			gatherer = g
		} else {
			gatherer = prometheus.DefaultGatherer
		}
	}

	buckets := opts.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests partitioned by method, route, and status code.",
	}, []string{"method", "route", "status"}))
	if err != nil {
		return nil, fmt.Errorf("register requests collector: %w", err)
	}

	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Histogram of HTTP request latencies in seconds partitioned by method, route, and status code.",
		Buckets:   buckets,
	}, []string{"method", "route", "status"}))
	if err != nil {
		return nil, fmt.Errorf("register duration collector: %w", err)
	}

	inFlight, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	}))
	if err != nil {
		return nil, fmt.Errorf("register inflight collector: %w", err)
	}

	authOps, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_operations_total",
		Help:      "Total number of auth operations partitioned by operation and result.",
	}, []string{"operation", "result"}))
	if err != nil {
		return nil, fmt.Errorf("register auth operations collector: %w", err)
	}

	return &Metrics{
		gatherer:       gatherer,
		Requests:       requests,
		Duration:       duration,
		InFlight:       inFlight,
		AuthOperations: authOps,
	}, nil
}

// AuthOperation counts one auth core outcome. Successful operations are
// labelled "success", failures by their kind.
func (m *Metrics) AuthOperation(operation string, kind models.FailureKind) {
	if m == nil || m.AuthOperations == nil {
		return
	}

	result := "success"
	if kind != models.FailureNone {
		result = kind.String()
	}
	m.AuthOperations.WithLabelValues(operation, result).Inc()
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		already, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return c, err
		}
		existing, ok := already.ExistingCollector.(C)
		if !ok {
			return c, fmt.Errorf("existing collector has unexpected type %T", already.ExistingCollector)
		}
		return existing, nil
	}
	return c, nil
}
