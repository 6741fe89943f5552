// Package metrics exposes Prometheus instrumentation of the relay.
//
// Every [Metrics] owns its registry, so several instances (tests, or more
// than one server in a process) never collide on registration.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "trademark_relay"

// Relay outcomes.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder receives relay cycle observations from the service layer.
type Recorder interface {
	// RelayStarted marks a relay cycle as in flight; calling the returned
	// func marks it finished.
	RelayStarted() func()

	// ObserveRelay records one finished relay cycle of operation
	// ("search", "file_details"). failedStage is empty on success.
	ObserveRelay(operation, failedStage string, d time.Duration)
}

// Metrics holds all Prometheus collectors of the relay.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Relay metrics
	RelaysTotal   *prometheus.CounterVec
	RelayDuration *prometheus.HistogramVec
	StageFailures *prometheus.CounterVec
	RelaysActive  prometheus.Gauge
}

// New creates the collectors on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 20, 40, 80, 160},
			},
			[]string{"method", "route"},
		),

		RelaysTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relays_total",
				Help:      "Relay cycles by operation and result",
			},
			[]string{"operation", "result"},
		),
		RelayDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "relay_duration_seconds",
				Help:      "Duration of a full relay cycle including browser launch",
				Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
			},
			[]string{"operation"},
		),
		StageFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relay_stage_failures_total",
				Help:      "Failed relay cycles by the stage they failed in",
			},
			[]string{"operation", "stage"},
		),
		RelaysActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "relays_active",
				Help:      "Relay cycles currently in flight",
			},
		),
	}
}

// ObserveRelay implements [Recorder].
func (m *Metrics) ObserveRelay(operation, failedStage string, d time.Duration) {
	result := ResultSuccess
	if failedStage != "" {
		result = ResultFailure
		m.StageFailures.WithLabelValues(operation, failedStage).Inc()
	}

	m.RelaysTotal.WithLabelValues(operation, result).Inc()
	m.RelayDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RelayStarted increments the in-flight gauge; the returned func undoes it.
func (m *Metrics) RelayStarted() func() {
	m.RelaysActive.Inc()
	return m.RelaysActive.Dec
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

type nopRecorder struct{}

func (nopRecorder) ObserveRelay(string, string, time.Duration) {}

func (nopRecorder) RelayStarted() func() { return func() {} }

// Nop returns a Recorder that drops every observation.
func Nop() Recorder {
	return nopRecorder{}
}
