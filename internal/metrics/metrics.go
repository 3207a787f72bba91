// Package metrics exposes Prometheus collectors of the word of the day server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wordoftheday"

// Resolution outcomes recorded by ObserveResolution.
const (
	OutcomePrimary       = "primary"
	OutcomeFallback      = "fallback"
	OutcomeConfiguration = "configuration_error"
	OutcomeUpstream      = "upstream_error"
	OutcomeInternal      = "internal_error"
)

// Metrics owns a registry so tests and multiple servers never share collectors.
type Metrics struct {
	registry        *prometheus.Registry
	resolutions     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

type Options struct {
	DisableRuntimeCollectors bool
}

func New(opts Options) (*Metrics, error) {
	registry := prometheus.NewRegistry()
	if !opts.DisableRuntimeCollectors {
		if err := registry.Register(collectors.NewGoCollector()); err != nil {
			return nil, err
		}
		if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
			return nil, err
		}
	}

	m := &Metrics{
		registry: registry,
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Word of the day resolutions by outcome",
			},
			[]string{"outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
	for _, collector := range []prometheus.Collector{m.resolutions, m.requestDuration} {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveResolution counts a resolution. It is a no-op on a nil receiver.
func (m *Metrics) ObserveResolution(outcome string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(outcome).Inc()
}

// ObserveRequest records the latency of a handled request. It is a no-op on a nil receiver.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
