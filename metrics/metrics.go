// Package metrics exposes Prometheus metrics for the login exchange.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "daytogether_auth"

// Outcome labels for LoginsTotal.
const (
	OutcomeSuccess           = "success"
	OutcomeInvalidCredential = "invalid_credential"
	OutcomeUpstreamFailure   = "upstream_failure"
)

type Metrics struct {
	registry *prometheus.Registry

	LoginsTotal   *prometheus.CounterVec
	LoginDuration prometheus.Histogram
}

// New creates a registry holding the login metrics plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		LoginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Google login exchanges by outcome.",
		}, []string{"outcome"}),
		LoginDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "login_duration_seconds",
			Help:      "Time spent verifying the ID token and minting the custom token.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.LoginsTotal,
		m.LoginDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveLogin(outcome string, seconds float64) {
	m.LoginsTotal.WithLabelValues(outcome).Inc()
	m.LoginDuration.Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
