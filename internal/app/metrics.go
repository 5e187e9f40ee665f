package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "quote_requests"

// quoteMetrics holds the Prometheus collectors of the quote service.
type quoteMetrics struct {
	created *prometheus.CounterVec
	stored  prometheus.Gauge
}

func newQuoteMetrics(reg prometheus.Registerer) *quoteMetrics {
	return &quoteMetrics{
		created: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "created_total",
			Help:      "Number of quote requests accepted, by whether a service was selected.",
		}, []string{"has_service"})),
		stored: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "stored",
			Help:      "Number of quote requests held in memory.",
		})),
	}
}

// register registers c, or returns the collector already registered under
// the same descriptor so several services can share one registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	err := reg.Register(c)
	if err == nil {
		return c
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing
		}
	}

	panic(err)
}
