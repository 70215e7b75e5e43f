package xrservice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests       *prometheus.CounterVec
	wizardDuration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "xr_provider",
				Subsystem: "",
				Name:      "rate_requests_total",
				Help:      "total quantity of rate computations by rate kind",
			}, []string{"kind"}),
		wizardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "xr_provider",
				Subsystem: "",
				Name:      "wizard_duration_seconds",
				Help:      "placeholder rate busy loop duration",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10},
			}),
	}
}
