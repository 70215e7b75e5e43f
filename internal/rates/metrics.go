package rates

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		duration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "xr_probe",
				Subsystem: "",
				Name:      "xr_resp_duration",
				Help:      "rate provider response duration",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.003, 0.005, 0.01, 0.05, 0.1, 1, 5, 10},
			}),
	}
}
