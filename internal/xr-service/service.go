package xrservice

import (
	"math"
	"time"

	"github.com/AlexZav1327/xr-provider/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	eur = "EUR"
	usd = "USD"

	eurToUsd = 1.0

	kindBase        = "base"
	kindPlaceholder = "placeholder"
)

// Kept as variables so π·e is a float64 product, not an exact constant.
var pi, e = math.Pi, math.E

// Rate answers rate queries. Its settings are fixed at construction, so a
// single instance is safe for concurrent use.
type Rate struct {
	spread  float64
	loops   int64
	log     *logrus.Entry
	metrics *metrics
}

func New(cfg config.Rate, log *logrus.Logger, reg prometheus.Registerer) *Rate {
	return &Rate{
		spread:  cfg.Spread,
		loops:   cfg.WizardLoops,
		log:     log.WithField("module", "xr_service"),
		metrics: newMetrics(reg),
	}
}

// GetRate returns the spread-adjusted rate for the pair. Only EUR->USD has a
// real rate; anything else gets the placeholder after the busy loop.
func (r *Rate) GetRate(source, destination string) string {
	var rate float64

	if source == eur && destination == usd {
		r.metrics.requests.WithLabelValues(kindBase).Inc()

		rate = eurToUsd
	} else {
		r.metrics.requests.WithLabelValues(kindPlaceholder).Inc()

		rate = r.wizard()
	}

	return FormatRate(r.applySpread(rate))
}

// wizard burns CPU for the configured number of iterations. The value never
// changes between iterations.
func (r *Rate) wizard() float64 {
	started := time.Now()
	piE := pi * e

	rate := math.Tan(math.Atan(piE))
	for i := int64(1); i < r.loops; i++ {
		rate = math.Tan(math.Atan(piE))
	}

	elapsed := time.Since(started)
	r.metrics.wizardDuration.Observe(elapsed.Seconds())
	r.log.WithFields(logrus.Fields{
		"loops":   r.loops,
		"elapsed": elapsed,
	}).Debug("placeholder rate computed")

	return rate
}

func (r *Rate) applySpread(rate float64) float64 {
	return rate * (1.0 + r.spread)
}
