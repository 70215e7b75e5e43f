package rates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/sirupsen/logrus"
)

var (
	ErrBadRequest       = errors.New("rate request rejected")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Rates queries a running rate provider over HTTP.
type Rates struct {
	baseURL string
	client  *http.Client
	log     *logrus.Entry
	metrics *metrics
}

func New(baseURL string, timeout time.Duration, log *logrus.Logger, reg prometheus.Registerer) *Rates {
	return &Rates{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log.WithField("module", "rates"),
		metrics: newMetrics(reg),
	}
}

func (r *Rates) GetRate(ctx context.Context, source, destination string) (float64, error) {
	started := time.Now()
	defer func() {
		r.metrics.duration.Observe(time.Since(started).Seconds())
	}()

	query := url.Values{}
	query.Set("source", source)
	query.Set("destination", destination)

	endpoint := fmt.Sprintf("%s/rate?%s", r.baseURL, query.Encode())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	response, err := r.client.Do(request)
	if err != nil {
		return 0, fmt.Errorf("client.Do: %w", err)
	}

	defer func() {
		err = response.Body.Close()
		if err != nil {
			r.log.Warningf("response.Body.Close: %s", err)
		}
	}()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, fmt.Errorf("io.ReadAll: %w", err)
	}

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return 0, fmt.Errorf("%w: %s", ErrBadRequest, body)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, response.StatusCode)
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(string(body)), 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	return rate, nil
}

// Report logs and returns how many responses were timed and their total
// duration in seconds.
func (r *Rates) Report() (uint64, float64) {
	var metric dto.Metric

	err := r.metrics.duration.Write(&metric)
	if err != nil {
		r.log.Warningf("duration.Write: %s", err)

		return 0, 0
	}

	count := metric.GetHistogram().GetSampleCount()
	sum := metric.GetHistogram().GetSampleSum()

	r.log.WithFields(logrus.Fields{
		"requests":      count,
		"total_seconds": sum,
	}).Info("Provider response durations")

	return count, sum
}
