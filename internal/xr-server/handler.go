package xrserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/AlexZav1327/xr-provider/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	sourceParam      = "source"
	destinationParam = "destination"
	contentType      = "text/plain; charset=utf-8"
)

var ErrMissingParam = errors.New("missing required parameter")

type MissingParamError struct {
	Name string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("Required request parameter '%s' is not present", e.Name)
}

func (e *MissingParamError) Unwrap() error {
	return ErrMissingParam
}

type Handler struct {
	service RateService
	log     *logrus.Entry
	metrics *metrics
}

func NewHandler(service RateService, log *logrus.Logger, reg prometheus.Registerer) *Handler {
	return &Handler{
		service: service,
		log:     log.WithField("module", "xr_handler"),
		metrics: newMetrics(reg),
	}
}

// bindRateRequest checks presence only: a key sent with an empty value counts
// as present. Repeated keys are joined with commas.
func bindRateRequest(query url.Values) (models.RateRequest, error) {
	for _, name := range []string{sourceParam, destinationParam} {
		if !query.Has(name) {
			return models.RateRequest{}, &MissingParamError{Name: name}
		}
	}

	return models.RateRequest{
		Source:      strings.Join(query[sourceParam], ","),
		Destination: strings.Join(query[destinationParam], ","),
	}, nil
}

func (h *Handler) rate(w http.ResponseWriter, r *http.Request) {
	request, err := bindRateRequest(r.URL.Query())
	if err != nil {
		h.write(w, models.RateResponse{Status: http.StatusBadRequest, Body: err.Error()})

		return
	}

	h.write(w, h.getRate(request))
}

func (h *Handler) getRate(request models.RateRequest) models.RateResponse {
	return models.RateResponse{
		Status: http.StatusOK,
		Body:   h.service.GetRate(request.Source, request.Destination),
	}
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.write(w, models.RateResponse{Status: http.StatusOK, Body: "ok"})
}

func (h *Handler) write(w http.ResponseWriter, response models.RateResponse) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(response.Status)

	_, err := w.Write([]byte(response.Body))
	if err != nil {
		h.log.Warningf("w.Write: %s", err)
	}
}
