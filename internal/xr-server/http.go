package xrserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AlexZav1327/xr-provider/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	host            string
	port            int
	shutdownTimeout time.Duration
	Server          *http.Server
	service         RateService
	log             *logrus.Entry
}

type RateService interface {
	GetRate(source, destination string) string
}

func New(cfg config.HTTPServer, service RateService, log *logrus.Logger, reg *prometheus.Registry) *Server {
	server := Server{
		host:            cfg.Host,
		port:            cfg.Port,
		shutdownTimeout: cfg.ShutdownTimeout,
		service:         service,
		log:             log.WithField("module", "xr_http"),
	}

	h := NewHandler(service, log, reg)
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Get("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP)
	r.Get("/health", h.health)
	r.Group(func(r chi.Router) {
		r.Use(h.metric)
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log, NoColor: true}))
		r.Get("/rate", h.rate)
		r.Head("/rate", h.rate)
	})

	server.Server = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	return &server
}

// Run serves until ctx is cancelled and then shuts the server down gracefully.
// Requests still running after the shutdown timeout have their connections
// closed; only listen failures are returned.
func (s *Server) Run(ctx context.Context) error {
	defer s.log.Info("Server is stopped")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		err := s.Server.Shutdown(shutdownCtx)
		if err != nil {
			s.log.Warningf("Server.Shutdown: %s", err)

			err = s.Server.Close()
			if err != nil {
				s.log.Warningf("Server.Close: %s", err)
			}
		}

		return nil
	})

	g.Go(func() error {
		s.log.Infof("Server is running at port %d...", s.port)

		err := s.Server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("Server.ListenAndServe: %w", err)
		}

		return nil
	})

	return g.Wait()
}
