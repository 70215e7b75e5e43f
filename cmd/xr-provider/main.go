package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/AlexZav1327/xr-provider/internal/config"
	xrserver "github.com/AlexZav1327/xr-provider/internal/xr-server"
	xrservice "github.com/AlexZav1327/xr-provider/internal/xr-service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	logger := logrus.StandardLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Panicf("config.Load: %s", err)
	}

	logger.SetLevel(cfg.LogLevel())
	logger.WithFields(logrus.Fields{
		"spread":       cfg.Rate.Spread,
		"wizard_loops": cfg.Rate.WizardLoops,
	}).Info("Rate settings loaded")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	rateService := xrservice.New(cfg.Rate, logger, reg)
	server := xrserver.New(cfg.HTTPServer, rateService, logger, reg)

	err = server.Run(ctx)
	if err != nil {
		logger.Panicf("server.Run: %s", err)
	}
}
