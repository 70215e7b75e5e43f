package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AlexZav1327/xr-provider/internal/config"
	"github.com/AlexZav1327/xr-provider/internal/rates"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const defaultPair = "EUR:USD"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	logger := logrus.StandardLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Panicf("config.Load: %s", err)
	}

	logger.SetLevel(cfg.LogLevel())

	client := rates.New(cfg.Probe.URL, cfg.Probe.Timeout, logger, prometheus.NewRegistry())

	pairs := os.Args[1:]
	if len(pairs) == 0 {
		pairs = []string{defaultPair}
	}

	g, gCtx := errgroup.WithContext(ctx)

	for _, pair := range pairs {
		pair := pair

		g.Go(func() error {
			source, destination, _ := strings.Cut(pair, ":")
			started := time.Now()

			rate, err := client.GetRate(gCtx, source, destination)
			if err != nil {
				logger.WithField("pair", pair).Warningf("client.GetRate: %s", err)

				return err
			}

			logger.WithFields(logrus.Fields{
				"pair":    pair,
				"rate":    rate,
				"elapsed": time.Since(started),
			}).Info("Rate received")

			return nil
		})
	}

	err = g.Wait()

	client.Report()

	if err != nil {
		cancel()
		os.Exit(1)
	}
}
