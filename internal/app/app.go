package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxcache/internal/adapters/httpclient"
	"fxcache/internal/api"
	"fxcache/internal/config"
	"fxcache/internal/metrics"
	httpserver "fxcache/internal/platform/http"
	"fxcache/internal/rate"
	"fxcache/internal/rate/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and the flush scheduler.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External rate source
	if appCfg.RateSource.BaseURL == "" {
		return fmt.Errorf("rate source base url is required")
	}
	fetcher := httpclient.NewRateFetcher(baseHTTPClient, appCfg.RateSource.BaseURL)

	// Metrics and cache
	appMetrics := metrics.NewMetrics(prometheus.DefaultRegisterer)
	cache := rate.NewCache(fetcher, appMetrics)
	rateService := rate.NewService(cache)

	// Optional periodic flush
	flushInterval := time.Duration(appCfg.Cache.FlushIntervalSeconds) * time.Second
	if flushInterval > 0 {
		scheduler := rate.NewScheduler(cache, flushInterval)
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start flush scheduler")
			return startErr
		}
		logrus.Infof("✅ Flush scheduler activated, interval %s", flushInterval)
	}

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateService)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
