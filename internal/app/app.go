package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ratesvc/internal/adapters"
	"ratesvc/internal/adapters/cache"
	"ratesvc/internal/adapters/httpclient"
	"ratesvc/internal/adapters/postgres"
	"ratesvc/internal/api"
	"ratesvc/internal/config"
	"ratesvc/internal/metrics"
	"ratesvc/internal/platform/db"
	httpserver "ratesvc/internal/platform/http"
	"ratesvc/internal/rates"
	"ratesvc/internal/rates/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
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

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if err = db.Migrate(startupCtx, appCfg.DbServer); err != nil {
		logrus.WithError(err).Error("Failed to apply migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Quote sources, in preference order: the two preferred single-pair
	// providers, then the combined fallbacks.
	blue := httpclient.NewBluelyticsClient(baseHTTPClient, appCfg.Sources.BluelyticsURL)
	frankfurter := httpclient.NewFrankfurterClient(baseHTTPClient, appCfg.Sources.FrankfurterURL)
	fallbacks := []adapters.RateSource{
		httpclient.NewCombinedClient(blue, baseHTTPClient, appCfg.Sources.ExchangerateHostURL),
		httpclient.NewOpenERAPIClient(baseHTTPClient, appCfg.Sources.OpenERAPIURL),
		httpclient.NewExchangerateAPIClient(baseHTTPClient, appCfg.Sources.ExchangerateAPIURL),
	}

	// Repositories and caches
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	historyCache, err := cache.NewSnapshotCache(appCfg.Rates.HistoryCacheSize)
	if err != nil {
		logrus.WithError(err).Error("Failed to create history cache")
		return err
	}
	defer historyCache.Close()

	// Services
	rateMetrics := metrics.New(prometheus.DefaultRegisterer)
	aggregator := rates.NewAggregator(
		blue,
		frankfurter,
		fallbacks,
		time.Duration(appCfg.Rates.SourceTimeoutSeconds)*time.Second,
		rateMetrics,
	)
	rateService := rates.NewService(
		aggregator,
		snapshotRepo,
		historyCache,
		rateMetrics,
		time.Duration(appCfg.Rates.FreshnessSeconds)*time.Second,
	)

	scheduler := rates.NewScheduler(rateService, time.Duration(appCfg.Rates.RefreshSeconds)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateService)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
