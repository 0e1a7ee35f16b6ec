package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"cms_archiver/internal/activity"
	"cms_archiver/internal/api"
	"cms_archiver/internal/config"
	"cms_archiver/internal/metrics"
	"cms_archiver/internal/publisher"
	"cms_archiver/internal/scanner"
	"cms_archiver/internal/service"
	"cms_archiver/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

	// Activity goes to the audit table and, when enabled, the message bus.
	notifier := activity.NewFanout().Add("postgres", postgres.NewActivityStore(db))
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		notifier.Add("rabbitmq", rabbitMQ)
	}

	opts := []service.Option{service.WithBatchSize(cfg.Sweep.BatchSize)}
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, service.WithRecorder(metrics.NewCollector(cfg.Metrics.Namespace, reg)))
		gatherer = reg
	}

	archiveService := service.NewArchiveService(
		postgres.NewBannerStore(db),
		postgres.NewPageStore(db),
		postgres.NewArchivedBannerStore(db),
		postgres.NewArchivedPageStore(db),
		postgres.NewSweepStateStore(db),
		notifier,
		logger,
		opts...,
	)

	scan := scanner.NewScanner(archiveService, cfg.Sweep.Interval, logger)

	gin.SetMode(cfg.HTTP.Mode)
	server := api.NewRouter(archiveService, gatherer, logger).NewServer(cfg.HTTP.Addr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting cms archiver",
		"addr", cfg.HTTP.Addr,
		"sweep_interval", cfg.Sweep.Interval,
		"sweep_batch_size", cfg.Sweep.BatchSize,
		"activity_sinks", notifier.Len(),
	)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	go func() {
		defer wg.Done()
		if err := scan.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scanner error", "error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}

	wg.Wait()
	logger.Info("cms archiver stopped")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
