// Command ingestd runs the metro incident ingestion service: it
// periodically fetches, filters, and geocodes local news feeds, serves the
// resulting incidents over HTTP, and optionally publishes them to Kafka.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/gatewaywatch/metro-incident-feed/internal/adapter/http"
	kafkaadapter "github.com/gatewaywatch/metro-incident-feed/internal/adapter/kafka"
	"github.com/gatewaywatch/metro-incident-feed/internal/config"
	"github.com/gatewaywatch/metro-incident-feed/internal/domain"
	"github.com/gatewaywatch/metro-incident-feed/internal/feed"
	"github.com/gatewaywatch/metro-incident-feed/internal/ingest"
	"github.com/gatewaywatch/metro-incident-feed/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	fence := domain.NewFence(logger)
	geocoder := domain.NewGeocoder(fence, logger)
	fetcher := feed.NewFetcher(cfg.FetchTimeout, logger, metrics)
	parser := feed.NewParser(logger)

	ingestor := ingest.New(ingest.DefaultSources, fetcher, parser, geocoder,
		ingest.Options{MaxItems: cfg.MaxItems, RecencyWindow: cfg.RecencyWindow},
		logger, metrics)

	// Incident publishing is feature-flagged via KAFKA_BROKERS / KAFKA_ENABLED.
	var publisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		publisher = kafkaadapter.NewPublisher(cfg, logger)
		logger.Info("kafka incident publishing enabled",
			"brokers", cfg.KafkaBrokers, "topic", cfg.KafkaIncidentTopic)
	} else {
		logger.Info("kafka incident publishing disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ingestor, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Run the ingestion loop.
	go runLoop(ctx, cfg.FetchInterval, ingestor, fence, srv, publisher, logger)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// runLoop executes an ingestion run immediately and then on every tick
// until the context is cancelled.
func runLoop(ctx context.Context, interval time.Duration, ingestor *ingest.Ingestor,
	fence *domain.Fence, srv *httpadapter.Server, publisher *kafkaadapter.Publisher,
	logger *slog.Logger) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		runOnce(ctx, ingestor, fence, srv, publisher, logger)

		select {
		case <-ctx.Done():
			logger.Info("ingestion loop stopping", "reason", ctx.Err())
			return
		case <-ticker.C:
		}
	}
}

func runOnce(ctx context.Context, ingestor *ingest.Ingestor, fence *domain.Fence,
	srv *httpadapter.Server, publisher *kafkaadapter.Publisher, logger *slog.Logger) {

	items, _ := ingestor.Run(ctx)
	incidents := domain.NewsToIncidents(items, fence)
	srv.UpdateIncidents(incidents)

	if publisher == nil || len(incidents) == 0 {
		return
	}
	if err := publisher.Publish(ctx, incidents); err != nil {
		logger.Error("incident publish failed", "error", err, "count", len(incidents))
	}
}
