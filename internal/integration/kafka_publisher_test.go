//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	kafkaadapter "github.com/gatewaywatch/metro-incident-feed/internal/adapter/kafka"
	"github.com/gatewaywatch/metro-incident-feed/internal/config"
	"github.com/gatewaywatch/metro-incident-feed/internal/domain"
)

const testIncidentTopic = "test-incidents"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka launches a single-node Kafka container and returns its broker
// address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("test-cluster"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err, "dial broker")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)

	controllerConn, err := kafkago.Dial("tcp",
		net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err, "dial controller")
	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestPublisherRoundTrip publishes assembled incidents through the adapter
// and reads them back from the topic, verifying keys, headers, and payload.
func TestPublisherRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testIncidentTopic)

	cfg := &config.Config{
		KafkaBrokers:       []string{broker},
		KafkaIncidentTopic: testIncidentTopic,
	}

	// Assemble incidents from news items the way the run loop does.
	fence := domain.NewFence(discardLogger())
	high := domain.ConfidenceHigh
	medium := domain.ConfidenceMedium
	items := []domain.NewsItem{
		{
			ID:          "news-aaa",
			Title:       "Crash on I-64 at Kingshighway",
			Outlet:      "Test Wire",
			URL:         "https://example.com/crash",
			PublishedAt: time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC),
			Location:    &domain.GeoPoint{Lat: 38.6318, Lon: -90.2557},
			Confidence:  &high,
		},
		{
			ID:          "news-bbb",
			Title:       "Fire near the Gateway Arch",
			Outlet:      "Test Wire",
			URL:         "https://example.com/fire",
			PublishedAt: time.Date(2026, time.March, 4, 13, 0, 0, 0, time.UTC),
			Location:    &domain.GeoPoint{Lat: 38.6247, Lon: -90.1848},
			Confidence:  &medium,
		},
	}
	incidents := domain.NewsToIncidents(items, fence)
	require.Len(t, incidents, 2)

	publisher := kafkaadapter.NewPublisher(cfg, discardLogger())
	t.Cleanup(func() { _ = publisher.Close() })

	require.NoError(t, publisher.Publish(ctx, incidents))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testIncidentTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	received := make(map[string]domain.Incident, len(incidents))
	for len(received) < len(incidents) {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read from incident topic")

		var incident domain.Incident
		require.NoError(t, json.Unmarshal(msg.Value, &incident))
		assert.Equal(t, incident.ID, string(msg.Key), "message keyed by incident ID")

		headers := make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, domain.IncidentCategoryNews, headers["category"])
		_, err = time.Parse(time.RFC3339, headers["created_at"])
		assert.NoError(t, err, "created_at header should be valid RFC3339")

		received[incident.Title] = incident
	}

	crash, ok := received["Crash on I-64 at Kingshighway"]
	require.True(t, ok)
	assert.Equal(t, domain.ConfidenceHigh, crash.Confidence)
	assert.Equal(t, domain.IncidentSeverityLow, crash.Severity)
	assert.Equal(t, domain.IncidentStatusActive, crash.Status)
	assert.Equal(t, "https://example.com/crash", crash.SourceURL)
	assert.InDelta(t, 38.6318, crash.Location.Lat, 0.001)

	fire, ok := received["Fire near the Gateway Arch"]
	require.True(t, ok)
	assert.Equal(t, domain.ConfidenceMedium, fire.Confidence)
}

// TestPublisherEmptyBatch verifies a run that assembled nothing does not
// touch the broker.
func TestPublisherEmptyBatch(t *testing.T) {
	cfg := &config.Config{
		KafkaBrokers:       []string{"localhost:1"}, // unreachable on purpose
		KafkaIncidentTopic: testIncidentTopic,
	}
	publisher := kafkaadapter.NewPublisher(cfg, discardLogger())
	t.Cleanup(func() { _ = publisher.Close() })

	assert.NoError(t, publisher.Publish(context.Background(), nil))
}
