package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// feed ingestion pipeline.
type Metrics struct {
	// Per-source pipeline stage counters.
	ItemsFetched  *prometheus.CounterVec // label: source
	ItemsParsed   *prometheus.CounterVec // label: source
	ItemsRelevant *prometheus.CounterVec // label: source
	ItemsGeocoded *prometheus.CounterVec // label: source

	// Transport and geocoding outcomes.
	TransportAttempts *prometheus.CounterVec // labels: transport, outcome={success,timeout,status,error,envelope,invalid_content,read,request}
	GeocodeConfidence *prometheus.CounterVec // label: tier={medium,high}
	SourceFailures    *prometheus.CounterVec // label: source

	// Run-level metrics.
	RunDuration  prometheus.Histogram
	RunItems     prometheus.Gauge
	IngestActive prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ItemsFetched,
		m.ItemsParsed,
		m.ItemsRelevant,
		m.ItemsGeocoded,
		m.TransportAttempts,
		m.GeocodeConfidence,
		m.SourceFailures,
		m.RunDuration,
		m.RunItems,
		m.IngestActive,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ItemsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "incident_feed",
			Name:      "items_fetched_total",
			Help:      "Raw feed bodies successfully fetched, by source.",
		}, []string{"source"}),
		ItemsParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "incident_feed",
			Name:      "items_parsed_total",
			Help:      "Feed items parsed out of fetched bodies, by source.",
		}, []string{"source"}),
		ItemsRelevant: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "incident_feed",
			Name:      "items_relevant_total",
			Help:      "Items surviving dedupe and relevance filtering, by source.",
		}, []string{"source"}),
		ItemsGeocoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "incident_feed",
			Name:      "items_geocoded_total",
			Help:      "Items successfully geocoded at medium or higher confidence, by source.",
		}, []string{"source"}),
		TransportAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "incident_feed",
			Name:      "transport_attempts_total",
			Help:      "Fetch attempts by transport and outcome.",
		}, []string{"transport", "outcome"}),
		GeocodeConfidence: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "incident_feed",
			Name:      "geocode_confidence_total",
			Help:      "Geocoded items by confidence tier.",
		}, []string{"tier"}),
		SourceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "incident_feed",
			Name:      "source_failures_total",
			Help:      "Ingestion runs in which a source yielded nothing, by source.",
		}, []string{"source"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "incident_feed",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete ingestion run across all sources.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}),
		RunItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incident_feed",
			Name:      "run_items",
			Help:      "News items produced by the most recent ingestion run.",
		}),
		IngestActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incident_feed",
			Name:      "ingest_active",
			Help:      "1 while an ingestion run is in progress.",
		}),
	}
}
