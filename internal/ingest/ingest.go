// Package ingest orchestrates the feed pipeline: fetch, parse, filter,
// geocode, and assemble a bounded, time-windowed, sorted news item set.
// Sources run as independent concurrent tasks; partial failure is a
// first-class outcome, not an exceptional one.
package ingest

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gatewaywatch/metro-incident-feed/internal/domain"
	"github.com/gatewaywatch/metro-incident-feed/internal/observability"
)

// Fetcher retrieves a raw feed body for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Parser converts a raw feed body into normalized items.
type Parser interface {
	Parse(raw, sourceName string) []domain.RawFeedItem
}

// Geocoder resolves free text to a fence-validated coordinate, or nil.
type Geocoder interface {
	GeocodeText(text string) *domain.GeocodeResult
}

// SourceStats counts what one source contributed to a run.
type SourceStats struct {
	Source   string
	Fetched  int // feed bodies successfully obtained
	Parsed   int // items extracted from those bodies
	Relevant int // items surviving dedupe + relevance filtering
	Geocoded int // items geocoded at medium or higher confidence
	Failed   bool
}

// RunStats aggregates a whole ingestion run for the summary log.
type RunStats struct {
	Sources    []SourceStats
	Confidence map[domain.Confidence]int
}

// Options bound a run's output.
type Options struct {
	MaxItems      int
	RecencyWindow time.Duration
}

// DefaultOptions match the product defaults: at most 100 items, none
// older than 48 hours.
var DefaultOptions = Options{
	MaxItems:      100,
	RecencyWindow: 48 * time.Hour,
}

// Ingestor runs the full pipeline across all configured sources.
type Ingestor struct {
	sources  []domain.FeedSource
	fetcher  Fetcher
	parser   Parser
	geocoder Geocoder
	filter   *Filter
	opts     Options
	logger   *slog.Logger
	metrics  *observability.Metrics
	ready    atomic.Bool
}

// CheckReadiness returns nil once at least one ingestion run has
// completed, or an error describing why the service is not yet ready.
func (in *Ingestor) CheckReadiness(_ context.Context) error {
	if !in.ready.Load() {
		return errors.New("no ingestion run has completed yet")
	}
	return nil
}

// New creates an Ingestor over the given sources and pipeline stages.
func New(sources []domain.FeedSource, fetcher Fetcher, parser Parser, geocoder Geocoder,
	opts Options, logger *slog.Logger, metrics *observability.Metrics) *Ingestor {
	return &Ingestor{
		sources:  sources,
		fetcher:  fetcher,
		parser:   parser,
		geocoder: geocoder,
		filter:   NewFilter(),
		opts:     opts,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run ingests all sources concurrently and returns the merged, sorted,
// time-windowed, capped news item set. A source failing entirely degrades
// to zero items from that source; Run itself never fails. The seen-link
// set is owned by this invocation, so concurrent runs are independent.
func (in *Ingestor) Run(ctx context.Context) ([]domain.NewsItem, RunStats) {
	start := time.Now()
	in.metrics.IngestActive.Set(1)
	defer in.metrics.IngestActive.Set(0)

	seen := NewSeenSet()
	results := make([]sourceResult, len(in.sources))

	// Every task resolves to a result even on failure, so the group
	// never aborts early: settle all, never reject on first failure.
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range in.sources {
		g.Go(func() error {
			results[i] = in.runSource(gctx, src, seen)
			return nil
		})
	}
	_ = g.Wait()

	stats := RunStats{Confidence: make(map[domain.Confidence]int)}
	var merged []domain.NewsItem
	for _, r := range results {
		stats.Sources = append(stats.Sources, r.stats)
		merged = append(merged, r.items...)
		if r.stats.Failed {
			in.metrics.SourceFailures.WithLabelValues(r.stats.Source).Inc()
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	cutoff := domain.Clock().Now().Add(-in.opts.RecencyWindow)
	windowed := merged[:0]
	for _, item := range merged {
		if item.PublishedAt.Before(cutoff) {
			continue
		}
		windowed = append(windowed, item)
	}
	if len(windowed) > in.opts.MaxItems {
		windowed = windowed[:in.opts.MaxItems]
	}

	for _, item := range windowed {
		if item.Confidence != nil {
			stats.Confidence[*item.Confidence]++
		}
	}

	in.metrics.RunDuration.Observe(time.Since(start).Seconds())
	in.metrics.RunItems.Set(float64(len(windowed)))
	in.logSummary(windowed, stats, time.Since(start))
	in.ready.Store(true)

	return windowed, stats
}

type sourceResult struct {
	items []domain.NewsItem
	stats SourceStats
}

// runSource fetches one source (primary URL, then each fallback URL
// through the whole transport chain), parses, filters, and geocodes its
// items. It always returns a result; failure is recorded in stats.
func (in *Ingestor) runSource(ctx context.Context, src domain.FeedSource, seen *SeenSet) sourceResult {
	stats := SourceStats{Source: src.Name}

	var body string
	for _, u := range append([]string{src.URL}, src.FallbackURLs...) {
		fetched, err := in.fetcher.Fetch(ctx, u)
		if err != nil {
			in.logger.Warn("source fetch failed", "source", src.Name, "url", u, "error", err)
			continue
		}
		body = fetched
		break
	}
	if body == "" {
		stats.Failed = true
		return sourceResult{stats: stats}
	}
	stats.Fetched = 1
	in.metrics.ItemsFetched.WithLabelValues(src.Name).Inc()

	rawItems := in.parser.Parse(body, src.Name)
	stats.Parsed = len(rawItems)
	in.metrics.ItemsParsed.WithLabelValues(src.Name).Add(float64(len(rawItems)))

	var items []domain.NewsItem
	for _, raw := range rawItems {
		if seen.MarkSeen(raw.Link) {
			continue
		}
		if !in.filter.IsRelevant(raw) {
			continue
		}
		stats.Relevant++
		in.metrics.ItemsRelevant.WithLabelValues(src.Name).Inc()

		result := in.geocoder.GeocodeText(raw.Title + " " + raw.Description)
		if result == nil || result.Confidence == domain.ConfidenceLow {
			// Not an error: an ungeocodable article is dropped rather
			// than placed with guessed coordinates.
			continue
		}
		stats.Geocoded++
		in.metrics.ItemsGeocoded.WithLabelValues(src.Name).Inc()
		in.metrics.GeocodeConfidence.WithLabelValues(string(result.Confidence)).Inc()

		conf := result.Confidence
		loc := result.Location
		items = append(items, domain.NewsItem{
			ID:          domain.NewsItemID(raw.Link),
			Title:       raw.Title,
			Outlet:      src.Name,
			URL:         raw.Link,
			PublishedAt: raw.PublishedAt,
			Snippet:     raw.Description,
			Location:    &loc,
			Confidence:  &conf,
		})
	}

	return sourceResult{items: items, stats: stats}
}

func (in *Ingestor) logSummary(items []domain.NewsItem, stats RunStats, elapsed time.Duration) {
	for _, s := range stats.Sources {
		in.logger.Info("source ingested",
			"source", s.Source,
			"fetched", s.Fetched,
			"parsed", s.Parsed,
			"relevant", s.Relevant,
			"geocoded", s.Geocoded,
			"failed", s.Failed,
		)
	}
	in.logger.Info("ingestion run complete",
		"items", len(items),
		"high_confidence", stats.Confidence[domain.ConfidenceHigh],
		"medium_confidence", stats.Confidence[domain.ConfidenceMedium],
		"elapsed", elapsed,
	)
}
