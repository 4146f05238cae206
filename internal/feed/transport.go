// Package feed acquires and parses remote news feeds. Acquisition tries a
// direct request first, then an ordered list of proxy-style intermediary
// transports; many local outlets block direct programmatic access, so
// channel diversity beats retrying a dead channel.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gatewaywatch/metro-incident-feed/internal/observability"
)

const (
	feedAccept = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"
	userAgent  = "metro-incident-feed/1.0"

	// maxBodyBytes caps response reads; feeds are small and some proxies
	// happily stream arbitrary pages.
	maxBodyBytes = 5 << 20
)

// ErrAllTransportsFailed reports that the direct request and every proxy
// transport failed or returned non-feed content for a URL.
var ErrAllTransportsFailed = errors.New("all transports failed")

// transport is one way of obtaining a URL's bytes. unwrap is non-nil for
// variants that wrap the payload in a JSON envelope.
type transport struct {
	name     string
	buildURL func(target string) string
	unwrap   func(body []byte) (string, error)
}

// fallbackTransports is the fixed ordered list tried after a direct fetch
// fails. Each entry is tried once; there is no backoff.
var fallbackTransports = []transport{
	{
		name: "allorigins-raw",
		buildURL: func(target string) string {
			return "https://api.allorigins.win/raw?url=" + url.QueryEscape(target)
		},
	},
	{
		name: "corsproxy",
		buildURL: func(target string) string {
			return "https://corsproxy.io/?url=" + url.QueryEscape(target)
		},
	},
	{
		name: "allorigins-json",
		buildURL: func(target string) string {
			return "https://api.allorigins.win/get?url=" + url.QueryEscape(target)
		},
		unwrap: unwrapAllOrigins,
	},
}

// unwrapAllOrigins extracts the payload from the allorigins JSON envelope.
func unwrapAllOrigins(body []byte) (string, error) {
	var envelope struct {
		Contents string `json:"contents"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("unwrap proxy envelope: %w", err)
	}
	if envelope.Contents == "" {
		return "", errors.New("proxy envelope has empty contents")
	}
	return envelope.Contents, nil
}

// Fetcher retrieves raw feed bodies with per-attempt timeouts and a
// fallback transport chain.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	transports []transport
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewFetcher creates a Fetcher. timeout bounds each individual attempt,
// not the whole chain.
func NewFetcher(timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Fetcher {
	return &Fetcher{
		client:     &http.Client{},
		timeout:    timeout,
		transports: fallbackTransports,
		logger:     logger,
		metrics:    metrics,
	}
}

// Fetch returns the first validated feed body for target, trying the
// direct request and then each fallback transport in order. The returned
// error is ErrAllTransportsFailed (wrapped) when nothing produced valid
// feed content.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	body, err := f.attempt(ctx, "direct", target, nil)
	if err == nil {
		return body, nil
	}
	f.logger.Debug("direct fetch failed", "url", target, "error", err)

	for _, tr := range f.transports {
		body, err = f.attempt(ctx, tr.name, tr.buildURL(target), tr.unwrap)
		if err == nil {
			return body, nil
		}
		f.logger.Debug("fallback transport failed", "transport", tr.name, "url", target, "error", err)
	}

	f.logger.Warn("feed unreachable on all transports", "url", target)
	return "", fmt.Errorf("fetch %s: %w", target, ErrAllTransportsFailed)
}

// attempt performs one bounded request and validates the body. The outcome
// label distinguishes timeout, bad status, and invalid content for
// diagnosability.
func (f *Fetcher) attempt(ctx context.Context, name, fullURL string, unwrap func([]byte) (string, error)) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", f.fail(name, "request", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", feedAccept)
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		outcome := "error"
		if errors.Is(err, context.DeadlineExceeded) || attemptCtx.Err() != nil {
			outcome = "timeout"
		}
		return "", f.fail(name, outcome, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", f.fail(name, "status", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", f.fail(name, "read", fmt.Errorf("read body: %w", err))
	}

	body := string(raw)
	if unwrap != nil {
		body, err = unwrap(raw)
		if err != nil {
			return "", f.fail(name, "envelope", err)
		}
	}

	if !IsValidFeedContent(body) {
		return "", f.fail(name, "invalid_content", errors.New("body is not feed content"))
	}

	f.metrics.TransportAttempts.WithLabelValues(name, "success").Inc()
	return body, nil
}

func (f *Fetcher) fail(name, outcome string, err error) error {
	f.metrics.TransportAttempts.WithLabelValues(name, outcome).Inc()
	return err
}

// IsValidFeedContent reports whether s looks like an RSS or Atom body. A
// body must carry a feed dialect marker and must not carry HTML document
// markers; some intermediaries return HTML error pages with a 200 status,
// and those occasionally contain feed-ish substrings.
func IsValidFeedContent(s string) bool {
	lower := strings.ToLower(s)

	hasFeedMarker := strings.Contains(lower, "<rss") ||
		strings.Contains(lower, "<feed") ||
		strings.Contains(lower, "<item>") ||
		strings.Contains(lower, "<entry>")
	if !hasFeedMarker {
		return false
	}

	return !strings.Contains(lower, "<!doctype") &&
		!strings.Contains(lower, "<html") &&
		!strings.Contains(lower, "<body>")
}
