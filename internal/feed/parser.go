package feed

import (
	"html"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/gatewaywatch/metro-incident-feed/internal/domain"
)

// maxSnippetLen caps item descriptions; map popovers truncate anyway.
const maxSnippetLen = 500

var tagRe = regexp.MustCompile(`<[^>]*>`)

// Parser converts raw feed markup into normalized items, independent of
// how the bytes were obtained. Both RSS <item> and Atom <entry> dialects
// are supported.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a feed parser.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse extracts normalized items from raw feed markup. Unparseable input
// yields an empty slice, never an error: a bad feed body is a per-source
// condition the caller already accounts for. Items missing a title or
// link are dropped; a missing or bad timestamp defaults to now.
func (p *Parser) Parse(raw, sourceName string) []domain.RawFeedItem {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	// gofeed parsers are cheap and not documented as goroutine-safe, so
	// each call gets its own.
	parsed, err := gofeed.NewParser().ParseString(raw)
	if err != nil {
		p.logger.Warn("feed parse failed", "source", sourceName, "error", err)
		return nil
	}

	items := make([]domain.RawFeedItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		normalized, ok := p.normalizeItem(item, sourceName)
		if !ok {
			continue
		}
		items = append(items, normalized)
	}
	return items
}

// normalizeItem applies the field fallbacks: link falls back to GUID,
// description falls back to the richer content field, and the publish
// time falls back published -> updated -> now.
func (p *Parser) normalizeItem(item *gofeed.Item, sourceName string) (domain.RawFeedItem, bool) {
	title := cleanText(item.Title)
	link := strings.TrimSpace(item.Link)
	if link == "" {
		link = strings.TrimSpace(item.GUID)
	}
	if title == "" || link == "" {
		p.logger.Debug("dropping feed item missing title or link", "source", sourceName)
		return domain.RawFeedItem{}, false
	}

	description := item.Description
	if strings.TrimSpace(description) == "" {
		description = item.Content
	}

	return domain.RawFeedItem{
		Title:       title,
		Link:        link,
		Description: truncate(stripTags(cleanText(description)), maxSnippetLen),
		PublishedAt: publishTime(item),
	}, true
}

func publishTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return domain.Clock().Now()
}

// cleanText unwraps residual CDATA markers and decodes HTML entities.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "<![CDATA[", "")
	s = strings.ReplaceAll(s, "]]>", "")
	return strings.TrimSpace(html.UnescapeString(s))
}

func stripTags(s string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(s, " "))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
