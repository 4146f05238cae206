package ingest

import "github.com/gatewaywatch/metro-incident-feed/internal/domain"

// DefaultSources lists the configured metro news feeds. Each source's
// fallback URLs are retried through the whole transport chain after the
// primary URL exhausts it. Static configuration, not mutated at runtime.
var DefaultSources = []domain.FeedSource{
	{
		Name: "St. Louis Post-Dispatch",
		URL:  "https://www.stltoday.com/search/?f=rss&t=article&c=news/local&l=50",
		FallbackURLs: []string{
			"https://news.google.com/rss/search?q=site:stltoday.com&hl=en-US&gl=US&ceid=US:en",
		},
	},
	{
		Name: "KSDK",
		URL:  "https://www.ksdk.com/feeds/syndication/rss/news/local",
		FallbackURLs: []string{
			"https://news.google.com/rss/search?q=site:ksdk.com&hl=en-US&gl=US&ceid=US:en",
		},
	},
	{
		Name: "FOX 2",
		URL:  "https://fox2now.com/news/missouri/feed/",
		FallbackURLs: []string{
			"https://fox2now.com/feed/",
		},
	},
	{
		Name: "Google News",
		URL:  "https://news.google.com/rss/search?q=%22St.+Louis%22+when:2d&hl=en-US&gl=US&ceid=US:en",
	},
}
