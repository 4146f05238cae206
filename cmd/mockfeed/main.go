// Command mockfeed serves a small synthetic RSS feed for local
// development, so the ingestor can be exercised without hitting real
// news sites. Timestamps are generated relative to startup so items
// always land inside the recency window.
//
// Usage:
//
//	go run ./cmd/mockfeed -addr :9090
//	FEED_URL=http://localhost:9090/rss go run ./cmd/ingestd
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

var sampleItems = []struct {
	title string
	desc  string
}{
	{"Multi-vehicle crash closes I-64 at Kingshighway", "Police report three vehicles involved near the Central West End."},
	{"House fire in Tower Grove South displaces family", "Crews responded overnight; no injuries reported."},
	{"Water main break floods street in Kirkwood", "Repairs expected through the afternoon."},
	{"Shooting investigation underway in East St. Louis", "Illinois State Police assisting local officers."},
	{"Brush fire spreads near Festus in Jefferson County", "Dry conditions cited; highway shoulder closed."},
}

func main() {
	addr := flag.String("addr", ":9090", "listen address")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	http.HandleFunc("/rss", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		fmt.Fprint(w, renderFeed(time.Now()))
		logger.Info("served mock feed", "remote", r.RemoteAddr)
	})

	logger.Info("mock feed listening", "addr", *addr, "path", "/rss")
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func renderFeed(now time.Time) string {
	out := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Mock Metro News</title>
<link>http://localhost/rss</link>
`
	for i, item := range sampleItems {
		pub := now.Add(-time.Duration(i) * time.Hour).Format(time.RFC1123Z)
		out += fmt.Sprintf(`<item>
<title>%s</title>
<link>http://localhost/story/%d</link>
<description>%s</description>
<pubDate>%s</pubDate>
</item>
`, item.title, i+1, item.desc, pub)
	}
	return out + "</channel></rss>\n"
}
