package domain

import "time"

// GeoPoint is a WGS-84 latitude/longitude pair. Copied by value; no identity.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PlaceType tags a gazetteer entry by locational specificity.
type PlaceType string

const (
	PlaceIntersection PlaceType = "intersection"
	PlaceBridge       PlaceType = "bridge"
	PlaceLandmark     PlaceType = "landmark"
	PlaceNeighborhood PlaceType = "neighborhood"
	PlaceCity         PlaceType = "city"
	PlaceRoad         PlaceType = "road"
)

// GazetteerEntry is one named place in the curated metro gazetteer.
// Loaded once at process start and never mutated.
type GazetteerEntry struct {
	Name    string
	Aliases []string
	Point   GeoPoint
	Type    PlaceType
	County  string
}

// Confidence classifies how trustworthy a geocode match is.
// Low-confidence locations are never surfaced as placed incidents.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// GeocodeResult is the outcome of a successful text geocode. It is folded
// into a NewsItem and never persisted independently.
type GeocodeResult struct {
	Location            GeoPoint
	Confidence          Confidence
	MatchedLocationName string
}

// FeedSource describes one configured news feed: a primary URL plus
// ordered fallback URLs tried when the primary exhausts all transports.
// Static configuration, not mutated at runtime.
type FeedSource struct {
	Name         string
	URL          string
	FallbackURLs []string
}

// RawFeedItem is a normalized feed entry as produced by the parser,
// before relevance filtering and geocoding. Link doubles as the dedupe key.
type RawFeedItem struct {
	Title       string
	Link        string
	Description string
	PublishedAt time.Time
}

// NewsItem is a geocoded article. Invariant: Location and Confidence are
// either both set or both absent, and a set Location has already passed
// the geographic fence.
type NewsItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Outlet      string      `json:"outlet"`
	URL         string      `json:"url"`
	PublishedAt time.Time   `json:"published_at"`
	Snippet     string      `json:"snippet,omitempty"`
	Location    *GeoPoint   `json:"location,omitempty"`
	Confidence  *Confidence `json:"geocoding_confidence,omitempty"`
}

// Incident is the map-domain record assembled from a NewsItem. Every
// Incident has a non-nil, fence-valid location; items with unresolved or
// low-confidence locations are dropped upstream and never constructed.
type Incident struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Severity    string     `json:"severity"`
	Confidence  Confidence `json:"confidence"`
	Status      string     `json:"status"`
	Location    GeoPoint   `json:"location"`
	Source      string     `json:"source"`
	SourceURL   string     `json:"source_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

const (
	// IncidentCategoryNews marks incidents derived from news feeds.
	IncidentCategoryNews = "news"
	// IncidentSeverityLow is the fixed severity for news-derived incidents.
	IncidentSeverityLow = "low"
	// IncidentStatusActive is the only status this pipeline produces.
	IncidentStatusActive = "active"
)
