package ingest

import (
	"strings"
	"sync"

	"github.com/gatewaywatch/metro-incident-feed/internal/domain"
)

// SeenSet tracks item links already processed within a single ingestion
// run. It is owned by Run and threaded through explicitly, never shared
// across runs, so concurrent runs cannot cross-contaminate. Concurrent
// insert-and-check is safe; a duplicate slipping through a race is
// tolerable (the harm is a duplicate entry, not a correctness violation).
type SeenSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewSeenSet creates an empty per-run seen-link set.
func NewSeenSet() *SeenSet {
	return &SeenSet{seen: make(map[string]struct{})}
}

// MarkSeen records link and reports whether it had been seen before.
func (s *SeenSet) MarkSeen(link string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, dup := s.seen[link]
	s.seen[link] = struct{}{}
	return dup
}

// regionKeywords is the fixed relevance list: region names, highway
// designators, and institution names that mark an item as local even when
// no gazetteer place is named.
var regionKeywords = []string{
	"st. louis", "saint louis", "stl", "missouri",
	"jefferson county", "st. charles county", "st. clair county",
	"metro east",
	"i-64", "i-70", "i-44", "i-55", "i-270", "i-170", "i-255",
	"highway 40", "highway 21", "highway 141",
	"modot", "metrolink", "lambert",
}

// Filter rejects feed items not topically relevant to the metro region.
type Filter struct {
	terms []string
}

// NewFilter builds the relevance filter from the fixed keyword list plus
// every gazetteer name and alias.
func NewFilter() *Filter {
	terms := make([]string, 0, len(regionKeywords)+len(domain.Gazetteer)*2)
	terms = append(terms, regionKeywords...)
	for _, e := range domain.Gazetteer {
		terms = append(terms, strings.ToLower(e.Name))
		for _, a := range e.Aliases {
			terms = append(terms, strings.ToLower(a))
		}
	}
	return &Filter{terms: terms}
}

// IsRelevant reports whether the item's combined title and description
// mention the region.
func (f *Filter) IsRelevant(item domain.RawFeedItem) bool {
	text := strings.ToLower(item.Title + " " + item.Description)
	for _, term := range f.terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
