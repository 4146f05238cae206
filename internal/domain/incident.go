package domain

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewsItemID produces a deterministic ID from the item link. The same
// article yields the same ID across runs, so downstream consumers can
// upsert idempotently.
func NewsItemID(link string) string {
	hash := sha256.Sum256([]byte(link))
	return "news-" + hex.EncodeToString(hash[:8])
}

// NewsToIncidents converts geocoded news items into map-domain incidents.
// Items without a location, with low confidence, or whose location fails
// the fence are dropped; the fence is re-checked here even though the
// geocoder already validated, since NewsItem values may arrive from
// storage or other producers.
func NewsToIncidents(items []NewsItem, fence *Fence) []Incident {
	now := clock.Now()

	incidents := make([]Incident, 0, len(items))
	for _, item := range items {
		if item.Location == nil || item.Confidence == nil {
			continue
		}
		if *item.Confidence == ConfidenceLow {
			continue
		}
		if !fence.IsWithinSubregion(*item.Location) &&
			!fence.IsValidLocation(*item.Location, DefaultMaxDistanceMiles) {
			continue
		}

		incidents = append(incidents, Incident{
			ID:          uuid.NewString(),
			Title:       item.Title,
			Description: item.Snippet,
			Category:    IncidentCategoryNews,
			Severity:    IncidentSeverityLow,
			Confidence:  *item.Confidence,
			Status:      IncidentStatusActive,
			Location:    *item.Location,
			Source:      item.Outlet,
			SourceURL:   item.URL,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return incidents
}
