// Package domain models geographically-anchored incident records derived
// from public news feeds covering the St. Louis metro area.
//
// # Data Source
//
// Items originate from local news outlet RSS/Atom feeds. Headlines and
// descriptions never contain coordinates; coordinates are recovered by
// matching the text against a closed, curated gazetteer of metro places
// (see [Geocoder]). Matching is lexical (substring plus word-boundary
// ranking), not statistical.
//
// # Gazetteer Conventions
//
// Every entry carries a canonical name, an alias list, a WGS-84 coordinate,
// a place type, and a county tag. Place types rank by locational
// specificity when scoring matches:
//
//	intersection=20, bridge=18, landmark=15, neighborhood=12, city=10, road=8, default=5
//
// A match additionally satisfying a word-boundary regex earns a bonus
// (+15 canonical / +10 alias) over a bare substring hit (+10 / +5). This
// keeps "Fenton" from scoring inside "Fentonsville".
//
// # County Disambiguation
//
// When text independently names Jefferson County, entries referencing the
// county gain +20 and entries located inside it gain +15; an in-county
// candidate scoring at least 10 is preferred over a higher raw score from
// outside the county. Real headlines use the county name to disambiguate
// otherwise generic place references ("crash near High Ridge, Jefferson
// County").
//
// # Confidence Tiers
//
// Total score maps to a confidence tier: >=15 high, >=10 medium, below 10
// rejected. Downstream consumers only distinguish low from not-low, so
// there is no tier above high regardless of how far a score exceeds 15.
//
// # Geographic Fence
//
// Every produced coordinate must pass [Fence.IsValidLocation]: inside the
// metro bounding box and within 50 miles (haversine) of the downtown
// centroid. The Illinois exception box ([Fence.IsWithinSubregion]) admits
// the cross-border East St. Louis entries that sit outside the primary
// Missouri-side box. Jittered points for Jefferson County entries are
// clamped below the Meramec boundary latitude so noise never moves a
// record across a defining physical boundary.
//
// # ID Generation
//
// News item IDs are deterministic SHA-256 hashes of the item link, so the
// same article yields the same ID across ingestion runs. Incident IDs are
// fresh UUIDs; incidents are recomputed per run and carry no cross-run
// identity.
package domain
