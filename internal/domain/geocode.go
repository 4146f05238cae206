package domain

import (
	"log/slog"
	"math/rand/v2"
	"regexp"
	"sort"
	"strings"
)

// Match scoring. Place type ranks locational specificity; the boundary
// bonus rewards whole-word hits over bare substring hits.
const (
	scoreIntersection = 20
	scoreBridge       = 18
	scoreLandmark     = 15
	scoreNeighborhood = 12
	scoreCity         = 10
	scoreRoad         = 8
	scoreDefault      = 5

	bonusCanonicalBoundary = 15
	bonusCanonical         = 10
	bonusAliasBoundary     = 10
	bonusAlias             = 5

	// County disambiguation boosts (see package doc).
	boostCountyName   = 20
	boostCountyMember = 15

	// Minimum score an in-county candidate needs to override the raw top match.
	countyOverrideMinScore = 10

	confidenceHighMin   = 15
	confidenceMediumMin = 10

	// jitterAmplitude is the max coordinate perturbation in degrees
	// (~200m), applied so co-located incidents do not stack on one pixel.
	jitterAmplitude = 0.002

	// jeffersonNorthLat is the Meramec boundary latitude. Jitter on a
	// Jefferson County match must never cross north of it.
	jeffersonNorthLat = 38.46
)

// jeffersonCountyRe detects an independent mention of the county in text.
var jeffersonCountyRe = regexp.MustCompile(`(?i)\bjefferson\s+county\b`)

// Geocoder matches free text against the gazetteer and produces
// fence-validated, jittered coordinates.
type Geocoder struct {
	entries  []GazetteerEntry
	patterns []entryPatterns
	fence    *Fence
	maxMiles float64
	logger   *slog.Logger
}

// entryPatterns holds the precompiled word-boundary regexes for one entry,
// index-aligned with the geocoder's entries slice.
type entryPatterns struct {
	name    *regexp.Regexp
	aliases []*regexp.Regexp
}

// NewGeocoder creates a geocoder over the static gazetteer, gated by fence.
func NewGeocoder(fence *Fence, logger *slog.Logger) *Geocoder {
	return newGeocoderWithEntries(Gazetteer, fence, logger)
}

func newGeocoderWithEntries(entries []GazetteerEntry, fence *Fence, logger *slog.Logger) *Geocoder {
	g := &Geocoder{
		entries:  entries,
		patterns: make([]entryPatterns, len(entries)),
		fence:    fence,
		maxMiles: DefaultMaxDistanceMiles,
		logger:   logger,
	}
	for i, e := range entries {
		p := entryPatterns{name: boundaryPattern(e.Name)}
		for _, a := range e.Aliases {
			p.aliases = append(p.aliases, boundaryPattern(a))
		}
		g.patterns[i] = p
	}
	return g
}

func boundaryPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
}

// candidate is one scored gazetteer match for a given text.
type candidate struct {
	entry GazetteerEntry
	score int
}

// GeocodeText matches text against the gazetteer and returns a jittered,
// fence-validated coordinate, or nil when the text is ungeocodable. It
// never panics or errors; callers must treat nil as "drop the article".
func (g *Geocoder) GeocodeText(text string) *GeocodeResult {
	lower := strings.ToLower(text)

	candidates := g.scoreCandidates(text, lower)
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	best := candidates[0]

	// A county mention overrides a higher raw score from outside the county.
	if jeffersonCountyRe.MatchString(text) && best.entry.County != CountyJefferson {
		for _, c := range candidates[1:] {
			if c.entry.County == CountyJefferson && c.score >= countyOverrideMinScore {
				best = c
				break
			}
		}
	}

	conf := scoreToConfidence(best.score)
	if conf == "" {
		g.logger.Warn("geocode match below confidence floor",
			"matched", best.entry.Name, "score", best.score)
		return nil
	}

	point := jitter(best.entry.Point)

	// Jitter must not move a south-of-river match across the Meramec.
	if best.entry.County == CountyJefferson && point.Lat > jeffersonNorthLat {
		point.Lat = jeffersonNorthLat
	}

	if !g.validate(point, best.entry) {
		g.logger.Warn("geocode match failed fence validation",
			"matched", best.entry.Name, "lat", point.Lat, "lon", point.Lon)
		return nil
	}

	return &GeocodeResult{
		Location:            point,
		Confidence:          conf,
		MatchedLocationName: best.entry.Name,
	}
}

// scoreCandidates returns the best-scoring match per gazetteer entry.
func (g *Geocoder) scoreCandidates(text, lower string) []candidate {
	countyMentioned := jeffersonCountyRe.MatchString(text)

	var candidates []candidate
	for i, e := range g.entries {
		score := 0

		if strings.Contains(lower, strings.ToLower(e.Name)) {
			bonus := bonusCanonical
			if g.patterns[i].name.MatchString(text) {
				bonus = bonusCanonicalBoundary
			}
			score = typeScore(e.Type) + bonus
		}

		for j, a := range e.Aliases {
			if !strings.Contains(lower, strings.ToLower(a)) {
				continue
			}
			bonus := bonusAlias
			if g.patterns[i].aliases[j].MatchString(text) {
				bonus = bonusAliasBoundary
			}
			if s := typeScore(e.Type) + bonus; s > score {
				score = s
			}
		}

		if score == 0 {
			continue
		}

		if countyMentioned {
			switch {
			case strings.Contains(strings.ToLower(e.Name), "jefferson county"):
				score += boostCountyName
			case e.County == CountyJefferson:
				score += boostCountyMember
			}
		}

		candidates = append(candidates, candidate{entry: e, score: score})
	}
	return candidates
}

// validate gates a point through the fence. Cross-border Illinois entries
// validate against the subregion box; everything else against the primary
// fence with the default radius.
func (g *Geocoder) validate(p GeoPoint, e GazetteerEntry) bool {
	if e.County == CountyStClair {
		return g.fence.IsWithinSubregion(p)
	}
	return g.fence.IsValidLocation(p, g.maxMiles)
}

func typeScore(t PlaceType) int {
	switch t {
	case PlaceIntersection:
		return scoreIntersection
	case PlaceBridge:
		return scoreBridge
	case PlaceLandmark:
		return scoreLandmark
	case PlaceNeighborhood:
		return scoreNeighborhood
	case PlaceCity:
		return scoreCity
	case PlaceRoad:
		return scoreRoad
	default:
		return scoreDefault
	}
}

// scoreToConfidence maps a match score to a confidence tier. Anything
// below the medium floor is unusable and reported as empty.
func scoreToConfidence(score int) Confidence {
	switch {
	case score >= confidenceHighMin:
		return ConfidenceHigh
	case score >= confidenceMediumMin:
		return ConfidenceMedium
	default:
		return ""
	}
}

func jitter(p GeoPoint) GeoPoint {
	return GeoPoint{
		Lat: p.Lat + (rand.Float64()-0.5)*2*jitterAmplitude,
		Lon: p.Lon + (rand.Float64()-0.5)*2*jitterAmplitude,
	}
}
