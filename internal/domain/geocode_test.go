package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeocoder() *Geocoder {
	logger := discardLogger()
	return NewGeocoder(NewFence(logger), logger)
}

func TestGeocodeText_NoMatch(t *testing.T) {
	g := testGeocoder()

	tests := []string{
		"",
		"stock markets rallied on Thursday",
		"weather forecast calls for rain across the midwest",
	}
	for _, text := range tests {
		assert.Nil(t, g.GeocodeText(text), "text: %q", text)
	}
}

func TestGeocodeText_IntersectionOutranksPartialMatches(t *testing.T) {
	g := testGeocoder()

	result := g.GeocodeText("crash on I-64 at Kingshighway")
	require.NotNil(t, result)

	// The intersection entry must beat the weaker I-64 and Kingshighway
	// road matches present in the same text.
	assert.Equal(t, "I-64 at Kingshighway", result.MatchedLocationName)
	assert.Equal(t, ConfidenceHigh, result.Confidence)
}

func TestGeocodeText_CountyMentionPrefersInCountyMatch(t *testing.T) {
	g := testGeocoder()

	result := g.GeocodeText("incident in Festus, Jefferson County")
	require.NotNil(t, result)
	assert.Equal(t, "Festus", result.MatchedLocationName)

	// An out-of-county entry with a higher type score loses to a
	// qualifying in-county candidate when the county is named.
	result = g.GeocodeText("fire near the Gateway Arch memorial in Jefferson County, crews respond near Pevely")
	require.NotNil(t, result)
	assert.Equal(t, CountyJefferson, entryByName(t, result.MatchedLocationName).County)
}

func TestGeocodeText_FenceGuardsEveryResult(t *testing.T) {
	g := testGeocoder()
	f := NewFence(discardLogger())

	texts := []string{
		"crash on I-64 at Kingshighway",
		"shooting reported in Soulard overnight",
		"water main break closes Manchester Road in Kirkwood",
		"incident in Festus, Jefferson County",
		"crowds gather at Busch Stadium downtown",
		"police activity near Lambert Airport",
	}
	for _, text := range texts {
		result := g.GeocodeText(text)
		require.NotNil(t, result, "text: %q", text)
		assert.True(t, f.IsValidLocation(result.Location, DefaultMaxDistanceMiles),
			"text %q produced out-of-fence point %+v", text, result.Location)
	}
}

func TestGeocodeText_IdempotentModuloJitter(t *testing.T) {
	g := testGeocoder()

	first := g.GeocodeText("stabbing near the Gateway Arch")
	require.NotNil(t, first)

	for i := 0; i < 20; i++ {
		next := g.GeocodeText("stabbing near the Gateway Arch")
		require.NotNil(t, next)
		assert.Equal(t, first.MatchedLocationName, next.MatchedLocationName)
		assert.Equal(t, first.Confidence, next.Confidence)
		assert.LessOrEqual(t, math.Abs(next.Location.Lat-first.Location.Lat), 2*jitterAmplitude)
		assert.LessOrEqual(t, math.Abs(next.Location.Lon-first.Location.Lon), 2*jitterAmplitude)
	}
}

func TestGeocodeText_JitterStaysNearEntry(t *testing.T) {
	g := testGeocoder()
	arch := entryByName(t, "Gateway Arch")

	for i := 0; i < 50; i++ {
		result := g.GeocodeText("incident at the Gateway Arch")
		require.NotNil(t, result)
		assert.LessOrEqual(t, math.Abs(result.Location.Lat-arch.Point.Lat), jitterAmplitude)
		assert.LessOrEqual(t, math.Abs(result.Location.Lon-arch.Point.Lon), jitterAmplitude)
	}
}

func TestGeocodeText_BoundaryBeatsSubstring(t *testing.T) {
	g := testGeocoder()

	// "Fentonsville" contains "Fenton" as a substring but not as a word,
	// so Fenton misses the boundary bonus and ranks below the true
	// whole-word Kirkwood match.
	result := g.GeocodeText("parade in Kirkwood draws visitors from Fentonsville")
	require.NotNil(t, result)
	assert.Equal(t, "Kirkwood", result.MatchedLocationName)
}

func TestGeocodeText_SouthOfRiverClamp(t *testing.T) {
	logger := discardLogger()
	fence := NewFence(logger)

	// An entry sitting right on the Meramec boundary: jitter can push it
	// north, and the clamp must pull it back.
	entries := []GazetteerEntry{{
		Name:   "Riverbend",
		Point:  GeoPoint{jeffersonNorthLat, -90.40},
		Type:   PlaceCity,
		County: CountyJefferson,
	}}
	g := newGeocoderWithEntries(entries, fence, logger)

	for i := 0; i < 50; i++ {
		result := g.GeocodeText("flooding reported in Riverbend")
		require.NotNil(t, result)
		assert.LessOrEqual(t, result.Location.Lat, jeffersonNorthLat)
	}
}

func TestGeocodeText_CrossBorderCityValidatesViaSubregion(t *testing.T) {
	g := testGeocoder()

	result := g.GeocodeText("house fire in East St. Louis on Monday")
	require.NotNil(t, result)
	assert.Equal(t, "East St. Louis", result.MatchedLocationName)

	f := NewFence(discardLogger())
	assert.True(t, f.IsWithinSubregion(result.Location))
}

func TestScoreToConfidence_BandCollapsing(t *testing.T) {
	// Every score of 15 or above maps to high; there is no tier above it.
	assert.Equal(t, ConfidenceHigh, scoreToConfidence(35))
	assert.Equal(t, ConfidenceHigh, scoreToConfidence(20))
	assert.Equal(t, ConfidenceHigh, scoreToConfidence(15))
	assert.Equal(t, ConfidenceMedium, scoreToConfidence(14))
	assert.Equal(t, ConfidenceMedium, scoreToConfidence(10))
	assert.Equal(t, Confidence(""), scoreToConfidence(9))
}

func TestGazetteer_EntriesAreFenceValid(t *testing.T) {
	f := NewFence(discardLogger())

	for _, e := range Gazetteer {
		if e.County == CountyStClair {
			assert.True(t, f.IsWithinSubregion(e.Point), "entry %q", e.Name)
			continue
		}
		assert.True(t, f.IsValidLocation(e.Point, DefaultMaxDistanceMiles), "entry %q", e.Name)
	}
}

func entryByName(t *testing.T, name string) GazetteerEntry {
	t.Helper()
	for _, e := range Gazetteer {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("gazetteer entry %q not found", name)
	return GazetteerEntry{}
}
