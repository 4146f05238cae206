package domain

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFence_IsWithinBounds(t *testing.T) {
	f := NewFence(discardLogger())

	tests := []struct {
		name  string
		point GeoPoint
		want  bool
	}{
		{"downtown", GeoPoint{38.6270, -90.1994}, true},
		{"festus", GeoPoint{38.2209, -90.3959}, true},
		{"north of box", GeoPoint{39.5, -90.2}, false},
		{"south of box", GeoPoint{37.5, -90.2}, false},
		{"illinois side", GeoPoint{38.6245, -90.1510}, false},
		{"far west", GeoPoint{38.6, -92.0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.IsWithinBounds(tt.point))
		})
	}
}

func TestFence_DistanceFromCenter(t *testing.T) {
	f := NewFence(discardLogger())

	assert.InDelta(t, 0, f.DistanceFromCenter(MetroCenter), 0.001)

	// Festus is roughly 30 miles south-southwest of downtown.
	d := f.DistanceFromCenter(GeoPoint{38.2209, -90.3959})
	assert.Greater(t, d, 25.0)
	assert.Less(t, d, 35.0)
}

func TestFence_IsValidLocation(t *testing.T) {
	f := NewFence(discardLogger())

	assert.True(t, f.IsValidLocation(GeoPoint{38.6270, -90.1994}, DefaultMaxDistanceMiles))
	assert.True(t, f.IsValidLocation(GeoPoint{38.2209, -90.3959}, DefaultMaxDistanceMiles))

	// Inside the box but beyond a tight radius.
	assert.False(t, f.IsValidLocation(GeoPoint{38.2209, -90.3959}, 10))

	// Outside the box entirely.
	assert.False(t, f.IsValidLocation(GeoPoint{37.0, -90.2}, DefaultMaxDistanceMiles))
}

func TestFence_IsWithinSubregion(t *testing.T) {
	f := NewFence(discardLogger())

	// East St. Louis sits in the exception box but outside the primary box.
	eastStl := GeoPoint{38.6245, -90.1510}
	assert.True(t, f.IsWithinSubregion(eastStl))
	assert.False(t, f.IsWithinBounds(eastStl))

	// Festus is metro-valid but nowhere near the exception box.
	assert.False(t, f.IsWithinSubregion(GeoPoint{38.2209, -90.3959}))
}
