package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateEF(t *testing.T) {
	assert.Equal(t, 0.0, EstimateEF(0))
	assert.Equal(t, 13.5, EstimateEF(100))
	assert.Equal(t, 216.0, EstimateEF(1600))
	assert.Equal(t, 486.0, EstimateEF(3600))

	// Rounded to 2 decimal places: 123.45 * 0.135 = 16.66575
	assert.Equal(t, 16.67, EstimateEF(123.45))

	// No bounds checking: negative in, negative out.
	assert.Equal(t, -13.5, EstimateEF(-100))
}

func TestEstimateDistance(t *testing.T) {
	segments := []Segment{
		{DurationMinutes: 120},
		{DurationMinutes: 150},
	}

	// 4.5 hours at the assumed 800 km/h cruising speed.
	assert.Equal(t, 3600.0, EstimateDistance(segments))
	assert.Equal(t, 0.0, EstimateDistance(nil))
}

func TestDistanceKm(t *testing.T) {
	km, err := DistanceKm("LOS", "ABV")
	assert.NoError(t, err)
	assert.InDelta(t, 520, km, 60)

	// Case-insensitive lookup.
	lower, err := DistanceKm("los", "abv")
	assert.NoError(t, err)
	assert.Equal(t, km, lower)

	_, err = DistanceKm("XXX", "ABV")
	assert.Error(t, err)
}
