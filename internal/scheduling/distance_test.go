package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Run("zero coordinates mean unknown", func(t *testing.T) {
		assert.Equal(t, 0.0, DistanceKm(0, 0, 32.0853, 34.7818))
		assert.Equal(t, 0.0, DistanceKm(32.0853, 34.7818, 0, 0))
	})

	t.Run("same point", func(t *testing.T) {
		assert.InDelta(t, 0, DistanceKm(32.0853, 34.7818, 32.0853, 34.7818), 1e-6)
	})

	t.Run("tel aviv to jerusalem", func(t *testing.T) {
		d := DistanceKm(32.0853, 34.7818, 31.7683, 35.2137)
		assert.InDelta(t, 54, d, 2)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := DistanceKm(32.0853, 34.7818, 32.7940, 34.9896)
		b := DistanceKm(32.7940, 34.9896, 32.0853, 34.7818)
		assert.InDelta(t, a, b, 1e-9)
	})
}
