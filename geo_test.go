package hunter_test

import (
	"math"
	"testing"

	"github.com/bikeflip/hunter"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestExtractPostalCode(t *testing.T) {
	t.Parallel()

	t.Run("found in location text", func(t *testing.T) {
		t.Parallel()
		code, ok := hunter.ExtractPostalCode("35037 Marburg", "")
		assert.True(t, ok)
		assert.Equal(t, "35037", code)
	})

	t.Run("location tier wins over full text", func(t *testing.T) {
		t.Parallel()
		code, ok := hunter.ExtractPostalCode("60311 Frankfurt", "35037 Marburg")
		assert.True(t, ok)
		assert.Equal(t, "60311", code)
	})

	t.Run("fallback needs capitalized city word", func(t *testing.T) {
		t.Parallel()
		code, ok := hunter.ExtractPostalCode("", "abgestellt in 35039 Marburg am Bahnhof")
		assert.True(t, ok)
		assert.Equal(t, "35039", code)

		_, ok = hunter.ExtractPostalCode("", "seriennummer 12345 eingraviert")
		assert.False(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		_, ok := hunter.ExtractPostalCode("Marburg", "kein Code weit und breit")
		assert.False(t, ok)
	})
}

func TestDistance(t *testing.T) {
	t.Parallel()

	marburg := orb.Point{8.7667, 50.8022}
	frankfurt := orb.Point{8.6821, 50.1109}

	t.Run("identical points", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.0, hunter.Distance(marburg, marburg))
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		t.Parallel()
		a := orb.Point{8.0, 50.0}
		b := orb.Point{8.0, 51.0}
		assert.Equal(t, 111.2, hunter.Distance(a, b))
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, hunter.Distance(marburg, frankfurt), hunter.Distance(frankfurt, marburg))
	})

	t.Run("rounded to one decimal", func(t *testing.T) {
		t.Parallel()
		d := hunter.Distance(marburg, frankfurt)
		assert.Equal(t, math.Round(d*10)/10, d)
		assert.Greater(t, d, 70.0)
		assert.Less(t, d, 85.0)
	})
}

func TestZoneFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, hunter.ZoneGreen, hunter.ZoneFor(0, 100))
	assert.Equal(t, hunter.ZoneGreen, hunter.ZoneFor(99.9, 100))
	assert.Equal(t, hunter.ZoneYellow, hunter.ZoneFor(100, 100))
	assert.Equal(t, hunter.ZoneYellow, hunter.ZoneFor(250.7, 100))
}
