package hunter_test

import (
	"testing"
	"time"

	"github.com/bikeflip/hunter"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("zero config gets all defaults", func(t *testing.T) {
		t.Parallel()
		c := hunter.Config{}.WithDefaults()
		assert.Equal(t, hunter.DefaultReference, c.Reference)
		assert.Equal(t, hunter.DefaultReferenceZip, c.ReferenceZip)
		assert.Equal(t, hunter.DefaultPreviewLength, c.PreviewLength)
		assert.Equal(t, hunter.DefaultZoneThresholdKm, c.ZoneThresholdKm)
		require.NotNil(t, c.Now)
		assert.WithinDuration(t, time.Now(), c.Now(), time.Minute)
	})

	t.Run("explicit values survive", func(t *testing.T) {
		t.Parallel()
		fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		c := hunter.Config{
			Reference:       orb.Point{13.405, 52.52},
			ReferenceZip:    "10115",
			Now:             func() time.Time { return fixed },
			PreviewLength:   40,
			ZoneThresholdKm: 50,
		}.WithDefaults()
		assert.Equal(t, orb.Point{13.405, 52.52}, c.Reference)
		assert.Equal(t, "10115", c.ReferenceZip)
		assert.Equal(t, fixed, c.Now())
		assert.Equal(t, 40, c.PreviewLength)
		assert.Equal(t, 50.0, c.ZoneThresholdKm)
	})
}
