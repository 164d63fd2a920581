package sqlite_test

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikeflip/hunter"
	"github.com/bikeflip/hunter/sqlite"
)

// mustOpenDB opens an in-memory database for a test and closes it on cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func TestGeocoder_CoordinatesFor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	g := sqlite.NewGeocoder(mustOpenDB(t))

	require.NoError(t, g.AddPostalCode(ctx, "35037", 50.8022, 8.7667))

	t.Run("known code", func(t *testing.T) {
		pt, ok, err := g.CoordinatesFor(ctx, "35037")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, orb.Point{8.7667, 50.8022}, pt)
	})

	t.Run("unknown code is a miss not an error", func(t *testing.T) {
		_, ok, err := g.CoordinatesFor(ctx, "99999")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestGeocoder_AddPostalCode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	g := sqlite.NewGeocoder(mustOpenDB(t))

	t.Run("replaces existing entry", func(t *testing.T) {
		require.NoError(t, g.AddPostalCode(ctx, "60311", 50.0, 8.0))
		require.NoError(t, g.AddPostalCode(ctx, "60311", 50.1109, 8.6821))

		pt, ok, err := g.CoordinatesFor(ctx, "60311")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, orb.Point{8.6821, 50.1109}, pt)
	})

	t.Run("empty code rejected", func(t *testing.T) {
		err := g.AddPostalCode(ctx, "", 50.0, 8.0)
		require.Error(t, err)
		assert.Equal(t, hunter.EINVALID, hunter.ErrorCode(err))
	})
}
