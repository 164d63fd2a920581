package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikeflip/hunter"
)

const listingFixture = `<html><body>
<h1 class="boxedarticle--title">Trek Marlin 7</h1>
<div class="boxedarticle--price">350 €</div>
<div id="viewad-locality">35037 Marburg</div>
<div id="viewad-description-text">Zustand sehr gut. Nur Abholung.</div>
</body></html>`

// setupEnv points the geo database at a temp path so tests never touch a
// real database file.
func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HUNTER_GEO_DB", filepath.Join(t.TempDir(), "geo.db"))
}

func runMain(t *testing.T, args ...string) (stdout, stderr bytes.Buffer, err error) {
	t.Helper()
	m := NewMain()
	defer m.Close()
	err = m.Run(context.Background(), args, &stdout, &stderr)
	return stdout, stderr, err
}

func TestRun_NoArgs(t *testing.T) {
	setupEnv(t)

	stdout, _, err := runMain(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestRun_Help(t *testing.T) {
	setupEnv(t)

	stdout, _, err := runMain(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "extract")
	assert.Contains(t, stdout.String(), "batch")
	assert.Contains(t, stdout.String(), "seed")
}

func TestRun_UnknownCommand(t *testing.T) {
	setupEnv(t)

	_, _, err := runMain(t, "bogus")
	require.Error(t, err)
}

func TestRun_InvalidTimeout(t *testing.T) {
	setupEnv(t)
	t.Setenv("HUNTER_FETCH_TIMEOUT", "nope")

	_, _, err := runMain(t, "extract", "whatever.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HUNTER_FETCH_TIMEOUT")
}

func TestRun_ExtractFile(t *testing.T) {
	setupEnv(t)

	path := filepath.Join(t.TempDir(), "listing.html")
	require.NoError(t, os.WriteFile(path, []byte(listingFixture), 0o600))

	stdout, _, err := runMain(t, "extract", path)
	require.NoError(t, err)

	var report hunter.ListingReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, 350.0, report.Price)
	assert.Equal(t, hunter.PriceFixed, report.PriceType)
	assert.Equal(t, hunter.ShippingPickupOnly, report.Shipping)
	assert.Equal(t, []string{hunter.BadgeLocalLot}, report.Badges)
	require.NotNil(t, report.PostalCode)
	assert.Equal(t, "35037", *report.PostalCode)
	// No seeded geo data yet, so distance and zone stay absent.
	assert.Nil(t, report.DistanceKm)
	assert.Nil(t, report.LogisticsZone)
}

func TestRun_ExtractMissingFile(t *testing.T) {
	setupEnv(t)

	_, stderr, err := runMain(t, "extract", filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
	assert.Equal(t, hunter.ENOTFOUND, hunter.ErrorCode(err))
	assert.Contains(t, stderr.String(), "error:")
}

func TestRun_SeedThenExtract(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "codes.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("code,lat,lon\n35037,50.8022,8.7667\n"), 0o600))

	stdout, _, err := runMain(t, "seed", csvPath)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "seeded 1 postal codes")

	htmlPath := filepath.Join(dir, "listing.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte(listingFixture), 0o600))

	stdout, _, err = runMain(t, "extract", htmlPath)
	require.NoError(t, err)

	var report hunter.ListingReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	require.NotNil(t, report.DistanceKm)
	assert.Equal(t, 0.0, *report.DistanceKm)
	require.NotNil(t, report.LogisticsZone)
	assert.Equal(t, hunter.ZoneGreen, *report.LogisticsZone)
}

func TestRun_Batch(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()

	first := filepath.Join(dir, "a.html")
	require.NoError(t, os.WriteFile(first, []byte(listingFixture), 0o600))
	second := filepath.Join(dir, "b.html")
	require.NoError(t, os.WriteFile(second, []byte(`<html><body>
<h1 class="boxedarticle--title">Scott Scale</h1>
<div class="boxedarticle--price">499 €</div>
<div id="viewad-description-text">Versand möglich.</div>
</body></html>`), 0o600))

	stdout, stderr, err := runMain(t, "batch", first, second, filepath.Join(dir, "missing.html"))
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(stdout.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var report hunter.ListingReport
		require.NoError(t, json.Unmarshal(line, &report))
		require.NoError(t, report.Validate())
	}
	assert.Contains(t, stderr.String(), "skip")
}
