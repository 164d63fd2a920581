package hunter_test

import (
	"testing"

	"github.com/bikeflip/hunter"
	"github.com/stretchr/testify/assert"
)

func TestIsSearchResultPage(t *testing.T) {
	t.Parallel()

	t.Run("search marker in title", func(t *testing.T) {
		t.Parallel()
		got := hunter.IsSearchResultPage(
			"Fahrräder & Zubehör in Marburg - Kleinanzeigen",
			"",
			"<html><body><ul class=\"srchrslt-adtable\"></ul></body></html>",
		)
		assert.True(t, got)
	})

	t.Run("result counter in body", func(t *testing.T) {
		t.Parallel()
		got := hunter.IsSearchResultPage(
			"Mountainbikes",
			"",
			"<html><body><span>1 - 25 von 233 Ergebnissen</span></body></html>",
		)
		assert.True(t, got)
	})

	t.Run("detail marker overrides search marker", func(t *testing.T) {
		t.Parallel()
		got := hunter.IsSearchResultPage(
			"Canyon Spectral - Sortieren nach Relevanz",
			"",
			"<html><body><h1 id=\"viewad-title\">Canyon Spectral</h1></body></html>",
		)
		assert.False(t, got)
	})

	t.Run("plain listing page", func(t *testing.T) {
		t.Parallel()
		got := hunter.IsSearchResultPage(
			"Canyon Spectral 29",
			"Sehr gepflegtes Enduro",
			"<html><body><article class=\"boxedarticle\"></article></body></html>",
		)
		assert.False(t, got)
	})
}
