package hunter_test

import (
	"testing"

	"github.com/bikeflip/hunter"
	"github.com/stretchr/testify/assert"
)

func TestParseSellerProfile(t *testing.T) {
	t.Parallel()

	t.Run("full profile block", func(t *testing.T) {
		t.Parallel()
		p := hunter.ParseSellerProfile("Privater Nutzer\nAktiv seit 10.11.2011\nZuletzt aktiv: Heute")
		assert.Equal(t, "10.11.2011", p.ActiveSince)
		assert.Equal(t, "Privater Nutzer", p.Type)
		assert.Equal(t, "Heute", p.LastActive)
	})

	t.Run("commercial seller", func(t *testing.T) {
		t.Parallel()
		p := hunter.ParseSellerProfile("Gewerblicher Anbieter, Aktiv seit 01.03.2020")
		assert.Equal(t, "Gewerblicher Anbieter", p.Type)
		assert.Equal(t, "01.03.2020", p.ActiveSince)
	})

	t.Run("missing since date marked unknown", func(t *testing.T) {
		t.Parallel()
		p := hunter.ParseSellerProfile("Privater Nutzer")
		assert.Equal(t, hunter.SellerSinceUnknown, p.ActiveSince)
		assert.Empty(t, p.LastActive)
	})
}

func TestTrustScore(t *testing.T) {
	t.Parallel()

	t.Run("two points per account year", func(t *testing.T) {
		t.Parallel()
		p := hunter.SellerProfile{ActiveSince: "10.11.2011"}
		assert.Equal(t, 30, hunter.TrustScore(p, 2026))
	})

	t.Run("satisfaction badge adds five once", func(t *testing.T) {
		t.Parallel()
		p := hunter.SellerProfile{
			ActiveSince: "10.11.2011",
			Badges:      []string{"Sehr Zufrieden", "TOP Bewertungen"},
		}
		assert.Equal(t, 35, hunter.TrustScore(p, 2026))
	})

	t.Run("badge alone", func(t *testing.T) {
		t.Parallel()
		p := hunter.SellerProfile{ActiveSince: hunter.SellerSinceUnknown, Badges: []string{"TOP Zufriedenheit"}}
		assert.Equal(t, 5, hunter.TrustScore(p, 2026))
	})

	t.Run("unknown since contributes nothing", func(t *testing.T) {
		t.Parallel()
		p := hunter.SellerProfile{ActiveSince: hunter.SellerSinceUnknown}
		assert.Equal(t, 0, hunter.TrustScore(p, 2026))
	})

	t.Run("unrelated badges score zero", func(t *testing.T) {
		t.Parallel()
		p := hunter.SellerProfile{Badges: []string{"Schnelle Antworten"}}
		assert.Equal(t, 0, hunter.TrustScore(p, 2026))
	})

	t.Run("never negative", func(t *testing.T) {
		t.Parallel()
		p := hunter.SellerProfile{ActiveSince: "01.01.2030"}
		assert.Equal(t, 0, hunter.TrustScore(p, 2026))
	})
}
