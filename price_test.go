package hunter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bikeflip/hunter"
)

func TestNormalizePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"german thousands and decimal", "1.200,00 €", 1200.0},
		{"comma decimal", "12,50", 12.5},
		{"dot thousands", "1.200", 1200.0},
		{"dot decimal", "12.5", 12.5},
		{"empty", "", 0},
		{"currency and marker noise", "1.250 € VB", 1250.0},
		{"plain integer", "890", 890.0},
		{"no digits", "Preis auf Anfrage", 0},
		{"two decimal places", "999.99", 999.99},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, hunter.NormalizePrice(tt.raw))
		})
	}
}

func TestIsNegotiable(t *testing.T) {
	t.Parallel()

	assert.True(t, hunter.IsNegotiable("1.250 € VB"))
	assert.True(t, hunter.IsNegotiable("1.250 € Verhandlungsbasis"))
	assert.True(t, hunter.IsNegotiable("Preis verhandelbar"))
	assert.False(t, hunter.IsNegotiable("1.250 €"))
	assert.False(t, hunter.IsNegotiable(""))
}

func TestExtractLabeledPrice(t *testing.T) {
	t.Parallel()

	t.Run("finds labeled original price", func(t *testing.T) {
		t.Parallel()

		v, ok := hunter.ExtractLabeledPrice("Sehr guter Zustand. UVP: 5.599 € Privatverkauf")
		assert.True(t, ok)
		assert.Equal(t, 5599.0, v)
	})

	t.Run("handles collapsed description text", func(t *testing.T) {
		t.Parallel()

		v, ok := hunter.ExtractLabeledPrice("ZustandUVP: 5.599 €Privatverkauf")
		assert.True(t, ok)
		assert.Equal(t, 5599.0, v)
	})

	t.Run("neupreis variant", func(t *testing.T) {
		t.Parallel()

		v, ok := hunter.ExtractLabeledPrice("Neupreis war 3.200 Euro")
		assert.True(t, ok)
		assert.Equal(t, 3200.0, v)
	})

	t.Run("no label means no price", func(t *testing.T) {
		t.Parallel()

		_, ok := hunter.ExtractLabeledPrice("Verkaufe Rad für 3.200 Euro")
		assert.False(t, ok)
	})
}
