package hunter

import (
	"time"

	"github.com/paulmach/orb"
)

// Defaults mirror the original deployment: the reference point is the
// Marburg warehouse, and anything within 100 km is considered an easy trip.
const (
	DefaultReferenceZip    = "35037"
	DefaultZoneThresholdKm = 100.0
	DefaultPreviewLength   = 100
)

// DefaultReference is the fixed reference coordinate (orb.Point is lon, lat).
var DefaultReference = orb.Point{8.7667, 50.8022}

// Config carries everything the extraction engine needs that is not the
// document itself. It is passed in explicitly so tests can substitute
// alternate geocoding data and a fixed clock; the engine reads no
// environment and holds no global state.
type Config struct {
	// Reference is the coordinate distances are measured against.
	Reference orb.Point

	// ReferenceZip labels the reference point in reports and logs.
	ReferenceZip string

	// Geocoder resolves postal codes to coordinates. When nil, distance
	// and logistics zone stay absent.
	Geocoder Geocoder

	// Now supplies the current time for the trust-score reference year
	// and report timestamps. Defaults to time.Now.
	Now func() time.Time

	// PreviewLength is the maximum rune count of the description preview.
	PreviewLength int

	// ZoneThresholdKm is the strict upper bound of the GREEN zone.
	ZoneThresholdKm float64
}

// WithDefaults returns a copy of the config with zero values replaced by
// the package defaults.
func (c Config) WithDefaults() Config {
	if c.Reference == (orb.Point{}) {
		c.Reference = DefaultReference
	}
	if c.ReferenceZip == "" {
		c.ReferenceZip = DefaultReferenceZip
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.PreviewLength == 0 {
		c.PreviewLength = DefaultPreviewLength
	}
	if c.ZoneThresholdKm == 0 {
		c.ZoneThresholdKm = DefaultZoneThresholdKm
	}
	return c
}
