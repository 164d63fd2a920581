package mock

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/bikeflip/hunter"
)

var _ hunter.Geocoder = (*Geocoder)(nil)

// Geocoder is a mock implementation of hunter.Geocoder.
type Geocoder struct {
	CoordinatesForFn func(ctx context.Context, postalCode string) (orb.Point, bool, error)
}

func (g *Geocoder) CoordinatesFor(ctx context.Context, postalCode string) (orb.Point, bool, error) {
	return g.CoordinatesForFn(ctx, postalCode)
}

// TableGeocoder returns a Geocoder backed by a fixed postal-code table,
// with points given as (lat, lon) pairs.
func TableGeocoder(table map[string][2]float64) *Geocoder {
	return &Geocoder{
		CoordinatesForFn: func(_ context.Context, postalCode string) (orb.Point, bool, error) {
			coords, ok := table[postalCode]
			if !ok {
				return orb.Point{}, false, nil
			}
			return orb.Point{coords[1], coords[0]}, true, nil
		},
	}
}
