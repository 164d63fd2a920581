package hunter

import (
	"context"
	"math"
	"regexp"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the sphere radius used by the haversine formula.
const earthRadiusKm = 6371.0

var (
	// postalCodeRe matches a standalone German 5-digit postal code.
	postalCodeRe = regexp.MustCompile(`\b(\d{5})\b`)

	// postalWithCityRe is the full-page fallback: a 5-digit code
	// immediately followed by a capitalized word, the usual
	// "zip + city name" shape.
	postalWithCityRe = regexp.MustCompile(`\b(\d{5})\s+[A-ZÄÖÜ][a-zäöü]+`)
)

// Geocoder resolves postal codes to coordinates. Implementations range
// from an in-memory table to a real geocoding service; the resolver's
// distance and zoning logic is independent of the backend.
type Geocoder interface {
	// CoordinatesFor returns the coordinate for a postal code, with
	// ok=false when the code is unknown.
	CoordinatesFor(ctx context.Context, postalCode string) (pt orb.Point, ok bool, err error)
}

// ExtractPostalCode searches the designated location text for a standalone
// 5-digit token, falling back to scanning the full page text for a
// "zip + capitalized city" pattern.
func ExtractPostalCode(locationText, fullText string) (string, bool) {
	if m := postalCodeRe.FindStringSubmatch(locationText); m != nil {
		return m[1], true
	}
	if m := postalWithCityRe.FindStringSubmatch(fullText); m != nil {
		return m[1], true
	}
	return "", false
}

// Distance computes the great-circle distance in kilometers between two
// points using the haversine formula, rounded to one decimal place.
// Points are orb.Point values (lon, lat).
func Distance(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*10) / 10
}

// ZoneFor buckets a distance into a logistics zone. The GREEN zone is a
// strict less-than: exactly at the threshold is YELLOW.
func ZoneFor(distanceKm, thresholdKm float64) LogisticsZone {
	if distanceKm < thresholdKm {
		return ZoneGreen
	}
	return ZoneYellow
}
