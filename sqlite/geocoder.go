package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/paulmach/orb"

	"github.com/bikeflip/hunter"
)

// Compile-time interface verification.
var _ hunter.Geocoder = (*Geocoder)(nil)

// Geocoder implements hunter.Geocoder using a SQLite postal-code table.
// The table is read-only at resolution time, so a single Geocoder can be
// shared across concurrent extractions.
type Geocoder struct {
	db *DB
}

// NewGeocoder creates a new Geocoder.
func NewGeocoder(db *DB) *Geocoder {
	return &Geocoder{db: db}
}

// CoordinatesFor returns the coordinate for a postal code.
// An unknown code is reported via ok=false, not an error.
func (g *Geocoder) CoordinatesFor(ctx context.Context, postalCode string) (orb.Point, bool, error) {
	var lat, lon float64
	err := g.db.QueryRowContext(ctx, `
		SELECT lat, lon FROM postal_codes WHERE code = ?
	`, postalCode).Scan(&lat, &lon)

	if errors.Is(err, sql.ErrNoRows) {
		return orb.Point{}, false, nil
	}
	if err != nil {
		return orb.Point{}, false, hunter.Errorf(hunter.EINTERNAL, "postal code lookup failed: %v", err)
	}

	return orb.Point{lon, lat}, true, nil
}

// AddPostalCode inserts or replaces a postal-code coordinate entry.
// Used to seed the table; lat/lon follow the usual geographic order while
// the returned points are orb (lon, lat).
func (g *Geocoder) AddPostalCode(ctx context.Context, code string, lat, lon float64) error {
	if code == "" {
		return hunter.Errorf(hunter.EINVALID, "postal code required")
	}
	_, err := g.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO postal_codes (code, lat, lon) VALUES (?, ?, ?)
	`, code, lat, lon)
	return err
}
