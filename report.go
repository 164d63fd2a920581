package hunter

import (
	"context"
	"time"
)

// PriceType indicates whether the listed price is fixed or open to offers.
type PriceType string

// Price types.
const (
	PriceFixed      PriceType = "FIXED"
	PriceNegotiable PriceType = "NEGOTIABLE"
)

// ShippingMode indicates how a listing can be handed over.
type ShippingMode string

// Shipping modes.
const (
	ShippingPickupOnly ShippingMode = "PICKUP_ONLY"
	ShippingAvailable  ShippingMode = "AVAILABLE"
)

// LogisticsZone buckets a listing by distance from the reference point.
type LogisticsZone string

// Logistics zones.
const (
	ZoneGreen  LogisticsZone = "GREEN"
	ZoneYellow LogisticsZone = "YELLOW"
)

// BadgeLocalLot is attached to pickup-only listings.
const BadgeLocalLot = "LOCAL_LOT"

// SellerSinceUnknown is the explicit marker for a missing "active since" date.
const SellerSinceUnknown = "Unknown"

// ListingReport is the normalized record produced for one listing page.
// Every extraction is best-effort: pointer fields are nil (JSON null) when
// the page yielded nothing, never omitted. A report is produced fresh per
// input document and is not mutated after assembly.
type ListingReport struct {
	ID          string `json:"id"`
	SourceURL   string `json:"sourceUrl,omitempty"`
	SourceAdID  *string `json:"sourceAdId"`
	ContentHash string `json:"contentHash"`

	Title    *string `json:"title"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Category string  `json:"category"`

	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice"`
	PriceType     PriceType `json:"priceType"`

	DescriptionPreview string  `json:"descriptionPreview"`
	Year               *string `json:"year"`
	Size               *string `json:"size"`
	WheelDiameter      *string `json:"wheelDiameter"`
	Condition          string  `json:"condition"`

	Shipping ShippingMode `json:"shippingMode"`
	Badges   []string     `json:"badges"`

	PostalCode    *string        `json:"postalCode"`
	DistanceKm    *float64       `json:"distanceKm"`
	LogisticsZone *LogisticsZone `json:"logisticsZone"`

	SellerName        *string  `json:"sellerName"`
	SellerType        *string  `json:"sellerType"`
	SellerBadges      []string `json:"sellerBadges"`
	SellerTrustScore  *int     `json:"sellerTrustScore"`
	SellerActiveSince string   `json:"sellerActiveSince"`
	SellerLastActive  *string  `json:"sellerLastActive"`

	Images      []string  `json:"images"`
	Views       int       `json:"views"`
	PublishDate *string   `json:"publishDate"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the report violates its invariants.
func (r *ListingReport) Validate() error {
	if r.Price < 0 {
		return Errorf(EINVALID, "report price must be non-negative")
	}
	if r.PriceType != PriceFixed && r.PriceType != PriceNegotiable {
		return Errorf(EINVALID, "report price type required")
	}
	if r.Shipping != ShippingPickupOnly && r.Shipping != ShippingAvailable {
		return Errorf(EINVALID, "report shipping mode required")
	}
	if r.LogisticsZone != nil && r.DistanceKm == nil {
		return Errorf(EINVALID, "logistics zone requires a known distance")
	}
	return nil
}

// Extractor produces a ListingReport from one listing page.
// sourceURL may be empty; it is only used as a fallback for metadata that
// appears in listing URLs (e.g., the source ad ID).
type Extractor interface {
	// Extract parses the document and assembles a complete report.
	// Missing data degrades to absent field values; the only error case
	// is a document that cannot be parsed at all.
	Extract(ctx context.Context, html, sourceURL string) (*ListingReport, error)
}

// Truncate returns the first n runes of s, with an ellipsis appended when
// s was actually cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
