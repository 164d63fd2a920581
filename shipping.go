package hunter

import "regexp"

// pickupOnlyRe matches the marketplace's pickup-only marker.
var pickupOnlyRe = regexp.MustCompile(`(?i)Nur\s*Abholung`)

// ClassifyShipping determines pickup-only vs shippable status from ordered
// text tiers: the designated detail/price-area text, the description, and
// the full page text as a last resort. The first tier containing the
// pickup-only marker wins and attaches the LOCAL_LOT badge; later tiers
// are only consulted when earlier ones found nothing. With no match in any
// tier the listing counts as shippable with no badges.
func ClassifyShipping(tiers ...string) (ShippingMode, []string) {
	for _, tier := range tiers {
		if pickupOnlyRe.MatchString(tier) {
			return ShippingPickupOnly, []string{BadgeLocalLot}
		}
	}
	return ShippingAvailable, nil
}
