package hunter

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	activeSinceRe = regexp.MustCompile(`(?i)Aktiv\s*seit\s*(\d{2}\.\d{2}\.\d{4})`)
	lastActiveRe  = regexp.MustCompile(`(?i)(?:Zuletzt\s*aktiv|Last\s*active)\s*:?\s*([^.\n\r]{2,40})`)
)

// trustBadgeMarkers in a seller badge earn the flat trust bonus.
var trustBadgeMarkers = []string{"Zufrieden", "TOP"}

// SellerProfile holds what could be learned about a seller from their
// profile block. Zero values mean "not found"; ActiveSince uses the
// explicit SellerSinceUnknown marker.
type SellerProfile struct {
	Name        string
	Type        string
	ActiveSince string
	LastActive  string
	Badges      []string
}

// ParseSellerProfile extracts the "active since" date, account type, and
// last-activity hint from a seller block's text. Name and badges come from
// markup structure and are filled in by the caller.
func ParseSellerProfile(text string) SellerProfile {
	p := SellerProfile{ActiveSince: SellerSinceUnknown}

	if m := activeSinceRe.FindStringSubmatch(text); m != nil {
		p.ActiveSince = m[1]
	}
	if strings.Contains(text, "Privater Nutzer") {
		p.Type = "Privater Nutzer"
	} else if strings.Contains(text, "Gewerblicher Anbieter") {
		p.Type = "Gewerblicher Anbieter"
	}
	if m := lastActiveRe.FindStringSubmatch(text); m != nil {
		p.LastActive = strings.TrimSpace(m[1])
	}

	return p
}

// TrustScore derives a seller-trust score from account age and badges:
// two points per year of account age relative to referenceYear, plus a
// flat five for a top-satisfaction badge. An unknown "since" date
// contributes nothing. The score has no upper bound.
func TrustScore(p SellerProfile, referenceYear int) int {
	score := 0

	if p.ActiveSince != SellerSinceUnknown {
		parts := strings.Split(p.ActiveSince, ".")
		if len(parts) == 3 {
			if year, err := strconv.Atoi(parts[2]); err == nil {
				score += (referenceYear - year) * 2
			}
		}
	}

	for _, badge := range p.Badges {
		if hasTrustMarker(badge) {
			score += 5
			break
		}
	}

	if score < 0 {
		return 0
	}
	return score
}

func hasTrustMarker(badge string) bool {
	for _, marker := range trustBadgeMarkers {
		if strings.Contains(badge, marker) {
			return true
		}
	}
	return false
}
