package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bikeflip/hunter"
)

// sellerBlockSelectors identify the seller contact block and its sidebar
// variant. A page with neither has no recognizable seller.
var sellerBlockSelectors = []string{"#viewad-contact", "#viewad-sidebar"}

// extractSeller fills in the seller fields and the trust score. With no
// recognizable seller block the trust score stays absent and the
// active-since marker stays "Unknown".
func (e *Extractor) extractSeller(doc *goquery.Document, report *hunter.ListingReport) {
	var blocks []*goquery.Selection
	for _, selector := range sellerBlockSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			blocks = append(blocks, sel)
		}
	}
	if len(blocks) == 0 {
		return
	}

	var text strings.Builder
	for _, block := range blocks {
		text.WriteString(" ")
		text.WriteString(block.Text())
	}

	profile := hunter.ParseSellerProfile(collapse(text.String()))

	for _, block := range blocks {
		block.Find(".profile-userbadges .userbadge, .userbadge").Each(func(_ int, sel *goquery.Selection) {
			if badge := strings.TrimSpace(sel.Text()); badge != "" {
				profile.Badges = append(profile.Badges, badge)
			}
		})
		if profile.Name == "" {
			name := strings.TrimSpace(block.Find(".userprofile-vip a").First().Text())
			if name == "" {
				name = strings.TrimSpace(block.Find("#viewad-contact-name").Text())
			}
			profile.Name = name
		}
	}

	if profile.Name != "" {
		report.SellerName = &profile.Name
	}
	if profile.Type != "" {
		report.SellerType = &profile.Type
	}
	if profile.LastActive != "" {
		report.SellerLastActive = &profile.LastActive
	}
	report.SellerBadges = dedupeBadges(profile.Badges)
	report.SellerActiveSince = profile.ActiveSince

	score := hunter.TrustScore(profile, e.config.Now().Year())
	report.SellerTrustScore = &score
}

func dedupeBadges(badges []string) []string {
	if len(badges) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(badges))
	var out []string
	for _, b := range badges {
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	return out
}
