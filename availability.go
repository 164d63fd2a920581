package hunter

import (
	"regexp"
	"strings"
)

// searchPageMarkers appear on category/search-result pages the marketplace
// redirects to when a listing has been deleted.
var searchPageMarkers = []string{
	"ergebnisse in",
	"fahrräder & zubehör in",
	"kleinanzeigen:",
	"sortieren nach",
	"alle kategorien",
	"jetzt in",
	"finden oder inserieren",
}

// adDetailMarkers only appear in the markup of a real listing detail page.
var adDetailMarkers = []string{"viewad-title", "boxedarticle", "viewad-price"}

// resultCounterRe matches the "1 - 25 von 233 Ergebnissen" counter of a
// search-result page.
var resultCounterRe = regexp.MustCompile(`\b\d+\s*-\s*\d+\s*von\s*\d+\s*ergebnissen\b`)

// IsSearchResultPage reports whether the document is a search-result or
// category page rather than a listing detail page, which happens when a
// listing was removed and the request got redirected.
func IsSearchResultPage(title, description, html string) bool {
	lowerTitle := strings.ToLower(title)
	lowerDesc := strings.ToLower(description)
	lowerHTML := strings.ToLower(html)

	hasSearchMarker := false
	for _, marker := range searchPageMarkers {
		if strings.Contains(lowerTitle, marker) ||
			strings.Contains(lowerDesc, marker) ||
			strings.Contains(lowerHTML, marker) {
			hasSearchMarker = true
			break
		}
	}

	hasResultCounter := resultCounterRe.MatchString(lowerTitle) ||
		resultCounterRe.MatchString(lowerDesc) ||
		resultCounterRe.MatchString(lowerHTML)

	hasAdDetailMarker := false
	for _, marker := range adDetailMarkers {
		if strings.Contains(lowerHTML, marker) {
			hasAdDetailMarker = true
			break
		}
	}

	return (hasSearchMarker || hasResultCounter) && !hasAdDetailMarker
}
