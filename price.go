package hunter

import (
	"regexp"
	"strconv"
	"strings"
)

// thousandsDotRe matches a price whose final dot is followed by exactly
// three digits, the German thousands-separator convention (1.200).
var thousandsDotRe = regexp.MustCompile(`\.\d{3}$`)

// negotiableMarkers are the substrings sellers use to signal openness to
// offers. "VB" is matched case-sensitively to avoid false hits inside words.
var negotiableMarkers = []string{"verhandlungsbasis", "verhandelbar"}

// NormalizePrice converts a raw price string with mixed European and
// international formatting into a numeric value. Currency symbols and
// other noise are stripped first. Unparsable input yields 0, never an
// error.
//
// Disambiguation rules:
//   - both "." and "," present: "." is a thousands separator, "," decimal
//     ("1.200,00" -> 1200)
//   - only ",": decimal separator ("12,50" -> 12.5)
//   - only ".": thousands separator when followed by exactly three final
//     digits ("1.200" -> 1200), decimal point otherwise ("12.5" -> 12.5)
func NormalizePrice(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return 0
	}

	hasDot := strings.Contains(clean, ".")
	hasComma := strings.Contains(clean, ",")
	switch {
	case hasDot && hasComma:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case hasComma:
		clean = strings.ReplaceAll(clean, ",", ".")
	case hasDot:
		if thousandsDotRe.MatchString(clean) {
			clean = strings.ReplaceAll(clean, ".", "")
		}
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// labeledPriceRe matches an original/new-price mention such as
// "UVP: 5.599 €" or "Neupreis war 3.200", including the collapsed form
// some descriptions use ("ZustandUVP: 5.599 €Privatverkauf").
var labeledPriceRe = regexp.MustCompile(`(?i)(?:uvp|neupreis|np|original(?:er)?\s*preis|original\s*price)\s*(?:war\s*)?[:\-]?\s*([0-9][0-9.,\s]{2,})(?:\s*(?:€|eur|euro))?`)

// ExtractLabeledPrice scans free text for a labeled original price and
// normalizes the first mention that parses to a positive value.
func ExtractLabeledPrice(text string) (float64, bool) {
	for _, m := range labeledPriceRe.FindAllStringSubmatch(text, -1) {
		if v := NormalizePrice(m[1]); v > 0 {
			return v, true
		}
	}
	return 0, false
}

// IsNegotiable reports whether the raw price text carries a negotiability
// marker ("VB", "Verhandlungsbasis", "verhandelbar").
func IsNegotiable(raw string) bool {
	if strings.Contains(raw, "VB") {
		return true
	}
	lower := strings.ToLower(raw)
	for _, marker := range negotiableMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
