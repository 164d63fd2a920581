package hunter

import (
	"regexp"
	"strings"
)

// specRule pairs a pattern with a normalizer for the captured token.
// Rules are evaluated in order; the first qualifying match wins.
type specRule struct {
	re        *regexp.Regexp
	normalize func(string) string
}

// yearRules match a model-year mention gated by purchase/invoice/model-year
// keywords. The captured value is either a 4-digit year or a slashed
// 2-digit month/year form ("06/24"). Other date-like mentions (service,
// inspection) are not semantically filtered beyond the keyword gate.
var yearRules = []specRule{
	{
		re:        regexp.MustCompile(`(?i)(?:Neukauf|Rechnung|Baujahr|Modelljahr|Year)\s*[:\s]*(\d{2}[./]\d{2}|\d{4})`),
		normalize: expandShortYear,
	},
}

// sizeRules match a labeled frame size in description text: a letter code,
// a centimeter value, or an inch value. The token is returned verbatim,
// never unit-converted.
var sizeRules = []specRule{
	{
		re:        regexp.MustCompile(`(?i)(?:Rahmengr(?:ö|oe)(?:ß|ss)e|Größe|Groesse|Frame\s*size|Size)\s*[:\s-]*([LMS]|XL|XXL|\d{2}\s*cm|\d{2}\s*Zoll)`),
		normalize: func(s string) string { return s },
	},
}

// titleSizeRe is the last-resort size source: a bare standalone letter
// code in the listing title. Case-sensitive so lowercase words don't hit.
var titleSizeRe = regexp.MustCompile(`\b(L|XL|M|S)\b`)

// wheelRules classify wheel diameter mentions anywhere in the page text.
var wheelRules = []struct {
	label string
	re    *regexp.Regexp
}{
	{"mullet", regexp.MustCompile(`(?i)\b(?:mullet|mallet|mx|mixed)\b`)},
	{"29", regexp.MustCompile(`(?i)\b29\s*(?:"|inch|zoll)?\b`)},
	{"27.5", regexp.MustCompile(`(?i)\b(?:27[.,]5|650b)\s*(?:"|inch|zoll)?\b`)},
	{"26", regexp.MustCompile(`(?i)\b26\s*(?:"|inch|zoll)?\b`)},
	{"700c", regexp.MustCompile(`(?i)\b700c\b`)},
}

// ExtractYear searches description text for a labeled model year.
// Slashed 2-digit forms are expanded ("06/24" -> "2024"). Only the first
// qualifying match is used.
func ExtractYear(text string) (string, bool) {
	for _, rule := range yearRules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			return rule.normalize(m[1]), true
		}
	}
	return "", false
}

// expandShortYear expands the final component of a slashed 2-digit form to
// a 4-digit year by prefixing "20". Full 4-digit years pass through.
func expandShortYear(val string) string {
	if !strings.Contains(val, "/") || len(val) > 5 {
		return val
	}
	parts := strings.SplitN(val, "/", 2)
	if len(parts[1]) == 2 {
		return "20" + parts[1]
	}
	return val
}

// ExtractSize searches the description for a labeled frame size, falling
// back to a standalone letter code in the title.
func ExtractSize(description, title string) (string, bool) {
	for _, rule := range sizeRules {
		if m := rule.re.FindStringSubmatch(description); m != nil {
			return rule.normalize(m[1]), true
		}
	}
	if m := titleSizeRe.FindStringSubmatch(title); m != nil {
		return m[1], true
	}
	return "", false
}

// ExtractWheelDiameter scans page text for a wheel diameter mention and
// returns its canonical label.
func ExtractWheelDiameter(text string) (string, bool) {
	for _, rule := range wheelRules {
		if rule.re.MatchString(text) {
			return rule.label, true
		}
	}
	return "", false
}
