package hunter

import "regexp"

// conditionRules bucket free-text condition mentions, best first. The
// "sehr gut" check must precede the bare "gut" check.
var conditionRules = []struct {
	label string
	re    *regexp.Regexp
}{
	{"new", regexp.MustCompile(`\bneu\b|\bneuwertig\b`)},
	{"very_good", regexp.MustCompile(`\bsehr\s+gut\b`)},
	{"good", regexp.MustCompile(`\bgut\b`)},
	{"fair", regexp.MustCompile(`\bbefriedigend\b|\bok\b`)},
}

// ConditionUsed is the default when no condition keyword is found.
const ConditionUsed = "used"

// ClassifyCondition buckets a lowercased text blob into a condition label.
func ClassifyCondition(lowerText string) string {
	for _, rule := range conditionRules {
		if rule.re.MatchString(lowerText) {
			return rule.label
		}
	}
	return ConditionUsed
}
