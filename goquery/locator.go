// Package goquery implements DOM-based field location and report assembly
// for listing pages using CSS selectors.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy is one way of pulling a field's text out of a parsed document.
// Strategies never error: a miss is simply ("", false).
type Strategy interface {
	TryMatch(doc *goquery.Document) (string, bool)
}

// Locate runs strategies in order and returns the first non-empty match.
// Absence of all matches is a normal outcome, not an error.
func Locate(doc *goquery.Document, strategies ...Strategy) (string, bool) {
	for _, s := range strategies {
		if text, ok := s.TryMatch(doc); ok {
			return text, true
		}
	}
	return "", false
}

// Selector matches the trimmed text of the first element hit by a CSS
// selector.
func Selector(selector string) Strategy {
	return &selectorStrategy{selector: selector}
}

// SelectorWithout is like Selector but removes matching child elements
// before reading the text (e.g., the ad-id footer inside a description).
func SelectorWithout(selector, remove string) Strategy {
	return &selectorStrategy{selector: selector, remove: remove}
}

// Attr matches the trimmed value of an attribute on the first element hit
// by a CSS selector.
func Attr(selector, attr string) Strategy {
	return &attrStrategy{selector: selector, attr: attr}
}

// Regexp matches the first capture group of a pattern against the
// document's body text. Last-resort strategy for values that render as
// free text instead of a dedicated element.
func Regexp(re *regexp.Regexp) Strategy {
	return &regexpStrategy{re: re}
}

// MinLength wraps a strategy and discards matches shorter than n runes.
// Used to keep noisy fallbacks (meta tags, generic containers) from
// winning with junk.
func MinLength(s Strategy, n int) Strategy {
	return &minLengthStrategy{next: s, n: n}
}

type selectorStrategy struct {
	selector string
	remove   string
}

func (s *selectorStrategy) TryMatch(doc *goquery.Document) (string, bool) {
	sel := doc.Find(s.selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	if s.remove != "" {
		sel = sel.Clone()
		sel.Find(s.remove).Remove()
	}
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return "", false
	}
	return text, true
}

type attrStrategy struct {
	selector string
	attr     string
}

func (s *attrStrategy) TryMatch(doc *goquery.Document) (string, bool) {
	val, exists := doc.Find(s.selector).First().Attr(s.attr)
	if !exists {
		return "", false
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return "", false
	}
	return val, true
}

type regexpStrategy struct {
	re *regexp.Regexp
}

func (s *regexpStrategy) TryMatch(doc *goquery.Document) (string, bool) {
	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	m := s.re.FindStringSubmatch(text)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

type minLengthStrategy struct {
	next Strategy
	n    int
}

func (s *minLengthStrategy) TryMatch(doc *goquery.Document) (string, bool) {
	text, ok := s.next.TryMatch(doc)
	if !ok || len([]rune(text)) < s.n {
		return "", false
	}
	return text, true
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// collapse normalizes runs of whitespace to single spaces.
func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
