package goquery

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/bikeflip/hunter"
)

var (
	adIDBodyRe = regexp.MustCompile(`(?i)anzeige\s*-?\s*id\s*[:#]?\s*(\d{6,})`)
	adIDURLRe  = regexp.MustCompile(`/(\d{6,})-\d+-\d+`)

	// viewsTextRe catches the counter when it renders as free text
	// ("1234 Aufrufe") instead of a dedicated element.
	viewsTextRe = regexp.MustCompile(`(\d+)\s*Aufrufe`)
)

// extractMetadata fills in the listing's marketplace metadata: source ad
// ID, view counter, and publish date.
func (e *Extractor) extractMetadata(doc *goquery.Document, fullText, sourceURL string, report *hunter.ListingReport) {
	if m := adIDBodyRe.FindStringSubmatch(fullText); m != nil {
		report.SourceAdID = &m[1]
	} else if m := adIDURLRe.FindStringSubmatch(sourceURL); m != nil {
		report.SourceAdID = &m[1]
	}

	viewsText, _ := Locate(doc,
		Selector("#viewad-cntr-num"),
		Selector(".view-count"),
		Regexp(viewsTextRe),
	)
	if views, err := strconv.Atoi(strings.TrimSpace(viewsText)); err == nil {
		report.Views = views
	}

	if date, ok := extractPublishDate(doc); ok {
		report.PublishDate = &date
	}
}

// extractPublishDate reads the "Erstellungsdatum" attribute row, falling
// back to the last value in the details sidebar, and normalizes the
// DD.MM.YYYY form to an ISO date.
func extractPublishDate(doc *goquery.Document) (string, bool) {
	var raw string
	doc.Find(".attributelist--key").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), "Erstellungsdatum") {
			raw = strings.TrimSpace(sel.Next().Text())
			return false
		}
		return true
	})
	if raw == "" {
		raw = strings.TrimSpace(doc.Find("#viewad-details .attributelist--value").Last().Text())
	}
	if raw == "" {
		return "", false
	}

	t, err := time.Parse("02.01.2006", raw)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
