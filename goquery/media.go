package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// marketplaceBaseURL resolves relative image paths.
const marketplaceBaseURL = "https://www.kleinanzeigen.de"

// gallerySelectors are tried after the high-res data-imgsrc attributes.
var gallerySelectors = []string{
	"#viewad-image img",
	".galleryimage-element img",
	".gallery-image img",
	".ad-image img",
	".imagegallery img",
	".image-gallery img",
	".carousel-item img",
	".slider-item img",
	".thumbnail img",
	".picture img",
	".photo img",
}

// lazyAttrs are the attributes lazy-loading galleries hide sources in.
var lazyAttrs = []string{"src", "data-src", "data-original", "data-lazy"}

// excludedImagePatterns mark placeholder and chrome images.
var excludedImagePatterns = []string{
	"placeholder", "loading", "spinner", "icon", "logo", "avatar",
	"profile", "thumbnail-placeholder", "no-image", "default-image",
}

var imageSizeRe = regexp.MustCompile(`(\d+)x(\d+)`)

// extractImages collects listing photos, preferring high-res data-imgsrc
// sources, filtering placeholders and tiny thumbnails, and deduplicating
// by normalized URL.
func extractImages(doc *goquery.Document) []string {
	var images []string
	seen := make(map[string]bool)

	add := func(src string) {
		if src == "" || !isListingImageURL(src) {
			return
		}
		full := src
		if !strings.HasPrefix(src, "http") {
			full = marketplaceBaseURL + src
		}
		key := dedupKey(full)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		images = append(images, full)
	}

	doc.Find("[data-imgsrc]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("data-imgsrc")
		add(src)
	})

	for _, selector := range gallerySelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			for _, attr := range lazyAttrs {
				if src, exists := sel.Attr(attr); exists && src != "" {
					add(src)
					return
				}
			}
		})
	}

	return images
}

// isListingImageURL filters out placeholders, chrome, and thumbnails too
// small to be listing photos.
func isListingImageURL(raw string) bool {
	lower := strings.ToLower(raw)
	for _, pattern := range excludedImagePatterns {
		if strings.Contains(lower, pattern) {
			return false
		}
	}

	if m := imageSizeRe.FindStringSubmatch(raw); m != nil {
		width, _ := strconv.Atoi(m[1])
		height, _ := strconv.Atoi(m[2])
		if width < 200 || height < 200 {
			return false
		}
	}

	for _, ext := range []string{".jpg", ".jpeg", ".png", ".webp", ".gif"} {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return strings.Contains(lower, "image") || strings.Contains(lower, "photo")
}

// dedupKey strips query and fragment so size variants of the same photo
// collapse to one entry.
func dedupKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(strings.SplitN(raw, "?", 2)[0])
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.ToLower(u.String())
}
