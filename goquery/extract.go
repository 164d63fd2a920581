package goquery

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/bikeflip/hunter"
)

// noiseSelector matches recommendation/similar-listing blocks that would
// otherwise bleed foreign prices and titles into the extraction.
const noiseSelector = `.recommendations, .similar-ads, .related-ads, [class*="recommendation"], [class*="similar"], [class*="related"]`

// Default locator cascades. Each list is tried in order; the first
// non-empty match wins.
var (
	defaultTitleStrategies = []Strategy{
		Selector(".boxedarticle--title"),
		Selector("h1"),
		Selector("title"),
	}

	defaultPriceStrategies = []Strategy{
		Selector(".boxedarticle--price"),
		Selector(".price-element"),
		Selector(".ad-price"),
		Selector("#viewad-price"),
	}

	defaultDescriptionStrategies = []Strategy{
		SelectorWithout("#viewad-description-text", ".ad-description-ad-id"),
		Selector(`[data-testid="ad-description-text"]`),
		MinLength(Attr(`meta[name="description"]`, "content"), 20),
		MinLength(Selector(".boxedarticle--description"), 10),
		MinLength(Selector(`[itemprop="description"]`), 10),
	}

	defaultLocationStrategies = []Strategy{
		Selector(".boxedarticle--location"),
		Selector(".ad-location"),
		Selector(".location-text"),
		Selector(`[data-testid="ad-location"]`),
		Selector("#viewad-locality"),
	}

	defaultOriginalPriceStrategies = []Strategy{
		Selector(".struck-price"),
		Selector(".old-price"),
		Selector(".uvp-price"),
		Selector("s"),
		Selector("del"),
		Selector(".is-struck"),
		Selector(`[style*="line-through"]`),
		Selector(".boxedarticle--price--strike-through"),
	}
)

// shippingTierSelectors are the designated detail/price-area elements that
// form the first shipping classification tier.
var shippingTierSelectors = []string{
	".boxedarticle--details",
	"#viewad-price",
	".ad-shipping-details",
}

// Ensure Extractor implements hunter.Extractor at compile time.
var _ hunter.Extractor = (*Extractor)(nil)

// Extractor assembles a hunter.ListingReport from listing page HTML.
// It is stateless across calls and safe for concurrent use.
type Extractor struct {
	config hunter.Config

	title         []Strategy
	price         []Strategy
	description   []Strategy
	location      []Strategy
	originalPrice []Strategy
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTitleStrategies replaces the title locator cascade.
func WithTitleStrategies(s ...Strategy) Option {
	return func(e *Extractor) { e.title = s }
}

// WithPriceStrategies replaces the price-block locator cascade.
func WithPriceStrategies(s ...Strategy) Option {
	return func(e *Extractor) { e.price = s }
}

// WithDescriptionStrategies replaces the description locator cascade.
func WithDescriptionStrategies(s ...Strategy) Option {
	return func(e *Extractor) { e.description = s }
}

// WithLocationStrategies replaces the location-block locator cascade.
func WithLocationStrategies(s ...Strategy) Option {
	return func(e *Extractor) { e.location = s }
}

// NewExtractor creates an Extractor with the given engine configuration.
func NewExtractor(config hunter.Config, opts ...Option) *Extractor {
	e := &Extractor{
		config:        config.WithDefaults(),
		title:         defaultTitleStrategies,
		price:         defaultPriceStrategies,
		description:   defaultDescriptionStrategies,
		location:      defaultLocationStrategies,
		originalPrice: defaultOriginalPriceStrategies,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses one listing page and assembles the normalized report.
// Every field degrades to an explicit absent value when the markup yields
// nothing; the error cases are markup that cannot be parsed at all
// (EINVALID) and a search-result page served in place of a removed
// listing (EUNAVAILABLE).
func (e *Extractor) Extract(ctx context.Context, html, sourceURL string) (*hunter.ListingReport, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, hunter.Errorf(hunter.EINVALID, "failed to parse document: %v", err)
	}

	doc.Find(noiseSelector).Remove()

	title, titleOK := Locate(doc, e.title...)
	description, _ := Locate(doc, e.description...)
	fullText := doc.Find("body").Text()
	if fullText == "" {
		fullText = doc.Text()
	}

	if hunter.IsSearchResultPage(title, description, html) {
		return nil, hunter.Errorf(hunter.EUNAVAILABLE, "listing unavailable or removed")
	}

	report := &hunter.ListingReport{
		ID:                uuid.NewString(),
		SourceURL:         sourceURL,
		ContentHash:       fmt.Sprintf("%016x", xxhash.Sum64String(html)),
		PriceType:         hunter.PriceFixed,
		SellerActiveSince: hunter.SellerSinceUnknown,
		ExtractedAt:       e.config.Now(),
	}

	if titleOK {
		report.Title = &title
	}
	info := hunter.ParseTitle(title)
	report.Brand = info.Brand
	report.Model = info.Model
	report.Category = info.Category

	priceText, _ := Locate(doc, e.price...)
	report.Price = hunter.NormalizePrice(priceText)
	if hunter.IsNegotiable(priceText) {
		report.PriceType = hunter.PriceNegotiable
	}

	report.DescriptionPreview = hunter.Truncate(description, e.config.PreviewLength)

	if year, ok := hunter.ExtractYear(description); ok {
		report.Year = &year
	}
	if size, ok := hunter.ExtractSize(description, title); ok {
		report.Size = &size
	}
	if wheel, ok := hunter.ExtractWheelDiameter(focusedText(doc, description) + " " + fullText); ok {
		report.WheelDiameter = &wheel
	}

	report.Condition = hunter.ClassifyCondition(strings.ToLower(focusedText(doc, description) + " " + fullText))

	if orig, ok := e.extractOriginalPrice(doc, description); ok {
		report.OriginalPrice = &orig
	}

	detailTier := e.shippingDetailText(doc)
	report.Shipping, report.Badges = hunter.ClassifyShipping(detailTier, description, fullText)

	e.resolveGeo(ctx, doc, fullText, report)
	e.extractSeller(doc, report)
	e.extractMetadata(doc, fullText, sourceURL, report)
	report.Images = extractImages(doc)

	return report, nil
}

// shippingDetailText concatenates the designated detail/price-area
// elements into the first shipping classification tier.
func (e *Extractor) shippingDetailText(doc *goquery.Document) string {
	var b strings.Builder
	for _, selector := range shippingTierSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			b.WriteString(" ")
			b.WriteString(sel.Text())
		})
	}
	return collapse(b.String())
}

// focusedText joins the description with the structured detail areas,
// the texts most likely to carry specs without full-page noise.
func focusedText(doc *goquery.Document, description string) string {
	parts := []string{description}
	for _, selector := range []string{".addetailslist--detail", ".boxedarticle--details", "#viewad-main-info"} {
		if text := collapse(doc.Find(selector).Text()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func (e *Extractor) extractOriginalPrice(doc *goquery.Document, description string) (float64, bool) {
	if text, ok := Locate(doc, e.originalPrice...); ok {
		if v := hunter.NormalizePrice(text); v > 0 {
			return v, true
		}
	}
	return hunter.ExtractLabeledPrice(focusedText(doc, description))
}

// resolveGeo extracts the postal code, resolves coordinates, and fills in
// distance and logistics zone. Geocoder misses and lookup errors leave
// distance and zone absent; they never fail the extraction.
func (e *Extractor) resolveGeo(ctx context.Context, doc *goquery.Document, fullText string, report *hunter.ListingReport) {
	locationText, _ := Locate(doc, e.location...)
	postalCode, ok := hunter.ExtractPostalCode(collapse(locationText), collapse(fullText))
	if !ok {
		return
	}
	report.PostalCode = &postalCode

	if e.config.Geocoder == nil {
		return
	}
	pt, found, err := e.config.Geocoder.CoordinatesFor(ctx, postalCode)
	if err != nil || !found {
		return
	}

	distance := hunter.Distance(pt, e.config.Reference)
	zone := hunter.ZoneFor(distance, e.config.ZoneThresholdKm)
	report.DistanceKm = &distance
	report.LogisticsZone = &zone
}
