package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/bikeflip/hunter"
)

// Ensure LoggingExtractor implements hunter.Extractor.
var _ hunter.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging of each
// extraction's key signals: price, shipping, zone, trust.
type LoggingExtractor struct {
	next   hunter.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a logging decorator around an Extractor.
func NewLoggingExtractor(next hunter.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs a summary of the
// assembled report.
func (e *LoggingExtractor) Extract(ctx context.Context, html, sourceURL string) (*hunter.ListingReport, error) {
	start := time.Now()
	report, err := e.next.Extract(ctx, html, sourceURL)
	if err != nil {
		e.logger.Error("extract", "url", sourceURL, "duration", time.Since(start), "err", err.Error())
		return nil, err
	}

	attrs := []any{
		"url", sourceURL,
		"price", report.Price,
		"priceType", string(report.PriceType),
		"shipping", string(report.Shipping),
		"duration", time.Since(start),
	}
	if report.LogisticsZone != nil {
		attrs = append(attrs, "zone", string(*report.LogisticsZone))
	}
	if report.DistanceKm != nil {
		attrs = append(attrs, "distanceKm", *report.DistanceKm)
	}
	if report.SellerTrustScore != nil {
		attrs = append(attrs, "trustScore", *report.SellerTrustScore)
	}
	e.logger.Info("extract", attrs...)

	return report, nil
}
