package mock

import (
	"context"

	"github.com/bikeflip/hunter"
)

var _ hunter.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of hunter.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, html, sourceURL string) (*hunter.ListingReport, error)
}

func (e *Extractor) Extract(ctx context.Context, html, sourceURL string) (*hunter.ListingReport, error) {
	return e.ExtractFn(ctx, html, sourceURL)
}
