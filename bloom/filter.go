// Package bloom provides probabilistic dedup of already-processed
// listings for the batch extraction path.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenFilter remembers listing identifiers (source ad IDs or URLs) that
// have already been extracted, so batch runs don't re-alert on the same
// listing. False positives are possible; false negatives are not, which
// is the safe direction for alert dedup.
type SeenFilter struct {
	f *bloom.BloomFilter
}

// NewSeenFilter creates a filter sized for n expected listings with the
// given false positive rate.
func NewSeenFilter(n uint, fpRate float64) *SeenFilter {
	return &SeenFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a listing identifier as processed.
func (f *SeenFilter) Add(id string) {
	f.f.AddString(id)
}

// Seen returns true if the listing might have been processed already.
func (f *SeenFilter) Seen(id string) bool {
	return f.f.TestString(id)
}

// EstimatedCount returns the approximate number of listings in the filter.
func (f *SeenFilter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
