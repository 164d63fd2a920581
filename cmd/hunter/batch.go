package main

import (
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bikeflip/hunter"
	"github.com/bikeflip/hunter/bloom"
)

// batchFilterSize is generous for a single run; the filter exists to
// absorb duplicate URLs and re-listed ads within one batch.
const batchFilterSize = 100000

// Run executes the batch command. Failures on individual listings are
// logged and skipped; the batch itself only fails on context cancellation.
func (c *BatchCmd) Run(deps *Dependencies) error {
	seen := bloom.NewSeenFilter(batchFilterSize, 0.01)

	var mu sync.Mutex
	enc := json.NewEncoder(deps.Stdout)

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for _, source := range c.Sources {
		source := source
		g.Go(func() error {
			report, err := extractSource(ctx, deps, source)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				fmt.Fprintf(deps.Stderr, "skip %s: %s\n", source, hunter.ErrorMessage(err))
				return nil
			}

			id := source
			if report.SourceAdID != nil {
				id = *report.SourceAdID
			}

			mu.Lock()
			defer mu.Unlock()
			if seen.Seen(id) {
				fmt.Fprintf(deps.Stderr, "skip %s: duplicate listing %s\n", source, id)
				return nil
			}
			seen.Add(id)
			return enc.Encode(report)
		})
	}

	return g.Wait()
}
