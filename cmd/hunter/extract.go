package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bikeflip/hunter"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	report, err := extractSource(deps.Ctx, deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hunter.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}

// extractSource fetches the source (URL) or reads it (local file) and runs
// the extraction.
func extractSource(ctx context.Context, deps *Dependencies, source string) (*hunter.ListingReport, error) {
	var html, sourceURL string

	if isURL(source) {
		sourceURL = source
		fetched, err := deps.Fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		html = fetched
	} else {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, hunter.Errorf(hunter.ENOTFOUND, "cannot read %q: %v", source, err)
		}
		html = string(data)
	}

	report, err := deps.Extractor.Extract(ctx, html, sourceURL)
	if err != nil {
		return nil, err
	}
	if err := report.Validate(); err != nil {
		return nil, err
	}
	return report, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
