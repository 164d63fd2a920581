package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bikeflip/hunter"
	"github.com/bikeflip/hunter/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB        *sqlite.DB
	Geocoder  hunter.Geocoder
	Extractor hunter.Extractor
	Fetcher   hunter.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract one listing (URL or local HTML file) to a JSON report"`
	Batch   BatchCmd   `cmd:"" help:"Extract many listings concurrently to NDJSON"`
	Seed    SeedCmd    `cmd:"" help:"Seed the postal-code geo database from a CSV file"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source string `arg:"" help:"Listing URL or path to a saved HTML file"`
	Pretty bool   `short:"p" help:"Indent the JSON output"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Sources     []string `arg:"" help:"Listing URLs or paths to saved HTML files"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent extraction limit"`
}

// SeedCmd is the "seed" subcommand.
type SeedCmd struct {
	Path string `arg:"" help:"CSV file with code,lat,lon rows"`
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid HUNTER_FETCH_TIMEOUT %q: %w", s, err)
	}
	return d, nil
}
