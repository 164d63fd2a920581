// Package slog provides logging decorators for hunter interfaces using
// the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/bikeflip/hunter"
)

// Ensure LoggingFetcher implements hunter.Fetcher.
var _ hunter.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of each fetch.
type LoggingFetcher struct {
	next   hunter.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a logging decorator around a Fetcher.
func NewLoggingFetcher(next hunter.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch", "url", url, "duration", time.Since(start), "err", err.Error())
		return "", err
	}
	f.logger.Info("fetch", "url", url, "bytes", len(html), "duration", time.Since(start))
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
