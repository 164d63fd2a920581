// Package http provides an HTTP-based implementation of hunter.Fetcher
// for retrieving listing pages. It owns the transport concerns the
// extraction engine must not know about: browser-like headers, proxies,
// rate limiting, and retry with backoff.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/bikeflip/hunter"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRequestsPerSecond is the default marketplace request rate.
const DefaultRequestsPerSecond = 1.0

// minDocumentBytes guards against proxy/consent stubs served with a 200.
const minDocumentBytes = 1000

// browserHeaders mimic a desktop browser; the marketplace serves reduced
// markup to obvious bots.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "de-DE,de;q=0.9,en-US;q=0.8,en;q=0.7",
	"Referer":         "https://www.kleinanzeigen.de/",
}

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure Fetcher implements hunter.Fetcher at compile time.
var _ hunter.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves listing HTML using HTTP requests.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	proxyURL    string
	limiter     *rate.Limiter
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxyURL string) Option {
	return func(f *Fetcher) {
		f.proxyURL = proxyURL
	}
}

// WithRequestsPerSecond sets the request rate limit with a burst of 1.
func WithRequestsPerSecond(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays replaces the backoff delays. Useful for testing without
// waiting for real delays; an empty slice disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		limiter:     rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := http.DefaultTransport
	if f.proxyURL != "" {
		proxy, err := url.Parse(f.proxyURL)
		if err != nil {
			return nil, hunter.Errorf(hunter.EINVALID, "invalid proxy URL: %v", err)
		}
		transport = &http.Transport{Proxy: http.ProxyURL(proxy)}
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f, nil
}

// Fetch retrieves the HTML document at the given URL, retrying transient
// failures with exponential backoff.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.retryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.fetchOnce(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.retryDelays[attempt]):
		}
	}

	return "", lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", hunter.Errorf(hunter.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if len(body) < minDocumentBytes {
		return "", hunter.Errorf(hunter.EUNAVAILABLE, "suspiciously short document (%d bytes) for %s", len(body), url)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
