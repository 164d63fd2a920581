package hunter

import "context"

// Fetcher retrieves listing page HTML from URLs.
// Fetching is the only I/O boundary of the system: the extraction engine
// itself never touches the network. Retry and backoff policy belong to
// implementations, not to the engine.
type Fetcher interface {
	// Fetch retrieves the document at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
