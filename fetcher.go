package distropop

import (
	"context"
	"net/url"
	"strings"
)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body.
	// Failures carry the ETRANSPORT code. The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// HostLimiter provides per-host rate limiting.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}

// DetailURL returns the detail page address for a lookup key.
func DetailURL(baseURL, key string) string {
	return strings.TrimSuffix(baseURL, "/") + "/table.php?distribution=" + url.QueryEscape(key)
}

// HomeURL returns the home page address, which lists every distribution.
func HomeURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/"
}
