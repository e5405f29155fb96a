package feed

import (
	"errors"
	"fmt"
	"net/http"

	"feedterm/internal/config"
	"feedterm/internal/store"
)

var (
	// ErrNetwork marks connection, DNS, and timeout failures.
	ErrNetwork = errors.New("network error")
	// ErrHTTP marks a non-success status from the feed server.
	ErrHTTP = errors.New("http error")
	// ErrParse marks a response body that is not a valid feed document.
	ErrParse = errors.New("feed parse error")
)

// Result is a normalized fetch outcome: the feed's self-reported title and
// its items in document order.
type Result struct {
	Title string
	Items []store.Item
}

// Fetcher retrieves and parses feeds over HTTP. It is a pure query: a fetch
// never mutates anything the caller owns.
type Fetcher struct {
	client    *http.Client
	userAgent string
	parser    *Parser
}

func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Feed.HTTPTimeout,
		},
		userAgent: cfg.Feed.UserAgent,
		parser:    NewParser(),
	}
}

// Fetch retrieves the feed at url and returns its normalized items. Errors
// wrap ErrNetwork, ErrHTTP, or ErrParse so callers can classify them.
func (f *Fetcher) Fetch(url string) (*Result, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrNetwork, url, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrNetwork, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrHTTP, url, resp.StatusCode)
	}

	result, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, url, err)
	}
	return result, nil
}
