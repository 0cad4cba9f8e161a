package resolver

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

// Fetcher retrieves a company page for scraping. Implemented by
// pageFetcher; tests substitute fakes to count fetch attempts.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// pageFetcher is a plain HTTP fetcher with a redirect cap and a body
// size cap.
type pageFetcher struct {
	http      *http.Client
	userAgent string
	maxBytes  int64
}

// NewFetcher creates a page fetcher.
func NewFetcher(timeout time.Duration, userAgent string, maxBytes int64) Fetcher {
	if maxBytes <= 0 {
		maxBytes = 2 << 20
	}
	return &pageFetcher{
		http: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return eris.New("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
		maxBytes:  maxBytes,
	}
}

func (f *pageFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", eris.Wrap(err, "fetch: create request")
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.http.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "fetch: request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", eris.Errorf("fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", eris.Wrap(err, "fetch: read body")
	}

	return string(body), nil
}
