// Package fetch retrieves feed entries and converts them to normalized
// news items.
//
// Failures are reported per feed; callers treat a failed feed as an
// empty contribution and carry on with the rest of the plan.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed/rss"
	"golang.org/x/time/rate"

	"github.com/abelbrown/briefing/internal/feed"
)

// Fetcher retrieves items from feed sources over HTTP.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher with the given per-request timeout.
// Requests are paced so a large plan does not hammer the feed host.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// Fetch retrieves one feed and converts its entries. The context governs
// pacing and the request itself.
func (f *Fetcher) Fetch(ctx context.Context, src feed.Source) ([]feed.Item, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "briefing/0.1 (+https://github.com/abelbrown/briefing)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	// The RSS parser is used directly rather than gofeed's universal one:
	// the universal item drops the per-entry <source> element, which is
	// where Google News reports the publisher.
	parser := &rss.Parser{}
	parsed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]feed.Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		items = append(items, convertEntry(entry, src))
	}
	return items, nil
}

// convertEntry maps a raw feed entry onto the pipeline's normalized
// item. Missing fields become empty strings. A missing or unparseable
// publish date leaves PublishedAt as the zero time so the admission
// filter treats recency as unknown.
func convertEntry(entry *rss.Item, src feed.Source) feed.Item {
	item := feed.Item{
		Title:     entry.Title,
		Summary:   entry.Description,
		Link:      entry.Link,
		Label:     src.Label,
		Region:    src.Region,
		Published: entry.PubDate,
	}
	if entry.PubDateParsed != nil {
		item.PublishedAt = entry.PubDateParsed.UTC()
	}
	if entry.Source != nil {
		item.Source = entry.Source.Title
	}
	return item
}
