// Package digest aggregates admitted news items into the final ordered,
// capped result set and wraps it in the envelope handed to rendering.
package digest

import (
	"sort"
	"time"

	"github.com/abelbrown/briefing/internal/feed"
)

// Digest is the finished product of one run.
type Digest struct {
	GeneratedAt time.Time
	Items       []feed.Item
	GroupBy     string // "sector", "region", or "none"
	Title       string
}

// Key returns the deduplication identity for an item: the link when
// non-empty, otherwise the title. Distinct stories that share a link
// collapse to one; that is accepted behavior.
func Key(item feed.Item) string {
	if item.Link != "" {
		return item.Link
	}
	return item.Title
}

// Dedup drops items whose key has already been seen. First occurrence
// wins; later duplicates are dropped silently. The input is not mutated.
func Dedup(items []feed.Item) []feed.Item {
	seen := make(map[string]bool, len(items))
	result := make([]feed.Item, 0, len(items))
	for _, item := range items {
		k := Key(item)
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, item)
	}
	return result
}

// SortByPublished orders items by publish time descending, in place. The
// sort is stable, so ties keep their encounter order. Items without a
// publish time carry the zero time and therefore rank last even though
// the admission filter lets them through; this mirrors the original
// ranking behavior and is asserted by the tests.
func SortByPublished(items []feed.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
}

// Cap truncates to at most max items. A non-positive max yields an empty
// result, not an error.
func Cap(items []feed.Item, max int) []feed.Item {
	if max <= 0 {
		return []feed.Item{}
	}
	if len(items) > max {
		return items[:max]
	}
	return items
}

// Build runs dedup, sort, and cap over admitted items, in that order.
func Build(items []feed.Item, max int) []feed.Item {
	result := Dedup(items)
	SortByPublished(result)
	return Cap(result, max)
}
