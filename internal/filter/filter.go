// Package filter provides pure admission predicates for news items.
// All functions are side-effect free and total: malformed or missing
// fields degrade to permissive defaults, never to errors.
package filter

import (
	"strings"
	"time"

	"github.com/abelbrown/briefing/internal/feed"
)

// WithinWindow reports whether the item's publish time falls inside the
// trailing window ending at now. The boundary is inclusive. Items without
// a parseable publish time are admitted: unknown recency is not a
// rejection reason.
func WithinWindow(item feed.Item, now time.Time, window time.Duration) bool {
	if item.PublishedAt.IsZero() {
		return true
	}
	return !item.PublishedAt.Before(now.Add(-window))
}

// blob joins the item's text fields with newlines so a keyword can never
// match across a field boundary.
func blob(item feed.Item) string {
	return strings.ToLower(item.Title + "\n" + item.Summary + "\n" + item.Link + "\n" + item.Source)
}

// MatchesKeywords applies include/exclude keyword rules to the item's
// combined text. With a non-empty include list, at least one include
// keyword must appear; any exclude keyword rejects regardless of
// includes. Matching is a case-insensitive substring test. An empty
// include list imposes no positive requirement.
func MatchesKeywords(item feed.Item, includes, excludes []string) bool {
	text := blob(item)

	if len(includes) > 0 {
		matched := false
		for _, kw := range includes {
			if strings.Contains(text, strings.ToLower(kw)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, kw := range excludes {
		if strings.Contains(text, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}

// Admit reports whether a single item passes both the recency window and
// the keyword rules.
func Admit(item feed.Item, now time.Time, window time.Duration, includes, excludes []string) bool {
	return WithinWindow(item, now, window) && MatchesKeywords(item, includes, excludes)
}

// Admitted returns the items that pass Admit, preserving order.
func Admitted(items []feed.Item, now time.Time, window time.Duration, includes, excludes []string) []feed.Item {
	result := make([]feed.Item, 0, len(items))
	for _, item := range items {
		if Admit(item, now, window, includes, excludes) {
			result = append(result, item)
		}
	}
	return result
}
