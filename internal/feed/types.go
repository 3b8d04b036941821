// Package feed defines the normalized news item that flows through the
// pipeline and builds the per-run feed plan: one Google News search feed
// for every (query, region) pair the configuration asks for.
package feed

import "time"

// Item is a normalized news record assembled from a raw feed entry plus
// the plan entry it came from. Fields missing from the feed stay empty;
// PublishedAt stays the zero time when the feed carried no parseable
// publish timestamp.
type Item struct {
	Title       string
	Summary     string
	Link        string
	Source      string    // publisher name as reported by the feed
	Label       string    // sector name or "General"
	Region      string
	Published   string    // display string exactly as it appeared in the feed
	PublishedAt time.Time // zero when unknown
}

// Source is one fetchable feed in the plan.
type Source struct {
	Label  string // sector name or "General"
	Region string
	Query  string
	URL    string
}

// Sector groups related search queries under a display label.
type Sector struct {
	Name    string
	Queries []string
}
