package filter

import (
	"testing"
	"time"

	"github.com/abelbrown/briefing/internal/feed"
)

var now = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

func TestWithinWindowUnknownTimestampAdmits(t *testing.T) {
	item := feed.Item{Title: "No date"}
	for _, window := range []time.Duration{0, day, 7 * day} {
		if !WithinWindow(item, now, window) {
			t.Errorf("item without timestamp should be admitted for window %s", window)
		}
	}
}

func TestWithinWindowBoundary(t *testing.T) {
	tests := []struct {
		name      string
		published time.Time
		want      bool
	}{
		{"well inside", now.Add(-2 * time.Hour), true},
		{"exactly at boundary", now.Add(-day), true},
		{"one second past", now.Add(-day - time.Second), false},
		{"future timestamp", now.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := feed.Item{Title: "x", PublishedAt: tt.published}
			if got := WithinWindow(item, now, day); got != tt.want {
				t.Errorf("WithinWindow(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMatchesKeywords(t *testing.T) {
	includes := []string{"ai"}
	excludes := []string{"crypto"}

	tests := []struct {
		name string
		item feed.Item
		want bool
	}{
		{"include matches", feed.Item{Title: "AI regulation update"}, true},
		{"exclude wins over include", feed.Item{Title: "AI and crypto markets"}, false},
		{"no include match", feed.Item{Title: "Weather report"}, false},
		{"include in summary", feed.Item{Title: "Policy", Summary: "new AI rules"}, true},
		{"include in link", feed.Item{Title: "Policy", Link: "https://example.com/ai-rules"}, true},
		{"include in source", feed.Item{Title: "Policy", Source: "AI Weekly"}, true},
		{"exclude in summary", feed.Item{Title: "AI news", Summary: "crypto angle"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesKeywords(tt.item, includes, excludes); got != tt.want {
				t.Errorf("MatchesKeywords = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesKeywordsEmptyIncludes(t *testing.T) {
	item := feed.Item{Title: "Anything at all"}
	if !MatchesKeywords(item, nil, nil) {
		t.Error("no rules should admit everything")
	}
	if MatchesKeywords(item, nil, []string{"anything"}) {
		t.Error("exclude should apply even without includes")
	}
}

func TestMatchesKeywordsCaseFolded(t *testing.T) {
	item := feed.Item{Title: "BREAKING: Artificial Intelligence"}
	if !MatchesKeywords(item, []string{"artificial intelligence"}, nil) {
		t.Error("matching should be case-insensitive")
	}
	if MatchesKeywords(item, nil, []string{"BREAKING"}) == true {
		t.Error("excludes should be case-insensitive")
	}
}

func TestMatchesKeywordsFieldBoundary(t *testing.T) {
	// "stocks" ends the title and "oar" begins the summary; the keyword
	// "stocksoar" must not match across the field join.
	item := feed.Item{Title: "stocks", Summary: "oar"}
	if MatchesKeywords(item, []string{"stocksoar"}, nil) {
		t.Error("keyword matched across a field boundary")
	}
}

func TestAdmit(t *testing.T) {
	fresh := feed.Item{Title: "AI summit", PublishedAt: now.Add(-time.Hour)}
	stale := feed.Item{Title: "AI summit", PublishedAt: now.Add(-48 * time.Hour)}
	offTopic := feed.Item{Title: "Gardening tips", PublishedAt: now.Add(-time.Hour)}

	if !Admit(fresh, now, day, []string{"ai"}, nil) {
		t.Error("fresh matching item should be admitted")
	}
	if Admit(stale, now, day, []string{"ai"}, nil) {
		t.Error("stale item should be rejected")
	}
	if Admit(offTopic, now, day, []string{"ai"}, nil) {
		t.Error("non-matching item should be rejected")
	}
}

func TestAdmittedPreservesOrder(t *testing.T) {
	items := []feed.Item{
		{Title: "ai first", PublishedAt: now.Add(-time.Hour)},
		{Title: "skip me", PublishedAt: now.Add(-time.Hour)},
		{Title: "ai second"},
		{Title: "ai stale", PublishedAt: now.Add(-72 * time.Hour)},
	}

	got := Admitted(items, now, day, []string{"ai"}, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 admitted items, got %d", len(got))
	}
	if got[0].Title != "ai first" || got[1].Title != "ai second" {
		t.Errorf("admitted order = [%s, %s], want [ai first, ai second]",
			got[0].Title, got[1].Title)
	}
}
