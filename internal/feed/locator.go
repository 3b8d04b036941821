package feed

import (
	"fmt"
	"net/url"

	"github.com/abelbrown/briefing/internal/locale"
)

const searchBase = "https://news.google.com/rss/search"

// recencyQualifier narrows a search feed to entries from the last day.
// It is appended after the encoded query, unencoded: Google News treats
// "when:1d" as a search operator, not query text.
const recencyQualifier = "when:1d"

// SearchURL builds the Google News search feed URL for a query in a
// region. Deterministic: identical (query, region) pairs always produce
// byte-identical URLs. Arbitrary query text is percent-encoded, never
// rejected.
func SearchURL(query, region string) string {
	p := locale.Lookup(region)
	return fmt.Sprintf("%s?q=%s+%s&hl=%s&gl=%s&ceid=%s",
		searchBase, url.QueryEscape(query), recencyQualifier,
		p.Language, p.Country, p.Locale)
}
