// Package render produces the email bodies for a digest: a grouped HTML
// part and a short plaintext alternative.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/abelbrown/briefing/internal/digest"
	"github.com/abelbrown/briefing/internal/feed"
)

//go:embed email.html.tmpl
var emailTemplate string

var tmpl = template.Must(template.New("email").Parse(emailTemplate))

// plainFallback is the text part of the multipart message; the digest is
// meant to be read as HTML.
const plainFallback = "Your daily news digest is best viewed in HTML email."

// Group is a display section of the digest.
type Group struct {
	Label string
	Items []feed.Item
}

// Email renders the digest into plaintext and HTML bodies.
func Email(d digest.Digest) (text, html string, err error) {
	data := struct {
		Title       string
		GeneratedAt string
		Groups      []Group
	}{
		Title:       d.Title,
		GeneratedAt: d.GeneratedAt.Format("2006-01-02 15:04"),
		Groups:      GroupItems(d),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render email: %w", err)
	}
	return plainFallback, buf.String(), nil
}

// GroupItems partitions the digest's items for display, following its
// GroupBy hint: "sector" groups by label, "region" by region, anything
// else yields a single unlabeled group. Groups appear in order of first
// occurrence and items keep their ranked order within each group.
func GroupItems(d digest.Digest) []Group {
	keyFor := func(item feed.Item) string {
		switch d.GroupBy {
		case "sector":
			return item.Label
		case "region":
			return item.Region
		default:
			return ""
		}
	}

	index := make(map[string]int)
	var groups []Group
	for _, item := range d.Items {
		key := keyFor(item)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Label: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
