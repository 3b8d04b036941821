// Package locale maps region codes to the locale parameters Google News
// expects on its search feed URLs.
package locale

import "strings"

// Params is the (hl, gl, ceid) triple carried on every search feed URL.
type Params struct {
	Language string // hl
	Country  string // gl
	Locale   string // ceid
}

// defaultParams is returned for any region code not in the table.
var defaultParams = Params{Language: "en-US", Country: "US", Locale: "US:en"}

var regions = map[string]Params{
	"US": {"en-US", "US", "US:en"},
	"GB": {"en-GB", "GB", "GB:en"},
	"CA": {"en-CA", "CA", "CA:en"},
	"AU": {"en-AU", "AU", "AU:en"},
	"IN": {"en-IN", "IN", "IN:en"},
	"FR": {"fr", "FR", "FR:fr"},
	"DE": {"de", "DE", "DE:de"},
	"ES": {"es", "ES", "ES:es"},
	"IT": {"it", "IT", "IT:it"},
	"BR": {"pt-BR", "BR", "BR:pt"},
}

// Lookup returns the locale parameters for a region code. The lookup is
// case-insensitive and total: unknown codes fall back to US English.
func Lookup(code string) Params {
	if p, ok := regions[strings.ToUpper(code)]; ok {
		return p
	}
	return defaultParams
}
