package groomdir

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Sluggifier assigns URL-safe, site-unique slugs to shop names.
// A collision gets the lowest free numeric suffix starting at -2, assigned
// in input order, so slugs are stable across runs on unchanged input.
type Sluggifier struct {
	used map[string]bool
}

// NewSluggifier creates an empty Sluggifier.
func NewSluggifier() *Sluggifier {
	return &Sluggifier{used: make(map[string]bool)}
}

// Slugify normalizes name into a URL-safe token, reserves it, and returns it.
// Names that normalize to nothing fall back to "shop".
func (s *Sluggifier) Slugify(name string) string {
	base := slugToken(name)
	if base == "" {
		base = "shop"
	}

	slug := base
	for suffix := 2; s.used[slug]; suffix++ {
		slug = base + "-" + strconv.Itoa(suffix)
	}
	s.used[slug] = true
	return slug
}

// deaccenter decomposes characters and strips combining marks, so
// "Café" normalizes to "Cafe". NFKD also folds full-width forms common
// in the scraped data.
var deaccenter = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugToken converts a name to a lowercase token: letters and digits kept,
// everything else collapsed to single hyphens.
func slugToken(name string) string {
	cleaned, _, err := transform.String(deaccenter, name)
	if err != nil {
		cleaned = name
	}

	var sb strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(cleaned) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen && sb.Len() > 0 {
			sb.WriteRune('-')
			prevHyphen = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
