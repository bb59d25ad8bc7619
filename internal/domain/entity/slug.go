package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug is the URL-safe form of a question title.
type Slug string

// NewSlugFromText lower-cases text, strips diacritics and joins the remaining
// ASCII letters and digits with single dashes.
//
// "An Example Title" → "an-example-title"
func NewSlugFromText(text string) Slug {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))

	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingDash = true
		}
	}

	return Slug(b.String())
}

// WithSuffix appends a disambiguating suffix.
func (s Slug) WithSuffix(suffix string) Slug {
	if s == "" {
		return Slug(suffix)
	}

	return Slug(string(s) + "-" + suffix)
}

func (s Slug) String() string {
	return string(s)
}
