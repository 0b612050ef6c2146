// internal/pkg/slug/slug.go

// Package slug derives the URL-safe product keys used by the cart and by
// catalog deep links. Both call sites must go through Make.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make lower-cases text, strips diacritics and joins the remaining ASCII
// alphanumeric runs with single hyphens. Make("") == "".
func Make(text string) string {
	// transform chains keep state, so one is built per call
	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(stripMarks, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// Tokens splits the slug of text into its words, dropping one-letter
// tokens.
func Tokens(text string) []string {
	parts := strings.Split(Make(text), "-")
	tokens := parts[:0]
	for _, p := range parts {
		if len(p) > 1 {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
