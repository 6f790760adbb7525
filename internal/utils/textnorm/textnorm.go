// Package textnorm builds comparison keys for display strings.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents strips combining diacritical marks, so "Åland" becomes "Aland".
// Input that cannot be transformed is returned unchanged.
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Lower lower-cases s using root locale rules.
// Casers keep state, so a fresh one is built per call.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ContainsFold reports whether needle occurs in haystack ignoring case.
// Accents are significant here; they are only stripped for ordering.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Lower(haystack), Lower(needle))
}

// Normalizer produces sort keys: accents stripped, then lower-cased.
type Normalizer struct{}

// NewNormalizer returns the default sort key normalizer.
func NewNormalizer() Normalizer {
	return Normalizer{}
}

// Key returns the comparison key for s.
func (Normalizer) Key(s string) string {
	return Lower(RemoveAccents(s))
}
