// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"regexp"
	"strings"
)

// bibliographicTerms holds lowercased placeholder labels that name a role
// rather than a person.
var bibliographicTerms = map[string]bool{
	"collection":      true,
	"collective":      true,
	"editor":          true,
	"editors":         true,
	"compiler":        true,
	"compilers":       true,
	"translator":      true,
	"translators":     true,
	"various":         true,
	"various authors": true,
}

// publisherYear matches a trailing ", 2018" on a publisher line.
var publisherYear = regexp.MustCompile(`,\s*\d{4}\s*$`)

// IsBibliographicTerm reports whether name is a placeholder such as
// "Collection" or "Editors". Matching is case-insensitive.
func IsBibliographicTerm(name string) bool {
	return bibliographicTerms[strings.ToLower(strings.TrimSpace(name))]
}

// CleanPublisherText drops a trailing ", <year>" from a publisher line.
func CleanPublisherText(publisher string) string {
	return strings.TrimSpace(publisherYear.ReplaceAllString(publisher, ""))
}

// ApplyPublisherFallback replaces placeholder names with the cleaned
// publisher. A blank publisher, or one that is blank once cleaned, counts as
// absent and leaves placeholders in place. names is not modified.
func ApplyPublisherFallback(names []string, publisher string) []string {
	out := make([]string, len(names))
	copy(out, names)

	replacement := CleanPublisherText(publisher)
	if replacement == "" {
		return out
	}
	for i, name := range out {
		if IsBibliographicTerm(name) {
			out[i] = replacement
		}
	}
	return out
}
