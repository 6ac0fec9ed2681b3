// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Transform is a pure text-to-text step of the normalization pipeline.
// Every transform returns its input unchanged when its trigger pattern
// does not match.
type Transform func(string) string

var (
	bracketPattern       = regexp.MustCompile(`\[[^\]]*\]`)
	parenthesisPattern   = regexp.MustCompile(`\([^)]*\)`)
	spaceRunPattern      = regexp.MustCompile(`\s+`)
	spaceBeforeComma     = regexp.MustCompile(`\s+,`)
	trailingPeriodWord   = regexp.MustCompile(`\p{L}{3,}\.$`)
	initialsPattern      = regexp.MustCompile(`^(?:\p{L}\.)+$`)
	englishRolePrefixes  = regexp.MustCompile(`(?i)^(?:illustrated\s+by|by)\s+`)
	localeRolePrefixList = []string{
		"Составитель",
		"Русский Текст",
		"Иллюстрации",
		"Редактор",
		"Перевод",
	}
	localeRolePrefixes = compileLocalePrefixes(localeRolePrefixList)
)

// abbreviations maps a lowercased abbreviation (without its period) to the
// canonical bibliographic term it stands for.
var abbreviations = map[string]string{
	"coll":  "Collection",
	"ed":    "Editor",
	"eds":   "Editors",
	"comp":  "Compiler",
	"trans": "Translator",
}

// pipeline is the fixed transform order. Reordering changes results:
// annotations must go before prefix matching, and the trailing period must
// go before the comma reversal so "Last, First." reverses cleanly.
var pipeline = []struct {
	fn Transform
	// reorders marks steps that resolved segments skip.
	reorders bool
}{
	{fn: RemoveBrackets},
	{fn: RemoveParentheses},
	{fn: RemovePrefixes},
	{fn: ExpandAbbreviations},
	{fn: RemoveTrailingPeriod},
	{fn: ReverseLastNameFirst, reorders: true},
	{fn: CapitalizeWords},
}

func compileLocalePrefixes(labels []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(labels))
	for _, label := range labels {
		words := strings.Fields(label)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		out = append(out, regexp.MustCompile(`(?i)^`+strings.Join(words, `\s+`)+`\s*[-–—]\s*`))
	}
	return out
}

// tidy collapses whitespace runs, drops space left in front of commas, and
// trims the result.
func tidy(s string) string {
	s = spaceRunPattern.ReplaceAllString(s, " ")
	s = spaceBeforeComma.ReplaceAllString(s, ",")
	return strings.TrimSpace(s)
}

// ApplyTransforms runs the full pipeline over a raw segment.
func ApplyTransforms(s string) string {
	return applySegment(Segment{Text: s})
}

// applySegment runs the pipeline over a split segment. Resolved segments
// were already reordered by tuple disambiguation and skip the comma
// reversal.
func applySegment(seg Segment) string {
	s := seg.Text
	for _, step := range pipeline {
		if seg.Resolved && step.reorders {
			continue
		}
		s = step.fn(s)
	}
	return s
}

// RemoveBrackets deletes every [...] span. Listings append duplicate names
// in brackets, so the content is always discarded.
func RemoveBrackets(s string) string {
	if !bracketPattern.MatchString(s) {
		return s
	}
	return tidy(bracketPattern.ReplaceAllString(s, ""))
}

// RemoveParentheses deletes every (...) span, e.g. "(editor)".
func RemoveParentheses(s string) string {
	if !parenthesisPattern.MatchString(s) {
		return s
	}
	return tidy(parenthesisPattern.ReplaceAllString(s, ""))
}

// RemovePrefixes strips one leading role label such as "By",
// "Illustrated by" or "Составитель -".
func RemovePrefixes(s string) string {
	trimmed := strings.TrimSpace(s)
	if loc := englishRolePrefixes.FindStringIndex(trimmed); loc != nil {
		return tidy(trimmed[loc[1]:])
	}
	for _, re := range localeRolePrefixes {
		if loc := re.FindStringIndex(trimmed); loc != nil {
			return tidy(trimmed[loc[1]:])
		}
	}
	return s
}

// ExpandAbbreviations replaces a segment that is entirely a known
// abbreviation ("coll.", "ed", "Eds.") with its canonical term.
func ExpandAbbreviations(s string) string {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "."))
	if term, ok := abbreviations[key]; ok {
		return term
	}
	return s
}

// RemoveTrailingPeriod strips a final period that follows a word of three
// or more letters. Initials such as "J." keep their period.
func RemoveTrailingPeriod(s string) string {
	trimmed := strings.TrimSpace(s)
	if !trailingPeriodWord.MatchString(trimmed) {
		return s
	}
	return strings.TrimSpace(strings.TrimSuffix(trimmed, "."))
}

// ReverseLastNameFirst rewrites "Last, First" as "First Last". Text with
// no comma or more than one comma passes through.
func ReverseLastNameFirst(s string) string {
	if strings.Count(s, ",") != 1 {
		return s
	}
	last, first, _ := strings.Cut(s, ",")
	last, first = strings.TrimSpace(last), strings.TrimSpace(first)
	if last == "" || first == "" {
		return s
	}
	return first + " " + last
}

// CapitalizeWords title-cases each whitespace-separated token. URLs are
// left verbatim and chains of initials ("j.h.") only have their letters
// uppercased. Tokens already in mixed case ("McDonald") keep their inner
// capitals.
func CapitalizeWords(s string) string {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return s
	}
	// Casers carry state and are built per call.
	title := cases.Title(language.Und)
	keepInner := cases.Title(language.Und, cases.NoLower)

	for i, tok := range tokens {
		switch {
		case strings.Contains(tok, "://"):
		case initialsPattern.MatchString(tok):
			tokens[i] = strings.ToUpper(tok)
		case hasInnerCapital(tok):
			tokens[i] = keepInner.String(tok)
		default:
			tokens[i] = title.String(tok)
		}
	}
	return strings.Join(tokens, " ")
}

// hasInnerCapital reports whether tok mixes lower-case letters with an
// upper-case letter after its first letter.
func hasInnerCapital(tok string) bool {
	var lower, innerUpper, seenLetter bool
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsLower(r) {
			lower = true
		} else if unicode.IsUpper(r) && seenLetter {
			innerUpper = true
		}
		seenLetter = true
	}
	return lower && innerUpper
}
