// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Strategy identifies one way of splitting a raw author field. The set is
// closed; SelectStrategy evaluates the variants in declaration order.
type Strategy int

const (
	Semicolon Strategy = iota
	PeriodDelimited
	CommaAnd
	And
	Comma
	SingleAuthor
)

func (s Strategy) String() string {
	switch s {
	case Semicolon:
		return "semicolon"
	case PeriodDelimited:
		return "period-delimited"
	case CommaAnd:
		return "comma-and"
	case And:
		return "and"
	case Comma:
		return "comma"
	case SingleAuthor:
		return "single"
	default:
		return "unknown"
	}
}

// MarshalText encodes the strategy by name.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Segment is one element produced by a split. Resolved segments are
// already in display order and must not be reordered again.
type Segment struct {
	Text     string `json:"text"`
	Resolved bool   `json:"resolved,omitempty"`
}

// strategies is the dispatch table, in priority order.
var strategies = []struct {
	id     Strategy
	detect func(string) bool
	split  func(string) []Segment
}{
	{Semicolon, detectSemicolon, splitSemicolon},
	{PeriodDelimited, detectPeriodDelimited, splitPeriodDelimited},
	{CommaAnd, detectCommaAnd, splitCommaAnd},
	{And, detectAnd, splitAnd},
	{Comma, detectComma, splitComma},
	{SingleAuthor, func(string) bool { return true }, splitSingle},
}

// SelectStrategy returns the first strategy whose detector matches text.
// SingleAuthor always matches, so every input gets a strategy.
func SelectStrategy(text string) Strategy {
	for _, s := range strategies {
		if s.detect(text) {
			return s.id
		}
	}
	return SingleAuthor
}

// Detect reports whether text carries the delimiter pattern of s.
func (s Strategy) Detect(text string) bool {
	if s < Semicolon || s > SingleAuthor {
		return false
	}
	return strategies[s].detect(text)
}

// Split breaks text into ordered segments using s.
func (s Strategy) Split(text string) []Segment {
	if s < Semicolon || s > SingleAuthor {
		return splitSingle(text)
	}
	return strategies[s].split(text)
}

// sentencePeriod matches a period closing a word of three or more letters.
var sentencePeriod = regexp.MustCompile(`\p{L}{3,}\.`)

// leadingConjunction matches an "and" or "&" opening the last list item.
var leadingConjunction = regexp.MustCompile(`(?i)^(?:and|&)\s+`)

const (
	andSep       = " and "
	ampersandSep = " & "
)

func hasConjunction(text string) bool {
	return strings.Contains(text, andSep) || strings.Contains(text, ampersandSep)
}

// sentencePeriods returns the byte offsets of periods that close a word of
// three or more letters and are followed by whitespace or the end of text.
func sentencePeriods(text string) []int {
	var offsets []int
	for _, loc := range sentencePeriod.FindAllStringIndex(text, -1) {
		end := loc[1]
		if end < len(text) {
			if r, _ := utf8.DecodeRuneInString(text[end:]); !unicode.IsSpace(r) {
				continue
			}
		}
		offsets = append(offsets, end-1)
	}
	return offsets
}

func detectSemicolon(text string) bool {
	return strings.Contains(text, ";")
}

func splitSemicolon(text string) []Segment {
	return rawSegments(strings.Split(text, ";"))
}

// detectPeriodDelimited matches "Role - Name. Role - Name." listings. A
// conjunction anywhere means a list strategy should handle the text.
func detectPeriodDelimited(text string) bool {
	if hasConjunction(text) {
		return false
	}
	return len(sentencePeriods(text)) >= 2
}

// splitPeriodDelimited cuts after each sentence period except a period that
// ends the text, which stays on the last segment.
func splitPeriodDelimited(text string) []Segment {
	var parts []string
	start := 0
	for _, off := range sentencePeriods(text) {
		if off == len(text)-1 {
			break
		}
		parts = append(parts, text[start:off])
		start = off + 1
	}
	parts = append(parts, text[start:])

	for i, p := range parts {
		parts[i] = strings.TrimLeft(p, " \t\n,;-")
	}
	return rawSegments(parts)
}

func detectCommaAnd(text string) bool {
	i := strings.Index(text, ",")
	if i < 0 {
		return false
	}
	return hasConjunction(text[i+1:])
}

// splitCommaAnd handles "A, B, and C". The last item loses its leading
// conjunction; a remaining inner conjunction ("B and C") is split too.
func splitCommaAnd(text string) []Segment {
	parts := strings.Split(text, ",")
	last := strings.TrimSpace(parts[len(parts)-1])
	last = leadingConjunction.ReplaceAllString(last, "")
	parts = parts[:len(parts)-1]
	if sep := firstConjunction(last); sep != "" {
		parts = append(parts, strings.Split(last, sep)...)
	} else {
		parts = append(parts, last)
	}
	return rawSegments(parts)
}

func detectAnd(text string) bool {
	return hasConjunction(text)
}

func splitAnd(text string) []Segment {
	sep := firstConjunction(text)
	if sep == "" {
		return splitSingle(text)
	}
	return rawSegments(strings.Split(text, sep))
}

// firstConjunction returns whichever of " and " / " & " occurs first.
func firstConjunction(text string) string {
	a := strings.Index(text, andSep)
	b := strings.Index(text, ampersandSep)
	switch {
	case a < 0 && b < 0:
		return ""
	case a < 0:
		return ampersandSep
	case b < 0:
		return andSep
	case a < b:
		return andSep
	default:
		return ampersandSep
	}
}

func detectComma(text string) bool {
	return strings.Contains(text, ",")
}

func splitComma(text string) []Segment {
	parts := nonEmptyParts(strings.Split(text, ","))
	return disambiguate(parts, ClassifyTuple(parts))
}

func splitSingle(text string) []Segment {
	return rawSegments([]string{text})
}

// rawSegments trims parts and drops blanks.
func rawSegments(parts []string) []Segment {
	segs := make([]Segment, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segs = append(segs, Segment{Text: p})
		}
	}
	return segs
}

func nonEmptyParts(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
