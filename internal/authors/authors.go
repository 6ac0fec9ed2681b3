// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authors turns the raw author text scraped from a listing into an
// ordered list of display names.
//
// Parsing runs in four stages: a strategy is selected by the delimiters
// present in the text, the strategy splits the text into segments, each
// segment goes through a fixed transform pipeline, and placeholder terms
// ("Collection", "Editor") fall back to the publisher name. Every function
// in the package is pure and safe for concurrent use.
package authors

import "strings"

// Option configures a Parse call.
type Option func(*options)

type options struct {
	publisher string
}

// WithPublisher supplies the raw publisher line ("SitePoint, 2018") used
// in place of placeholder author terms.
func WithPublisher(publisher string) Option {
	return func(o *options) { o.publisher = publisher }
}

// Report describes how a raw author field was parsed.
type Report struct {
	Raw      string     `json:"raw"`
	Strategy Strategy   `json:"strategy"`
	Segments []Segment  `json:"segments"`
	Shape    TupleShape `json:"shape"`
	Names    []string   `json:"names"`
}

// Parse returns the normalized author names found in raw, in input order.
// Blank input yields an empty list; any other input yields at least one
// name.
func Parse(raw string, opts ...Option) []string {
	return Inspect(raw, opts...).Names
}

// Inspect parses raw like Parse and also reports the chosen strategy, the
// intermediate segments, and the comma tuple shape.
func Inspect(raw string, opts ...Option) Report {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := Report{Raw: raw, Strategy: SingleAuthor, Names: []string{}}
	text := strings.TrimSpace(raw)
	if text == "" {
		return r
	}

	// Bracketed duplicates can hold delimiters of their own
	// ("Casey, Elle [Casey, Elle]"), so they go before splitting.
	if cleaned := RemoveBrackets(text); cleaned != "" {
		text = cleaned
	}

	r.Strategy = SelectStrategy(text)
	r.Segments = r.Strategy.Split(text)
	if r.Strategy == Comma {
		r.Shape = ClassifyTuple(nonEmptyParts(strings.Split(text, ",")))
	}

	candidates := make([]string, 0, len(r.Segments))
	for _, seg := range r.Segments {
		candidates = append(candidates, applySegment(seg))
	}

	for _, name := range ApplyPublisherFallback(candidates, o.publisher) {
		if name = strings.TrimSpace(name); name != "" {
			r.Names = append(r.Names, name)
		}
	}

	// Text made only of annotations ("(editor)") transforms to nothing;
	// keep it verbatim rather than drop the record's only author.
	if len(r.Names) == 0 {
		r.Names = append(r.Names, tidy(text))
	}
	return r
}
