// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/archive-search/internal/authors"
)

// AuthorsReport explains how a raw author field was parsed.
func AuthorsReport(r authors.Report, w io.Writer) {
	fmt.Fprintf(w, "Input:    %q\n", r.Raw)
	fmt.Fprintf(w, "Strategy: %s\n", r.Strategy)
	if r.Shape != authors.TupleNone {
		fmt.Fprintf(w, "Shape:    %s\n", r.Shape)
	}

	fmt.Fprintln(w, "Segments:")
	for _, s := range r.Segments {
		mark := ""
		if s.Resolved {
			mark = " (resolved)"
		}
		fmt.Fprintf(w, "  - %q%s\n", s.Text, mark)
	}

	fmt.Fprintln(w, "Names:")
	if len(r.Names) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, n := range r.Names {
		fmt.Fprintf(w, "  - %s\n", n)
	}

	if r.Shape.Ambiguous() {
		fmt.Fprintf(w, "warning: comma tuple %q has no matching rule; split as a list\n",
			strings.TrimSpace(r.Raw))
	}
}

// AuthorsJSON writes the report as indented JSON to w.
func AuthorsJSON(r authors.Report, w io.Writer) error {
	return writeJSON(w, r)
}
