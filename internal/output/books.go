// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders search results, download links, and author-parse
// reports for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/archive-search/pkg/types"
)

// BooksTable writes books as a human-readable table to w.
func BooksTable(books []types.Book, w io.Writer) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-3s  %-50s  %-24s  %-4s  %-5s  %-7s  %s\n",
		"#", "Title", "Authors", "Year", "Type", "Size", "ID")
	fmt.Fprintln(w, strings.Repeat("-", 140))

	for i, b := range books {
		year := ""
		if b.Year > 0 {
			year = strconv.Itoa(b.Year)
		}
		fmt.Fprintf(w, "%-3d  %s  %s  %-4s  %-5s  %-7s  %s\n",
			i+1, pad(truncate(b.Title, 50), 50), pad(formatAuthors(b.Authors), 24),
			year, b.FileType, b.FileSize, b.ID)
	}

	fmt.Fprintf(w, "\n%d results\n", len(books))
}

// BooksJSON writes books as indented JSON to w.
func BooksJSON(books []types.Book, w io.Writer) error {
	return writeJSON(w, books)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 24)
	default:
		return truncate(authors[0], 17) + " et al."
	}
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// pad right-pads s with spaces to width runes; fmt widths count bytes.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
