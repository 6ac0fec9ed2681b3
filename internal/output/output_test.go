// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/archive-search/internal/authors"
	"github.com/pdiddy/archive-search/pkg/types"
)

var sampleBooks = []types.Book{
	{
		ID:        "655f86a6f99a3dee5e0ce409c4a6dfdc",
		Title:     "Docker for Rails Developers: Build, Ship, and Run Your Applications Everywhere",
		Authors:   []string{"Rob Isenberg"},
		Publisher: "Pragmatic Bookshelf",
		Language:  "en",
		FileType:  "PDF",
		FileSize:  "5.1MB",
		Year:      2019,
	},
	{
		ID:       "9a9dc82a36599861ffe8d7eb815383f5",
		Title:    "Мой Oxford англо-русский словарь в картинках",
		Authors:  []string{"Sheila Pemberton", "И. Б. Соболева", "Val Biro"},
		FileType: "PDF",
	},
}

func TestBooksTable(t *testing.T) {
	var buf bytes.Buffer
	BooksTable(sampleBooks, &buf)
	out := buf.String()

	assert.Contains(t, out, "Docker for Rails Developers: Build, Ship, and R...")
	assert.Contains(t, out, "Sheila Pemberton et al.")
	assert.Contains(t, out, "2019")
	assert.Contains(t, out, "2 results")

	lines := strings.Split(out, "\n")
	column := func(line, id string) int {
		return utf8.RuneCountInString(line[:strings.Index(line, id)])
	}
	// Rune-aware padding keeps the Cyrillic row aligned with the ASCII row.
	assert.Equal(t, column(lines[2], sampleBooks[0].ID), column(lines[3], sampleBooks[1].ID))
}

func TestBooksTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	BooksTable(nil, &buf)
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestBooksJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BooksJSON(sampleBooks, &buf))

	var got []types.Book
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleBooks, got)
	assert.NotContains(t, buf.String(), `"year": 0`)
}

func TestBooksCSL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BooksCSL(sampleBooks, &buf))

	var items []CSLItem
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 2)

	assert.Equal(t, "book", items[0].Type)
	assert.Equal(t, []CSLName{{Given: "Rob", Family: "Isenberg"}}, items[0].Author)
	assert.Equal(t, [][]int{{2019}}, items[0].Issued.DateParts)
	assert.Equal(t, "Pragmatic Bookshelf", items[0].Publisher)
	assert.Nil(t, items[1].Issued)
	assert.Equal(t, CSLName{Given: "И. Б.", Family: "Соболева"}, items[1].Author[1])
}

func TestCSLName(t *testing.T) {
	assert.Equal(t, CSLName{Literal: "SitePoint"}, cslName("SitePoint"))
	assert.Equal(t, CSLName{Literal: "https://www.tutorialspoint.com/"}, cslName("https://www.tutorialspoint.com/"))
	assert.Equal(t, CSLName{Given: "St. John", Family: "Chrysostom"}, cslName("St. John Chrysostom"))
}

func TestLinksTable(t *testing.T) {
	var buf bytes.Buffer
	LinksTable(types.DownloadLinks{
		ID:      "abc",
		Mirrors: []string{"https://a.example/1", "https://b.example/2"},
		IPFSURL: "https://gw.example/ipfs/bafy",
		CID:     "bafy",
	}, &buf)
	out := buf.String()
	assert.Contains(t, out, " 1. https://a.example/1")
	assert.Contains(t, out, " 2. https://b.example/2")
	assert.Contains(t, out, "CID:  bafy")

	buf.Reset()
	LinksTable(types.DownloadLinks{ID: "abc"}, &buf)
	assert.Contains(t, buf.String(), "no download links found")
}

func TestLinksJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LinksJSON(types.DownloadLinks{ID: "abc", Mirrors: []string{"https://a.example/?x=1&y=2"}}, &buf))
	assert.Contains(t, buf.String(), `"https://a.example/?x=1&y=2"`)
	assert.NotContains(t, buf.String(), "ipfs_url")
}

func TestAuthorsReport(t *testing.T) {
	var buf bytes.Buffer
	AuthorsReport(authors.Inspect("Mighton, John, Jump Math"), &buf)
	out := buf.String()
	assert.Contains(t, out, "Strategy: comma")
	assert.Contains(t, out, "Shape:    name-and-organization")
	assert.Contains(t, out, `"John Mighton" (resolved)`)
	assert.Contains(t, out, "  - Jump Math")
	assert.NotContains(t, out, "warning")

	buf.Reset()
	AuthorsReport(authors.Inspect("Jaime González García, Artur Mizera"), &buf)
	assert.Contains(t, buf.String(), "warning: comma tuple")
}

func TestAuthorsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AuthorsJSON(authors.Inspect("A; B"), &buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "semicolon", got["strategy"])
	assert.Equal(t, "none", got["shape"])
}
